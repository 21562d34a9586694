package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL
// (usable con pool o tx). Las asignaciones de entrega viven en las tablas de
// enlace employee_branches y employee_locations y se reemplazan completas en
// cada Create/Update.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeCols = `id, company_id, branch_id, document, name, email, is_subsidized, subsidy_type, subsidy_value, status, created_at, updated_at`

// Create persiste un empleado y sus asignaciones. La cédula es única por empresa.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.CompanyID, employee.BranchID, employee.Document,
		employee.Name, employee.Email, employee.IsSubsidized,
		employee.SubsidyType, employee.SubsidyValue, employee.Status,
		employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return r.replaceAssignments(employee)
}

// GetByID obtiene un empleado con sus asignaciones cargadas.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, err := r.getBy(`id = $1`, id)
	if err != nil || e == nil {
		return e, err
	}
	if err := r.loadAssignments(e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetByCompanyAndDocument obtiene un empleado por empresa y cédula.
func (r *EmployeeRepo) GetByCompanyAndDocument(companyID, document string) (*entity.Employee, error) {
	query := `SELECT ` + employeeCols + ` FROM employees WHERE company_id = $1 AND document = $2`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, companyID, document).Scan(
		&e.ID, &e.CompanyID, &e.BranchID, &e.Document, &e.Name, &e.Email,
		&e.IsSubsidized, &e.SubsidyType, &e.SubsidyValue, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by document: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepo) getBy(cond string, arg any) (*entity.Employee, error) {
	query := `SELECT ` + employeeCols + ` FROM employees WHERE ` + cond
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&e.ID, &e.CompanyID, &e.BranchID, &e.Document, &e.Name, &e.Email,
		&e.IsSubsidized, &e.SubsidyType, &e.SubsidyValue, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// Update actualiza un empleado y reemplaza sus asignaciones por las del entity.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees SET branch_id = $2, name = $3, email = $4, is_subsidized = $5,
			subsidy_type = $6, subsidy_value = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.BranchID, employee.Name, employee.Email, employee.IsSubsidized,
		employee.SubsidyType, employee.SubsidyValue, employee.Status, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return r.replaceAssignments(employee)
}

// ListByCompany lista empleados por empresa con paginación (sin asignaciones).
func (r *EmployeeRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeCols + ` FROM employees WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// ListByBranch lista los empleados cuya sucursal base es la dada.
func (r *EmployeeRepo) ListByBranch(branchID string) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeCols + ` FROM employees WHERE branch_id = $1 ORDER BY name`
	return r.list(query, branchID)
}

func (r *EmployeeRepo) list(query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.BranchID, &e.Document, &e.Name, &e.Email,
			&e.IsSubsidized, &e.SubsidyType, &e.SubsidyValue, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un empleado y sus asignaciones (ON DELETE CASCADE en las tablas de enlace).
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) loadAssignments(e *entity.Employee) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT branch_id FROM employee_branches WHERE employee_id = $1`, e.ID)
	if err != nil {
		return fmt.Errorf("load employee branches: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan employee branch: %w", err)
		}
		e.BranchIDs = append(e.BranchIDs, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.q.Query(context.Background(),
		`SELECT location_id FROM employee_locations WHERE employee_id = $1`, e.ID)
	if err != nil {
		return fmt.Errorf("load employee locations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan employee location: %w", err)
		}
		e.LocationIDs = append(e.LocationIDs, id)
	}
	return rows.Err()
}

func (r *EmployeeRepo) replaceAssignments(e *entity.Employee) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM employee_branches WHERE employee_id = $1`, e.ID); err != nil {
		return fmt.Errorf("clear employee branches: %w", err)
	}
	for _, branchID := range e.BranchIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO employee_branches (employee_id, branch_id) VALUES ($1, $2)`, e.ID, branchID); err != nil {
			return fmt.Errorf("insert employee branch: %w", err)
		}
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM employee_locations WHERE employee_id = $1`, e.ID); err != nil {
		return fmt.Errorf("clear employee locations: %w", err)
	}
	for _, locationID := range e.LocationIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO employee_locations (employee_id, location_id) VALUES ($1, $2)`, e.ID, locationID); err != nil {
			return fmt.Errorf("insert employee location: %w", err)
		}
	}
	return nil
}
