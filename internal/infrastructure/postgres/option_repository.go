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

var _ repository.OptionRepository = (*OptionRepo)(nil)

// OptionRepo implementación del puerto OptionRepository sobre PostgreSQL (usable con pool o tx).
type OptionRepo struct {
	q Querier
}

// NewOptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOptionRepository(q Querier) *OptionRepo {
	return &OptionRepo{q: q}
}

const optionCols = `id, company_id, code, name, description, cost, price, is_subsidized, status, created_at, updated_at`

// Create persiste un plato del catálogo. El código es único por empresa.
func (r *OptionRepo) Create(option *entity.Option) error {
	query := `
		INSERT INTO menu_options (` + optionCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		option.ID, option.CompanyID, option.Code, option.Name, option.Description,
		option.Cost, option.Price, option.IsSubsidized, option.Status,
		option.CreatedAt, option.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert option: %w", err)
	}
	return nil
}

// GetByID obtiene un plato por ID.
func (r *OptionRepo) GetByID(id string) (*entity.Option, error) {
	query := `SELECT ` + optionCols + ` FROM menu_options WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCompanyAndCode obtiene un plato por empresa y código.
func (r *OptionRepo) GetByCompanyAndCode(companyID, code string) (*entity.Option, error) {
	query := `SELECT ` + optionCols + ` FROM menu_options WHERE company_id = $1 AND code = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, code))
}

func (r *OptionRepo) scanOne(row pgx.Row) (*entity.Option, error) {
	var o entity.Option
	err := row.Scan(&o.ID, &o.CompanyID, &o.Code, &o.Name, &o.Description,
		&o.Cost, &o.Price, &o.IsSubsidized, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get option: %w", err)
	}
	return &o, nil
}

// ListByIDs devuelve los platos cuyo ID está en la lista (sin orden garantizado).
func (r *OptionRepo) ListByIDs(ids []string) ([]*entity.Option, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + optionCols + ` FROM menu_options WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list options by ids: %w", err)
	}
	return r.scanRows(rows)
}

// ListByCompany lista platos por empresa con paginación.
func (r *OptionRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Option, error) {
	query := `SELECT ` + optionCols + ` FROM menu_options WHERE company_id = $1 ORDER BY code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list options: %w", err)
	}
	return r.scanRows(rows)
}

func (r *OptionRepo) scanRows(rows pgx.Rows) ([]*entity.Option, error) {
	defer rows.Close()
	var list []*entity.Option
	for rows.Next() {
		var o entity.Option
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.Code, &o.Name, &o.Description,
			&o.Cost, &o.Price, &o.IsSubsidized, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza un plato. El código no se modifica.
func (r *OptionRepo) Update(option *entity.Option) error {
	query := `
		UPDATE menu_options SET name = $2, description = $3, cost = $4, price = $5,
			is_subsidized = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		option.ID, option.Name, option.Description, option.Cost, option.Price,
		option.IsSubsidized, option.Status, option.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update option: %w", err)
	}
	return nil
}

// Delete elimina un plato por ID.
func (r *OptionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM menu_options WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete option: %w", err)
	}
	return nil
}
