package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo implementación del puerto MenuRepository sobre PostgreSQL (usable con pool o tx).
// Hay a lo sumo un menú por (empresa, sucursal, semana); branch_id NULL es el
// menú de empresa.
type MenuRepo struct {
	q Querier
}

// NewMenuRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuRepository(q Querier) *MenuRepo {
	return &MenuRepo{q: q}
}

const menuCols = `id, company_id, branch_id, week_start, week_end, manually_closed, manual_close_at, manually_reopened, created_at, updated_at`

// Create persiste un menú semanal.
func (r *MenuRepo) Create(menu *entity.Menu) error {
	query := `
		INSERT INTO menus (` + menuCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		menu.ID, menu.CompanyID, menu.BranchID, menu.WeekStart, menu.WeekEnd,
		menu.ManuallyClosed, menu.ManualCloseAt, menu.ManuallyReopened,
		menu.CreatedAt, menu.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu: %w", err)
	}
	return nil
}

// GetByID obtiene un menú por ID.
func (r *MenuRepo) GetByID(id string) (*entity.Menu, error) {
	query := `SELECT ` + menuCols + ` FROM menus WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByWeek obtiene el menú de la semana para el alcance dado: branchID nil
// busca el menú de empresa, con valor el de esa sucursal.
func (r *MenuRepo) GetByWeek(companyID string, branchID *string, weekStart time.Time) (*entity.Menu, error) {
	var query string
	var args []any
	if branchID == nil {
		query = `SELECT ` + menuCols + ` FROM menus WHERE company_id = $1 AND branch_id IS NULL AND week_start = $2`
		args = []any{companyID, weekStart}
	} else {
		query = `SELECT ` + menuCols + ` FROM menus WHERE company_id = $1 AND branch_id = $2 AND week_start = $3`
		args = []any{companyID, *branchID, weekStart}
	}
	return r.scanOne(r.q.QueryRow(context.Background(), query, args...))
}

func (r *MenuRepo) scanOne(row pgx.Row) (*entity.Menu, error) {
	var m entity.Menu
	err := row.Scan(&m.ID, &m.CompanyID, &m.BranchID, &m.WeekStart, &m.WeekEnd,
		&m.ManuallyClosed, &m.ManualCloseAt, &m.ManuallyReopened, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu: %w", err)
	}
	return &m, nil
}

// ListByCompany lista menús por empresa, semana más reciente primero.
func (r *MenuRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Menu, error) {
	query := `SELECT ` + menuCols + ` FROM menus WHERE company_id = $1 ORDER BY week_start DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	defer rows.Close()
	var list []*entity.Menu
	for rows.Next() {
		var m entity.Menu
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.BranchID, &m.WeekStart, &m.WeekEnd,
			&m.ManuallyClosed, &m.ManualCloseAt, &m.ManuallyReopened, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza los flags de cierre/reapertura y fechas del menú.
func (r *MenuRepo) Update(menu *entity.Menu) error {
	query := `
		UPDATE menus SET week_start = $2, week_end = $3, manually_closed = $4,
			manual_close_at = $5, manually_reopened = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		menu.ID, menu.WeekStart, menu.WeekEnd, menu.ManuallyClosed,
		menu.ManualCloseAt, menu.ManuallyReopened, menu.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu: %w", err)
	}
	return nil
}

// Delete elimina un menú; días, adicionales y selecciones caen por ON DELETE CASCADE.
func (r *MenuRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	return nil
}
