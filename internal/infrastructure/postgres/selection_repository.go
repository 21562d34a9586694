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

var _ repository.SelectionRepository = (*SelectionRepo)(nil)

// SelectionRepo implementación del puerto SelectionRepository sobre PostgreSQL
// (usable con pool o tx). La unicidad (employee_id, menu_day_id) la garantiza
// un constraint único.
type SelectionRepo struct {
	q Querier
}

// NewSelectionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSelectionRepository(q Querier) *SelectionRepo {
	return &SelectionRepo{q: q}
}

const selectionCols = `id, employee_id, menu_day_id, slot, delivery_branch_id, delivery_location_id, additional_option_id, snapshot_price, snapshot_subsidy, snapshot_at, created_at, updated_at`

// Create persiste una selección nueva.
func (r *SelectionRepo) Create(selection *entity.Selection) error {
	query := `
		INSERT INTO selections (` + selectionCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		selection.ID, selection.EmployeeID, selection.MenuDayID, selection.Slot,
		selection.DeliveryBranchID, selection.DeliveryLocationID, selection.AdditionalOptionID,
		selection.SnapshotPrice, selection.SnapshotSubsidy, selection.SnapshotAt,
		selection.CreatedAt, selection.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert selection: %w", err)
	}
	return nil
}

// GetByID obtiene una selección por ID.
func (r *SelectionRepo) GetByID(id string) (*entity.Selection, error) {
	query := `SELECT ` + selectionCols + ` FROM selections WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByEmployeeAndDay obtiene la selección del empleado para un día de menú.
func (r *SelectionRepo) GetByEmployeeAndDay(employeeID, menuDayID string) (*entity.Selection, error) {
	query := `SELECT ` + selectionCols + ` FROM selections WHERE employee_id = $1 AND menu_day_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, employeeID, menuDayID))
}

func (r *SelectionRepo) scanOne(row pgx.Row) (*entity.Selection, error) {
	var s entity.Selection
	err := row.Scan(&s.ID, &s.EmployeeID, &s.MenuDayID, &s.Slot,
		&s.DeliveryBranchID, &s.DeliveryLocationID, &s.AdditionalOptionID,
		&s.SnapshotPrice, &s.SnapshotSubsidy, &s.SnapshotAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get selection: %w", err)
	}
	return &s, nil
}

// ListByMenuDayIDs lista las selecciones de un conjunto de días de menú.
func (r *SelectionRepo) ListByMenuDayIDs(menuDayIDs []string) ([]*entity.Selection, error) {
	if len(menuDayIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + selectionCols + ` FROM selections WHERE menu_day_id = ANY($1) ORDER BY employee_id, menu_day_id`
	rows, err := r.q.Query(context.Background(), query, menuDayIDs)
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	defer rows.Close()
	var list []*entity.Selection
	for rows.Next() {
		var s entity.Selection
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.MenuDayID, &s.Slot,
			&s.DeliveryBranchID, &s.DeliveryLocationID, &s.AdditionalOptionID,
			&s.SnapshotPrice, &s.SnapshotSubsidy, &s.SnapshotAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan selection: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza una selección (re-registro o estampado de snapshot).
func (r *SelectionRepo) Update(selection *entity.Selection) error {
	query := `
		UPDATE selections SET slot = $2, delivery_branch_id = $3, delivery_location_id = $4,
			additional_option_id = $5, snapshot_price = $6, snapshot_subsidy = $7, snapshot_at = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		selection.ID, selection.Slot, selection.DeliveryBranchID, selection.DeliveryLocationID,
		selection.AdditionalOptionID, selection.SnapshotPrice, selection.SnapshotSubsidy,
		selection.SnapshotAt, selection.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update selection: %w", err)
	}
	return nil
}

// DeleteByMenuDay elimina todas las selecciones de un día de menú.
func (r *SelectionRepo) DeleteByMenuDay(menuDayID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM selections WHERE menu_day_id = $1`, menuDayID)
	if err != nil {
		return fmt.Errorf("delete selections by day: %w", err)
	}
	return nil
}

// CountByMenu cuenta las selecciones registradas sobre cualquier día del menú.
func (r *SelectionRepo) CountByMenu(menuID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM selections s
		JOIN menu_days d ON d.id = s.menu_day_id
		WHERE d.menu_id = $1`
	var n int
	if err := r.q.QueryRow(context.Background(), query, menuID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count selections: %w", err)
	}
	return n, nil
}
