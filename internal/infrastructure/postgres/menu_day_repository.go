package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

var _ repository.MenuDayRepository = (*MenuDayRepo)(nil)

// MenuDayRepo implementación del puerto MenuDayRepository sobre PostgreSQL (usable con pool o tx).
type MenuDayRepo struct {
	q Querier
}

// NewMenuDayRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuDayRepository(q Querier) *MenuDayRepo {
	return &MenuDayRepo{q: q}
}

const menuDayCols = `id, menu_id, day_of_week, schedule_id, option_a_id, option_b_id, option_c_id, option_d_id, option_e_id, max_selectable, closed_manually, created_at, updated_at`

// CreateBatch inserta los días de un menú de una sola vez (semana completa).
func (r *MenuDayRepo) CreateBatch(days []*entity.MenuDay) error {
	query := `
		INSERT INTO menu_days (` + menuDayCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for _, d := range days {
		_, err := r.q.Exec(context.Background(), query,
			d.ID, d.MenuID, d.DayOfWeek, d.ScheduleID,
			d.OptionAID, d.OptionBID, d.OptionCID, d.OptionDID, d.OptionEID,
			d.MaxSelectable, d.ClosedManually, d.CreatedAt, d.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert menu day: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un día de menú por ID.
func (r *MenuDayRepo) GetByID(id string) (*entity.MenuDay, error) {
	query := `SELECT ` + menuDayCols + ` FROM menu_days WHERE id = $1`
	var d entity.MenuDay
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.MenuID, &d.DayOfWeek, &d.ScheduleID,
		&d.OptionAID, &d.OptionBID, &d.OptionCID, &d.OptionDID, &d.OptionEID,
		&d.MaxSelectable, &d.ClosedManually, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu day: %w", err)
	}
	return &d, nil
}

// ListByMenu lista los días del menú ordenados por (day_of_week, schedule_id).
func (r *MenuDayRepo) ListByMenu(menuID string) ([]*entity.MenuDay, error) {
	query := `SELECT ` + menuDayCols + ` FROM menu_days WHERE menu_id = $1 ORDER BY day_of_week, schedule_id`
	rows, err := r.q.Query(context.Background(), query, menuID)
	if err != nil {
		return nil, fmt.Errorf("list menu days: %w", err)
	}
	defer rows.Close()
	var list []*entity.MenuDay
	for rows.Next() {
		var d entity.MenuDay
		if err := rows.Scan(&d.ID, &d.MenuID, &d.DayOfWeek, &d.ScheduleID,
			&d.OptionAID, &d.OptionBID, &d.OptionCID, &d.OptionDID, &d.OptionEID,
			&d.MaxSelectable, &d.ClosedManually, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu day: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza las casillas, el máximo y el cierre del día.
func (r *MenuDayRepo) Update(day *entity.MenuDay) error {
	query := `
		UPDATE menu_days SET option_a_id = $2, option_b_id = $3, option_c_id = $4,
			option_d_id = $5, option_e_id = $6, max_selectable = $7, closed_manually = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		day.ID, day.OptionAID, day.OptionBID, day.OptionCID, day.OptionDID, day.OptionEID,
		day.MaxSelectable, day.ClosedManually, day.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu day: %w", err)
	}
	return nil
}
