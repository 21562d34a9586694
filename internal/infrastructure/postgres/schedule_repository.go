package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

var _ repository.ScheduleRepository = (*ScheduleRepo)(nil)

// ScheduleRepo implementación del puerto ScheduleRepository sobre PostgreSQL (usable con pool o tx).
type ScheduleRepo struct {
	q Querier
}

// NewScheduleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewScheduleRepository(q Querier) *ScheduleRepo {
	return &ScheduleRepo{q: q}
}

const scheduleCols = `id, company_id, name, position, active, created_at, updated_at`

// Create persiste un horario.
func (r *ScheduleRepo) Create(schedule *entity.Schedule) error {
	query := `
		INSERT INTO schedules (` + scheduleCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		schedule.ID, schedule.CompanyID, schedule.Name, schedule.Position, schedule.Active,
		schedule.CreatedAt, schedule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}
	return nil
}

// GetByID obtiene un horario por ID.
func (r *ScheduleRepo) GetByID(id string) (*entity.Schedule, error) {
	query := `SELECT ` + scheduleCols + ` FROM schedules WHERE id = $1`
	var s entity.Schedule
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.Position, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	return &s, nil
}

// ListByCompany lista todos los horarios de la empresa ordenados por posición.
func (r *ScheduleRepo) ListByCompany(companyID string) ([]*entity.Schedule, error) {
	query := `SELECT ` + scheduleCols + ` FROM schedules WHERE company_id = $1 ORDER BY position, name`
	return r.list(query, companyID)
}

// ListActiveByCompany lista solo los horarios activos (los que generan días de menú).
func (r *ScheduleRepo) ListActiveByCompany(companyID string) ([]*entity.Schedule, error) {
	query := `SELECT ` + scheduleCols + ` FROM schedules WHERE company_id = $1 AND active ORDER BY position, name`
	return r.list(query, companyID)
}

func (r *ScheduleRepo) list(query string, args ...any) ([]*entity.Schedule, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()
	var list []*entity.Schedule
	for rows.Next() {
		var s entity.Schedule
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.Position, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un horario.
func (r *ScheduleRepo) Update(schedule *entity.Schedule) error {
	query := `UPDATE schedules SET name = $2, position = $3, active = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		schedule.ID, schedule.Name, schedule.Position, schedule.Active, schedule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	return nil
}

// Delete elimina un horario por ID.
func (r *ScheduleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}
