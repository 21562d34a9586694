package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

var _ repository.MenuConfigRepository = (*MenuConfigRepo)(nil)

// MenuConfigRepo implementación del puerto MenuConfigRepository sobre
// PostgreSQL (usable con pool o tx). La tabla guarda una sola fila.
type MenuConfigRepo struct {
	q Querier
}

// NewMenuConfigRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuConfigRepository(q Querier) *MenuConfigRepo {
	return &MenuConfigRepo{q: q}
}

// GetOrCreate devuelve la fila de configuración, creándola con los valores por
// defecto en el primer acceso.
func (r *MenuConfigRepo) GetOrCreate() (*entity.MenuConfig, error) {
	query := `SELECT id, allow_current_week_edits, advance_days, edit_cutoff, updated_at FROM menu_config LIMIT 1`
	var cfg entity.MenuConfig
	err := r.q.QueryRow(context.Background(), query).Scan(
		&cfg.ID, &cfg.AllowCurrentWeekEdits, &cfg.AdvanceDays, &cfg.EditCutoff, &cfg.UpdatedAt,
	)
	if err == nil {
		return &cfg, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get menu config: %w", err)
	}

	cfg = entity.MenuConfig{
		ID:                    uuid.New().String(),
		AllowCurrentWeekEdits: false,
		AdvanceDays:           1,
		EditCutoff:            "23:59:59",
		UpdatedAt:             time.Now(),
	}
	_, err = r.q.Exec(context.Background(),
		`INSERT INTO menu_config (id, allow_current_week_edits, advance_days, edit_cutoff, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		cfg.ID, cfg.AllowCurrentWeekEdits, cfg.AdvanceDays, cfg.EditCutoff, cfg.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert menu config: %w", err)
	}
	return &cfg, nil
}

// Update guarda la configuración.
func (r *MenuConfigRepo) Update(cfg *entity.MenuConfig) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE menu_config SET allow_current_week_edits = $2, advance_days = $3, edit_cutoff = $4, updated_at = $5
		 WHERE id = $1`,
		cfg.ID, cfg.AllowCurrentWeekEdits, cfg.AdvanceDays, cfg.EditCutoff, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu config: %w", err)
	}
	return nil
}
