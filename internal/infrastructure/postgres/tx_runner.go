package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Comedor-api/internal/application/pricing"
	"github.com/jhoicas/Comedor-api/internal/application/survey"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// Ensure TxRunner implements survey.TxRunner and pricing.TxRunner.
var _ survey.TxRunner = (*TxRunner)(nil)
var _ pricing.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	menuRepo repository.MenuRepository,
	dayRepo repository.MenuDayRepository,
	selRepo repository.SelectionRepository,
	addlRepo repository.MenuAdditionalRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	menuRepo := NewMenuRepository(tx)
	dayRepo := NewMenuDayRepository(tx)
	selRepo := NewSelectionRepository(tx)
	addlRepo := NewMenuAdditionalRepository(tx)

	if err := fn(menuRepo, dayRepo, selRepo, addlRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
