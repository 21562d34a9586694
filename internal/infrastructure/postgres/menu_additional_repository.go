package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

var _ repository.MenuAdditionalRepository = (*MenuAdditionalRepo)(nil)

// MenuAdditionalRepo implementación del puerto para los adicionales fijos de un
// menú (usable con pool o tx). El par (menu_id, option_id) es único.
type MenuAdditionalRepo struct {
	q Querier
}

// NewMenuAdditionalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuAdditionalRepository(q Querier) *MenuAdditionalRepo {
	return &MenuAdditionalRepo{q: q}
}

// Create persiste un enlace menú-adicional.
func (r *MenuAdditionalRepo) Create(link *entity.MenuAdditional) error {
	query := `INSERT INTO menu_additionals (id, menu_id, option_id, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, link.ID, link.MenuID, link.OptionID, link.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu additional: %w", err)
	}
	return nil
}

// ListByMenu lista los adicionales fijos del menú.
func (r *MenuAdditionalRepo) ListByMenu(menuID string) ([]*entity.MenuAdditional, error) {
	query := `SELECT id, menu_id, option_id, created_at FROM menu_additionals WHERE menu_id = $1`
	rows, err := r.q.Query(context.Background(), query, menuID)
	if err != nil {
		return nil, fmt.Errorf("list menu additionals: %w", err)
	}
	defer rows.Close()
	var list []*entity.MenuAdditional
	for rows.Next() {
		var l entity.MenuAdditional
		if err := rows.Scan(&l.ID, &l.MenuID, &l.OptionID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan menu additional: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete elimina un enlace por ID.
func (r *MenuAdditionalRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM menu_additionals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu additional: %w", err)
	}
	return nil
}
