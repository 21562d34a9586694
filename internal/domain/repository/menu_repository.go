package repository

import (
	"time"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// MenuRepository define el puerto de persistencia para Menu (DIP).
// GetByWeek con branchID nil busca el menú de empresa; con valor, el de la
// sucursal (son filas distintas para la misma semana).
type MenuRepository interface {
	Create(menu *entity.Menu) error
	GetByID(id string) (*entity.Menu, error)
	GetByWeek(companyID string, branchID *string, weekStart time.Time) (*entity.Menu, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Menu, error)
	Update(menu *entity.Menu) error
	Delete(id string) error
}

// MenuDayRepository define el puerto de persistencia para MenuDay (DIP).
// ListByMenu devuelve los días ordenados por (day_of_week, schedule_id).
type MenuDayRepository interface {
	CreateBatch(days []*entity.MenuDay) error
	GetByID(id string) (*entity.MenuDay, error)
	ListByMenu(menuID string) ([]*entity.MenuDay, error)
	Update(day *entity.MenuDay) error
}

// MenuAdditionalRepository define el puerto para los adicionales fijos de un menú.
type MenuAdditionalRepository interface {
	Create(link *entity.MenuAdditional) error
	ListByMenu(menuID string) ([]*entity.MenuAdditional, error)
	Delete(id string) error
}
