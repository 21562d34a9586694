package repository

import "github.com/jhoicas/Comedor-api/internal/domain/entity"

// SelectionRepository define el puerto de persistencia para Selection (DIP).
// Hay a lo sumo una Selection viva por par (empleado, día de menú).
type SelectionRepository interface {
	Create(selection *entity.Selection) error
	GetByID(id string) (*entity.Selection, error)
	GetByEmployeeAndDay(employeeID, menuDayID string) (*entity.Selection, error)
	ListByMenuDayIDs(menuDayIDs []string) ([]*entity.Selection, error)
	Update(selection *entity.Selection) error
	DeleteByMenuDay(menuDayID string) error
	CountByMenu(menuID string) (int, error)
}
