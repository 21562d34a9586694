package repository

import "github.com/jhoicas/Comedor-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	ListByCompany(companyID string) ([]*entity.Location, error)
	Update(location *entity.Location) error
	Delete(id string) error
}
