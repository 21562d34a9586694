package repository

import "github.com/jhoicas/Comedor-api/internal/domain/entity"

// OptionRepository define el puerto de persistencia para Option (DIP).
type OptionRepository interface {
	Create(option *entity.Option) error
	GetByID(id string) (*entity.Option, error)
	GetByCompanyAndCode(companyID, code string) (*entity.Option, error)
	ListByIDs(ids []string) ([]*entity.Option, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Option, error)
	Update(option *entity.Option) error
	Delete(id string) error
}
