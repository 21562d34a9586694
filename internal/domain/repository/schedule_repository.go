package repository

import "github.com/jhoicas/Comedor-api/internal/domain/entity"

// ScheduleRepository define el puerto de persistencia para Schedule (DIP).
type ScheduleRepository interface {
	Create(schedule *entity.Schedule) error
	GetByID(id string) (*entity.Schedule, error)
	ListByCompany(companyID string) ([]*entity.Schedule, error)
	ListActiveByCompany(companyID string) ([]*entity.Schedule, error)
	Update(schedule *entity.Schedule) error
	Delete(id string) error
}
