package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// ScheduleUseCase casos de uso CRUD para horarios (franjas de servicio).
// Los menús semanales generan un MenuDay por día hábil y horario activo.
type ScheduleUseCase struct {
	repo repository.ScheduleRepository
}

// NewScheduleUseCase construye el caso de uso.
func NewScheduleUseCase(repo repository.ScheduleRepository) *ScheduleUseCase {
	return &ScheduleUseCase{repo: repo}
}

// Create crea un horario para la empresa.
func (uc *ScheduleUseCase) Create(companyID string, in dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	now := time.Now()
	schedule := &entity.Schedule{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Position:  in.Position,
		Active:    in.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(schedule); err != nil {
		return nil, err
	}
	return toScheduleResponse(schedule), nil
}

// ListByCompany lista todos los horarios de la empresa, activos o no.
func (uc *ScheduleUseCase) ListByCompany(companyID string) ([]dto.ScheduleResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ScheduleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toScheduleResponse(s))
	}
	return items, nil
}

// Update actualiza nombre, orden y estado del horario. Desactivarlo no toca
// los menús ya generados; solo deja de producir días en menús nuevos.
func (uc *ScheduleUseCase) Update(id string, in dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, nil
	}
	schedule.Name = in.Name
	schedule.Position = in.Position
	schedule.Active = in.Active
	schedule.UpdatedAt = time.Now()
	if err := uc.repo.Update(schedule); err != nil {
		return nil, err
	}
	return toScheduleResponse(schedule), nil
}

// Delete elimina un horario.
func (uc *ScheduleUseCase) Delete(id string) error {
	schedule, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if schedule == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toScheduleResponse(s *entity.Schedule) *dto.ScheduleResponse {
	return &dto.ScheduleResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Name:      s.Name,
		Position:  s.Position,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
