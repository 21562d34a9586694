package usecase

import (
	"time"

	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// MenuConfigUseCase lee y actualiza la configuración global de la encuesta
// (fila única). Los valores fuera de rango se normalizan en lugar de fallar.
type MenuConfigUseCase struct {
	repo repository.MenuConfigRepository
}

// NewMenuConfigUseCase construye el caso de uso.
func NewMenuConfigUseCase(repo repository.MenuConfigRepository) *MenuConfigUseCase {
	return &MenuConfigUseCase{repo: repo}
}

// Get devuelve la configuración vigente, creándola con los valores por defecto
// si aún no existe.
func (uc *MenuConfigUseCase) Get() (*dto.MenuConfigResponse, error) {
	cfg, err := uc.repo.GetOrCreate()
	if err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &dto.MenuConfigResponse{
		AllowCurrentWeekEdits: cfg.AllowCurrentWeekEdits,
		AdvanceDays:           cfg.AdvanceDays,
		EditCutoff:            cfg.EditCutoff,
	}, nil
}

// Update guarda la configuración ya normalizada.
func (uc *MenuConfigUseCase) Update(in dto.UpdateMenuConfigRequest) (*dto.MenuConfigResponse, error) {
	cfg, err := uc.repo.GetOrCreate()
	if err != nil {
		return nil, err
	}
	cfg.AllowCurrentWeekEdits = in.AllowCurrentWeekEdits
	cfg.AdvanceDays = in.AdvanceDays
	cfg.EditCutoff = in.EditCutoff
	cfg.Normalize()
	cfg.UpdatedAt = time.Now()
	if err := uc.repo.Update(cfg); err != nil {
		return nil, err
	}
	return &dto.MenuConfigResponse{
		AllowCurrentWeekEdits: cfg.AllowCurrentWeekEdits,
		AdvanceDays:           cfg.AdvanceDays,
		EditCutoff:            cfg.EditCutoff,
	}, nil
}
