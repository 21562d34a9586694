package survey

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// RegisterSelectionUseCase valida y registra (upsert) la elección de un
// empleado para un día del menú. Es el único punto de mutación del autoservicio
// y deliberadamente NO evalúa la ventana de edición: eso lo hacen los callers
// con domain/survey antes de invocarlo, de modo que una acción administrativa
// pueda saltarse la ventana sin duplicar la validación de datos.
type RegisterSelectionUseCase struct {
	txRunner     TxRunner
	dayRepo      repository.MenuDayRepository
	employeeRepo repository.EmployeeRepository
	locationRepo repository.LocationRepository
	addlRepo     repository.MenuAdditionalRepository
}

// NewRegisterSelectionUseCase construye el caso de uso.
func NewRegisterSelectionUseCase(
	txRunner TxRunner,
	dayRepo repository.MenuDayRepository,
	employeeRepo repository.EmployeeRepository,
	locationRepo repository.LocationRepository,
	addlRepo repository.MenuAdditionalRepository,
) *RegisterSelectionUseCase {
	return &RegisterSelectionUseCase{
		txRunner:     txRunner,
		dayRepo:      dayRepo,
		employeeRepo: employeeRepo,
		locationRepo: locationRepo,
		addlRepo:     addlRepo,
	}
}

// RegisterSelectionInput entrada para registrar una elección. Los campos
// DeliveryLocationID y AdditionalOptionID vacíos significan "sin valor".
type RegisterSelectionInput struct {
	EmployeeID         string
	MenuDayID          string
	Slot               string // A..E
	DeliveryBranchID   string
	DeliveryLocationID string
	AdditionalOptionID string
}

// Register valida la elección y la persiste de forma atómica. A lo sumo una
// Selection viva por (empleado, día): si ya existe se actualizan en sitio solo
// slot, sucursal, punto de entrega y adicional.
func (uc *RegisterSelectionUseCase) Register(ctx context.Context, in RegisterSelectionInput) (*entity.Selection, error) {
	day, err := uc.dayRepo.GetByID(in.MenuDayID)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, domain.ErrNotFound
	}

	if in.DeliveryLocationID != "" {
		loc, err := uc.locationRepo.GetByID(in.DeliveryLocationID)
		if err != nil {
			return nil, err
		}
		if loc == nil {
			return nil, domain.ErrInvalidInput
		}
		// La pertenencia del punto de entrega a la empresa del empleado se
		// verifica en la capa llamadora, no aquí.
	}

	if in.DeliveryBranchID == "" {
		return nil, domain.ErrInvalidInput
	}

	emp, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	// Si la sucursal pedida no está entre las permitidas (base + asignadas),
	// se sustituye en silencio por la sucursal base del empleado.
	deliveryBranchID := in.DeliveryBranchID
	if !emp.CanDeliverTo(deliveryBranchID) {
		deliveryBranchID = emp.BranchID
	}

	if in.AdditionalOptionID != "" {
		links, err := uc.addlRepo.ListByMenu(day.MenuID)
		if err != nil {
			return nil, err
		}
		found := false
		for _, l := range links {
			if l.OptionID == in.AdditionalOptionID {
				found = true
				break
			}
		}
		if !found {
			return nil, domain.ErrInvalidOperation // adicional no disponible para este menú
		}
	}

	idx := entity.SlotIndex(in.Slot)
	if idx == 0 || idx > day.EffectiveMaxSelectable() {
		return nil, domain.ErrInvalidInput
	}
	if day.SlotOption(in.Slot) == nil {
		return nil, domain.ErrInvalidInput // casilla sin opción asignada
	}

	var result *entity.Selection
	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		_ repository.MenuRepository,
		_ repository.MenuDayRepository,
		selRepo repository.SelectionRepository,
		_ repository.MenuAdditionalRepository,
	) error {
		existing, err := selRepo.GetByEmployeeAndDay(in.EmployeeID, in.MenuDayID)
		if err != nil {
			return err
		}
		var locID, addlID *string
		if in.DeliveryLocationID != "" {
			locID = &in.DeliveryLocationID
		}
		if in.AdditionalOptionID != "" {
			addlID = &in.AdditionalOptionID
		}
		if existing == nil {
			result = &entity.Selection{
				ID:                 uuid.New().String(),
				EmployeeID:         in.EmployeeID,
				MenuDayID:          in.MenuDayID,
				Slot:               in.Slot,
				DeliveryBranchID:   deliveryBranchID,
				DeliveryLocationID: locID,
				AdditionalOptionID: addlID,
				CreatedAt:          now,
				UpdatedAt:          now,
			}
			return selRepo.Create(result)
		}
		existing.Slot = in.Slot
		existing.DeliveryBranchID = deliveryBranchID
		existing.DeliveryLocationID = locID
		existing.AdditionalOptionID = addlID
		existing.UpdatedAt = now
		result = existing
		return selRepo.Update(existing)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
