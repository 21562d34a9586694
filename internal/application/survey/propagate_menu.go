package survey

import (
	"context"
	"time"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
	domsurvey "github.com/jhoicas/Comedor-api/internal/domain/survey"
)

// PropagateMenuUseCase clona el menú semanal de la empresa hacia sus
// sucursales: sobreescribe casillas, máximo seleccionable y cierre por día, y
// reconcilia los adicionales fijos. Una sucursal donde algún empleado ya
// completó la encuesta entera queda bloqueada y se salta sin modificarla: sus
// selecciones ya valorizadas no pueden quedar inconsistentes con un menú
// cambiado. Toda la corrida se aplica en un solo commit.
type PropagateMenuUseCase struct {
	txRunner     TxRunner
	scheduleRepo repository.ScheduleRepository
	clock        domsurvey.Clock
}

// NewPropagateMenuUseCase construye el caso de uso.
func NewPropagateMenuUseCase(txRunner TxRunner, scheduleRepo repository.ScheduleRepository, clock domsurvey.Clock) *PropagateMenuUseCase {
	return &PropagateMenuUseCase{txRunner: txRunner, scheduleRepo: scheduleRepo, clock: clock}
}

type dayKey struct {
	dayOfWeek  int
	scheduleID string
}

// CloneToBranches propaga el menú de empresa de la semana dada a las
// sucursales indicadas. Devuelve cuántas sucursales se actualizaron y cuántas
// se saltaron por estar bloqueadas (lo segundo es resultado normal, no error).
func (uc *PropagateMenuUseCase) CloneToBranches(ctx context.Context, companyID string, weekStart, weekEnd time.Time, branchIDs []string) (updated, skipped int, err error) {
	schedules, err := uc.scheduleRepo.ListActiveByCompany(companyID)
	if err != nil {
		return 0, 0, err
	}
	now := uc.clock.Now()

	err = uc.txRunner.Run(ctx, func(
		menuRepo repository.MenuRepository,
		dayRepo repository.MenuDayRepository,
		selRepo repository.SelectionRepository,
		addlRepo repository.MenuAdditionalRepository,
	) error {
		companyMenu, companyDays, err := getOrCreateMenu(menuRepo, dayRepo, companyID, nil, weekStart, weekEnd, schedules, now)
		if err != nil {
			return err
		}
		companyByKey := make(map[dayKey]*entity.MenuDay, len(companyDays))
		for _, d := range companyDays {
			companyByKey[dayKey{d.DayOfWeek, d.ScheduleID}] = d
		}
		companyLinks, err := addlRepo.ListByMenu(companyMenu.ID)
		if err != nil {
			return err
		}
		companyAdditionals := make(map[string]bool, len(companyLinks))
		for _, l := range companyLinks {
			companyAdditionals[l.OptionID] = true
		}

		for _, branchID := range branchIDs {
			bID := branchID
			branchMenu, branchDays, err := getOrCreateMenu(menuRepo, dayRepo, companyID, &bID, weekStart, weekEnd, schedules, now)
			if err != nil {
				return err
			}
			locked, err := branchLocked(selRepo, branchDays)
			if err != nil {
				return err
			}
			if locked {
				skipped++
				continue
			}

			for _, bDay := range branchDays {
				cDay, ok := companyByKey[dayKey{bDay.DayOfWeek, bDay.ScheduleID}]
				if !ok {
					continue
				}
				bDay.SetSlots(cDay.OptionAID, cDay.OptionBID, cDay.OptionCID, cDay.OptionDID, cDay.OptionEID)
				bDay.MaxSelectable = cDay.MaxSelectable
				bDay.ClosedManually = cDay.ClosedManually
				bDay.UpdatedAt = now
				if err := dayRepo.Update(bDay); err != nil {
					return err
				}
				if cDay.ClosedManually {
					// Un día cerrado no puede conservar selecciones.
					if err := selRepo.DeleteByMenuDay(bDay.ID); err != nil {
						return err
					}
				}
			}

			if err := reconcileAdditionals(addlRepo, branchMenu.ID, companyAdditionals, now); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return updated, skipped, nil
}

/// branchLocked determina si la sucursal está bloqueada para propagación: lo
// está cuando algún empleado tiene una selección para cada día/horario del
// menú de la sucursal (encuesta completa).
func branchLocked(selRepo repository.SelectionRepository, branchDays []*entity.MenuDay) (bool, error) {
	if len(branchDays) == 0 {
		return false, nil
	}
	ids := make([]string, 0, len(branchDays))
	for _, d := range branchDays {
		ids = append(ids, d.ID)
	}
	selections, err := selRepo.ListByMenuDayIDs(ids)
	if err != nil {
		return false, err
	}
	perEmployee := make(map[string]int)
	for _, s := range selections {
		perEmployee[s.EmployeeID]++
		if perEmployee[s.EmployeeID] == len(branchDays) {
			return true, nil
		}
	}
	return false, nil
}
