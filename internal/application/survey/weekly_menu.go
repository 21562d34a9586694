package survey

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
	domsurvey "github.com/jhoicas/Comedor-api/internal/domain/survey"
)

// WeeklyMenuUseCase administra el ciclo de vida del menú semanal: obtención
// perezosa (get-or-create), edición administrativa de días, cierre/reapertura
// manual y el conjunto de adicionales fijos.
type WeeklyMenuUseCase struct {
	txRunner     TxRunner
	menuRepo     repository.MenuRepository
	dayRepo      repository.MenuDayRepository
	selRepo      repository.SelectionRepository
	addlRepo     repository.MenuAdditionalRepository
	scheduleRepo repository.ScheduleRepository
	optionRepo   repository.OptionRepository
	cfgRepo      repository.MenuConfigRepository
	clock        domsurvey.Clock
}

// NewWeeklyMenuUseCase construye el caso de uso.
func NewWeeklyMenuUseCase(
	txRunner TxRunner,
	menuRepo repository.MenuRepository,
	dayRepo repository.MenuDayRepository,
	selRepo repository.SelectionRepository,
	addlRepo repository.MenuAdditionalRepository,
	scheduleRepo repository.ScheduleRepository,
	optionRepo repository.OptionRepository,
	cfgRepo repository.MenuConfigRepository,
	clock domsurvey.Clock,
) *WeeklyMenuUseCase {
	return &WeeklyMenuUseCase{
		txRunner:     txRunner,
		menuRepo:     menuRepo,
		dayRepo:      dayRepo,
		selRepo:      selRepo,
		addlRepo:     addlRepo,
		scheduleRepo: scheduleRepo,
		optionRepo:   optionRepo,
		cfgRepo:      cfgRepo,
		clock:        clock,
	}
}

// getOrCreateMenu busca el menú de la semana para el alcance dado y, si no
// existe, lo crea junto con sus MenuDays (lunes a viernes por cada horario
// activo). Los repos pueden venir atados a una tx o al pool.
func getOrCreateMenu(
	menuRepo repository.MenuRepository,
	dayRepo repository.MenuDayRepository,
	companyID string,
	branchID *string,
	weekStart, weekEnd time.Time,
	schedules []*entity.Schedule,
	now time.Time,
) (*entity.Menu, []*entity.MenuDay, error) {
	menu, err := menuRepo.GetByWeek(companyID, branchID, weekStart)
	if err != nil {
		return nil, nil, err
	}
	if menu == nil {
		menu = &entity.Menu{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			BranchID:  branchID,
			WeekStart: weekStart,
			WeekEnd:   weekEnd,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := menuRepo.Create(menu); err != nil {
			return nil, nil, err
		}
		days := make([]*entity.MenuDay, 0, 5*len(schedules))
		for dow := 1; dow <= 5; dow++ {
			for _, sch := range schedules {
				days = append(days, &entity.MenuDay{
					ID:            uuid.New().String(),
					MenuID:        menu.ID,
					DayOfWeek:     dow,
					ScheduleID:    sch.ID,
					MaxSelectable: entity.DefaultMaxSelectable,
					CreatedAt:     now,
					UpdatedAt:     now,
				})
			}
		}
		if len(days) > 0 {
			if err := dayRepo.CreateBatch(days); err != nil {
				return nil, nil, err
			}
		}
		return menu, days, nil
	}
	days, err := dayRepo.ListByMenu(menu.ID)
	if err != nil {
		return nil, nil, err
	}
	return menu, days, nil
}

// GetOrCreateWeekly devuelve el menú de la semana (por defecto la siguiente)
// para la empresa o la sucursal, creándolo si no existe, junto con su ventana
// de edición evaluada contra el reloj y la configuración actuales.
func (uc *WeeklyMenuUseCase) GetOrCreateWeekly(ctx context.Context, companyID string, branchID *string, weekStart *time.Time) (*dto.MenuResponse, error) {
	now := uc.clock.Now()
	var start, end time.Time
	if weekStart == nil {
		start, end = domsurvey.NextWeekRange(now)
	} else {
		start, end = domsurvey.WeekRange(*weekStart)
	}

	schedules, err := uc.scheduleRepo.ListActiveByCompany(companyID)
	if err != nil {
		return nil, err
	}

	var menu *entity.Menu
	var days []*entity.MenuDay
	err = uc.txRunner.Run(ctx, func(
		menuRepo repository.MenuRepository,
		dayRepo repository.MenuDayRepository,
		_ repository.SelectionRepository,
		_ repository.MenuAdditionalRepository,
	) error {
		menu, days, err = getOrCreateMenu(menuRepo, dayRepo, companyID, branchID, start, end, schedules, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	cfg, err := uc.cfgRepo.GetOrCreate()
	if err != nil {
		return nil, err
	}
	cfg.Normalize()

	currentStart, _ := domsurvey.WeekRange(now)
	isCurrentWeek := start.Equal(currentStart)
	window := domsurvey.ComputeWindow(menu, days, *cfg, now, isCurrentWeek)

	links, err := uc.addlRepo.ListByMenu(menu.ID)
	if err != nil {
		return nil, err
	}
	return toMenuResponse(menu, days, links, window), nil
}

// UpdateDay edita las casillas de un día del menú. Solo permitido mientras la
// encuesta del menú no esté cerrada (evaluador grueso de cierre); las opciones
// referenciadas deben existir.
func (uc *WeeklyMenuUseCase) UpdateDay(ctx context.Context, menuDayID string, in dto.UpdateMenuDayRequest) error {
	day, err := uc.dayRepo.GetByID(menuDayID)
	if err != nil {
		return err
	}
	if day == nil {
		return domain.ErrNotFound
	}
	menu, err := uc.menuRepo.GetByID(day.MenuID)
	if err != nil {
		return err
	}
	if menu == nil {
		return domain.ErrNotFound
	}
	if domsurvey.IsClosed(menu, uc.clock.Now()) {
		return domain.ErrInvalidOperation
	}

	ids := collectIDs(in.OptionAID, in.OptionBID, in.OptionCID, in.OptionDID, in.OptionEID)
	if len(ids) > 0 {
		opts, err := uc.optionRepo.ListByIDs(ids)
		if err != nil {
			return err
		}
		if len(opts) != len(ids) {
			return domain.ErrInvalidInput
		}
	}

	day.SetSlots(in.OptionAID, in.OptionBID, in.OptionCID, in.OptionDID, in.OptionEID)
	day.MaxSelectable = in.MaxSelectable
	day.MaxSelectable = day.EffectiveMaxSelectable() // normaliza a [1,5]
	day.ClosedManually = in.ClosedManually
	day.UpdatedAt = uc.clock.Now()

	return uc.txRunner.Run(ctx, func(
		_ repository.MenuRepository,
		dayRepo repository.MenuDayRepository,
		_ repository.SelectionRepository,
		_ repository.MenuAdditionalRepository,
	) error {
		return dayRepo.Update(day)
	})
}

// EnsureDayEditable verifica que la ventana de edición del día esté activa
// para el autoservicio del empleado. Devuelve ErrInvalidOperation si el día ya
// no admite cambios. Las rutas administrativas no pasan por aquí.
func (uc *WeeklyMenuUseCase) EnsureDayEditable(ctx context.Context, menuDayID string) error {
	day, err := uc.dayRepo.GetByID(menuDayID)
	if err != nil {
		return err
	}
	if day == nil {
		return domain.ErrNotFound
	}
	menu, err := uc.menuRepo.GetByID(day.MenuID)
	if err != nil {
		return err
	}
	if menu == nil {
		return domain.ErrNotFound
	}
	days, err := uc.dayRepo.ListByMenu(menu.ID)
	if err != nil {
		return err
	}
	cfg, err := uc.cfgRepo.GetOrCreate()
	if err != nil {
		return err
	}
	cfg.Normalize()
	now := uc.clock.Now()
	currentStart, _ := domsurvey.WeekRange(now)
	window := domsurvey.ComputeWindow(menu, days, *cfg, now, menu.WeekStart.Equal(currentStart))
	if !window.PerSlot[menuDayID] {
		return domain.ErrInvalidOperation
	}
	return nil
}

// Close cierra manualmente la encuesta del menú. No toca ManuallyReopened:
// si ambos flags quedan activos, el cierre gana (precedencia intencional).
func (uc *WeeklyMenuUseCase) Close(ctx context.Context, menuID string) error {
	return uc.setClosure(ctx, menuID, true)
}

// Reopen reabre manualmente la encuesta: limpia el cierre y marca la
// reapertura, que ignora la ventana normal de edición.
func (uc *WeeklyMenuUseCase) Reopen(ctx context.Context, menuID string) error {
	return uc.setClosure(ctx, menuID, false)
}

func (uc *WeeklyMenuUseCase) setClosure(ctx context.Context, menuID string, close bool) error {
	menu, err := uc.menuRepo.GetByID(menuID)
	if err != nil {
		return err
	}
	if menu == nil {
		return domain.ErrNotFound
	}
	now := uc.clock.Now()
	if close {
		menu.ManuallyClosed = true
		menu.ManualCloseAt = &now
	} else {
		menu.ManuallyClosed = false
		menu.ManualCloseAt = nil
		menu.ManuallyReopened = true
	}
	menu.UpdatedAt = now
	return uc.txRunner.Run(ctx, func(
		menuRepo repository.MenuRepository,
		_ repository.MenuDayRepository,
		_ repository.SelectionRepository,
		_ repository.MenuAdditionalRepository,
	) error {
		return menuRepo.Update(menu)
	})
}

// SetAdditionals reemplaza por completo el conjunto de adicionales fijos del
// menú: elimina los enlaces que sobran y crea los que faltan, sin tocar los
// que ya coinciden.
func (uc *WeeklyMenuUseCase) SetAdditionals(ctx context.Context, menuID string, optionIDs []string) error {
	menu, err := uc.menuRepo.GetByID(menuID)
	if err != nil {
		return err
	}
	if menu == nil {
		return domain.ErrNotFound
	}
	if len(optionIDs) > 0 {
		opts, err := uc.optionRepo.ListByIDs(optionIDs)
		if err != nil {
			return err
		}
		if len(opts) != len(optionIDs) {
			return domain.ErrInvalidInput
		}
	}
	wanted := make(map[string]bool, len(optionIDs))
	for _, id := range optionIDs {
		wanted[id] = true
	}
	now := uc.clock.Now()
	return uc.txRunner.Run(ctx, func(
		_ repository.MenuRepository,
		_ repository.MenuDayRepository,
		_ repository.SelectionRepository,
		addlRepo repository.MenuAdditionalRepository,
	) error {
		return reconcileAdditionals(addlRepo, menuID, wanted, now)
	})
}

// Delete elimina un menú administrativamente. Solo permitido cuando no tiene
// ninguna selección registrada.
func (uc *WeeklyMenuUseCase) Delete(ctx context.Context, menuID string) error {
	menu, err := uc.menuRepo.GetByID(menuID)
	if err != nil {
		return err
	}
	if menu == nil {
		return domain.ErrNotFound
	}
	count, err := uc.selRepo.CountByMenu(menuID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.txRunner.Run(ctx, func(
		menuRepo repository.MenuRepository,
		_ repository.MenuDayRepository,
		_ repository.SelectionRepository,
		_ repository.MenuAdditionalRepository,
	) error {
		return menuRepo.Delete(menuID)
	})
}

// reconcileAdditionals deja los enlaces del menú exactamente iguales al
// conjunto deseado: borra los ausentes y agrega los nuevos, sin churn sobre
// los que no cambian.
func reconcileAdditionals(addlRepo repository.MenuAdditionalRepository, menuID string, wanted map[string]bool, now time.Time) error {
	links, err := addlRepo.ListByMenu(menuID)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(links))
	for _, l := range links {
		if !wanted[l.OptionID] {
			if err := addlRepo.Delete(l.ID); err != nil {
				return err
			}
			continue
		}
		present[l.OptionID] = true
	}
	for optID := range wanted {
		if present[optID] {
			continue
		}
		link := &entity.MenuAdditional{
			ID:        uuid.New().String(),
			MenuID:    menuID,
			OptionID:  optID,
			CreatedAt: now,
		}
		if err := addlRepo.Create(link); err != nil {
			return err
		}
	}
	return nil
}

func collectIDs(ids ...*string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != nil && *id != "" {
			out = append(out, *id)
		}
	}
	return out
}

func toMenuResponse(menu *entity.Menu, days []*entity.MenuDay, links []*entity.MenuAdditional, w domsurvey.Window) *dto.MenuResponse {
	resp := &dto.MenuResponse{
		ID:               menu.ID,
		CompanyID:        menu.CompanyID,
		BranchID:         menu.BranchID,
		WeekStart:        menu.WeekStart,
		WeekEnd:          menu.WeekEnd,
		ManuallyClosed:   menu.ManuallyClosed,
		ManuallyReopened: menu.ManuallyReopened,
		Closed:           w.Closed,
		HasActiveWindow:  w.HasActiveWindow,
		BlockReason:      w.BlockReason,
		NextDeadline:     w.NextDeadline,
		Days:             make([]dto.MenuDayResponse, 0, len(days)),
		AdditionalIDs:    make([]string, 0, len(links)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, dto.MenuDayResponse{
			ID:             d.ID,
			DayOfWeek:      d.DayOfWeek,
			ScheduleID:     d.ScheduleID,
			OptionAID:      d.OptionAID,
			OptionBID:      d.OptionBID,
			OptionCID:      d.OptionCID,
			OptionDID:      d.OptionDID,
			OptionEID:      d.OptionEID,
			MaxSelectable:  d.EffectiveMaxSelectable(),
			ClosedManually: d.ClosedManually,
			Editable:       w.PerSlot[d.ID],
		})
	}
	for _, l := range links {
		resp.AdditionalIDs = append(resp.AdditionalIDs, l.OptionID)
	}
	return resp
}
