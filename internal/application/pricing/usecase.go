package pricing

import (
	"context"
	"sort"

	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
	"github.com/jhoicas/Comedor-api/internal/domain/subsidy"
	domsurvey "github.com/jhoicas/Comedor-api/internal/domain/survey"
)

// TxRunner abre una transacción y entrega los repositorios atados a ella.
// Interfaz propia del consumidor; el adaptador de postgres la satisface.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		menuRepo repository.MenuRepository,
		dayRepo repository.MenuDayRepository,
		selRepo repository.SelectionRepository,
		addlRepo repository.MenuAdditionalRepository,
	) error) error
}

// UseCase valoriza las selecciones de un menú: facturación semanal en vivo y
// cierre de nómina que estampa los precios de forma inmutable.
type UseCase struct {
	txRunner     TxRunner
	menuRepo     repository.MenuRepository
	dayRepo      repository.MenuDayRepository
	selRepo      repository.SelectionRepository
	companyRepo  repository.CompanyRepository
	branchRepo   repository.BranchRepository
	employeeRepo repository.EmployeeRepository
	optionRepo   repository.OptionRepository
	clock        domsurvey.Clock
}

// NewUseCase construye el caso de uso de valorización.
func NewUseCase(
	txRunner TxRunner,
	menuRepo repository.MenuRepository,
	dayRepo repository.MenuDayRepository,
	selRepo repository.SelectionRepository,
	companyRepo repository.CompanyRepository,
	branchRepo repository.BranchRepository,
	employeeRepo repository.EmployeeRepository,
	optionRepo repository.OptionRepository,
	clock domsurvey.Clock,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		menuRepo:     menuRepo,
		dayRepo:      dayRepo,
		selRepo:      selRepo,
		companyRepo:  companyRepo,
		branchRepo:   branchRepo,
		employeeRepo: employeeRepo,
		optionRepo:   optionRepo,
		clock:        clock,
	}
}

// pricingScope junta todo lo necesario para valorizar las selecciones de un
// menú sin volver a la base por cada renglón.
type pricingScope struct {
	menu      *entity.Menu
	days      map[string]*entity.MenuDay
	options   map[string]*entity.Option
	company   *entity.Company
	branches  map[string]*entity.Branch
	employees map[string]*entity.Employee
}

func (uc *UseCase) loadScope(menuID string) (*pricingScope, []*entity.Selection, error) {
	menu, err := uc.menuRepo.GetByID(menuID)
	if err != nil {
		return nil, nil, err
	}
	if menu == nil {
		return nil, nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(menu.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, domain.ErrNotFound
	}
	days, err := uc.dayRepo.ListByMenu(menu.ID)
	if err != nil {
		return nil, nil, err
	}
	scope := &pricingScope{
		menu:      menu,
		days:      make(map[string]*entity.MenuDay, len(days)),
		company:   company,
		branches:  map[string]*entity.Branch{},
		employees: map[string]*entity.Employee{},
	}
	dayIDs := make([]string, 0, len(days))
	optionIDs := map[string]bool{}
	for _, d := range days {
		scope.days[d.ID] = d
		dayIDs = append(dayIDs, d.ID)
		for _, slot := range []string{entity.SlotA, entity.SlotB, entity.SlotC, entity.SlotD, entity.SlotE} {
			if id := d.SlotOption(slot); id != nil {
				optionIDs[*id] = true
			}
		}
	}

	sels, err := uc.selRepo.ListByMenuDayIDs(dayIDs)
	if err != nil {
		return nil, nil, err
	}
	for _, s := range sels {
		if s.AdditionalOptionID != nil {
			optionIDs[*s.AdditionalOptionID] = true
		}
		if _, ok := scope.employees[s.EmployeeID]; !ok {
			emp, err := uc.employeeRepo.GetByID(s.EmployeeID)
			if err != nil {
				return nil, nil, err
			}
			if emp == nil {
				return nil, nil, domain.ErrNotFound
			}
			scope.employees[s.EmployeeID] = emp
		}
		if _, ok := scope.branches[s.DeliveryBranchID]; !ok {
			br, err := uc.branchRepo.GetByID(s.DeliveryBranchID)
			if err != nil {
				return nil, nil, err
			}
			// Un menú de empresa (sin sucursal) puede tener entregas sin
			// sucursal persistida; se hereda directo de la empresa.
			scope.branches[s.DeliveryBranchID] = br
		}
	}

	ids := make([]string, 0, len(optionIDs))
	for id := range optionIDs {
		ids = append(ids, id)
	}
	opts, err := uc.optionRepo.ListByIDs(ids)
	if err != nil {
		return nil, nil, err
	}
	scope.options = make(map[string]*entity.Option, len(opts))
	for _, o := range opts {
		scope.options[o.ID] = o
	}
	return scope, sels, nil
}

// priceLine valoriza una selección. Si ya tiene snapshot, los valores
// estampados mandan (el adicional quedó plegado dentro del precio estampado).
func (scope *pricingScope) priceLine(sel *entity.Selection) dto.PricedSelectionDTO {
	day := scope.days[sel.MenuDayID]
	line := dto.PricedSelectionDTO{
		SelectionID:  sel.ID,
		MenuDayID:    sel.MenuDayID,
		Slot:         sel.Slot,
		FromSnapshot: sel.Snapshotted(),
	}
	if day != nil {
		line.DayOfWeek = day.DayOfWeek
	}
	if sel.Snapshotted() {
		line.EmployeePrice = *sel.SnapshotPrice
		line.Subsidy = *sel.SnapshotSubsidy
		line.Total = *sel.SnapshotPrice
		line.BasePrice = sel.SnapshotPrice.Add(*sel.SnapshotSubsidy)
		return line
	}

	var opt *entity.Option
	if day != nil {
		if optID := day.SlotOption(sel.Slot); optID != nil {
			opt = scope.options[*optID]
		}
	}
	emp := scope.employees[sel.EmployeeID]
	if opt != nil && emp != nil {
		base := opt.BasePrice()
		price, applied := subsidy.EmployeePrice(base, scope.subsidyContext(emp, scope.branches[sel.DeliveryBranchID], opt))
		line.BasePrice = base
		line.Subsidy = applied
		line.EmployeePrice = price
	}
	if sel.AdditionalOptionID != nil {
		if addl := scope.options[*sel.AdditionalOptionID]; addl != nil {
			// Los adicionales se cobran siempre a precio pleno.
			line.AdditionalPrice = addl.BasePrice()
		}
	}
	line.Total = line.EmployeePrice.Add(line.AdditionalPrice)
	return line
}

// subsidyContext arma la cadena empleado > sucursal > empresa para el plato.
// La sucursal considerada es la de entrega de la selección.
func (scope *pricingScope) subsidyContext(emp *entity.Employee, br *entity.Branch, opt *entity.Option) subsidy.Context {
	ctx := subsidy.Context{
		OptionSubsidized:   opt.IsSubsidized,
		EmployeeSubsidized: emp.IsSubsidized,
		CompanySubsidizes:  scope.company.SubsidizesEmployees,
		CompanyType:        scope.company.SubsidyType,
		CompanyValue:       scope.company.SubsidyValue,
		EmployeeType:       emp.SubsidyType,
		EmployeeValue:      emp.SubsidyValue,
	}
	if br != nil {
		ctx.BranchSubsidizes = br.SubsidizesEmployees
		ctx.BranchType = br.SubsidyType
		ctx.BranchValue = br.SubsidyValue
	}
	return ctx
}

// WeeklyBilling arma la facturación semanal del menú: un resumen por empleado
// con sus renglones valorizados y totales. Las filas con snapshot conservan el
// precio estampado aunque el catálogo o el subsidio hayan cambiado después.
func (uc *UseCase) WeeklyBilling(ctx context.Context, menuID string) (*dto.WeeklyBillingResponse, error) {
	scope, sels, err := uc.loadScope(menuID)
	if err != nil {
		return nil, err
	}

	byEmployee := map[string][]dto.PricedSelectionDTO{}
	for _, sel := range sels {
		byEmployee[sel.EmployeeID] = append(byEmployee[sel.EmployeeID], scope.priceLine(sel))
	}

	resp := &dto.WeeklyBillingResponse{
		MenuID:    scope.menu.ID,
		WeekStart: scope.menu.WeekStart,
		Employees: make([]dto.EmployeeWeeklyBillDTO, 0, len(byEmployee)),
	}
	for empID, lines := range byEmployee {
		sort.Slice(lines, func(i, j int) bool { return lines[i].DayOfWeek < lines[j].DayOfWeek })
		bill := dto.EmployeeWeeklyBillDTO{
			EmployeeID: empID,
			Lines:      lines,
		}
		if emp := scope.employees[empID]; emp != nil {
			bill.EmployeeName = emp.Name
		}
		for _, l := range lines {
			bill.Total = bill.Total.Add(l.Total)
			bill.TotalSubsidy = bill.TotalSubsidy.Add(l.Subsidy)
		}
		resp.Employees = append(resp.Employees, bill)
	}
	sort.Slice(resp.Employees, func(i, j int) bool { return resp.Employees[i].EmployeeID < resp.Employees[j].EmployeeID })
	return resp, nil
}

// ClosePayroll estampa los precios de todas las selecciones del menú que aún
// no tienen snapshot. Idempotente: repetir el cierre no toca las filas ya
// estampadas ni cambia sus valores. Un solo commit para todo el menú.
func (uc *UseCase) ClosePayroll(ctx context.Context, menuID string) (*dto.ClosePayrollResponse, error) {
	scope, sels, err := uc.loadScope(menuID)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()

	resp := &dto.ClosePayrollResponse{}
	err = uc.txRunner.Run(ctx, func(
		_ repository.MenuRepository,
		_ repository.MenuDayRepository,
		selRepo repository.SelectionRepository,
		_ repository.MenuAdditionalRepository,
	) error {
		for _, sel := range sels {
			if sel.Snapshotted() {
				resp.AlreadyStamped++
				continue
			}
			line := scope.priceLine(sel)
			price := line.Total
			applied := line.Subsidy
			sel.SnapshotPrice = &price
			sel.SnapshotSubsidy = &applied
			sel.SnapshotAt = &now
			sel.UpdatedAt = now
			if err := selRepo.Update(sel); err != nil {
				return err
			}
			resp.Stamped++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
