package pricing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comedor-api/internal/application/pricing"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/subsidy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Valorización: facturación semanal sobre la cadena de subsidio y cierre de
// nómina con snapshots inmutables.
// ──────────────────────────────────────────────────────────────────────────────

type pricingFixture struct {
	uc      *pricing.UseCase
	company *entity.Company
	branch  *entity.Branch
	emp     *entity.Employee
	carne   *entity.Option
	jugo    *entity.Option
	sel     *entity.Selection
	selRepo *fakeSelectionRepo
	optRepo *fakeOptionRepo
	now     time.Time
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newPricingFixture: empresa con subsidio fijo de 5000, sucursal sin override,
// empleado subvencionado; plato principal de 15000 y jugo adicional de 3000.
func newPricingFixture(t *testing.T) *pricingFixture {
	t.Helper()
	f := &pricingFixture{now: time.Date(2026, 3, 6, 18, 0, 0, 0, time.UTC)}

	f.company = &entity.Company{
		ID: "co-1", Name: "Acme", SubsidizesEmployees: true,
		SubsidyType: subsidy.TypeFixedAmount, SubsidyValue: dec("5000"),
	}
	f.branch = &entity.Branch{ID: "br-1", CompanyID: "co-1", Name: "Norte"}
	f.emp = &entity.Employee{
		ID: "emp-1", CompanyID: "co-1", BranchID: "br-1",
		Name: "Ana Díaz", IsSubsidized: true,
	}
	carnePrice := dec("15000")
	jugoPrice := dec("3000")
	f.carne = &entity.Option{ID: "opt-carne", CompanyID: "co-1", Code: "CARNE", Price: &carnePrice, IsSubsidized: true}
	f.jugo = &entity.Option{ID: "opt-jugo", CompanyID: "co-1", Code: "JUGO", Price: &jugoPrice, IsSubsidized: false}

	menu := &entity.Menu{
		ID: "menu-1", CompanyID: "co-1",
		WeekStart: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		WeekEnd:   time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
	}
	carneID := "opt-carne"
	day := &entity.MenuDay{
		ID: "day-1", MenuID: "menu-1", DayOfWeek: 1, ScheduleID: "almuerzo",
		OptionAID: &carneID, MaxSelectable: 3,
	}
	jugoID := "opt-jugo"
	f.sel = &entity.Selection{
		ID: "sel-1", EmployeeID: "emp-1", MenuDayID: "day-1",
		Slot: entity.SlotA, DeliveryBranchID: "br-1", AdditionalOptionID: &jugoID,
	}

	menuRepo := &fakeMenuRepo{menus: map[string]*entity.Menu{menu.ID: menu}}
	dayRepo := &fakeMenuDayRepo{days: map[string]*entity.MenuDay{day.ID: day}}
	f.selRepo = &fakeSelectionRepo{sels: map[string]*entity.Selection{f.sel.ID: f.sel}}
	f.optRepo = &fakeOptionRepo{opts: map[string]*entity.Option{f.carne.ID: f.carne, f.jugo.ID: f.jugo}}

	f.uc = pricing.NewUseCase(
		&fakeTxRunner{menuRepo: menuRepo, dayRepo: dayRepo, selRepo: f.selRepo},
		menuRepo, dayRepo, f.selRepo,
		&fakeCompanyRepo{companies: map[string]*entity.Company{f.company.ID: f.company}},
		&fakeBranchRepo{branches: map[string]*entity.Branch{f.branch.ID: f.branch}},
		&fakeEmployeeRepo{emps: map[string]*entity.Employee{f.emp.ID: f.emp}},
		f.optRepo,
		fixedClock{t: f.now},
	)
	return f
}

func TestWeeklyBilling_AplicaSubsidioYAdicionalPleno(t *testing.T) {
	f := newPricingFixture(t)

	resp, err := f.uc.WeeklyBilling(context.Background(), "menu-1")
	require.NoError(t, err)
	require.Len(t, resp.Employees, 1)

	bill := resp.Employees[0]
	assert.Equal(t, "emp-1", bill.EmployeeID)
	assert.Equal(t, "Ana Díaz", bill.EmployeeName)
	require.Len(t, bill.Lines, 1)

	line := bill.Lines[0]
	assert.True(t, line.BasePrice.Equal(dec("15000")))
	assert.True(t, line.Subsidy.Equal(dec("5000")))
	assert.True(t, line.EmployeePrice.Equal(dec("10000")))
	assert.True(t, line.AdditionalPrice.Equal(dec("3000")), "el adicional se cobra a precio pleno")
	assert.True(t, line.Total.Equal(dec("13000")))
	assert.False(t, line.FromSnapshot)
	assert.True(t, bill.Total.Equal(dec("13000")))
	assert.True(t, bill.TotalSubsidy.Equal(dec("5000")))
}

// El adicional nunca se subsidia, ni siquiera cuando el plato adicional está
// marcado como subvencionable en el catálogo.
func TestWeeklyBilling_AdicionalNuncaSubsidiado(t *testing.T) {
	f := newPricingFixture(t)
	f.jugo.IsSubsidized = true

	resp, err := f.uc.WeeklyBilling(context.Background(), "menu-1")
	require.NoError(t, err)
	line := resp.Employees[0].Lines[0]
	assert.True(t, line.AdditionalPrice.Equal(dec("3000")))
	assert.True(t, line.Total.Equal(dec("13000")))
}

// El override porcentual de la sucursal de entrega prevalece sobre el fijo de
// la empresa: 50% de 15000 = 7500.
func TestWeeklyBilling_OverridePorcentualDeSucursal(t *testing.T) {
	f := newPricingFixture(t)
	yes := true
	pct := subsidy.TypePercent
	half := dec("50")
	f.branch.SubsidizesEmployees = &yes
	f.branch.SubsidyType = &pct
	f.branch.SubsidyValue = &half

	resp, err := f.uc.WeeklyBilling(context.Background(), "menu-1")
	require.NoError(t, err)
	line := resp.Employees[0].Lines[0]
	assert.True(t, line.Subsidy.Equal(dec("7500")))
	assert.True(t, line.EmployeePrice.Equal(dec("7500")))
}

func TestWeeklyBilling_MenuInexistente(t *testing.T) {
	f := newPricingFixture(t)
	_, err := f.uc.WeeklyBilling(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClosePayroll_EstampaYEsIdempotente(t *testing.T) {
	f := newPricingFixture(t)

	first, err := f.uc.ClosePayroll(context.Background(), "menu-1")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Stamped)
	assert.Equal(t, 0, first.AlreadyStamped)

	sel := f.selRepo.sels["sel-1"]
	require.NotNil(t, sel.SnapshotAt)
	assert.Equal(t, f.now, *sel.SnapshotAt)
	assert.True(t, sel.SnapshotPrice.Equal(dec("13000")), "el snapshot pliega el adicional")
	assert.True(t, sel.SnapshotSubsidy.Equal(dec("5000")))

	second, err := f.uc.ClosePayroll(context.Background(), "menu-1")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Stamped)
	assert.Equal(t, 1, second.AlreadyStamped)
	assert.True(t, sel.SnapshotPrice.Equal(dec("13000")), "repetir el cierre no recalcula")
}

// Tras el cierre, cambiar el catálogo o el subsidio no altera lo facturado:
// la fila estampada se lee del snapshot.
func TestWeeklyBilling_SnapshotInmutableAnteCambios(t *testing.T) {
	f := newPricingFixture(t)
	_, err := f.uc.ClosePayroll(context.Background(), "menu-1")
	require.NoError(t, err)

	caro := dec("99000")
	f.carne.Price = &caro
	f.company.SubsidizesEmployees = false

	resp, err := f.uc.WeeklyBilling(context.Background(), "menu-1")
	require.NoError(t, err)
	line := resp.Employees[0].Lines[0]
	assert.True(t, line.FromSnapshot)
	assert.True(t, line.Total.Equal(dec("13000")))
	assert.True(t, line.Subsidy.Equal(dec("5000")))
}
