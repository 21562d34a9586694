package survey_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsurvey "github.com/jhoicas/Comedor-api/internal/application/survey"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Propagación (clonado) del menú de empresa a sucursales. La propiedad central:
// una sucursal donde algún empleado completó la encuesta entera queda bloqueada
// y se salta sin modificarla.
// ──────────────────────────────────────────────────────────────────────────────

var (
	cloneWeekStart = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	cloneWeekEnd   = time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
)

type cloneFixture struct {
	uc       *appsurvey.PropagateMenuUseCase
	menuRepo *fakeMenuRepo
	dayRepo  *fakeMenuDayRepo
	selRepo  *fakeSelectionRepo
	addlRepo *fakeAdditionalRepo
}

// newCloneFixture arma el menú de empresa (cmenu, 5 días de almuerzo con
// A=sopa, B=carne, max 2) y el menú de la sucursal br-1 (bdia-1..bdia-5, vacío).
func newCloneFixture(t *testing.T) *cloneFixture {
	t.Helper()
	menuRepo := newFakeMenuRepo()
	dayRepo := newFakeMenuDayRepo()
	selRepo := newFakeSelectionRepo()
	addlRepo := newFakeAdditionalRepo()
	schedRepo := &fakeScheduleRepo{schedules: []*entity.Schedule{
		{ID: "almuerzo", CompanyID: "co-1", Name: "Almuerzo", Active: true},
	}}

	require.NoError(t, menuRepo.Create(&entity.Menu{
		ID: "cmenu", CompanyID: "co-1", WeekStart: cloneWeekStart, WeekEnd: cloneWeekEnd,
	}))
	br1 := "br-1"
	require.NoError(t, menuRepo.Create(&entity.Menu{
		ID: "bmenu-1", CompanyID: "co-1", BranchID: &br1, WeekStart: cloneWeekStart, WeekEnd: cloneWeekEnd,
	}))
	for dow := 1; dow <= 5; dow++ {
		require.NoError(t, dayRepo.CreateBatch([]*entity.MenuDay{
			{
				ID: "cdia-" + string(rune('0'+dow)), MenuID: "cmenu", DayOfWeek: dow, ScheduleID: "almuerzo",
				OptionAID: strptr("opt-sopa"), OptionBID: strptr("opt-carne"), MaxSelectable: 2,
			},
			{
				ID: "bdia-" + string(rune('0'+dow)), MenuID: "bmenu-1", DayOfWeek: dow, ScheduleID: "almuerzo",
				MaxSelectable: 3,
			},
		}))
	}

	tx := &fakeTxRunner{menuRepo: menuRepo, dayRepo: dayRepo, selRepo: selRepo, addlRepo: addlRepo}
	clock := fixedClock{t: time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)}
	uc := appsurvey.NewPropagateMenuUseCase(tx, schedRepo, clock)
	return &cloneFixture{uc: uc, menuRepo: menuRepo, dayRepo: dayRepo, selRepo: selRepo, addlRepo: addlRepo}
}

func (f *cloneFixture) clone(t *testing.T, branchIDs ...string) (int, int) {
	t.Helper()
	updated, skipped, err := f.uc.CloneToBranches(context.Background(), "co-1", cloneWeekStart, cloneWeekEnd, branchIDs)
	require.NoError(t, err)
	return updated, skipped
}

func TestClone_CopiaCasillasYFlags(t *testing.T) {
	f := newCloneFixture(t)
	updated, skipped := f.clone(t, "br-1")
	assert.Equal(t, 1, updated)
	assert.Equal(t, 0, skipped)

	day, err := f.dayRepo.GetByID("bdia-3")
	require.NoError(t, err)
	require.NotNil(t, day.OptionAID)
	assert.Equal(t, "opt-sopa", *day.OptionAID)
	require.NotNil(t, day.OptionBID)
	assert.Equal(t, "opt-carne", *day.OptionBID)
	assert.Nil(t, day.OptionCID)
	assert.Equal(t, 2, day.MaxSelectable, "el máximo seleccionable se copia tal cual")
}

// TestClone_SucursalCompletaSeSalta: con 5 días y un empleado con 5
// selecciones, la sucursal está bloqueada: skipped y sin cambios.
func TestClone_SucursalCompletaSeSalta(t *testing.T) {
	f := newCloneFixture(t)
	for dow := 1; dow <= 5; dow++ {
		require.NoError(t, f.selRepo.Create(&entity.Selection{
			ID: "sel-" + string(rune('0'+dow)), EmployeeID: "emp-1",
			MenuDayID: "bdia-" + string(rune('0'+dow)), Slot: entity.SlotA, DeliveryBranchID: "br-1",
		}))
	}

	updated, skipped := f.clone(t, "br-1")
	assert.Equal(t, 0, updated)
	assert.Equal(t, 1, skipped)

	day, _ := f.dayRepo.GetByID("bdia-1")
	assert.Nil(t, day.OptionAID, "una sucursal bloqueada no debe modificarse")
	assert.Equal(t, 3, day.MaxSelectable)
}

// TestClone_RespuestasParcialesNoBloquean: varios empleados con respuestas
// parciales (ninguno completo) no bloquean la propagación.
func TestClone_RespuestasParcialesNoBloquean(t *testing.T) {
	f := newCloneFixture(t)
	for dow := 1; dow <= 4; dow++ {
		require.NoError(t, f.selRepo.Create(&entity.Selection{
			ID: "sel-a" + string(rune('0'+dow)), EmployeeID: "emp-1",
			MenuDayID: "bdia-" + string(rune('0'+dow)), Slot: entity.SlotA, DeliveryBranchID: "br-1",
		}))
	}
	require.NoError(t, f.selRepo.Create(&entity.Selection{
		ID: "sel-b5", EmployeeID: "emp-2", MenuDayID: "bdia-5", Slot: entity.SlotA, DeliveryBranchID: "br-1",
	}))

	updated, skipped := f.clone(t, "br-1")
	assert.Equal(t, 1, updated)
	assert.Equal(t, 0, skipped)
}

// TestClone_ReconciliaAdicionales: empresa {X, Y} sobre sucursal {Y, Z} debe
// dejar exactamente {X, Y}, sin borrar y recrear Y.
func TestClone_ReconciliaAdicionales(t *testing.T) {
	f := newCloneFixture(t)
	require.NoError(t, f.addlRepo.Create(&entity.MenuAdditional{ID: "ca-x", MenuID: "cmenu", OptionID: "opt-x"}))
	require.NoError(t, f.addlRepo.Create(&entity.MenuAdditional{ID: "ca-y", MenuID: "cmenu", OptionID: "opt-y"}))
	require.NoError(t, f.addlRepo.Create(&entity.MenuAdditional{ID: "ba-y", MenuID: "bmenu-1", OptionID: "opt-y"}))
	require.NoError(t, f.addlRepo.Create(&entity.MenuAdditional{ID: "ba-z", MenuID: "bmenu-1", OptionID: "opt-z"}))

	f.clone(t, "br-1")

	links, err := f.addlRepo.ListByMenu("bmenu-1")
	require.NoError(t, err)
	got := map[string]string{} // optionID -> linkID
	for _, l := range links {
		got[l.OptionID] = l.ID
	}
	assert.Len(t, got, 2)
	assert.Contains(t, got, "opt-x")
	assert.Equal(t, "ba-y", got["opt-y"], "el enlace existente de Y no debe recrearse")
	assert.NotContains(t, got, "opt-z")
}

// TestClone_DiaCerradoLimpiaSelecciones: si el día de empresa viene cerrado,
// las selecciones existentes de ese día en la sucursal se eliminan.
func TestClone_DiaCerradoLimpiaSelecciones(t *testing.T) {
	f := newCloneFixture(t)
	cday, _ := f.dayRepo.GetByID("cdia-2")
	cday.ClosedManually = true
	require.NoError(t, f.dayRepo.Update(cday))

	require.NoError(t, f.selRepo.Create(&entity.Selection{
		ID: "sel-x", EmployeeID: "emp-1", MenuDayID: "bdia-2", Slot: entity.SlotA, DeliveryBranchID: "br-1",
	}))
	require.NoError(t, f.selRepo.Create(&entity.Selection{
		ID: "sel-y", EmployeeID: "emp-1", MenuDayID: "bdia-3", Slot: entity.SlotA, DeliveryBranchID: "br-1",
	}))

	f.clone(t, "br-1")

	gone, _ := f.selRepo.GetByEmployeeAndDay("emp-1", "bdia-2")
	assert.Nil(t, gone, "las selecciones de un día cerrado no pueden quedar")
	kept, _ := f.selRepo.GetByEmployeeAndDay("emp-1", "bdia-3")
	assert.NotNil(t, kept)

	day, _ := f.dayRepo.GetByID("bdia-2")
	assert.True(t, day.ClosedManually)
}

// TestClone_CreaMenuDeSucursalSiNoExiste: la sucursal sin menú para la semana
// lo obtiene creado perezosamente y luego propagado.
func TestClone_CreaMenuDeSucursalSiNoExiste(t *testing.T) {
	f := newCloneFixture(t)
	updated, skipped := f.clone(t, "br-2")
	assert.Equal(t, 1, updated)
	assert.Equal(t, 0, skipped)

	br2 := "br-2"
	menu, err := f.menuRepo.GetByWeek("co-1", &br2, cloneWeekStart)
	require.NoError(t, err)
	require.NotNil(t, menu, "el menú de la sucursal debe crearse")

	days, err := f.dayRepo.ListByMenu(menu.ID)
	require.NoError(t, err)
	require.Len(t, days, 5)
	require.NotNil(t, days[0].OptionAID)
	assert.Equal(t, "opt-sopa", *days[0].OptionAID)
}

func TestClone_VariasSucursalesMixtas(t *testing.T) {
	f := newCloneFixture(t)
	// br-1 bloqueada, br-2 nueva.
	for dow := 1; dow <= 5; dow++ {
		require.NoError(t, f.selRepo.Create(&entity.Selection{
			ID: "sel-" + string(rune('0'+dow)), EmployeeID: "emp-1",
			MenuDayID: "bdia-" + string(rune('0'+dow)), Slot: entity.SlotA, DeliveryBranchID: "br-1",
		}))
	}
	updated, skipped := f.clone(t, "br-1", "br-2")
	assert.Equal(t, 1, updated)
	assert.Equal(t, 1, skipped)
}
