package survey_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsurvey "github.com/jhoicas/Comedor-api/internal/application/survey"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Registro de selecciones: validación e idempotencia del upsert.
// ──────────────────────────────────────────────────────────────────────────────

type registrarFixture struct {
	uc       *appsurvey.RegisterSelectionUseCase
	dayRepo  *fakeMenuDayRepo
	selRepo  *fakeSelectionRepo
	addlRepo *fakeAdditionalRepo
	empRepo  *fakeEmployeeRepo
	locRepo  *fakeLocationRepo
}

func strptr(s string) *string { return &s }

// newRegistrarFixture arma un menú de sucursal con un día lunes/almuerzo:
// A=sopa, B=ensalada, max 2 opciones seleccionables; empleado emp-1 con
// sucursal base br-1 y asignación adicional br-2.
func newRegistrarFixture(t *testing.T) *registrarFixture {
	t.Helper()
	dayRepo := newFakeMenuDayRepo()
	selRepo := newFakeSelectionRepo()
	addlRepo := newFakeAdditionalRepo()
	empRepo := newFakeEmployeeRepo()
	locRepo := newFakeLocationRepo()

	require.NoError(t, dayRepo.CreateBatch([]*entity.MenuDay{{
		ID: "day-1", MenuID: "menu-1", DayOfWeek: 1, ScheduleID: "almuerzo",
		OptionAID: strptr("opt-sopa"), OptionBID: strptr("opt-ensalada"),
		MaxSelectable: 2,
	}}))
	require.NoError(t, empRepo.Create(&entity.Employee{
		ID: "emp-1", CompanyID: "co-1", BranchID: "br-1", BranchIDs: []string{"br-2"},
	}))
	require.NoError(t, locRepo.Create(&entity.Location{ID: "loc-1", CompanyID: "co-1", Name: "Piso 3"}))
	require.NoError(t, addlRepo.Create(&entity.MenuAdditional{ID: "ad-1", MenuID: "menu-1", OptionID: "opt-jugo"}))

	tx := &fakeTxRunner{menuRepo: newFakeMenuRepo(), dayRepo: dayRepo, selRepo: selRepo, addlRepo: addlRepo}
	uc := appsurvey.NewRegisterSelectionUseCase(tx, dayRepo, empRepo, locRepo, addlRepo)
	return &registrarFixture{uc: uc, dayRepo: dayRepo, selRepo: selRepo, addlRepo: addlRepo, empRepo: empRepo, locRepo: locRepo}
}

func validInput() appsurvey.RegisterSelectionInput {
	return appsurvey.RegisterSelectionInput{
		EmployeeID:       "emp-1",
		MenuDayID:        "day-1",
		Slot:             entity.SlotB,
		DeliveryBranchID: "br-1",
	}
}

func TestRegister_CreaSeleccion(t *testing.T) {
	f := newRegistrarFixture(t)
	sel, err := f.uc.Register(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, entity.SlotB, sel.Slot)
	assert.Equal(t, "br-1", sel.DeliveryBranchID)
	assert.Len(t, f.selRepo.sels, 1)
}

// TestRegister_Idempotente: registrar dos veces para el mismo (empleado, día)
// con casillas distintas deja exactamente una fila con la última elección.
func TestRegister_Idempotente(t *testing.T) {
	f := newRegistrarFixture(t)

	_, err := f.uc.Register(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Slot = entity.SlotA
	in.AdditionalOptionID = "opt-jugo"
	sel, err := f.uc.Register(context.Background(), in)
	require.NoError(t, err)

	assert.Len(t, f.selRepo.sels, 1, "nunca debe haber dos filas para el mismo par")
	stored, err := f.selRepo.GetByEmployeeAndDay("emp-1", "day-1")
	require.NoError(t, err)
	assert.Equal(t, entity.SlotA, stored.Slot)
	require.NotNil(t, stored.AdditionalOptionID)
	assert.Equal(t, "opt-jugo", *stored.AdditionalOptionID)
	assert.Equal(t, sel.ID, stored.ID)
}

func TestRegister_DiaInexistente(t *testing.T) {
	f := newRegistrarFixture(t)
	in := validInput()
	in.MenuDayID = "day-nope"
	_, err := f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_EmpleadoInexistente(t *testing.T) {
	f := newRegistrarFixture(t)
	in := validInput()
	in.EmployeeID = "emp-nope"
	_, err := f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_SucursalVaciaEsInvalida(t *testing.T) {
	f := newRegistrarFixture(t)
	in := validInput()
	in.DeliveryBranchID = ""
	_, err := f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestRegister_SucursalNoAsignadaCaeALaBase: pedir entrega en una sucursal no
// asignada no falla; se sustituye en silencio por la sucursal base.
func TestRegister_SucursalNoAsignadaCaeALaBase(t *testing.T) {
	f := newRegistrarFixture(t)
	in := validInput()
	in.DeliveryBranchID = "br-ajena"
	sel, err := f.uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "br-1", sel.DeliveryBranchID)
}

func TestRegister_SucursalAsignadaSeRespeta(t *testing.T) {
	f := newRegistrarFixture(t)
	in := validInput()
	in.DeliveryBranchID = "br-2"
	sel, err := f.uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "br-2", sel.DeliveryBranchID)
}

func TestRegister_PuntoDeEntregaInexistente(t *testing.T) {
	f := newRegistrarFixture(t)
	in := validInput()
	in.DeliveryLocationID = "loc-nope"
	_, err := f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_AdicionalNoConfigurado(t *testing.T) {
	f := newRegistrarFixture(t)
	in := validInput()
	in.AdditionalOptionID = "opt-postre"
	_, err := f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

// TestRegister_CasillaSobreMaximo: con max 2 el slot C queda fuera de rango
// aunque la letra sea válida.
func TestRegister_CasillaSobreMaximo(t *testing.T) {
	f := newRegistrarFixture(t)
	in := validInput()
	in.Slot = entity.SlotC
	_, err := f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_LetraInvalida(t *testing.T) {
	f := newRegistrarFixture(t)
	in := validInput()
	in.Slot = "Z"
	_, err := f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_CasillaVacia(t *testing.T) {
	f := newRegistrarFixture(t)
	// day-2 con max 3 pero sin opción en B.
	require.NoError(t, f.dayRepo.CreateBatch([]*entity.MenuDay{{
		ID: "day-2", MenuID: "menu-1", DayOfWeek: 2, ScheduleID: "almuerzo",
		OptionAID: strptr("opt-sopa"), MaxSelectable: 3,
	}}))
	in := validInput()
	in.MenuDayID = "day-2"
	in.Slot = entity.SlotB
	_, err := f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_NoTocaSnapshotsNiFechaDeCreacion(t *testing.T) {
	f := newRegistrarFixture(t)
	_, err := f.uc.Register(context.Background(), validInput())
	require.NoError(t, err)

	stored, _ := f.selRepo.GetByEmployeeAndDay("emp-1", "day-1")
	created := stored.CreatedAt

	time.Sleep(2 * time.Millisecond)
	in := validInput()
	in.Slot = entity.SlotA
	_, err = f.uc.Register(context.Background(), in)
	require.NoError(t, err)

	stored, _ = f.selRepo.GetByEmployeeAndDay("emp-1", "day-1")
	assert.Equal(t, created, stored.CreatedAt, "el upsert no debe reescribir CreatedAt")
	assert.Nil(t, stored.SnapshotAt)
}
