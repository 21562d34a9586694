package survey_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/survey"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ventana de edición por día. La semana de prueba es la de closure_test.go
// (lunes 2026-03-02 .. viernes 2026-03-06).
// ──────────────────────────────────────────────────────────────────────────────

func testDays() []*entity.MenuDay {
	days := make([]*entity.MenuDay, 0, 5)
	names := []string{"lun", "mar", "mie", "jue", "vie"}
	for i, n := range names {
		days = append(days, &entity.MenuDay{
			ID: "dia-" + n, MenuID: "menu-1", DayOfWeek: i + 1, ScheduleID: "almuerzo",
		})
	}
	return days
}

func defaultCfg() entity.MenuConfig {
	return entity.MenuConfig{AllowCurrentWeekEdits: true, AdvanceDays: 0, EditCutoff: "23:59:59"}
}

// TestComputeWindow_CorteMenosAntelacion: con 1 día de antelación y corte a las
// 12:00, el martes es editable el lunes a las 11:00 y bloqueado a las 13:00.
func TestComputeWindow_CorteMenosAntelacion(t *testing.T) {
	m := testMenu()
	days := testDays()
	cfg := entity.MenuConfig{AllowCurrentWeekEdits: true, AdvanceDays: 1, EditCutoff: "12:00:00"}

	lunes11 := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)
	w := survey.ComputeWindow(m, days, cfg, lunes11, true)
	assert.True(t, w.PerSlot["dia-mar"], "martes editable el lunes 11:00 (corte lunes 12:00)")
	assert.True(t, w.HasActiveWindow)

	lunes13 := time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC)
	w = survey.ComputeWindow(m, days, cfg, lunes13, true)
	assert.False(t, w.PerSlot["dia-mar"], "martes bloqueado el lunes 13:00")
	// el miércoles aún tiene ventana (corte martes 12:00)
	assert.True(t, w.PerSlot["dia-mie"])
}

func TestComputeWindow_DiaPasadoNoEditable(t *testing.T) {
	m := testMenu()
	days := testDays()

	miercoles := time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)
	w := survey.ComputeWindow(m, days, defaultCfg(), miercoles, true)
	assert.False(t, w.PerSlot["dia-lun"])
	assert.False(t, w.PerSlot["dia-mar"])
	assert.False(t, w.PerSlot["dia-mie"], "el mismo día ya no es editable")
	assert.True(t, w.PerSlot["dia-jue"])
	assert.True(t, w.PerSlot["dia-vie"])
}

func TestComputeWindow_SemanaConcluida(t *testing.T) {
	m := testMenu()
	sabado := time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)
	w := survey.ComputeWindow(m, testDays(), defaultCfg(), sabado, true)
	assert.False(t, w.HasActiveWindow)
	assert.True(t, w.Closed)
	assert.Equal(t, "la semana ya concluyó", w.BlockReason)
}

func TestComputeWindow_CierreManualBloqueaTodo(t *testing.T) {
	m := testMenu()
	m.ManuallyClosed = true
	w := survey.ComputeWindow(m, testDays(), defaultCfg(), weekStart, true)
	assert.True(t, w.Closed)
	assert.False(t, w.HasActiveWindow)
	assert.Nil(t, w.NextDeadline)
	for id, ok := range w.PerSlot {
		assert.False(t, ok, "día %s debería estar bloqueado", id)
	}
}

// TestComputeWindow_ReaperturaIgnoraTodo: reabierto manualmente edita todo,
// incluso días pasados y con la edición de semana en curso deshabilitada.
func TestComputeWindow_ReaperturaIgnoraTodo(t *testing.T) {
	m := testMenu()
	m.ManuallyReopened = true
	cfg := defaultCfg()
	cfg.AllowCurrentWeekEdits = false

	jueves := time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC)
	w := survey.ComputeWindow(m, testDays(), cfg, jueves, true)
	assert.True(t, w.HasActiveWindow)
	assert.False(t, w.Closed)
	for id, ok := range w.PerSlot {
		assert.True(t, ok, "día %s debería ser editable", id)
	}
}

func TestComputeWindow_CierreManualGanaSobreReapertura(t *testing.T) {
	m := testMenu()
	m.ManuallyClosed = true
	m.ManuallyReopened = true
	w := survey.ComputeWindow(m, testDays(), defaultCfg(), weekStart, true)
	assert.True(t, w.Closed)
	assert.False(t, w.HasActiveWindow)
}

func TestComputeWindow_SemanaFutura(t *testing.T) {
	m := testMenu()
	days := testDays()

	// Antes del lunes del menú: todo editable.
	juevesAnterior := time.Date(2026, 2, 26, 10, 0, 0, 0, time.UTC)
	w := survey.ComputeWindow(m, days, defaultCfg(), juevesAnterior, false)
	assert.True(t, w.HasActiveWindow)
	for _, ok := range w.PerSlot {
		assert.True(t, ok)
	}

	// Desde el lunes del menú: cerrada.
	w = survey.ComputeWindow(m, days, defaultCfg(), weekStart, false)
	assert.False(t, w.HasActiveWindow)
	assert.True(t, w.Closed)
	assert.Equal(t, "la encuesta cerró para esta semana", w.BlockReason)
}

func TestComputeWindow_EdicionSemanaEnCursoDeshabilitada(t *testing.T) {
	m := testMenu()
	cfg := defaultCfg()
	cfg.AllowCurrentWeekEdits = false
	w := survey.ComputeWindow(m, testDays(), cfg, weekStart.Add(8*time.Hour), true)
	assert.False(t, w.HasActiveWindow)
	assert.Equal(t, "la edición de la semana en curso está deshabilitada", w.BlockReason)
}

func TestComputeWindow_ProximoCorteEsElMinimo(t *testing.T) {
	m := testMenu()
	days := testDays()
	cfg := entity.MenuConfig{AllowCurrentWeekEdits: true, AdvanceDays: 1, EditCutoff: "12:00:00"}

	lunes8 := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	w := survey.ComputeWindow(m, days, cfg, lunes8, true)
	require.NotNil(t, w.NextDeadline)
	// El corte más próximo es el del martes: lunes 12:00.
	assert.Equal(t, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), *w.NextDeadline)
}
