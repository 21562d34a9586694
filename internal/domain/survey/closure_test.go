package survey_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/survey"
)

// Semana de referencia: lunes 2026-03-02 a viernes 2026-03-06, UTC.
var (
	weekStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	weekEnd   = time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
)

func testMenu() *entity.Menu {
	return &entity.Menu{ID: "menu-1", CompanyID: "co-1", WeekStart: weekStart, WeekEnd: weekEnd}
}

func TestIsClosed_CierreManualGanaSiempre(t *testing.T) {
	m := testMenu()
	m.ManuallyClosed = true
	m.ManuallyReopened = true // ambos activos: el cierre gana, precedencia intencional

	before := weekStart.AddDate(0, 0, -10)
	assert.True(t, survey.IsClosed(m, before), "cerrado manualmente debe ganar incluso reabierto")
}

func TestIsClosed_ReaperturaMantieneAbierto(t *testing.T) {
	m := testMenu()
	m.ManuallyReopened = true

	after := weekEnd.AddDate(0, 0, 3)
	assert.False(t, survey.IsClosed(m, after), "reabierto manualmente: abierta aunque la semana pasó")
}

func TestIsClosed_CierreAutomaticoDesdeElLunes(t *testing.T) {
	m := testMenu()

	domingoAnterior := weekStart.AddDate(0, 0, -1).Add(23 * time.Hour)
	assert.False(t, survey.IsClosed(m, domingoAnterior), "el domingo anterior sigue abierta")

	lunesMadrugada := weekStart.Add(1 * time.Minute)
	assert.True(t, survey.IsClosed(m, lunesMadrugada), "desde el lunes de la semana queda cerrada")
}
