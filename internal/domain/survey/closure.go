package survey

import (
	"time"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// IsClosed responde la pregunta gruesa "¿el menú completo es de solo lectura?",
// usada para bloquear formularios de edición masiva. Guardas evaluadas en orden;
// el orden importa y no debe reescribirse como álgebra booleana:
//
//  1. Cierre manual: gana siempre, incluso con ManuallyReopened activo.
//  2. Reapertura manual: la encuesta sigue abierta.
//  3. Cierre automático: cerrada desde el lunes de la semana del menú.
func IsClosed(menu *entity.Menu, ref time.Time) bool {
	if menu.ManuallyClosed {
		return true
	}
	if menu.ManuallyReopened {
		return false
	}
	return !dateOnly(ref).Before(dateOnly(menu.WeekStart))
}

// dateOnly trunca el instante a fecha calendario (medianoche, misma zona).
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
