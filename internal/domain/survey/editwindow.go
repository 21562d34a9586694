package survey

import (
	"time"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// Window es el resultado de evaluar la ventana de edición de un menú:
// editabilidad por día (clave = ID del MenuDay), si queda alguna ventana activa,
// si la encuesta quedó cerrada, el motivo de bloqueo y el próximo corte.
type Window struct {
	PerSlot         map[string]bool
	HasActiveWindow bool
	Closed          bool
	BlockReason     string
	NextDeadline    *time.Time
}

// ComputeWindow decide por día si la selección aún puede editarse en el instante
// de referencia. Función pura de (menú, días, configuración, reloj): se reevalúa
// en cada llamada, sin caché. Las guardas se evalúan en orden y la primera que
// aplica gana; ese orden reproduce la precedencia de los flags manuales
// (reabierto ignora todo lo demás, pero el cierre manual gana sobre reabierto).
func ComputeWindow(menu *entity.Menu, days []*entity.MenuDay, cfg entity.MenuConfig, ref time.Time, isCurrentWeek bool) Window {
	w := Window{PerSlot: make(map[string]bool, len(days))}
	for _, d := range days {
		w.PerSlot[d.ID] = false
	}
	refDate := dateOnly(ref)

	switch {
	case isCurrentWeek && refDate.After(dateOnly(menu.WeekEnd)):
		w.BlockReason = "la semana ya concluyó"

	case menu.ManuallyClosed && !menu.ManuallyReopened:
		w.Closed = true
		w.BlockReason = "el menú fue cerrado manualmente"
		return w

	case menu.ManuallyReopened:
		for _, d := range days {
			w.PerSlot[d.ID] = true
		}
		w.HasActiveWindow = true

	case !isCurrentWeek:
		if !refDate.Before(dateOnly(menu.WeekStart)) {
			w.BlockReason = "la encuesta cerró para esta semana"
		} else {
			for _, d := range days {
				w.PerSlot[d.ID] = true
			}
			w.HasActiveWindow = true
		}

	default: // semana en curso
		if !cfg.AllowCurrentWeekEdits {
			w.BlockReason = "la edición de la semana en curso está deshabilitada"
			break
		}
		for _, d := range days {
			dayDate := dateOnly(d.Date(menu.WeekStart))
			if !dayDate.After(refDate) {
				continue // el día ya pasó (o es hoy): no editable
			}
			deadline := cfg.CutoffOn(dayDate).AddDate(0, 0, -cfg.AdvanceDays)
			if ref.Before(deadline) {
				w.PerSlot[d.ID] = true
				w.HasActiveWindow = true
				if w.NextDeadline == nil || deadline.Before(*w.NextDeadline) {
					dl := deadline
					w.NextDeadline = &dl
				}
			}
		}
		if !w.HasActiveWindow {
			w.BlockReason = "fuera de la ventana de edición de la semana en curso"
		}
	}

	w.Closed = !w.HasActiveWindow && !refDate.Before(dateOnly(menu.WeekStart))
	return w
}
