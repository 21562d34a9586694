package entity

import (
	"fmt"
	"time"
)

// MenuConfig es la configuración global de la encuesta (fila única, get-or-create).
// AdvanceDays y EditCutoff se normalizan al leer y al guardar: días de antelación
// en [0,7] y hora de corte dentro de [00:00:00, 23:59:59].
type MenuConfig struct {
	ID                    string
	AllowCurrentWeekEdits bool
	AdvanceDays           int
	EditCutoff            string // "HH:MM:SS"
	UpdatedAt             time.Time
}

// Normalize aplica los rangos válidos sobre la configuración.
func (c *MenuConfig) Normalize() {
	if c.AdvanceDays < 0 {
		c.AdvanceDays = 0
	}
	if c.AdvanceDays > 7 {
		c.AdvanceDays = 7
	}
	if _, _, _, err := parseCutoff(c.EditCutoff); err != nil {
		c.EditCutoff = "23:59:59"
	}
}

// CutoffOn devuelve el instante de corte sobre la fecha dada (misma zona horaria).
func (c *MenuConfig) CutoffOn(date time.Time) time.Time {
	h, m, s, err := parseCutoff(c.EditCutoff)
	if err != nil {
		h, m, s = 23, 59, 59
	}
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, s, 0, date.Location())
}

func parseCutoff(v string) (h, m, s int, err error) {
	if _, err = fmt.Sscanf(v, "%d:%d:%d", &h, &m, &s); err != nil {
		return 0, 0, 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, 0, 0, fmt.Errorf("hora de corte fuera de rango: %q", v)
	}
	return h, m, s, nil
}
