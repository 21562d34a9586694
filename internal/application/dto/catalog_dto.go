package dto

import "time"

// CreateScheduleRequest alta de horario (franja de servicio).
type CreateScheduleRequest struct {
	Name     string `json:"name" validate:"required"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

// ScheduleResponse representación de un horario en respuestas.
type ScheduleResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateLocationRequest alta de punto de entrega.
type CreateLocationRequest struct {
	Name   string `json:"name" validate:"required"`
	Detail string `json:"detail"`
}

// LocationResponse representación de un punto de entrega en respuestas.
type LocationResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenuConfigResponse configuración global de la encuesta.
type MenuConfigResponse struct {
	AllowCurrentWeekEdits bool   `json:"allow_current_week_edits"`
	AdvanceDays           int    `json:"advance_days"`
	EditCutoff            string `json:"edit_cutoff"`
}

// UpdateMenuConfigRequest actualización de la configuración global.
// Los valores fuera de rango se normalizan (AdvanceDays a [0,7], corte a un
// reloj válido) en lugar de fallar.
type UpdateMenuConfigRequest struct {
	AllowCurrentWeekEdits bool   `json:"allow_current_week_edits"`
	AdvanceDays           int    `json:"advance_days"`
	EditCutoff            string `json:"edit_cutoff"`
}
