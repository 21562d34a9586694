package dto

import "time"

// GetWeeklyMenuRequest obtiene (o crea) el menú de una semana y un alcance.
// BranchID vacío pide el menú de empresa.
type GetWeeklyMenuRequest struct {
	BranchID  string `query:"branch_id"`
	WeekStart string `query:"week_start"` // "2006-01-02"; vacío = semana siguiente
}

// MenuDayResponse un día/horario del menú con sus casillas A–E.
type MenuDayResponse struct {
	ID             string  `json:"id"`
	DayOfWeek      int     `json:"day_of_week"`
	ScheduleID     string  `json:"schedule_id"`
	OptionAID      *string `json:"option_a_id,omitempty"`
	OptionBID      *string `json:"option_b_id,omitempty"`
	OptionCID      *string `json:"option_c_id,omitempty"`
	OptionDID      *string `json:"option_d_id,omitempty"`
	OptionEID      *string `json:"option_e_id,omitempty"`
	MaxSelectable  int     `json:"max_selectable"`
	ClosedManually bool    `json:"closed_manually"`
	Editable       bool    `json:"editable"`
}

// MenuResponse el menú semanal con su ventana de edición calculada.
type MenuResponse struct {
	ID               string            `json:"id"`
	CompanyID        string            `json:"company_id"`
	BranchID         *string           `json:"branch_id,omitempty"`
	WeekStart        time.Time         `json:"week_start"`
	WeekEnd          time.Time         `json:"week_end"`
	ManuallyClosed   bool              `json:"manually_closed"`
	ManuallyReopened bool              `json:"manually_reopened"`
	Closed           bool              `json:"closed"`
	HasActiveWindow  bool              `json:"has_active_window"`
	BlockReason      string            `json:"block_reason,omitempty"`
	NextDeadline     *time.Time        `json:"next_deadline,omitempty"`
	Days             []MenuDayResponse `json:"days"`
	AdditionalIDs    []string          `json:"additional_option_ids"`
}

// UpdateMenuDayRequest edición administrativa de un día del menú.
type UpdateMenuDayRequest struct {
	OptionAID      *string `json:"option_a_id"`
	OptionBID      *string `json:"option_b_id"`
	OptionCID      *string `json:"option_c_id"`
	OptionDID      *string `json:"option_d_id"`
	OptionEID      *string `json:"option_e_id"`
	MaxSelectable  int     `json:"max_selectable"`
	ClosedManually bool    `json:"closed_manually"`
}

// SetAdditionalsRequest reemplaza el conjunto de adicionales fijos del menú.
type SetAdditionalsRequest struct {
	OptionIDs []string `json:"option_ids"`
}

// CloneMenuRequest propaga el menú de empresa a las sucursales indicadas.
type CloneMenuRequest struct {
	WeekStart string   `json:"week_start" validate:"required"` // "2006-01-02"
	BranchIDs []string `json:"branch_ids" validate:"required,min=1"`
}

// CloneMenuResponse resume la propagación: sucursales actualizadas y saltadas
// (una sucursal con la encuesta completa por algún empleado queda bloqueada y
// se salta, no es un error).
type CloneMenuResponse struct {
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}
