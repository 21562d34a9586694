package dto

import "time"

// RegisterSelectionRequest registra o actualiza la elección de un empleado
// para un día del menú. EmployeeID solo lo usan las rutas administrativas; un
// usuario con rol empleado opera siempre sobre su propio Employee.
// DeliveryLocationID y AdditionalOptionID son opcionales.
type RegisterSelectionRequest struct {
	EmployeeID         string `json:"employee_id"`
	MenuDayID          string `json:"menu_day_id" validate:"required"`
	Slot               string `json:"slot" validate:"required"` // A..E
	DeliveryBranchID   string `json:"delivery_branch_id" validate:"required"`
	DeliveryLocationID string `json:"delivery_location_id"`
	AdditionalOptionID string `json:"additional_option_id"`
}

// SelectionResponse representación de una selección en respuestas.
type SelectionResponse struct {
	ID                 string    `json:"id"`
	EmployeeID         string    `json:"employee_id"`
	MenuDayID          string    `json:"menu_day_id"`
	Slot               string    `json:"slot"`
	DeliveryBranchID   string    `json:"delivery_branch_id"`
	DeliveryLocationID *string   `json:"delivery_location_id,omitempty"`
	AdditionalOptionID *string   `json:"additional_option_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
