package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest alta de empleado. BranchIDs y LocationIDs son las
// asignaciones de entrega adicionales (la sucursal base va en BranchID).
type CreateEmployeeRequest struct {
	BranchID     string           `json:"branch_id" validate:"required"`
	Document     string           `json:"document" validate:"required"`
	Name         string           `json:"name" validate:"required"`
	Email        string           `json:"email" validate:"omitempty,email"`
	IsSubsidized bool             `json:"is_subsidized"`
	SubsidyType  *string          `json:"subsidy_type"`
	SubsidyValue *decimal.Decimal `json:"subsidy_value"`
	BranchIDs    []string         `json:"branch_ids"`
	LocationIDs  []string         `json:"location_ids"`
}

// UpdateEmployeeRequest actualización de empleado (mismos campos que el alta).
type UpdateEmployeeRequest = CreateEmployeeRequest

// EmployeeResponse representación de un empleado en respuestas.
type EmployeeResponse struct {
	ID           string           `json:"id"`
	CompanyID    string           `json:"company_id"`
	BranchID     string           `json:"branch_id"`
	Document     string           `json:"document"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	IsSubsidized bool             `json:"is_subsidized"`
	SubsidyType  *string          `json:"subsidy_type,omitempty"`
	SubsidyValue *decimal.Decimal `json:"subsidy_value,omitempty"`
	Status       string           `json:"status"`
	BranchIDs    []string         `json:"branch_ids"`
	LocationIDs  []string         `json:"location_ids"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// EmployeeListResponse listado paginado de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
