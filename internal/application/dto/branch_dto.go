package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBranchRequest alta de sucursal. Los campos Subsidy* en nil heredan
// la configuración de la empresa.
type CreateBranchRequest struct {
	Name                string           `json:"name" validate:"required"`
	Address             string           `json:"address"`
	SubsidizesEmployees *bool            `json:"subsidizes_employees"`
	SubsidyType         *string          `json:"subsidy_type"`
	SubsidyValue        *decimal.Decimal `json:"subsidy_value"`
}

// UpdateBranchRequest actualización de sucursal (mismos campos que el alta).
type UpdateBranchRequest = CreateBranchRequest

// BranchResponse representación de una sucursal en respuestas.
type BranchResponse struct {
	ID                  string           `json:"id"`
	CompanyID           string           `json:"company_id"`
	Name                string           `json:"name"`
	Address             string           `json:"address"`
	SubsidizesEmployees *bool            `json:"subsidizes_employees,omitempty"`
	SubsidyType         *string          `json:"subsidy_type,omitempty"`
	SubsidyValue        *decimal.Decimal `json:"subsidy_value,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}
