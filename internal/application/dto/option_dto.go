package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOptionRequest alta de plato del catálogo. Price en nil cobra el costo.
type CreateOptionRequest struct {
	Code         string           `json:"code" validate:"required"`
	Name         string           `json:"name" validate:"required"`
	Description  string           `json:"description"`
	Cost         decimal.Decimal  `json:"cost"`
	Price        *decimal.Decimal `json:"price"`
	IsSubsidized bool             `json:"is_subsidized"`
}

// UpdateOptionRequest actualización de plato (mismos campos que el alta).
type UpdateOptionRequest = CreateOptionRequest

// OptionResponse representación de un plato en respuestas.
type OptionResponse struct {
	ID           string           `json:"id"`
	CompanyID    string           `json:"company_id"`
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Cost         decimal.Decimal  `json:"cost"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	IsSubsidized bool             `json:"is_subsidized"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// OptionListResponse listado paginado de platos.
type OptionListResponse struct {
	Items []OptionResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
