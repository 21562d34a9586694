package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCompanyRequest alta de empresa con su subsidio por defecto.
type CreateCompanyRequest struct {
	Name                string          `json:"name" validate:"required"`
	NIT                 string          `json:"nit" validate:"required"`
	Address             string          `json:"address"`
	Phone               string          `json:"phone"`
	Email               string          `json:"email" validate:"omitempty,email"`
	SubsidizesEmployees bool            `json:"subsidizes_employees"`
	SubsidyType         string          `json:"subsidy_type"` // FIXED | PERCENT
	SubsidyValue        decimal.Decimal `json:"subsidy_value"`
}

// UpdateCompanyRequest actualización de datos y subsidio de la empresa.
type UpdateCompanyRequest struct {
	Name                string          `json:"name"`
	Address             string          `json:"address"`
	Phone               string          `json:"phone"`
	Email               string          `json:"email"`
	SubsidizesEmployees bool            `json:"subsidizes_employees"`
	SubsidyType         string          `json:"subsidy_type"`
	SubsidyValue        decimal.Decimal `json:"subsidy_value"`
}

// CompanyResponse representación de una empresa en respuestas.
type CompanyResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	NIT                 string          `json:"nit"`
	Address             string          `json:"address"`
	Phone               string          `json:"phone"`
	Email               string          `json:"email"`
	Status              string          `json:"status"`
	SubsidizesEmployees bool            `json:"subsidizes_employees"`
	SubsidyType         string          `json:"subsidy_type"`
	SubsidyValue        decimal.Decimal `json:"subsidy_value"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
