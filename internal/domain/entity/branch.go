package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Branch representa una sucursal de una Company.
// Los campos Subsidy* en nil significan "heredar de la empresa"; si la sucursal
// define su propia tripleta, esta prevalece sobre la de la empresa (y el override
// personal del empleado prevalece sobre ambas).
type Branch struct {
	ID                  string
	CompanyID           string
	Name                string
	Address             string
	SubsidizesEmployees *bool
	SubsidyType         *string
	SubsidyValue        *decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
