package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company representa una empresa cliente del casino (tenant).
// Define el subsidio por defecto que heredan sus sucursales y empleados.
type Company struct {
	ID                  string
	Name                string
	NIT                 string // NIT colombiano (con o sin dígito de verificación)
	Address             string
	Phone               string
	Email               string
	Status              string // active, suspended, inactive
	SubsidizesEmployees bool
	SubsidyType         string          // subsidy.TypeFixedAmount | subsidy.TypePercent
	SubsidyValue        decimal.Decimal // pesos o porcentaje según SubsidyType
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
