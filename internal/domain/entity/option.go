package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Option representa un plato del catálogo seleccionable en los menús.
// Price en nil significa que se cobra el costo; IsSubsidized en false excluye
// el plato de cualquier subsidio (adicionales, por ejemplo, nunca se subsidian).
type Option struct {
	ID           string
	CompanyID    string
	Code         string // código único por empresa
	Name         string
	Description  string
	Cost         decimal.Decimal
	Price        *decimal.Decimal
	IsSubsidized bool
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BasePrice devuelve el precio base a cobrar: Price si está definido, si no Cost.
func (o *Option) BasePrice() decimal.Decimal {
	if o.Price != nil {
		return *o.Price
	}
	return o.Cost
}
