package subsidy

import "github.com/shopspring/decimal"

// Tipos de subsidio.
const (
	TypeFixedAmount = "FIXED"   // valor fijo en pesos
	TypePercent     = "PERCENT" // porcentaje del precio base
)

// Context agrupa la cadena de subsidio empleado > sucursal > empresa para un
// renglón a cobrar. Los punteros en nil significan "sin override en ese nivel".
type Context struct {
	OptionSubsidized   bool
	EmployeeSubsidized bool

	CompanySubsidizes bool
	CompanyType       string
	CompanyValue      decimal.Decimal

	BranchSubsidizes *bool
	BranchType       *string
	BranchValue      *decimal.Decimal

	EmployeeType  *string
	EmployeeValue *decimal.Decimal
}

// hasEmployeeOverride indica si el empleado trae override personal; en ese caso
// el subsidio aplica incondicionalmente, sin importar los flags de sucursal/empresa.
func (c Context) hasEmployeeOverride() bool {
	return c.EmployeeType != nil || c.EmployeeValue != nil
}

// EmployeePrice calcula el precio que paga el empleado y el subsidio aplicado
// para un precio base, resolviendo la cadena empleado > sucursal > empresa
// ("primer no-nulo gana"). Función pura: nunca falla, degrada a "sin subsidio"
// ante valores faltantes o no positivos. El subsidio porcentual se redondea a
// 2 decimales y nunca excede el precio base.
func EmployeePrice(basePrice decimal.Decimal, ctx Context) (price, applied decimal.Decimal) {
	if basePrice.LessThan(decimal.Zero) {
		basePrice = decimal.Zero
	}
	if !ctx.OptionSubsidized || !ctx.EmployeeSubsidized {
		return basePrice, decimal.Zero
	}
	if !ctx.hasEmployeeOverride() {
		if !coalesceBool(ctx.BranchSubsidizes, ctx.CompanySubsidizes) {
			return basePrice, decimal.Zero
		}
	}

	sType := coalesceString(ctx.EmployeeType, ctx.BranchType, ctx.CompanyType)
	sValue := coalesceDecimal(ctx.EmployeeValue, ctx.BranchValue, ctx.CompanyValue)
	if sValue.LessThanOrEqual(decimal.Zero) {
		return basePrice, decimal.Zero
	}

	var amount decimal.Decimal
	if sType == TypePercent {
		amount = basePrice.Mul(sValue).Div(decimal.NewFromInt(100)).Round(2)
	} else {
		amount = sValue
	}
	if amount.GreaterThan(basePrice) {
		amount = basePrice
	}
	price = basePrice.Sub(amount)
	if price.LessThan(decimal.Zero) {
		price = decimal.Zero
	}
	return price, amount
}

// coalesce* implementan "primer no-nulo gana" para mantener la precedencia
// auditable en un solo lugar.

func coalesceBool(override *bool, fallback bool) bool {
	if override != nil {
		return *override
	}
	return fallback
}

func coalesceString(first, second *string, fallback string) string {
	if first != nil {
		return *first
	}
	if second != nil {
		return *second
	}
	return fallback
}

func coalesceDecimal(first, second *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if first != nil {
		return *first
	}
	if second != nil {
		return *second
	}
	return fallback
}
