package subsidy_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comedor-api/internal/domain/subsidy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Pruebas del cálculo de subsidio por cadena empleado > sucursal > empresa.
// La propiedad central: para cualquier base ≥ 0, precio ∈ [0, base] y
// precio + subsidio == base exacto (sin deriva más allá del redondeo a 2
// decimales declarado para porcentajes).
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func ptrDec(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func ptrStr(s string) *string { return &s }

func ptrBool(b bool) *bool { return &b }

// baseCtx: empresa subsidia 50% fijo, empleado y opción subvencionables,
// sin overrides de sucursal ni empleado.
func baseCtx() subsidy.Context {
	return subsidy.Context{
		OptionSubsidized:   true,
		EmployeeSubsidized: true,
		CompanySubsidizes:  true,
		CompanyType:        subsidy.TypePercent,
		CompanyValue:       dec("50"),
	}
}

func TestEmployeePrice_PorcentajeEmpresa(t *testing.T) {
	price, applied := subsidy.EmployeePrice(dec("12000"), baseCtx())
	assert.True(t, price.Equal(dec("6000")), "precio esperado 6000, fue %s", price)
	assert.True(t, applied.Equal(dec("6000")))
}

func TestEmployeePrice_MontoFijoEmpresa(t *testing.T) {
	ctx := baseCtx()
	ctx.CompanyType = subsidy.TypeFixedAmount
	ctx.CompanyValue = dec("4000")
	price, applied := subsidy.EmployeePrice(dec("12000"), ctx)
	assert.True(t, price.Equal(dec("8000")))
	assert.True(t, applied.Equal(dec("4000")))
}

func TestEmployeePrice_OpcionNoSubsidiada(t *testing.T) {
	ctx := baseCtx()
	ctx.OptionSubsidized = false
	price, applied := subsidy.EmployeePrice(dec("12000"), ctx)
	assert.True(t, price.Equal(dec("12000")), "opción no subsidiada: el empleado paga todo")
	assert.True(t, applied.IsZero())
}

func TestEmployeePrice_EmpleadoNoSubsidiado(t *testing.T) {
	ctx := baseCtx()
	ctx.EmployeeSubsidized = false
	price, applied := subsidy.EmployeePrice(dec("12000"), ctx)
	assert.True(t, price.Equal(dec("12000")))
	assert.True(t, applied.IsZero())
}

// TestEmployeePrice_OverrideEmpleadoGana verifica la precedencia: con override
// personal (FIXED 10) el resultado usa el valor del empleado sin importar que la
// empresa tenga 75% y la sucursal otra cosa.
func TestEmployeePrice_OverrideEmpleadoGana(t *testing.T) {
	ctx := baseCtx()
	ctx.CompanyValue = dec("75")
	ctx.BranchType = ptrStr(subsidy.TypePercent)
	ctx.BranchValue = ptrDec("30")
	ctx.EmployeeType = ptrStr(subsidy.TypeFixedAmount)
	ctx.EmployeeValue = ptrDec("10")

	price, applied := subsidy.EmployeePrice(dec("12000"), ctx)
	assert.True(t, applied.Equal(dec("10")), "debe aplicar el monto fijo del empleado, fue %s", applied)
	assert.True(t, price.Equal(dec("11990")))
}

// TestEmployeePrice_OverrideEmpleadoFuerzaSubsidio: con override personal el
// subsidio aplica aunque empresa y sucursal tengan la subvención apagada.
func TestEmployeePrice_OverrideEmpleadoFuerzaSubsidio(t *testing.T) {
	ctx := baseCtx()
	ctx.CompanySubsidizes = false
	ctx.BranchSubsidizes = ptrBool(false)
	ctx.EmployeeType = ptrStr(subsidy.TypeFixedAmount)
	ctx.EmployeeValue = ptrDec("2000")

	price, applied := subsidy.EmployeePrice(dec("12000"), ctx)
	assert.True(t, applied.Equal(dec("2000")))
	assert.True(t, price.Equal(dec("10000")))
}

// TestEmployeePrice_SucursalApagaSubsidio: la sucursal puede desactivar la
// subvención aunque la empresa la tenga activa (y sin override de empleado).
func TestEmployeePrice_SucursalApagaSubsidio(t *testing.T) {
	ctx := baseCtx()
	ctx.BranchSubsidizes = ptrBool(false)
	price, applied := subsidy.EmployeePrice(dec("12000"), ctx)
	assert.True(t, price.Equal(dec("12000")))
	assert.True(t, applied.IsZero())
}

func TestEmployeePrice_ValorSucursalSobreEmpresa(t *testing.T) {
	ctx := baseCtx()
	ctx.BranchType = ptrStr(subsidy.TypeFixedAmount)
	ctx.BranchValue = ptrDec("3000")
	price, applied := subsidy.EmployeePrice(dec("12000"), ctx)
	assert.True(t, applied.Equal(dec("3000")), "el valor de la sucursal prevalece sobre el de la empresa")
	assert.True(t, price.Equal(dec("9000")))
}

func TestEmployeePrice_ValorNoPositivoDegradaSinSubsidio(t *testing.T) {
	ctx := baseCtx()
	ctx.CompanyValue = dec("0")
	price, applied := subsidy.EmployeePrice(dec("12000"), ctx)
	assert.True(t, price.Equal(dec("12000")))
	assert.True(t, applied.IsZero())

	ctx.CompanyValue = dec("-5")
	price, applied = subsidy.EmployeePrice(dec("12000"), ctx)
	assert.True(t, price.Equal(dec("12000")))
	assert.True(t, applied.IsZero())
}

func TestEmployeePrice_SubsidioNoExcedeBase(t *testing.T) {
	ctx := baseCtx()
	ctx.CompanyType = subsidy.TypeFixedAmount
	ctx.CompanyValue = dec("50000")
	price, applied := subsidy.EmployeePrice(dec("12000"), ctx)
	assert.True(t, price.IsZero(), "el subsidio se recorta al precio base: el empleado nunca recibe dinero")
	assert.True(t, applied.Equal(dec("12000")))
}

func TestEmployeePrice_BaseNegativaSeTrataComoCero(t *testing.T) {
	price, applied := subsidy.EmployeePrice(dec("-100"), baseCtx())
	assert.True(t, price.IsZero())
	assert.True(t, applied.IsZero())
}

// TestEmployeePrice_Monotonia: barrido de bases y porcentajes verificando
// precio ∈ [0, base] y precio + subsidio == base.
func TestEmployeePrice_Monotonia(t *testing.T) {
	bases := []string{"0", "0.01", "100", "9999.99", "12500", "1000000"}
	values := []string{"1", "10", "33.33", "50", "99", "100"}
	for _, b := range bases {
		for _, v := range values {
			ctx := baseCtx()
			ctx.CompanyValue = dec(v)
			base := dec(b)
			price, applied := subsidy.EmployeePrice(base, ctx)

			require.False(t, price.LessThan(decimal.Zero), "base=%s valor=%s", b, v)
			require.False(t, price.GreaterThan(base), "base=%s valor=%s", b, v)
			require.True(t, price.Add(applied).Equal(base),
				"base=%s valor=%s: precio %s + subsidio %s != base", b, v, price, applied)
		}
	}
}

func TestEmployeePrice_RedondeoPorcentajeADosDecimales(t *testing.T) {
	ctx := baseCtx()
	ctx.CompanyValue = dec("33.33")
	price, applied := subsidy.EmployeePrice(dec("10000"), ctx)
	assert.True(t, applied.Equal(dec("3333")), "33.33%% de 10000 = 3333, fue %s", applied)
	assert.True(t, price.Equal(dec("6667")))

	// Caso con fracción: 33.33% de 100.50 = 33.49665 -> 33.50
	price, applied = subsidy.EmployeePrice(dec("100.50"), ctx)
	assert.True(t, applied.Equal(dec("33.50")), "fue %s", applied)
	assert.True(t, price.Equal(dec("67.00")))
}
