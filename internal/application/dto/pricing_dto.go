package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricedSelectionDTO una selección valorizada: precio del plato principal tras
// subsidio más el adicional a precio pleno (los adicionales nunca se subsidian).
type PricedSelectionDTO struct {
	SelectionID     string          `json:"selection_id"`
	MenuDayID       string          `json:"menu_day_id"`
	DayOfWeek       int             `json:"day_of_week"`
	Slot            string          `json:"slot"`
	BasePrice       decimal.Decimal `json:"base_price"`
	Subsidy         decimal.Decimal `json:"subsidy"`
	EmployeePrice   decimal.Decimal `json:"employee_price"`
	AdditionalPrice decimal.Decimal `json:"additional_price"`
	Total           decimal.Decimal `json:"total"`
	FromSnapshot    bool            `json:"from_snapshot"`
}

// EmployeeWeeklyBillDTO resumen semanal de un empleado.
type EmployeeWeeklyBillDTO struct {
	EmployeeID   string               `json:"employee_id"`
	EmployeeName string               `json:"employee_name"`
	Lines        []PricedSelectionDTO `json:"lines"`
	Total        decimal.Decimal      `json:"total"`
	TotalSubsidy decimal.Decimal      `json:"total_subsidy"`
}

// WeeklyBillingResponse facturación semanal de un menú.
type WeeklyBillingResponse struct {
	MenuID    string                  `json:"menu_id"`
	WeekStart time.Time               `json:"week_start"`
	Employees []EmployeeWeeklyBillDTO `json:"employees"`
}

// ClosePayrollResponse resultado del cierre de nómina: filas estampadas y
// filas que ya tenían snapshot (se dejan intactas).
type ClosePayrollResponse struct {
	Stamped        int `json:"stamped"`
	AlreadyStamped int `json:"already_stamped"`
}
