package entity

import "time"

// Letras de casilla válidas en un MenuDay (hasta cinco opciones por día/horario).
const (
	SlotA = "A"
	SlotB = "B"
	SlotC = "C"
	SlotD = "D"
	SlotE = "E"
)

// MaxSelectable por defecto cuando el día no define uno.
const DefaultMaxSelectable = 3

// Menu es el contenedor semanal de opciones para una empresa o una sucursal.
// BranchID en nil denota el menú de empresa; el menú de una sucursal para la
// misma semana es una fila distinta. ManuallyClosed y ManuallyReopened pueden
// estar ambos activos: el cierre manual siempre gana (ver domain/survey).
type Menu struct {
	ID               string
	CompanyID        string
	BranchID         *string
	WeekStart        time.Time // lunes
	WeekEnd          time.Time // viernes
	ManuallyClosed   bool
	ManualCloseAt    *time.Time
	ManuallyReopened bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsBranchMenu indica si el menú pertenece a una sucursal concreta.
func (m *Menu) IsBranchMenu() bool { return m.BranchID != nil }

// MenuDay es una fila por (menú, día de la semana, horario) con hasta cinco
// casillas A–E apuntando a opciones del catálogo. ClosedManually cierra solo
// ese día, independiente de los flags del menú.
type MenuDay struct {
	ID            string
	MenuID        string
	DayOfWeek     int // 1=lunes .. 5=viernes
	ScheduleID    string
	OptionAID     *string
	OptionBID     *string
	OptionCID     *string
	OptionDID     *string
	OptionEID     *string
	MaxSelectable int // se normaliza a [1,5]; 0 se interpreta como DefaultMaxSelectable
	ClosedManually bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SlotOption devuelve la opción asignada a la casilla (A..E) o nil si está vacía
// o la letra no es válida.
func (d *MenuDay) SlotOption(slot string) *string {
	switch slot {
	case SlotA:
		return d.OptionAID
	case SlotB:
		return d.OptionBID
	case SlotC:
		return d.OptionCID
	case SlotD:
		return d.OptionDID
	case SlotE:
		return d.OptionEID
	}
	return nil
}

// SetSlots sobreescribe las cinco casillas de una vez (usado por la propagación).
func (d *MenuDay) SetSlots(a, b, c, dd, e *string) {
	d.OptionAID, d.OptionBID, d.OptionCID, d.OptionDID, d.OptionEID = a, b, c, dd, e
}

// EffectiveMaxSelectable devuelve MaxSelectable normalizado al rango [1,5],
// con DefaultMaxSelectable cuando no está definido.
func (d *MenuDay) EffectiveMaxSelectable() int {
	n := d.MaxSelectable
	if n == 0 {
		n = DefaultMaxSelectable
	}
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	return n
}

// SlotIndex convierte la letra de casilla a su índice 1..5; 0 si no es válida.
func SlotIndex(slot string) int {
	switch slot {
	case SlotA:
		return 1
	case SlotB:
		return 2
	case SlotC:
		return 3
	case SlotD:
		return 4
	case SlotE:
		return 5
	}
	return 0
}

// Date devuelve la fecha calendario de este día dentro de la semana del menú.
func (d *MenuDay) Date(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, d.DayOfWeek-1)
}

// MenuAdditional enlaza una opción del catálogo como adicional fijo de un menú
// (único por menú y opción). Los adicionales se cobran siempre a precio pleno.
type MenuAdditional struct {
	ID        string
	MenuID    string
	OptionID  string
	CreatedAt time.Time
}
