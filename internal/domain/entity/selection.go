package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Selection es la respuesta de un empleado para un MenuDay (única por par
// empleado/día). Se crea con la primera elección y se actualiza en sitio después.
// Los campos Snapshot* se estampan una sola vez al cerrar la nómina y quedan
// inmutables aunque el menú o el subsidio cambien luego.
type Selection struct {
	ID                 string
	EmployeeID         string
	MenuDayID          string
	Slot               string // A..E
	DeliveryBranchID   string
	DeliveryLocationID *string
	AdditionalOptionID *string
	SnapshotPrice      *decimal.Decimal
	SnapshotSubsidy    *decimal.Decimal
	SnapshotAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Snapshotted indica si la selección ya tiene precios estampados por nómina.
func (s *Selection) Snapshotted() bool { return s.SnapshotAt != nil }
