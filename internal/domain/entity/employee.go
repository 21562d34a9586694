package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un empleado que responde la encuesta semanal del menú.
// BranchID es su sucursal base; además puede tener sucursales y puntos de entrega
// adicionales asignados (tablas de enlace). El override personal de subsidio
// (SubsidyType/SubsidyValue no nulos) fuerza la subvención sin importar lo que
// digan la sucursal o la empresa.
type Employee struct {
	ID           string
	CompanyID    string
	BranchID     string // sucursal base
	Document     string // cédula, única por empresa
	Name         string
	Email        string
	IsSubsidized bool
	SubsidyType  *string
	SubsidyValue *decimal.Decimal
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Asignaciones de entrega adicionales (cargadas por el repositorio).
	BranchIDs   []string
	LocationIDs []string
}

// CanDeliverTo indica si el empleado puede recibir su pedido en la sucursal dada
// (su sucursal base o una asignada explícitamente).
func (e *Employee) CanDeliverTo(branchID string) bool {
	if branchID == e.BranchID {
		return true
	}
	for _, id := range e.BranchIDs {
		if id == branchID {
			return true
		}
	}
	return false
}
