package entity

import "time"

// Location representa un punto de entrega dentro de una sucursal o sede
// (piso, área, edificio) donde el empleado recibe su pedido.
type Location struct {
	ID        string
	CompanyID string
	Name      string
	Detail    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
