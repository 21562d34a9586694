package entity

import "time"

// Schedule (horario) representa una franja de servicio: desayuno, almuerzo, cena.
// Cada MenuDay pertenece a un horario; un menú semanal puede tener varios.
type Schedule struct {
	ID        string
	CompanyID string
	Name      string
	Position  int // orden de presentación
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
