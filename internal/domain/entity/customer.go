package entity

import "time"

// Customer representa un cliente registrado en el sistema.
// Phone es puntero: nil equivale a NULL en la tabla (teléfono no informado).
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
