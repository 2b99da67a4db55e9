package pets

import "time"

// Pet representa una mascota registrada por un usuario de la app móvil.
// El ID lo asigna el store al insertar (serial); antes de eso vale 0.
type Pet struct {
	ID int

	Name       string
	Type       string // categoría libre: "dog", "cat", etc.
	OwnerEmail string // clave de agrupación; string opaco, no se valida como email

	CreatedAt time.Time
	UpdatedAt time.Time
}
