package pets

import "context"

// Repository es el contrato de persistencia del módulo.
// Cada operación es atómica por sí sola; no hay invariantes multi-fila.
type Repository interface {
	// Insert persiste el registro y devuelve la copia almacenada
	// con ID y timestamps asignados por el store.
	Insert(ctx context.Context, p Pet) (Pet, error)

	// GetByID devuelve ErrNotFound si no existe el id.
	GetByID(ctx context.Context, id int) (Pet, error)

	// ListByOwnerEmail devuelve slice vacío (nunca nil) si no hay matches.
	ListByOwnerEmail(ctx context.Context, ownerEmail string) ([]Pet, error)

	ExistsByID(ctx context.Context, id int) (bool, error)

	// DeleteByID es idempotente a nivel store; el service decide el 404.
	DeleteByID(ctx context.Context, id int) error
}
