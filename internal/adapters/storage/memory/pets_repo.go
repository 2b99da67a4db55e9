package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"guaumiau-pets-api/internal/domain/pets"
)

type petsRepo struct {
	mu     sync.RWMutex
	byID   map[int]pets.Pet
	nextID int
	now    func() time.Time
}

// NewPetsRepo crea el store in-memory (dev y tests).
// Asigna ids seriales igual que la columna serial de Postgres.
func NewPetsRepo() pets.Repository {
	return &petsRepo{
		byID:   make(map[int]pets.Pet),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *petsRepo) Insert(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	p.ID = r.nextID
	p.CreatedAt = now
	p.UpdatedAt = now
	r.nextID++

	r.byID[p.ID] = p
	return p, nil
}

func (r *petsRepo) GetByID(ctx context.Context, id int) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petsRepo) ListByOwnerEmail(ctx context.Context, ownerEmail string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.OwnerEmail == ownerEmail {
			out = append(out, p)
		}
	}

	// Orden estable por id asc (solo para consistencia en dev/tests)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *petsRepo) ExistsByID(ctx context.Context, id int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}

func (r *petsRepo) DeleteByID(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}
