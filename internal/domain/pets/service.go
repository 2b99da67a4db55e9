package pets

import (
	"context"
	"errors"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput usa punteros para distinguir campo ausente/null de string vacío.
// "requerido" acá significa presente, no no-vacío: "" es un valor válido.
type CreateInput struct {
	Name       *string
	Type       *string
	OwnerEmail *string
}

// Create valida antes de tocar el store (fail-fast, sin escrituras parciales).
// Cualquier id que venga del caller se ignora: el id lo asigna el store.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if in.Name == nil || in.Type == nil || in.OwnerEmail == nil {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		Name:       *in.Name,
		Type:       *in.Type,
		OwnerEmail: *in.OwnerEmail,
	}

	return s.repo.Insert(ctx, p)
}

// ListByOwnerEmail rechaza el query param vacío.
// Ojo: esta regla es distinta a la de Create ("" válido allá); no unificar.
func (s *Service) ListByOwnerEmail(ctx context.Context, ownerEmail string) ([]Pet, error) {
	if ownerEmail == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwnerEmail(ctx, ownerEmail)
}

func (s *Service) GetByID(ctx context.Context, id int) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// DeleteByID verifica existencia antes de borrar: si el id no existe
// responde ErrNotFound sin mutar nada.
func (s *Service) DeleteByID(ctx context.Context, id int) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return s.repo.DeleteByID(ctx, id)
}
