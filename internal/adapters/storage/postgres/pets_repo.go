package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"guaumiau-pets-api/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

// Insert deja que la base asigne id y timestamps (serial + defaults)
// y devuelve el registro tal como quedó almacenado.
func (r *PetsRepo) Insert(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (name, type, user_email)
		VALUES ($1, $2, $3)
		RETURNING id, name, type, user_email, created_at, updated_at
	`,
		p.Name,
		p.Type,
		p.OwnerEmail,
	)

	var stored pets.Pet
	if err := row.Scan(
		&stored.ID,
		&stored.Name,
		&stored.Type,
		&stored.OwnerEmail,
		&stored.CreatedAt,
		&stored.UpdatedAt,
	); err != nil {
		return pets.Pet{}, fmt.Errorf("insert pet: %w", err)
	}

	return stored, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, type, user_email, created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	var p pets.Pet
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&p.OwnerEmail,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("get pet by id: %w", err)
	}

	return p, nil
}

func (r *PetsRepo) ListByOwnerEmail(ctx context.Context, ownerEmail string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, user_email, created_at, updated_at
		FROM pets
		WHERE user_email = $1
		ORDER BY created_at ASC
	`, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("list pets by owner: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Type,
			&p.OwnerEmail,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pet: %w", err)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) ExistsByID(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM pets WHERE id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists pet by id: %w", err)
	}
	return exists, nil
}

func (r *PetsRepo) DeleteByID(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete pet by id: %w", err)
	}
	return nil
}
