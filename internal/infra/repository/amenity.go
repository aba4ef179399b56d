package repository

import (
	"context"

	"society-booking/internal/infra"
	"society-booking/internal/infra/db"
	"society-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AmenityRepository struct{}

func NewAmenityRepository() *AmenityRepository {
	return &AmenityRepository{}
}

const createAmenitySQL = `
INSERT INTO amenities (id, name, type, location, description)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *AmenityRepository) Create(ctx context.Context, tx db.DBTX, a shared.AmenityWrite) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createAmenitySQL, a.ID, a.Name, a.Type, a.Location, a.Description).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyPgErr("failed to create amenity", err)
	}
	return id, nil
}

const updateAmenitySQL = `
UPDATE amenities
SET name        = COALESCE($2, name),
    location    = COALESCE($3, location),
    description = COALESCE($4, description),
    updated_at  = now()
WHERE id = $1
`

func (r *AmenityRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, patch shared.AmenityPatch) error {
	tag, err := tx.Exec(ctx, updateAmenitySQL, id, patch.Name, patch.Location, patch.Description)
	if err != nil {
		return classifyPgErr("failed to update amenity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("amenity not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteAmenitySQL = `DELETE FROM amenities WHERE id = $1`

func (r *AmenityRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteAmenitySQL, id)
	if err != nil {
		return classifyPgErr("failed to delete amenity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("amenity not found", nil, infra.KindNotFound)
	}
	return nil
}
