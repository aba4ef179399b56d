package readstore

import (
	"context"

	"society-booking/internal/infra"
	"society-booking/internal/infra/db"
	"society-booking/internal/pkg/pgconv"
	"society-booking/internal/usecase/queries"
	"society-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AmenityReadStore struct {
	db db.DBTX
}

func NewAmenityReadStore(dbtx db.DBTX) *AmenityReadStore {
	return &AmenityReadStore{db: dbtx}
}

const findAllAmenitiesSQL = `
SELECT id, name, type, location, description, created_at, updated_at
FROM amenities
ORDER BY name
`

func (s *AmenityReadStore) FindAll(ctx context.Context) ([]*queries.AmenityView, error) {
	rows, err := s.db.Query(ctx, findAllAmenitiesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list amenities", err)
	}
	defer rows.Close()

	var views []*queries.AmenityView
	for rows.Next() {
		view, err := scanAmenityView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan amenity", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate amenities", err)
	}
	return views, nil
}

const findAmenityByIDSQL = `
SELECT id, name, type, location, description, created_at, updated_at
FROM amenities
WHERE id = $1
`

func (s *AmenityReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AmenityView, error) {
	view, err := scanAmenityView(s.db.QueryRow(ctx, findAmenityByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("amenity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find amenity by ID", err)
	}
	return view, nil
}

const amenitySnapshotSQL = `SELECT id, name, type FROM amenities WHERE id = $1`

func (s *AmenityReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.AmenitySnapshot, error) {
	var snap shared.AmenitySnapshot
	err := s.db.QueryRow(ctx, amenitySnapshotSQL, id).Scan(&snap.ID, &snap.Name, &snap.Type)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("amenity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load amenity snapshot", err)
	}
	return &snap, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAmenityView(row rowScanner) (*queries.AmenityView, error) {
	var v queries.AmenityView
	err := row.Scan(&v.ID, &v.Name, &v.Type, &v.Location, &v.Description, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
