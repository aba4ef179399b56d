package queries

import (
	"context"

	"github.com/google/uuid"
)

type AmenityQueries interface {
	List(ctx context.Context) ([]*AmenityView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*AmenityView, error)
}

type AmenityReadStore interface {
	FindAll(ctx context.Context) ([]*AmenityView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AmenityView, error)
}

type amenityQueriesImpl struct {
	store AmenityReadStore
}

func NewAmenityQueries(store AmenityReadStore) AmenityQueries {
	return &amenityQueriesImpl{store: store}
}

func (q *amenityQueriesImpl) List(ctx context.Context) ([]*AmenityView, error) {
	return q.store.FindAll(ctx)
}

func (q *amenityQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AmenityView, error) {
	return q.store.FindByID(ctx, id)
}
