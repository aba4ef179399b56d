//go:build unit || e2e

package builder

import (
	"time"

	"society-booking/internal/domain/amenity"
	reqdto "society-booking/internal/handler/dto/request"
	"society-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AmenityBuilder struct {
	ID          uuid.UUID
	Name        string
	Type        string
	Location    string
	Description string
}

func NewAmenityBuilder() *AmenityBuilder {
	return &AmenityBuilder{
		ID:          uuid.New(),
		Name:        "Clubhouse Pool",
		Type:        "swimming_pool",
		Location:    "Tower A, Ground Floor",
		Description: "Heated pool, lap lanes on weekdays",
	}
}

func (a *AmenityBuilder) With(mutate func(*AmenityBuilder)) *AmenityBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AmenityBuilder) BuildDomain() (*amenity.Amenity, error) {
	amenityType, err := amenity.NewType(a.Type)
	if err != nil {
		return nil, err
	}
	return amenity.NewAmenity(a.Name, amenityType, a.Location, a.Description)
}

func (a *AmenityBuilder) BuildDTO() reqdto.CreateAmenityRequest {
	return reqdto.CreateAmenityRequest{
		Name:        a.Name,
		Type:        a.Type,
		Location:    a.Location,
		Description: a.Description,
	}
}

func (a *AmenityBuilder) BuildReadModel() *queries.AmenityView {
	now := time.Now()
	return &queries.AmenityView{
		ID:          a.ID,
		Name:        a.Name,
		Type:        a.Type,
		Location:    a.Location,
		Description: a.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Fluent builder methods
func (a *AmenityBuilder) WithName(name string) *AmenityBuilder {
	a.Name = name
	return a
}

func (a *AmenityBuilder) WithType(amenityType string) *AmenityBuilder {
	a.Type = amenityType
	return a
}
