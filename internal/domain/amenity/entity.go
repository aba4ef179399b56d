package amenity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("amenity name cannot be empty")
	ErrNameTooLong = errors.New("amenity name is too long (max 255 characters)")
	ErrInvalidType = errors.New("invalid amenity type")
)

const MaxNameLength = 255

type Amenity struct {
	id          uuid.UUID
	name        string
	amenityType Type
	location    string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewAmenity(name string, amenityType Type, location, description string) (*Amenity, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !amenityType.IsValid() {
		return nil, ErrInvalidType
	}

	return &Amenity{
		id:          uuid.New(),
		name:        strings.TrimSpace(name),
		amenityType: amenityType,
		location:    strings.TrimSpace(location),
		description: strings.TrimSpace(description),
	}, nil
}

func ReconstructAmenity(id uuid.UUID, name string, amenityType Type, location, description string, createdAt, updatedAt time.Time) *Amenity {
	return &Amenity{
		id:          id,
		name:        name,
		amenityType: amenityType,
		location:    location,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func (a *Amenity) ID() uuid.UUID        { return a.id }
func (a *Amenity) Name() string         { return a.name }
func (a *Amenity) Type() Type           { return a.amenityType }
func (a *Amenity) Location() string     { return a.location }
func (a *Amenity) Description() string  { return a.description }
func (a *Amenity) CreatedAt() time.Time { return a.createdAt }
func (a *Amenity) UpdatedAt() time.Time { return a.updatedAt }
