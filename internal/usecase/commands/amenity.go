package commands

import (
	"context"

	"github.com/google/uuid"

	"society-booking/internal/domain/amenity"
	reqdto "society-booking/internal/handler/dto/request"
	"society-booking/internal/infra"
	"society-booking/internal/pkg/errs"
	"society-booking/internal/usecase/queries"
	"society-booking/internal/usecase/shared"
)

var ErrAmenityHasActiveBookings = errs.New("amenity has active bookings")

type AmenityCommands interface {
	CreateAmenity(ctx context.Context, req reqdto.CreateAmenityRequest) (*queries.AmenityView, error)
	UpdateAmenity(ctx context.Context, id uuid.UUID, req reqdto.UpdateAmenityRequest) (*queries.AmenityView, error)
	DeleteAmenity(ctx context.Context, id uuid.UUID) error
}

type amenityCommandsImpl struct {
	uow            shared.UnitOfWork
	amenityQueries queries.AmenityQueries
}

func NewAmenityCommands(uow shared.UnitOfWork, amenityQueries queries.AmenityQueries) AmenityCommands {
	return &amenityCommandsImpl{
		uow:            uow,
		amenityQueries: amenityQueries,
	}
}

func (a *amenityCommandsImpl) CreateAmenity(ctx context.Context, req reqdto.CreateAmenityRequest) (*queries.AmenityView, error) {
	amenityType, err := amenity.NewType(req.Type)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := amenity.NewAmenity(req.TrimmedName(), amenityType, req.Location, req.Description)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var amenityID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Amenities().Create(ctx, tx.DB(), shared.AmenityWrite{
			ID:          entity.ID(),
			Name:        entity.Name(),
			Type:        entity.Type().String(),
			Location:    entity.Location(),
			Description: entity.Description(),
		})
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		amenityID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.readBack(ctx, amenityID)
}

func (a *amenityCommandsImpl) UpdateAmenity(ctx context.Context, id uuid.UUID, req reqdto.UpdateAmenityRequest) (*queries.AmenityView, error) {
	if req.Name != nil {
		if _, err := amenity.NewAmenity(*req.Name, amenity.TypeOther, "", ""); err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updateErr := tx.Amenities().Update(ctx, tx.DB(), id, shared.AmenityPatch{
			Name:        req.Name,
			Location:    req.Location,
			Description: req.Description,
		})
		if updateErr != nil {
			if infra.IsKind(updateErr, infra.KindNotFound) {
				return ErrAmenityNotFound
			}
			return errs.Mark(updateErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.readBack(ctx, id)
}

func (a *amenityCommandsImpl) DeleteAmenity(ctx context.Context, id uuid.UUID) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleteErr := tx.Amenities().Delete(ctx, tx.DB(), id)
		if deleteErr != nil {
			if infra.IsKind(deleteErr, infra.KindNotFound) {
				return ErrAmenityNotFound
			}
			if infra.IsKind(deleteErr, infra.KindForeignKeyViolated) {
				return ErrAmenityHasActiveBookings
			}
			return errs.Mark(deleteErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (a *amenityCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.AmenityView, error) {
	view, err := a.amenityQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
