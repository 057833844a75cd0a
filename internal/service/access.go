package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/itinerary-planner/internal/itinerary"
	"github.com/Leganyst/itinerary-planner/internal/repository"
)

// Access resolves the owning trip of a section or option and compares its
// owner with the caller. Foreign resources read as not found.
type Access struct {
	trips repository.TripRepository
}

func NewAccess(trips repository.TripRepository) *Access {
	return &Access{trips: trips}
}

func (a *Access) CheckTrip(ctx context.Context, userID, tripID uuid.UUID) error {
	trip, err := a.trips.GetByID(ctx, tripID)
	if err != nil {
		return lookupError("trip", tripID, err)
	}
	if trip.OwnerID != userID {
		return itinerary.NotFoundError{Resource: "trip", ID: tripID}
	}
	return nil
}

func (a *Access) CheckSection(ctx context.Context, userID, sectionID uuid.UUID) error {
	owner, err := a.trips.OwnerOfSection(ctx, sectionID)
	if err != nil {
		return lookupError("section", sectionID, err)
	}
	if owner != userID {
		return itinerary.NotFoundError{Resource: "section", ID: sectionID}
	}
	return nil
}

func (a *Access) CheckOption(ctx context.Context, userID, optionID uuid.UUID) error {
	owner, err := a.trips.OwnerOfOption(ctx, optionID)
	if err != nil {
		return lookupError("option", optionID, err)
	}
	if owner != userID {
		return itinerary.NotFoundError{Resource: "option", ID: optionID}
	}
	return nil
}

// lookupError maps a repository error for a trip, section or option.
func lookupError(resource string, id uuid.UUID, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return itinerary.NotFoundError{Resource: resource, ID: id, Err: err}
	}
	return itinerary.DbFailure("get "+resource, err)
}
