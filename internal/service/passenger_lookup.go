package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Leganyst/itinerary-planner/internal/itinerary"
	"github.com/Leganyst/itinerary-planner/internal/repository"
)

// PassengerLookup resolves the passengers assigned to an element.
// The roster itself is owned elsewhere; this side only reads it.
type PassengerLookup interface {
	GetAllPassengersInElement(ctx context.Context, baseElementID uuid.UUID) ([]itinerary.Passenger, error)
}

type repoPassengerLookup struct {
	repo repository.PassengerRepository
}

// NewPassengerLookup serves lookups from the element_passengers join table.
func NewPassengerLookup(repo repository.PassengerRepository) PassengerLookup {
	return &repoPassengerLookup{repo: repo}
}

func (l *repoPassengerLookup) GetAllPassengersInElement(ctx context.Context, baseElementID uuid.UUID) ([]itinerary.Passenger, error) {
	rows, err := l.repo.ListByElement(ctx, baseElementID)
	if err != nil {
		return nil, itinerary.DbFailure("list element passengers", err)
	}
	return itinerary.NewPassengers(rows), nil
}
