package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Leganyst/itinerary-planner/internal/itinerary"
	"github.com/Leganyst/itinerary-planner/internal/model"
	"github.com/Leganyst/itinerary-planner/internal/repository"
)

// AccommodationStore owns the accommodation row and its check-in/check-out pair.
// Every pair read fails unless exactly one CHECK_IN and one CHECK_OUT exist.
type AccommodationStore struct {
	repo repository.AccommodationRepository
}

func NewAccommodationStore(repo repository.AccommodationRepository) *AccommodationStore {
	return &AccommodationStore{repo: repo}
}

// Create returns the check-in item followed by the check-out item.
func (s *AccommodationStore) Create(ctx context.Context, req *itinerary.CreateAccommodationRequest, base *model.BaseElement) ([2]*itinerary.AccommodationItem, error) {
	row := &model.AccommodationElement{
		BaseElementID: base.ID,
		Place:         req.Place,
		Location:      req.Location,
	}
	events := []model.AccommodationEvent{
		{
			ID:            uuid.New(),
			BaseElementID: base.ID,
			Type:          model.AccommodationEventCheckIn,
			DateTime:      req.CheckIn.DateTime,
			Order:         *req.CheckIn.Order,
		},
		{
			ID:            uuid.New(),
			BaseElementID: base.ID,
			Type:          model.AccommodationEventCheckOut,
			DateTime:      req.CheckOut.DateTime,
			Order:         *req.CheckOut.Order,
		},
	}
	if err := s.repo.Create(ctx, row, events); err != nil {
		return [2]*itinerary.AccommodationItem{}, itinerary.DbFailure("insert accommodation element", err)
	}
	return pairItems(base, row, &events[0], &events[1]), nil
}

func (s *AccommodationStore) GetEventPair(ctx context.Context, base *model.BaseElement) ([2]*itinerary.AccommodationItem, error) {
	row, checkIn, checkOut, err := s.load(ctx, base.ID)
	if err != nil {
		return [2]*itinerary.AccommodationItem{}, err
	}
	return pairItems(base, row, checkIn, checkOut), nil
}

func (s *AccommodationStore) Update(ctx context.Context, base *model.BaseElement, req *itinerary.UpdateAccommodationRequest) ([2]*itinerary.AccommodationItem, error) {
	var none [2]*itinerary.AccommodationItem

	row, checkIn, checkOut, err := s.load(ctx, base.ID)
	if err != nil {
		return none, err
	}

	if req.Place != "" || req.Location != "" {
		if req.Place != "" {
			row.Place = req.Place
		}
		if req.Location != "" {
			row.Location = req.Location
		}
		if err := s.repo.Update(ctx, row); err != nil {
			return none, itinerary.DbFailure("update accommodation element", err)
		}
	}

	for _, p := range []struct {
		ev    *model.AccommodationEvent
		patch *itinerary.AccommodationEventPatch
	}{
		{checkIn, req.CheckIn},
		{checkOut, req.CheckOut},
	} {
		if !applyEventPatch(p.ev, p.patch) {
			continue
		}
		if err := s.repo.UpdateEvent(ctx, p.ev); err != nil {
			return none, itinerary.DbFailure("update accommodation event", err)
		}
	}

	return pairItems(base, row, checkIn, checkOut), nil
}

// Delete removes both events and the accommodation row. Missing rows count as already gone.
func (s *AccommodationStore) Delete(ctx context.Context, baseElementID uuid.UUID) error {
	if _, err := s.repo.Delete(ctx, baseElementID); err != nil {
		return itinerary.DbFailure("delete accommodation element", err)
	}
	return nil
}

func (s *AccommodationStore) load(ctx context.Context, id uuid.UUID) (*model.AccommodationElement, *model.AccommodationEvent, *model.AccommodationEvent, error) {
	row, err := s.repo.GetByBaseElementID(ctx, id)
	if err != nil {
		return nil, nil, nil, storeError("get accommodation element", id, err)
	}
	events, err := s.repo.ListEvents(ctx, id)
	if err != nil {
		return nil, nil, nil, itinerary.DbFailure("list accommodation events", err)
	}
	checkIn, checkOut, err := splitEventPair(id, events)
	if err != nil {
		return nil, nil, nil, err
	}
	return row, checkIn, checkOut, nil
}

func splitEventPair(id uuid.UUID, events []model.AccommodationEvent) (checkIn, checkOut *model.AccommodationEvent, err error) {
	if len(events) != 2 {
		return nil, nil, itinerary.ElementDoesNotExist(id, fmt.Sprintf("accommodation has %d events, want 2", len(events)))
	}
	for i := range events {
		switch events[i].Type {
		case model.AccommodationEventCheckIn:
			checkIn = &events[i]
		case model.AccommodationEventCheckOut:
			checkOut = &events[i]
		}
	}
	if checkIn == nil || checkOut == nil {
		return nil, nil, itinerary.ElementDoesNotExist(id, "accommodation events are not a check-in/check-out pair")
	}
	return checkIn, checkOut, nil
}

// applyEventPatch reports whether anything changed.
func applyEventPatch(ev *model.AccommodationEvent, p *itinerary.AccommodationEventPatch) bool {
	if p == nil {
		return false
	}
	changed := false
	if p.DateTime != nil {
		ev.DateTime = *p.DateTime
		changed = true
	}
	if p.Order != nil {
		ev.Order = *p.Order
		changed = true
	}
	return changed
}

func pairItems(base *model.BaseElement, row *model.AccommodationElement, checkIn, checkOut *model.AccommodationEvent) [2]*itinerary.AccommodationItem {
	return [2]*itinerary.AccommodationItem{
		itinerary.NewAccommodationItem(base, row, checkIn),
		itinerary.NewAccommodationItem(base, row, checkOut),
	}
}
