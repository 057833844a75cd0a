package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/itinerary-planner/internal/itinerary"
	"github.com/Leganyst/itinerary-planner/internal/model"
	"github.com/Leganyst/itinerary-planner/internal/repository"
)

// storeError maps a repository error for element id onto the element error kinds.
func storeError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return itinerary.ElementDoesNotExistError{ID: id, Reason: op, Err: err}
	}
	return itinerary.DbFailure(op, err)
}

// passThrough keeps already classified errors and wraps anything else as a store failure.
func passThrough(op string, err error) error {
	if err == nil {
		return nil
	}
	if itinerary.IsInvalidElementRequest(err) || itinerary.IsNotFound(err) || itinerary.IsDbFailure(err) {
		return err
	}
	return itinerary.DbFailure(op, err)
}

// elementStores bundles the repositories and variant stores bound to one
// handle, either the root DB or a transaction.
type elementStores struct {
	options       repository.OptionRepository
	base          repository.BaseElementRepository
	assignments   repository.PassengerRepository
	transport     *TransportStore
	activity      *ActivityStore
	accommodation *AccommodationStore
}

func newElementStores(db *gorm.DB) elementStores {
	return elementStores{
		options:       repository.NewGormOptionRepository(db),
		base:          repository.NewGormBaseElementRepository(db),
		assignments:   repository.NewGormPassengerRepository(db),
		transport:     NewTransportStore(repository.NewGormTransportRepository(db)),
		activity:      NewActivityStore(repository.NewGormActivityRepository(db)),
		accommodation: NewAccommodationStore(repository.NewGormAccommodationRepository(db)),
	}
}

// scopedBase loads the element only through its option. A non-empty kind
// must match the stored type.
func (st elementStores) scopedBase(ctx context.Context, optionID, elementID uuid.UUID, kind model.ElementType) (*model.BaseElement, error) {
	base, err := st.base.GetInOption(ctx, elementID, optionID)
	if err != nil {
		return nil, storeError("get base element", elementID, err)
	}
	if kind != "" && base.ElementType != kind {
		return nil, itinerary.ElementDoesNotExist(elementID, fmt.Sprintf("stored as %s, not %s", base.ElementType, kind))
	}
	return base, nil
}

// load dispatches a base row to its variant store.
func (st elementStores) load(ctx context.Context, base *model.BaseElement) ([]itinerary.DisplayItem, error) {
	switch base.ElementType {
	case model.ElementTypeTransport:
		item, err := st.transport.Get(ctx, base)
		if err != nil {
			return nil, err
		}
		return []itinerary.DisplayItem{item}, nil
	case model.ElementTypeActivity:
		item, err := st.activity.Get(ctx, base)
		if err != nil {
			return nil, err
		}
		return []itinerary.DisplayItem{item}, nil
	case model.ElementTypeAccommodation:
		pair, err := st.accommodation.GetEventPair(ctx, base)
		if err != nil {
			return nil, err
		}
		return []itinerary.DisplayItem{pair[0], pair[1]}, nil
	default:
		return nil, itinerary.DbFailure("load element", fmt.Errorf("element %s has unknown type %q", base.ID, base.ElementType))
	}
}

// remove deletes the variant rows, passenger assignments and the base row.
func (st elementStores) remove(ctx context.Context, base *model.BaseElement) error {
	var err error
	switch base.ElementType {
	case model.ElementTypeTransport:
		err = st.transport.Delete(ctx, base.ID)
	case model.ElementTypeActivity:
		err = st.activity.Delete(ctx, base.ID)
	case model.ElementTypeAccommodation:
		err = st.accommodation.Delete(ctx, base.ID)
	default:
		err = itinerary.DbFailure("delete element", fmt.Errorf("element %s has unknown type %q", base.ID, base.ElementType))
	}
	if err != nil {
		return err
	}

	if err := st.assignments.DeleteAssignmentsByElement(ctx, base.ID); err != nil {
		return itinerary.DbFailure("delete passenger assignments", err)
	}
	if err := st.base.Delete(ctx, base.ID); err != nil {
		return itinerary.DbFailure("delete base element", err)
	}
	return nil
}

// mergeBase applies a patch: blank strings and nil pointers keep what is stored.
func mergeBase(base *model.BaseElement, p itinerary.ElementAttributesPatch) {
	if p.ElementCategory != "" {
		base.ElementCategory = p.ElementCategory
	}
	if p.Link != "" {
		base.Link = p.Link
	}
	if p.Price != nil {
		base.Price = p.Price
	}
	if p.Notes != "" {
		base.Notes = p.Notes
	}
	if p.Status != nil {
		base.Status = p.Status
	}
}
