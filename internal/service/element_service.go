package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/itinerary-planner/internal/itinerary"
	"github.com/Leganyst/itinerary-planner/internal/model"
)

// ElementService composes elements from a base row plus variant rows and
// returns them as ordered display items. Ownership is checked by the caller.
type ElementService struct {
	db         *gorm.DB
	passengers PassengerLookup
	now        func() time.Time
}

func NewElementService(db *gorm.DB, passengers PassengerLookup) *ElementService {
	return &ElementService{
		db:         db,
		passengers: passengers,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (s *ElementService) CreateTransport(ctx context.Context, optionID uuid.UUID, req *itinerary.CreateTransportRequest) (*itinerary.TransportItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var item *itinerary.TransportItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st := newElementStores(tx)
		base, err := s.insertBase(ctx, st, optionID, model.ElementTypeTransport, req.ElementAttributes)
		if err != nil {
			return err
		}
		item, err = st.transport.Create(ctx, req, base)
		return err
	})
	if err != nil {
		return nil, passThrough("create transport", err)
	}
	return item, nil
}

func (s *ElementService) CreateActivity(ctx context.Context, optionID uuid.UUID, req *itinerary.CreateActivityRequest) (*itinerary.ActivityItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var item *itinerary.ActivityItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st := newElementStores(tx)
		base, err := s.insertBase(ctx, st, optionID, model.ElementTypeActivity, req.ElementAttributes)
		if err != nil {
			return err
		}
		item, err = st.activity.Create(ctx, req, base)
		return err
	})
	if err != nil {
		return nil, passThrough("create activity", err)
	}
	return item, nil
}

// CreateAccommodation returns the check-in and check-out items of the new element.
func (s *ElementService) CreateAccommodation(ctx context.Context, optionID uuid.UUID, req *itinerary.CreateAccommodationRequest) ([2]*itinerary.AccommodationItem, error) {
	var pair [2]*itinerary.AccommodationItem
	if err := req.Validate(); err != nil {
		return pair, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st := newElementStores(tx)
		base, err := s.insertBase(ctx, st, optionID, model.ElementTypeAccommodation, req.ElementAttributes)
		if err != nil {
			return err
		}
		pair, err = st.accommodation.Create(ctx, req, base)
		return err
	})
	if err != nil {
		return [2]*itinerary.AccommodationItem{}, passThrough("create accommodation", err)
	}
	return pair, nil
}

// GetElementsForOption returns every display item of the option sorted by order.
// Accommodations contribute two items each.
func (s *ElementService) GetElementsForOption(ctx context.Context, optionID uuid.UUID) ([]itinerary.DisplayItem, error) {
	st := newElementStores(s.db.WithContext(ctx))

	bases, err := st.base.ListByOption(ctx, optionID)
	if err != nil {
		return nil, itinerary.DbFailure("list base elements", err)
	}

	items := make([]itinerary.DisplayItem, 0, len(bases))
	for i := range bases {
		found, err := st.load(ctx, &bases[i])
		if err != nil {
			return nil, err
		}
		if err := s.attachPassengers(ctx, bases[i].ID, found...); err != nil {
			return nil, err
		}
		items = append(items, found...)
	}

	itinerary.SortByOrder(items)
	return items, nil
}

// GetElement returns the items of one element: one, or two for an accommodation.
func (s *ElementService) GetElement(ctx context.Context, optionID, elementID uuid.UUID) ([]itinerary.DisplayItem, error) {
	st := newElementStores(s.db.WithContext(ctx))

	base, err := st.scopedBase(ctx, optionID, elementID, "")
	if err != nil {
		return nil, err
	}
	items, err := st.load(ctx, base)
	if err != nil {
		return nil, err
	}
	if err := s.attachPassengers(ctx, base.ID, items...); err != nil {
		return nil, err
	}
	itinerary.SortByOrder(items)
	return items, nil
}

func (s *ElementService) UpdateTransport(ctx context.Context, optionID, elementID uuid.UUID, req *itinerary.UpdateTransportRequest) (*itinerary.TransportItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var item *itinerary.TransportItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st := newElementStores(tx)
		base, err := s.touchBase(ctx, st, optionID, elementID, model.ElementTypeTransport, req.ElementAttributesPatch)
		if err != nil {
			return err
		}
		item, err = st.transport.Update(ctx, base, req)
		return err
	})
	if err != nil {
		return nil, passThrough("update transport", err)
	}
	if err := s.attachPassengers(ctx, elementID, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ElementService) UpdateActivity(ctx context.Context, optionID, elementID uuid.UUID, req *itinerary.UpdateActivityRequest) (*itinerary.ActivityItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var item *itinerary.ActivityItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st := newElementStores(tx)
		base, err := s.touchBase(ctx, st, optionID, elementID, model.ElementTypeActivity, req.ElementAttributesPatch)
		if err != nil {
			return err
		}
		item, err = st.activity.Update(ctx, base, req)
		return err
	})
	if err != nil {
		return nil, passThrough("update activity", err)
	}
	if err := s.attachPassengers(ctx, elementID, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ElementService) UpdateAccommodation(ctx context.Context, optionID, elementID uuid.UUID, req *itinerary.UpdateAccommodationRequest) ([2]*itinerary.AccommodationItem, error) {
	var pair [2]*itinerary.AccommodationItem
	if err := req.Validate(); err != nil {
		return pair, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st := newElementStores(tx)
		base, err := s.touchBase(ctx, st, optionID, elementID, model.ElementTypeAccommodation, req.ElementAttributesPatch)
		if err != nil {
			return err
		}
		pair, err = st.accommodation.Update(ctx, base, req)
		return err
	})
	if err != nil {
		return [2]*itinerary.AccommodationItem{}, passThrough("update accommodation", err)
	}
	if err := s.attachPassengers(ctx, elementID, pair[0], pair[1]); err != nil {
		return [2]*itinerary.AccommodationItem{}, err
	}
	return pair, nil
}

// DeleteElement removes the element with all of its rows in one transaction.
func (s *ElementService) DeleteElement(ctx context.Context, optionID, elementID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st := newElementStores(tx)
		base, err := st.scopedBase(ctx, optionID, elementID, "")
		if err != nil {
			return err
		}
		return st.remove(ctx, base)
	})
	return passThrough("delete element", err)
}

// DeleteElementsForOption removes every element of the option using tx.
// It is meant to run inside the caller's cascade transaction.
func (s *ElementService) DeleteElementsForOption(ctx context.Context, tx *gorm.DB, optionID uuid.UUID) error {
	st := newElementStores(tx.WithContext(ctx))

	bases, err := st.base.ListByOption(ctx, optionID)
	if err != nil {
		return itinerary.DbFailure("list base elements", err)
	}
	for i := range bases {
		if err := st.remove(ctx, &bases[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *ElementService) insertBase(
	ctx context.Context,
	st elementStores,
	optionID uuid.UUID,
	kind model.ElementType,
	attrs itinerary.ElementAttributes,
) (*model.BaseElement, error) {
	if _, err := st.options.GetByID(ctx, optionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, itinerary.NotFoundError{Resource: "option", ID: optionID, Err: err}
		}
		return nil, itinerary.DbFailure("get option", err)
	}

	base := &model.BaseElement{
		ID:              uuid.New(),
		OptionID:        optionID,
		ElementType:     kind,
		ElementCategory: attrs.ElementCategory,
		Link:            attrs.Link,
		Price:           attrs.Price,
		Notes:           attrs.Notes,
		Status:          attrs.Status,
		LastUpdatedAt:   s.now(),
	}
	if err := st.base.Create(ctx, base); err != nil {
		return nil, itinerary.DbFailure("insert base element", err)
	}
	return base, nil
}

// touchBase loads the element under the option, merges the shared fields and
// refreshes lastUpdatedAt.
func (s *ElementService) touchBase(
	ctx context.Context,
	st elementStores,
	optionID, elementID uuid.UUID,
	kind model.ElementType,
	patch itinerary.ElementAttributesPatch,
) (*model.BaseElement, error) {
	base, err := st.scopedBase(ctx, optionID, elementID, kind)
	if err != nil {
		return nil, err
	}
	mergeBase(base, patch)
	base.LastUpdatedAt = s.now()
	if err := st.base.Update(ctx, base); err != nil {
		return nil, itinerary.DbFailure("update base element", err)
	}
	return base, nil
}

// attachPassengers resolves the assignment list once and gives each item of the
// element its own copy. Never called inside a transaction.
func (s *ElementService) attachPassengers(ctx context.Context, baseElementID uuid.UUID, items ...itinerary.DisplayItem) error {
	passengers, err := s.passengers.GetAllPassengersInElement(ctx, baseElementID)
	if err != nil {
		return passThrough("get passengers", err)
	}
	if passengers == nil {
		passengers = []itinerary.Passenger{}
	}
	for _, item := range items {
		item.Base().Passengers = slices.Clone(passengers)
	}
	return nil
}
