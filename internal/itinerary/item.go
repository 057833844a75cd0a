package itinerary

import (
	"time"

	"github.com/google/uuid"

	"github.com/Leganyst/itinerary-planner/internal/model"
)

// Passenger as resolved for a display item.
type Passenger struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Avatar    string    `json:"avatar,omitempty"`
}

// ElementBase holds the fields every display item carries. ID is the
// addressable identity: the base element id for transport and activity,
// the event id for an accommodation check-in or check-out.
type ElementBase struct {
	ID              uuid.UUID            `json:"id"`
	BaseElementID   uuid.UUID            `json:"baseElementId"`
	OptionID        uuid.UUID            `json:"optionId"`
	ElementType     model.ElementType    `json:"elementType"`
	ElementCategory string               `json:"elementCategory,omitempty"`
	Link            string               `json:"link,omitempty"`
	Price           *float64             `json:"price,omitempty"`
	Notes           string               `json:"notes,omitempty"`
	Status          *model.ElementStatus `json:"status"`
	LastUpdatedAt   time.Time            `json:"lastUpdatedAt"`
	Order           int                  `json:"order"`
	Passengers      []Passenger          `json:"passengers"`
}

func (b *ElementBase) Base() *ElementBase { return b }

func (b *ElementBase) DisplayOrder() int { return b.Order }

// DisplayItem is one orderable unit of an option. The set of implementations
// is closed: *TransportItem, *ActivityItem and *AccommodationItem.
type DisplayItem interface {
	Base() *ElementBase
	DisplayOrder() int
	displayItem()
}

type TransportItem struct {
	ElementBase
	OriginPlace         string    `json:"originPlace"`
	OriginDateTime      time.Time `json:"originDateTime"`
	DestinationPlace    string    `json:"destinationPlace"`
	DestinationDateTime time.Time `json:"destinationDateTime"`
	Provider            *string   `json:"provider,omitempty"`
}

type ActivityItem struct {
	ElementBase
	ActivityName string    `json:"activityName"`
	Location     string    `json:"location,omitempty"`
	StartsAt     time.Time `json:"startsAt"`
	Duration     *int      `json:"duration,omitempty"`
}

// AccommodationItem is one half of an accommodation: its check-in or its check-out.
type AccommodationItem struct {
	ElementBase
	EventType model.AccommodationEventType `json:"eventType"`
	DateTime  time.Time                    `json:"dateTime"`
	Place     string                       `json:"place"`
	Location  string                       `json:"location,omitempty"`
}

func (*TransportItem) displayItem()     {}
func (*ActivityItem) displayItem()      {}
func (*AccommodationItem) displayItem() {}

// NewElementBase copies the shared columns of a base row.
func NewElementBase(b *model.BaseElement) ElementBase {
	return ElementBase{
		ID:              b.ID,
		BaseElementID:   b.ID,
		OptionID:        b.OptionID,
		ElementType:     b.ElementType,
		ElementCategory: b.ElementCategory,
		Link:            b.Link,
		Price:           b.Price,
		Notes:           b.Notes,
		Status:          b.Status,
		LastUpdatedAt:   b.LastUpdatedAt,
		Passengers:      []Passenger{},
	}
}

func NewTransportItem(b *model.BaseElement, t *model.TransportElement) *TransportItem {
	item := &TransportItem{
		ElementBase:         NewElementBase(b),
		OriginPlace:         t.OriginPlace,
		OriginDateTime:      t.OriginDateTime,
		DestinationPlace:    t.DestinationPlace,
		DestinationDateTime: t.DestinationDateTime,
		Provider:            t.Provider,
	}
	item.Order = t.Order
	return item
}

func NewActivityItem(b *model.BaseElement, a *model.ActivityElement) *ActivityItem {
	item := &ActivityItem{
		ElementBase:  NewElementBase(b),
		ActivityName: a.ActivityName,
		Location:     a.Location,
		StartsAt:     a.StartsAt,
		Duration:     a.Duration,
	}
	item.Order = a.Order
	return item
}

func NewAccommodationItem(b *model.BaseElement, a *model.AccommodationElement, ev *model.AccommodationEvent) *AccommodationItem {
	item := &AccommodationItem{
		ElementBase: NewElementBase(b),
		EventType:   ev.Type,
		DateTime:    ev.DateTime,
		Place:       a.Place,
		Location:    a.Location,
	}
	item.ID = ev.ID
	item.Order = ev.Order
	return item
}

// NewPassengers converts roster rows, never returning nil.
func NewPassengers(rows []model.Passenger) []Passenger {
	out := make([]Passenger, 0, len(rows))
	for _, p := range rows {
		out = append(out, Passenger{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Avatar:    p.Avatar,
		})
	}
	return out
}
