package itinerary

import (
	"time"

	"github.com/Leganyst/itinerary-planner/internal/model"
)

// ElementAttributes are the shared fields accepted on create.
type ElementAttributes struct {
	ElementCategory string               `json:"elementCategory" binding:"max=64"`
	Link            string               `json:"link"`
	Price           *float64             `json:"price" binding:"omitempty,gte=0"`
	Notes           string               `json:"notes"`
	Status          *model.ElementStatus `json:"status" binding:"omitempty,oneof=PENDING BOOKED CANCELLED EXPIRED"`
}

// ElementAttributesPatch: blank strings and nil pointers keep the stored value.
type ElementAttributesPatch struct {
	ElementCategory string               `json:"elementCategory" binding:"max=64"`
	Link            string               `json:"link"`
	Price           *float64             `json:"price" binding:"omitempty,gte=0"`
	Notes           string               `json:"notes"`
	Status          *model.ElementStatus `json:"status" binding:"omitempty,oneof=PENDING BOOKED CANCELLED EXPIRED"`
}

type CreateTransportRequest struct {
	ElementType model.ElementType `json:"elementType"`
	ElementAttributes

	OriginPlace         string    `json:"originPlace" binding:"required"`
	OriginDateTime      time.Time `json:"originDateTime" binding:"required"`
	DestinationPlace    string    `json:"destinationPlace" binding:"required"`
	DestinationDateTime time.Time `json:"destinationDateTime" binding:"required"`
	Provider            *string   `json:"provider"`
	Order               *int      `json:"order"`
}

type UpdateTransportRequest struct {
	ElementType model.ElementType `json:"elementType"`
	ElementAttributesPatch

	OriginPlace         string     `json:"originPlace"`
	OriginDateTime      *time.Time `json:"originDateTime"`
	DestinationPlace    string     `json:"destinationPlace"`
	DestinationDateTime *time.Time `json:"destinationDateTime"`
	Provider            string     `json:"provider"`
	Order               *int       `json:"order"`
}

type CreateActivityRequest struct {
	ElementType model.ElementType `json:"elementType"`
	ElementAttributes

	ActivityName string    `json:"activityName" binding:"required"`
	Location     string    `json:"location"`
	StartsAt     time.Time `json:"startsAt" binding:"required"`
	Duration     *int      `json:"duration" binding:"omitempty,gte=0"`
	Order        *int      `json:"order"`
}

type UpdateActivityRequest struct {
	ElementType model.ElementType `json:"elementType"`
	ElementAttributesPatch

	ActivityName string     `json:"activityName"`
	Location     string     `json:"location"`
	StartsAt     *time.Time `json:"startsAt"`
	Duration     *int       `json:"duration" binding:"omitempty,gte=0"`
	Order        *int       `json:"order"`
}

type AccommodationEventRequest struct {
	DateTime time.Time `json:"dateTime" binding:"required"`
	Order    *int      `json:"order"`
}

type AccommodationEventPatch struct {
	DateTime *time.Time `json:"dateTime"`
	Order    *int       `json:"order"`
}

type CreateAccommodationRequest struct {
	ElementType model.ElementType `json:"elementType"`
	ElementAttributes

	Place    string                     `json:"place" binding:"required"`
	Location string                     `json:"location"`
	CheckIn  *AccommodationEventRequest `json:"checkIn"`
	CheckOut *AccommodationEventRequest `json:"checkOut"`
}

type UpdateAccommodationRequest struct {
	ElementType model.ElementType `json:"elementType"`
	ElementAttributesPatch

	Place    string                   `json:"place"`
	Location string                   `json:"location"`
	CheckIn  *AccommodationEventPatch `json:"checkIn"`
	CheckOut *AccommodationEventPatch `json:"checkOut"`
}

// Validate checks the preconditions that must hold before any write.
func (r *CreateTransportRequest) Validate() error {
	if err := checkDeclaredType(r.ElementType, model.ElementTypeTransport, true); err != nil {
		return err
	}
	if r.Order == nil {
		return InvalidRequest("order", "is required")
	}
	return checkStatus(r.Status)
}

func (r *CreateActivityRequest) Validate() error {
	if err := checkDeclaredType(r.ElementType, model.ElementTypeActivity, true); err != nil {
		return err
	}
	if r.Order == nil {
		return InvalidRequest("order", "is required")
	}
	return checkStatus(r.Status)
}

func (r *CreateAccommodationRequest) Validate() error {
	if err := checkDeclaredType(r.ElementType, model.ElementTypeAccommodation, true); err != nil {
		return err
	}
	if r.CheckIn == nil || r.CheckIn.Order == nil {
		return InvalidRequest("checkIn.order", "is required")
	}
	if r.CheckOut == nil || r.CheckOut.Order == nil {
		return InvalidRequest("checkOut.order", "is required")
	}
	return checkStatus(r.Status)
}

func (r *UpdateTransportRequest) Validate() error {
	if err := checkDeclaredType(r.ElementType, model.ElementTypeTransport, false); err != nil {
		return err
	}
	return checkStatus(r.Status)
}

func (r *UpdateActivityRequest) Validate() error {
	if err := checkDeclaredType(r.ElementType, model.ElementTypeActivity, false); err != nil {
		return err
	}
	return checkStatus(r.Status)
}

func (r *UpdateAccommodationRequest) Validate() error {
	if err := checkDeclaredType(r.ElementType, model.ElementTypeAccommodation, false); err != nil {
		return err
	}
	return checkStatus(r.Status)
}

func checkDeclaredType(declared, want model.ElementType, required bool) error {
	if declared == "" && !required {
		return nil
	}
	if declared != want {
		return InvalidRequest("elementType", "expected "+string(want)+", got "+quoteType(declared))
	}
	return nil
}

func checkStatus(s *model.ElementStatus) error {
	if s != nil && !s.Valid() {
		return InvalidRequest("status", "unknown status "+string(*s))
	}
	return nil
}

func quoteType(t model.ElementType) string {
	if t == "" {
		return "none"
	}
	return string(t)
}
