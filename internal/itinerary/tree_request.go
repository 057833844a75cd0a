package itinerary

import (
	"strings"
	"time"

	"github.com/Leganyst/itinerary-planner/internal/model"
)

type CreateTripRequest struct {
	Name       string           `json:"name" binding:"required,max=255"`
	StartDate  *time.Time       `json:"startDate"`
	EndDate    *time.Time       `json:"endDate"`
	CoverImage *model.TripImage `json:"coverImage"`
}

// UpdateTripRequest: a non-nil CoverImage replaces the stored one, an empty URL clears it.
type UpdateTripRequest struct {
	Name       string           `json:"name" binding:"max=255"`
	StartDate  *time.Time       `json:"startDate"`
	EndDate    *time.Time       `json:"endDate"`
	CoverImage *model.TripImage `json:"coverImage"`
}

type CreateSectionRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Order *int   `json:"order"`
}

type UpdateSectionRequest struct {
	Name  string `json:"name" binding:"max=255"`
	Order *int   `json:"order"`
}

type CreateOptionRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Order *int   `json:"order"`
}

type UpdateOptionRequest struct {
	Name  string `json:"name" binding:"max=255"`
	Order *int   `json:"order"`
}

func (r *CreateTripRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return InvalidRequest("name", "is required")
	}
	return CheckDateRange(r.StartDate, r.EndDate)
}

func (r *CreateSectionRequest) Validate() error {
	return checkNamedOrder(r.Name, r.Order)
}

func (r *CreateOptionRequest) Validate() error {
	return checkNamedOrder(r.Name, r.Order)
}

// CheckDateRange rejects an end date before the start date.
func CheckDateRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return InvalidRequest("endDate", "is before startDate")
	}
	return nil
}

func checkNamedOrder(name string, order *int) error {
	if strings.TrimSpace(name) == "" {
		return InvalidRequest("name", "is required")
	}
	if order == nil {
		return InvalidRequest("order", "is required")
	}
	return nil
}
