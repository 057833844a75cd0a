package itinerary

import (
	"time"

	"github.com/google/uuid"

	"github.com/Leganyst/itinerary-planner/internal/model"
)

type TripView struct {
	ID         uuid.UUID        `json:"id"`
	OwnerID    uuid.UUID        `json:"ownerId"`
	Name       string           `json:"name"`
	StartDate  *time.Time       `json:"startDate,omitempty"`
	EndDate    *time.Time       `json:"endDate,omitempty"`
	CoverImage *model.TripImage `json:"coverImage"`
	CreatedAt  time.Time        `json:"createdAt"`
}

type SectionView struct {
	ID     uuid.UUID `json:"id"`
	TripID uuid.UUID `json:"tripId"`
	Name   string    `json:"name"`
	Order  int       `json:"order"`
}

func (s SectionView) DisplayOrder() int { return s.Order }

type OptionView struct {
	ID        uuid.UUID `json:"id"`
	SectionID uuid.UUID `json:"sectionId"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
}

func (o OptionView) DisplayOrder() int { return o.Order }

// OptionNode is an option with its display items, ordered.
type OptionNode struct {
	OptionView
	Elements []DisplayItem `json:"elements"`
}

type SectionNode struct {
	SectionView
	Options []OptionNode `json:"options"`
}

type TripNode struct {
	TripView
	Sections []SectionNode `json:"sections"`
}

func NewTripView(t *model.Trip) TripView {
	v := TripView{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		Name:      t.Name,
		StartDate: t.StartDate,
		EndDate:   t.EndDate,
		CreatedAt: t.CreatedAt,
	}
	if img := t.CoverImage.Data(); img.URL != "" {
		v.CoverImage = &img
	}
	return v
}

func NewSectionView(s *model.Section) SectionView {
	return SectionView{ID: s.ID, TripID: s.TripID, Name: s.Name, Order: s.Order}
}

func NewOptionView(o *model.Option) OptionView {
	return OptionView{ID: o.ID, SectionID: o.SectionID, Name: o.Name, Order: o.Order}
}
