package model

import (
	"time"

	"github.com/google/uuid"
)

// ElementType fixes which variant table holds the element. Immutable after creation.
type ElementType string

const (
	ElementTypeTransport     ElementType = "TRANSPORT"
	ElementTypeActivity      ElementType = "ACTIVITY"
	ElementTypeAccommodation ElementType = "ACCOMMODATION"
)

func (t ElementType) Valid() bool {
	switch t {
	case ElementTypeTransport, ElementTypeActivity, ElementTypeAccommodation:
		return true
	default:
		return false
	}
}

// ElementStatus is caller supplied; there is no transition graph.
type ElementStatus string

const (
	ElementStatusPending   ElementStatus = "PENDING"
	ElementStatusBooked    ElementStatus = "BOOKED"
	ElementStatusCancelled ElementStatus = "CANCELLED"
	ElementStatusExpired   ElementStatus = "EXPIRED"
)

func (s ElementStatus) Valid() bool {
	switch s {
	case ElementStatusPending, ElementStatusBooked, ElementStatusCancelled, ElementStatusExpired:
		return true
	default:
		return false
	}
}

// base_elements: attributes shared by every element kind.
type BaseElement struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OptionID uuid.UUID `gorm:"type:uuid;not null;index"`

	ElementType     ElementType `gorm:"type:varchar(32);not null;index"`
	ElementCategory string      `gorm:"type:varchar(64)"`

	Link   string         `gorm:"type:text"`
	Price  *float64       `gorm:"type:numeric(12,2)"`
	Notes  string         `gorm:"type:text"`
	Status *ElementStatus `gorm:"type:varchar(32)"`

	CreatedAt     time.Time `gorm:"not null;index"`
	LastUpdatedAt time.Time `gorm:"not null"`

	Option *Option `gorm:"foreignKey:OptionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// transport_elements
type TransportElement struct {
	BaseElementID uuid.UUID `gorm:"type:uuid;primaryKey"`

	OriginPlace         string    `gorm:"type:varchar(255);not null"`
	OriginDateTime      time.Time `gorm:"not null"`
	DestinationPlace    string    `gorm:"type:varchar(255);not null"`
	DestinationDateTime time.Time `gorm:"not null"`
	Provider            *string   `gorm:"type:varchar(255)"`

	Order int `gorm:"column:display_order;not null"`

	BaseElement *BaseElement `gorm:"foreignKey:BaseElementID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// activity_elements
type ActivityElement struct {
	BaseElementID uuid.UUID `gorm:"type:uuid;primaryKey"`

	ActivityName string    `gorm:"type:varchar(255);not null"`
	Location     string    `gorm:"type:varchar(255)"`
	StartsAt     time.Time `gorm:"not null"`
	// minutes
	Duration *int

	Order int `gorm:"column:display_order;not null"`

	BaseElement *BaseElement `gorm:"foreignKey:BaseElementID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
