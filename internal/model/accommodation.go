package model

import (
	"time"

	"github.com/google/uuid"
)

type AccommodationEventType string

const (
	AccommodationEventCheckIn  AccommodationEventType = "CHECK_IN"
	AccommodationEventCheckOut AccommodationEventType = "CHECK_OUT"
)

// accommodation_elements; no order of its own, the events carry it.
type AccommodationElement struct {
	BaseElementID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Place    string `gorm:"type:varchar(255);not null"`
	Location string `gorm:"type:varchar(255)"`

	BaseElement *BaseElement `gorm:"foreignKey:BaseElementID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// accommodation_events: exactly one CHECK_IN and one CHECK_OUT per accommodation.
type AccommodationEvent struct {
	ID            uuid.UUID              `gorm:"type:uuid;primaryKey"`
	BaseElementID uuid.UUID              `gorm:"type:uuid;not null;index"`
	Type          AccommodationEventType `gorm:"type:varchar(16);not null"`
	DateTime      time.Time              `gorm:"not null"`
	Order         int                    `gorm:"column:display_order;not null"`

	BaseElement *BaseElement `gorm:"foreignKey:BaseElementID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
