package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TripImage is the cover picture reference shown on a trip card.
type TripImage struct {
	URL        string `json:"url"`
	AuthorName string `json:"authorName,omitempty"`
	AuthorURL  string `json:"authorUrl,omitempty"`
}

// trips
type Trip struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name    string    `gorm:"type:varchar(255);not null"`

	StartDate *time.Time
	EndDate   *time.Time

	// Always written; an empty URL means the trip has no cover.
	CoverImage datatypes.JSONType[TripImage] `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// sections
type Section struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	TripID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Order  int       `gorm:"column:display_order;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Trip *Trip `gorm:"foreignKey:TripID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// options
type Option struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SectionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Order     int       `gorm:"column:display_order;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Section *Section `gorm:"foreignKey:SectionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
