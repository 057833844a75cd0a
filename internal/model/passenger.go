package model

import "github.com/google/uuid"

// passengers. The roster is maintained by the passenger service and only read here.
type Passenger struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TripID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FirstName string    `gorm:"type:varchar(255);not null"`
	LastName  string    `gorm:"type:varchar(255)"`
	Avatar    string    `gorm:"type:varchar(255)"`
}

// element_passengers (composite PK)
type ElementPassenger struct {
	BaseElementID uuid.UUID `gorm:"type:uuid;primaryKey"`
	PassengerID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`

	BaseElement *BaseElement `gorm:"foreignKey:BaseElementID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Passenger   *Passenger   `gorm:"foreignKey:PassengerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
