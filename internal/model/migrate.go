package model

import "gorm.io/gorm"

// AutoMigrate creates the itinerary tables, parents first.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Trip{},
		&Section{},
		&Option{},
		&BaseElement{},
		&TransportElement{},
		&ActivityElement{},
		&AccommodationElement{},
		&AccommodationEvent{},
		&Passenger{},
		&ElementPassenger{},
	)
}
