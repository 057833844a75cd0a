package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/itinerary-planner/internal/model"
)

type PassengerRepository interface {
	// Passengers assigned to the element.
	ListByElement(ctx context.Context, baseElementID uuid.UUID) ([]model.Passenger, error)
	DeleteAssignmentsByElement(ctx context.Context, baseElementID uuid.UUID) error
}

type GormPassengerRepository struct {
	db *gorm.DB
}

func NewGormPassengerRepository(db *gorm.DB) *GormPassengerRepository {
	return &GormPassengerRepository{db: db}
}

func (r *GormPassengerRepository) ListByElement(ctx context.Context, baseElementID uuid.UUID) ([]model.Passenger, error) {
	var passengers []model.Passenger
	err := r.db.WithContext(ctx).
		Table("passengers").
		Select("passengers.*").
		Joins("JOIN element_passengers ON element_passengers.passenger_id = passengers.id").
		Where("element_passengers.base_element_id = ?", baseElementID).
		Order("passengers.first_name ASC, passengers.last_name ASC").
		Scan(&passengers).Error
	if err != nil {
		return nil, err
	}
	return passengers, nil
}

func (r *GormPassengerRepository) DeleteAssignmentsByElement(ctx context.Context, baseElementID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&model.ElementPassenger{}, "base_element_id = ?", baseElementID).
		Error
}
