package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/itinerary-planner/internal/model"
)

type AccommodationRepository interface {
	// Create writes the element row followed by its events.
	Create(ctx context.Context, a *model.AccommodationElement, events []model.AccommodationEvent) error
	GetByBaseElementID(ctx context.Context, baseElementID uuid.UUID) (*model.AccommodationElement, error)
	// ListEvents returns every event row of the element, check-in first.
	ListEvents(ctx context.Context, baseElementID uuid.UUID) ([]model.AccommodationEvent, error)
	Update(ctx context.Context, a *model.AccommodationElement) error
	UpdateEvent(ctx context.Context, ev *model.AccommodationEvent) error
	// Delete removes events and the element row, returning the element rows removed.
	Delete(ctx context.Context, baseElementID uuid.UUID) (int64, error)
}

type GormAccommodationRepository struct {
	db *gorm.DB
}

func NewGormAccommodationRepository(db *gorm.DB) *GormAccommodationRepository {
	return &GormAccommodationRepository{db: db}
}

func (r *GormAccommodationRepository) Create(
	ctx context.Context,
	a *model.AccommodationElement,
	events []model.AccommodationEvent,
) error {
	db := r.db.WithContext(ctx)
	if err := db.Create(a).Error; err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}
	return db.Create(&events).Error
}

func (r *GormAccommodationRepository) GetByBaseElementID(ctx context.Context, baseElementID uuid.UUID) (*model.AccommodationElement, error) {
	var a model.AccommodationElement
	if err := r.db.WithContext(ctx).First(&a, "base_element_id = ?", baseElementID).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAccommodationRepository) ListEvents(ctx context.Context, baseElementID uuid.UUID) ([]model.AccommodationEvent, error) {
	var events []model.AccommodationEvent
	err := r.db.WithContext(ctx).
		Where("base_element_id = ?", baseElementID).
		Order("type ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *GormAccommodationRepository) Update(ctx context.Context, a *model.AccommodationElement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *GormAccommodationRepository) UpdateEvent(ctx context.Context, ev *model.AccommodationEvent) error {
	return r.db.WithContext(ctx).Save(ev).Error
}

func (r *GormAccommodationRepository) Delete(ctx context.Context, baseElementID uuid.UUID) (int64, error) {
	db := r.db.WithContext(ctx)
	if err := db.Delete(&model.AccommodationEvent{}, "base_element_id = ?", baseElementID).Error; err != nil {
		return 0, err
	}
	res := db.Delete(&model.AccommodationElement{}, "base_element_id = ?", baseElementID)
	return res.RowsAffected, res.Error
}
