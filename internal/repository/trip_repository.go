package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/itinerary-planner/internal/model"
)

type TripRepository interface {
	Create(ctx context.Context, trip *model.Trip) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	// Trips of the owner, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Trip, error)
	Update(ctx context.Context, trip *model.Trip) error
	Delete(ctx context.Context, id uuid.UUID) error
	// OwnerOfSection / OwnerOfOption walk up to the owning trip.
	OwnerOfSection(ctx context.Context, sectionID uuid.UUID) (uuid.UUID, error)
	OwnerOfOption(ctx context.Context, optionID uuid.UUID) (uuid.UUID, error)
}

type GormTripRepository struct {
	db *gorm.DB
}

func NewGormTripRepository(db *gorm.DB) *GormTripRepository {
	return &GormTripRepository{db: db}
}

func (r *GormTripRepository) Create(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *GormTripRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var t model.Trip
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *GormTripRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Trip, error) {
	var trips []model.Trip
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *GormTripRepository) Update(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *GormTripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Trip{}, "id = ?", id).Error
}

func (r *GormTripRepository) OwnerOfSection(ctx context.Context, sectionID uuid.UUID) (uuid.UUID, error) {
	var row struct{ OwnerID uuid.UUID }
	err := r.db.WithContext(ctx).
		Table("sections").
		Select("trips.owner_id").
		Joins("JOIN trips ON trips.id = sections.trip_id").
		Where("sections.id = ?", sectionID).
		Take(&row).Error
	if err != nil {
		return uuid.Nil, err
	}
	return row.OwnerID, nil
}

func (r *GormTripRepository) OwnerOfOption(ctx context.Context, optionID uuid.UUID) (uuid.UUID, error) {
	var row struct{ OwnerID uuid.UUID }
	err := r.db.WithContext(ctx).
		Table("options").
		Select("trips.owner_id").
		Joins("JOIN sections ON sections.id = options.section_id").
		Joins("JOIN trips ON trips.id = sections.trip_id").
		Where("options.id = ?", optionID).
		Take(&row).Error
	if err != nil {
		return uuid.Nil, err
	}
	return row.OwnerID, nil
}
