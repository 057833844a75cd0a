package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/itinerary-planner/internal/model"
)

type SectionRepository interface {
	Create(ctx context.Context, section *model.Section) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Section, error)
	// Sections of the trip in creation order. Display order is applied by the service.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]model.Section, error)
	Update(ctx context.Context, section *model.Section) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormSectionRepository struct {
	db *gorm.DB
}

func NewGormSectionRepository(db *gorm.DB) *GormSectionRepository {
	return &GormSectionRepository{db: db}
}

func (r *GormSectionRepository) Create(ctx context.Context, section *model.Section) error {
	return r.db.WithContext(ctx).Create(section).Error
}

func (r *GormSectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Section, error) {
	var s model.Section
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormSectionRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]model.Section, error) {
	var sections []model.Section
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at ASC").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *GormSectionRepository) Update(ctx context.Context, section *model.Section) error {
	return r.db.WithContext(ctx).Save(section).Error
}

func (r *GormSectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Section{}, "id = ?", id).Error
}
