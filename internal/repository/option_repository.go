package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/itinerary-planner/internal/model"
)

type OptionRepository interface {
	Create(ctx context.Context, option *model.Option) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Option, error)
	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]model.Option, error)
	Update(ctx context.Context, option *model.Option) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormOptionRepository struct {
	db *gorm.DB
}

func NewGormOptionRepository(db *gorm.DB) *GormOptionRepository {
	return &GormOptionRepository{db: db}
}

func (r *GormOptionRepository) Create(ctx context.Context, option *model.Option) error {
	return r.db.WithContext(ctx).Create(option).Error
}

func (r *GormOptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Option, error) {
	var o model.Option
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormOptionRepository) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]model.Option, error) {
	var options []model.Option
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("created_at ASC").
		Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

func (r *GormOptionRepository) Update(ctx context.Context, option *model.Option) error {
	return r.db.WithContext(ctx).Save(option).Error
}

func (r *GormOptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Option{}, "id = ?", id).Error
}
