package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/itinerary-planner/internal/model"
)

type ActivityRepository interface {
	Create(ctx context.Context, a *model.ActivityElement) error
	GetByBaseElementID(ctx context.Context, baseElementID uuid.UUID) (*model.ActivityElement, error)
	Update(ctx context.Context, a *model.ActivityElement) error
	Delete(ctx context.Context, baseElementID uuid.UUID) (int64, error)
}

type GormActivityRepository struct {
	db *gorm.DB
}

func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

func (r *GormActivityRepository) Create(ctx context.Context, a *model.ActivityElement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *GormActivityRepository) GetByBaseElementID(ctx context.Context, baseElementID uuid.UUID) (*model.ActivityElement, error) {
	var a model.ActivityElement
	if err := r.db.WithContext(ctx).First(&a, "base_element_id = ?", baseElementID).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormActivityRepository) Update(ctx context.Context, a *model.ActivityElement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *GormActivityRepository) Delete(ctx context.Context, baseElementID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.ActivityElement{}, "base_element_id = ?", baseElementID)
	return res.RowsAffected, res.Error
}
