package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/itinerary-planner/internal/model"
)

type BaseElementRepository interface {
	Create(ctx context.Context, base *model.BaseElement) error
	// GetInOption finds the element only if it belongs to the option.
	GetInOption(ctx context.Context, id, optionID uuid.UUID) (*model.BaseElement, error)
	// ListByOption returns every element of the option in insertion order.
	ListByOption(ctx context.Context, optionID uuid.UUID) ([]model.BaseElement, error)
	Update(ctx context.Context, base *model.BaseElement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormBaseElementRepository struct {
	db *gorm.DB
}

func NewGormBaseElementRepository(db *gorm.DB) *GormBaseElementRepository {
	return &GormBaseElementRepository{db: db}
}

func (r *GormBaseElementRepository) Create(ctx context.Context, base *model.BaseElement) error {
	return r.db.WithContext(ctx).Create(base).Error
}

func (r *GormBaseElementRepository) GetInOption(ctx context.Context, id, optionID uuid.UUID) (*model.BaseElement, error) {
	var b model.BaseElement
	err := r.db.WithContext(ctx).
		Where("id = ? AND option_id = ?", id, optionID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBaseElementRepository) ListByOption(ctx context.Context, optionID uuid.UUID) ([]model.BaseElement, error) {
	var elements []model.BaseElement
	err := r.db.WithContext(ctx).
		Where("option_id = ?", optionID).
		Order("created_at ASC, id ASC").
		Find(&elements).Error
	if err != nil {
		return nil, err
	}
	return elements, nil
}

func (r *GormBaseElementRepository) Update(ctx context.Context, base *model.BaseElement) error {
	return r.db.WithContext(ctx).Save(base).Error
}

func (r *GormBaseElementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BaseElement{}, "id = ?", id).Error
}
