package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/itinerary-planner/internal/model"
)

type TransportRepository interface {
	Create(ctx context.Context, t *model.TransportElement) error
	GetByBaseElementID(ctx context.Context, baseElementID uuid.UUID) (*model.TransportElement, error)
	Update(ctx context.Context, t *model.TransportElement) error
	Delete(ctx context.Context, baseElementID uuid.UUID) (int64, error)
}

type GormTransportRepository struct {
	db *gorm.DB
}

func NewGormTransportRepository(db *gorm.DB) *GormTransportRepository {
	return &GormTransportRepository{db: db}
}

func (r *GormTransportRepository) Create(ctx context.Context, t *model.TransportElement) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *GormTransportRepository) GetByBaseElementID(ctx context.Context, baseElementID uuid.UUID) (*model.TransportElement, error) {
	var t model.TransportElement
	if err := r.db.WithContext(ctx).First(&t, "base_element_id = ?", baseElementID).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *GormTransportRepository) Update(ctx context.Context, t *model.TransportElement) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *GormTransportRepository) Delete(ctx context.Context, baseElementID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.TransportElement{}, "base_element_id = ?", baseElementID)
	return res.RowsAffected, res.Error
}
