package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Leganyst/itinerary-planner/internal/itinerary"
	"github.com/Leganyst/itinerary-planner/internal/model"
	"github.com/Leganyst/itinerary-planner/internal/repository"
)

type ActivityStore struct {
	repo repository.ActivityRepository
}

func NewActivityStore(repo repository.ActivityRepository) *ActivityStore {
	return &ActivityStore{repo: repo}
}

func (s *ActivityStore) Create(ctx context.Context, req *itinerary.CreateActivityRequest, base *model.BaseElement) (*itinerary.ActivityItem, error) {
	row := &model.ActivityElement{
		BaseElementID: base.ID,
		ActivityName:  req.ActivityName,
		Location:      req.Location,
		StartsAt:      req.StartsAt,
		Duration:      req.Duration,
		Order:         *req.Order,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, itinerary.DbFailure("insert activity element", err)
	}
	return itinerary.NewActivityItem(base, row), nil
}

func (s *ActivityStore) Get(ctx context.Context, base *model.BaseElement) (*itinerary.ActivityItem, error) {
	row, err := s.repo.GetByBaseElementID(ctx, base.ID)
	if err != nil {
		return nil, storeError("get activity element", base.ID, err)
	}
	return itinerary.NewActivityItem(base, row), nil
}

// Update merges only the fields present in req.
func (s *ActivityStore) Update(ctx context.Context, base *model.BaseElement, req *itinerary.UpdateActivityRequest) (*itinerary.ActivityItem, error) {
	row, err := s.repo.GetByBaseElementID(ctx, base.ID)
	if err != nil {
		return nil, storeError("get activity element", base.ID, err)
	}

	if req.ActivityName != "" {
		row.ActivityName = req.ActivityName
	}
	if req.Location != "" {
		row.Location = req.Location
	}
	if req.StartsAt != nil {
		row.StartsAt = *req.StartsAt
	}
	if req.Duration != nil {
		row.Duration = req.Duration
	}
	if req.Order != nil {
		row.Order = *req.Order
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return nil, itinerary.DbFailure("update activity element", err)
	}
	return itinerary.NewActivityItem(base, row), nil
}

func (s *ActivityStore) Delete(ctx context.Context, baseElementID uuid.UUID) error {
	if _, err := s.repo.Delete(ctx, baseElementID); err != nil {
		return itinerary.DbFailure("delete activity element", err)
	}
	return nil
}
