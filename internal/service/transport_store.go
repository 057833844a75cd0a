package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Leganyst/itinerary-planner/internal/itinerary"
	"github.com/Leganyst/itinerary-planner/internal/model"
	"github.com/Leganyst/itinerary-planner/internal/repository"
)

// TransportStore maps transport requests onto transport_elements rows.
type TransportStore struct {
	repo repository.TransportRepository
}

func NewTransportStore(repo repository.TransportRepository) *TransportStore {
	return &TransportStore{repo: repo}
}

func (s *TransportStore) Create(ctx context.Context, req *itinerary.CreateTransportRequest, base *model.BaseElement) (*itinerary.TransportItem, error) {
	row := &model.TransportElement{
		BaseElementID:       base.ID,
		OriginPlace:         req.OriginPlace,
		OriginDateTime:      req.OriginDateTime,
		DestinationPlace:    req.DestinationPlace,
		DestinationDateTime: req.DestinationDateTime,
		Provider:            req.Provider,
		Order:               *req.Order,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, itinerary.DbFailure("insert transport element", err)
	}
	return itinerary.NewTransportItem(base, row), nil
}

func (s *TransportStore) Get(ctx context.Context, base *model.BaseElement) (*itinerary.TransportItem, error) {
	row, err := s.repo.GetByBaseElementID(ctx, base.ID)
	if err != nil {
		return nil, storeError("get transport element", base.ID, err)
	}
	return itinerary.NewTransportItem(base, row), nil
}

func (s *TransportStore) Update(ctx context.Context, base *model.BaseElement, req *itinerary.UpdateTransportRequest) (*itinerary.TransportItem, error) {
	row, err := s.repo.GetByBaseElementID(ctx, base.ID)
	if err != nil {
		return nil, storeError("get transport element", base.ID, err)
	}

	if req.OriginPlace != "" {
		row.OriginPlace = req.OriginPlace
	}
	if req.OriginDateTime != nil {
		row.OriginDateTime = *req.OriginDateTime
	}
	if req.DestinationPlace != "" {
		row.DestinationPlace = req.DestinationPlace
	}
	if req.DestinationDateTime != nil {
		row.DestinationDateTime = *req.DestinationDateTime
	}
	if req.Provider != "" {
		provider := req.Provider
		row.Provider = &provider
	}
	if req.Order != nil {
		row.Order = *req.Order
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return nil, itinerary.DbFailure("update transport element", err)
	}
	return itinerary.NewTransportItem(base, row), nil
}

func (s *TransportStore) Delete(ctx context.Context, baseElementID uuid.UUID) error {
	if _, err := s.repo.Delete(ctx, baseElementID); err != nil {
		return itinerary.DbFailure("delete transport element", err)
	}
	return nil
}
