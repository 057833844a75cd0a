package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Leganyst/itinerary-planner/internal/itinerary"
	"github.com/Leganyst/itinerary-planner/internal/model"
	"github.com/Leganyst/itinerary-planner/internal/repository"
)

// TripService is the top of the tree. Every call is scoped to the owner.
type TripService struct {
	db       *gorm.DB
	trips    repository.TripRepository
	sections *SectionService
}

func NewTripService(db *gorm.DB, sections *SectionService) *TripService {
	return &TripService{
		db:       db,
		trips:    repository.NewGormTripRepository(db),
		sections: sections,
	}
}

func (s *TripService) Create(ctx context.Context, ownerID uuid.UUID, req *itinerary.CreateTripRequest) (*itinerary.TripView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t := &model.Trip{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if req.CoverImage != nil {
		t.CoverImage = datatypes.NewJSONType(*req.CoverImage)
	}
	if err := s.trips.Create(ctx, t); err != nil {
		return nil, itinerary.DbFailure("insert trip", err)
	}
	v := itinerary.NewTripView(t)
	return &v, nil
}

func (s *TripService) Get(ctx context.Context, ownerID, id uuid.UUID) (*itinerary.TripView, error) {
	t, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	v := itinerary.NewTripView(t)
	return &v, nil
}

// ListByOwner pages through the owner's trips, newest first.
func (s *TripService) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) (itinerary.Page[itinerary.TripView], error) {
	rows, err := s.trips.ListByOwner(ctx, ownerID)
	if err != nil {
		return itinerary.Page[itinerary.TripView]{}, itinerary.DbFailure("list trips", err)
	}
	views := make([]itinerary.TripView, 0, len(rows))
	for i := range rows {
		views = append(views, itinerary.NewTripView(&rows[i]))
	}
	return itinerary.Paginate(views, page, pageSize), nil
}

func (s *TripService) Update(ctx context.Context, ownerID, id uuid.UUID, req *itinerary.UpdateTripRequest) (*itinerary.TripView, error) {
	t, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		t.Name = req.Name
	}
	if req.StartDate != nil {
		t.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		t.EndDate = req.EndDate
	}
	if req.CoverImage != nil {
		t.CoverImage = datatypes.NewJSONType(*req.CoverImage)
	}
	if err := itinerary.CheckDateRange(t.StartDate, t.EndDate); err != nil {
		return nil, err
	}

	t.UpdatedAt = time.Now().UTC()
	if err := s.trips.Update(ctx, t); err != nil {
		return nil, itinerary.DbFailure("update trip", err)
	}
	v := itinerary.NewTripView(t)
	return &v, nil
}

// Delete removes the trip with every section, option and element below it.
func (s *TripService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sections, err := repository.NewGormSectionRepository(tx).ListByTrip(ctx, id)
		if err != nil {
			return itinerary.DbFailure("list sections", err)
		}
		for _, sec := range sections {
			if err := s.sections.deleteTx(ctx, tx, sec.ID); err != nil {
				return err
			}
		}
		if err := repository.NewGormTripRepository(tx).Delete(ctx, id); err != nil {
			return itinerary.DbFailure("delete trip", err)
		}
		return nil
	})
	return passThrough("delete trip", err)
}

// GetTree assembles the whole trip. Each level is sorted by its own order only.
func (s *TripService) GetTree(ctx context.Context, ownerID, id uuid.UUID) (*itinerary.TripNode, error) {
	t, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	sections, err := s.sections.ListByTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	node := &itinerary.TripNode{
		TripView: itinerary.NewTripView(t),
		Sections: make([]itinerary.SectionNode, 0, len(sections)),
	}
	for _, sec := range sections {
		child, err := s.sections.node(ctx, sec)
		if err != nil {
			return nil, err
		}
		node.Sections = append(node.Sections, child)
	}
	return node, nil
}

func (s *TripService) owned(ctx context.Context, ownerID, id uuid.UUID) (*model.Trip, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("trip", id, err)
	}
	if t.OwnerID != ownerID {
		return nil, itinerary.NotFoundError{Resource: "trip", ID: id}
	}
	return t, nil
}
