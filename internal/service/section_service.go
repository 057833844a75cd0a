package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/itinerary-planner/internal/itinerary"
	"github.com/Leganyst/itinerary-planner/internal/model"
	"github.com/Leganyst/itinerary-planner/internal/repository"
)

type SectionService struct {
	db       *gorm.DB
	sections repository.SectionRepository
	trips    repository.TripRepository
	options  *OptionService
}

func NewSectionService(db *gorm.DB, options *OptionService) *SectionService {
	return &SectionService{
		db:       db,
		sections: repository.NewGormSectionRepository(db),
		trips:    repository.NewGormTripRepository(db),
		options:  options,
	}
}

func (s *SectionService) Create(ctx context.Context, tripID uuid.UUID, req *itinerary.CreateSectionRequest) (*itinerary.SectionView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, lookupError("trip", tripID, err)
	}

	sec := &model.Section{
		ID:     uuid.New(),
		TripID: tripID,
		Name:   req.Name,
		Order:  *req.Order,
	}
	if err := s.sections.Create(ctx, sec); err != nil {
		return nil, itinerary.DbFailure("insert section", err)
	}
	v := itinerary.NewSectionView(sec)
	return &v, nil
}

func (s *SectionService) Get(ctx context.Context, id uuid.UUID) (*itinerary.SectionView, error) {
	sec, err := s.sections.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("section", id, err)
	}
	v := itinerary.NewSectionView(sec)
	return &v, nil
}

func (s *SectionService) Update(ctx context.Context, id uuid.UUID, req *itinerary.UpdateSectionRequest) (*itinerary.SectionView, error) {
	sec, err := s.sections.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("section", id, err)
	}
	if req.Name != "" {
		sec.Name = req.Name
	}
	if req.Order != nil {
		sec.Order = *req.Order
	}
	sec.UpdatedAt = time.Now().UTC()
	if err := s.sections.Update(ctx, sec); err != nil {
		return nil, itinerary.DbFailure("update section", err)
	}
	v := itinerary.NewSectionView(sec)
	return &v, nil
}

// Delete removes the section, its options and their elements in one transaction.
func (s *SectionService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.deleteTx(ctx, tx, id)
	})
	return passThrough("delete section", err)
}

func (s *SectionService) deleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	repo := repository.NewGormSectionRepository(tx)
	if _, err := repo.GetByID(ctx, id); err != nil {
		return lookupError("section", id, err)
	}

	options, err := repository.NewGormOptionRepository(tx).ListBySection(ctx, id)
	if err != nil {
		return itinerary.DbFailure("list options", err)
	}
	for _, o := range options {
		if err := s.options.deleteTx(ctx, tx, o.ID); err != nil {
			return err
		}
	}

	if err := repo.Delete(ctx, id); err != nil {
		return itinerary.DbFailure("delete section", err)
	}
	return nil
}

// ListByTrip returns the trip's sections sorted by order.
func (s *SectionService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]itinerary.SectionView, error) {
	rows, err := s.sections.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, itinerary.DbFailure("list sections", err)
	}
	views := make([]itinerary.SectionView, 0, len(rows))
	for i := range rows {
		views = append(views, itinerary.NewSectionView(&rows[i]))
	}
	itinerary.SortByOrder(views)
	return views, nil
}

func (s *SectionService) GetTree(ctx context.Context, id uuid.UUID) (*itinerary.SectionNode, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	node, err := s.node(ctx, *v)
	if err != nil {
		return nil, err
	}
	return &node, nil
}

func (s *SectionService) node(ctx context.Context, v itinerary.SectionView) (itinerary.SectionNode, error) {
	options, err := s.options.ListBySection(ctx, v.ID)
	if err != nil {
		return itinerary.SectionNode{}, err
	}
	node := itinerary.SectionNode{SectionView: v, Options: make([]itinerary.OptionNode, 0, len(options))}
	for _, o := range options {
		child, err := s.options.node(ctx, o)
		if err != nil {
			return itinerary.SectionNode{}, err
		}
		node.Options = append(node.Options, child)
	}
	return node, nil
}
