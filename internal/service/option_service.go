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

type OptionService struct {
	db       *gorm.DB
	options  repository.OptionRepository
	sections repository.SectionRepository
	elements *ElementService
}

func NewOptionService(db *gorm.DB, elements *ElementService) *OptionService {
	return &OptionService{
		db:       db,
		options:  repository.NewGormOptionRepository(db),
		sections: repository.NewGormSectionRepository(db),
		elements: elements,
	}
}

func (s *OptionService) Create(ctx context.Context, sectionID uuid.UUID, req *itinerary.CreateOptionRequest) (*itinerary.OptionView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.sections.GetByID(ctx, sectionID); err != nil {
		return nil, lookupError("section", sectionID, err)
	}

	o := &model.Option{
		ID:        uuid.New(),
		SectionID: sectionID,
		Name:      req.Name,
		Order:     *req.Order,
	}
	if err := s.options.Create(ctx, o); err != nil {
		return nil, itinerary.DbFailure("insert option", err)
	}
	v := itinerary.NewOptionView(o)
	return &v, nil
}

func (s *OptionService) Get(ctx context.Context, id uuid.UUID) (*itinerary.OptionView, error) {
	o, err := s.options.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("option", id, err)
	}
	v := itinerary.NewOptionView(o)
	return &v, nil
}

// Update changes name and/or order; absent fields keep their value.
func (s *OptionService) Update(ctx context.Context, id uuid.UUID, req *itinerary.UpdateOptionRequest) (*itinerary.OptionView, error) {
	o, err := s.options.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("option", id, err)
	}
	if req.Name != "" {
		o.Name = req.Name
	}
	if req.Order != nil {
		o.Order = *req.Order
	}
	o.UpdatedAt = time.Now().UTC()
	if err := s.options.Update(ctx, o); err != nil {
		return nil, itinerary.DbFailure("update option", err)
	}
	v := itinerary.NewOptionView(o)
	return &v, nil
}

// Delete removes the option and all of its elements.
func (s *OptionService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.deleteTx(ctx, tx, id)
	})
	return passThrough("delete option", err)
}

func (s *OptionService) deleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	repo := repository.NewGormOptionRepository(tx)
	if _, err := repo.GetByID(ctx, id); err != nil {
		return lookupError("option", id, err)
	}
	if err := s.elements.DeleteElementsForOption(ctx, tx, id); err != nil {
		return err
	}
	if err := repo.Delete(ctx, id); err != nil {
		return itinerary.DbFailure("delete option", err)
	}
	return nil
}

// ListBySection returns the section's options sorted by order.
func (s *OptionService) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]itinerary.OptionView, error) {
	rows, err := s.options.ListBySection(ctx, sectionID)
	if err != nil {
		return nil, itinerary.DbFailure("list options", err)
	}
	views := make([]itinerary.OptionView, 0, len(rows))
	for i := range rows {
		views = append(views, itinerary.NewOptionView(&rows[i]))
	}
	itinerary.SortByOrder(views)
	return views, nil
}

func (s *OptionService) GetTree(ctx context.Context, id uuid.UUID) (*itinerary.OptionNode, error) {
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

func (s *OptionService) node(ctx context.Context, v itinerary.OptionView) (itinerary.OptionNode, error) {
	items, err := s.elements.GetElementsForOption(ctx, v.ID)
	if err != nil {
		return itinerary.OptionNode{}, err
	}
	return itinerary.OptionNode{OptionView: v, Elements: items}, nil
}
