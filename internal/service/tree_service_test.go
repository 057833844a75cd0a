package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leganyst/itinerary-planner/internal/itinerary"
	"github.com/Leganyst/itinerary-planner/internal/model"
)

func TestTripService_GetTree_SortsEachLevel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// setup: env already has section "Getting there" (order 1) with option "Direct flight" (order 1)
	stay, err := env.sections.Create(ctx, env.tripID, &itinerary.CreateSectionRequest{Name: "Stay", Order: intPtr(0)})
	require.NoError(t, err)
	_, err = env.sections.Create(ctx, env.tripID, &itinerary.CreateSectionRequest{Name: "Home", Order: intPtr(10)})
	require.NoError(t, err)

	budget, err := env.options.Create(ctx, stay.ID, &itinerary.CreateOptionRequest{Name: "Budget", Order: intPtr(2)})
	require.NoError(t, err)
	_, err = env.options.Create(ctx, stay.ID, &itinerary.CreateOptionRequest{Name: "Splurge", Order: intPtr(1)})
	require.NoError(t, err)

	_, err = env.elements.CreateAccommodation(ctx, budget.ID, accommodationReq(8, 2))
	require.NoError(t, err)
	_, err = env.elements.CreateActivity(ctx, budget.ID, activityReq("Walk", 5))
	require.NoError(t, err)
	_, err = env.elements.CreateTransport(ctx, env.optionID, transportReq(1))
	require.NoError(t, err)

	tree, err := env.trips.GetTree(ctx, env.owner, env.tripID)
	require.NoError(t, err)

	require.Len(t, tree.Sections, 3)
	assert.Equal(t, "Stay", tree.Sections[0].Name)
	assert.Equal(t, "Getting there", tree.Sections[1].Name)
	assert.Equal(t, "Home", tree.Sections[2].Name)

	stayNode := tree.Sections[0]
	require.Len(t, stayNode.Options, 2)
	assert.Equal(t, "Splurge", stayNode.Options[0].Name)
	assert.Empty(t, stayNode.Options[0].Elements)
	assert.Equal(t, "Budget", stayNode.Options[1].Name)

	budgetItems := stayNode.Options[1].Elements
	require.Len(t, budgetItems, 3)
	assert.Equal(t, []int{2, 5, 8}, []int{
		budgetItems[0].DisplayOrder(),
		budgetItems[1].DisplayOrder(),
		budgetItems[2].DisplayOrder(),
	})

	assert.Len(t, tree.Sections[1].Options[0].Elements, 1)
	assert.NotNil(t, tree.Sections[2].Options)
	assert.Empty(t, tree.Sections[2].Options)
}

func TestTripService_ForeignOwnerReadsAsNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	stranger := uuid.New()

	_, err := env.trips.Get(ctx, stranger, env.tripID)
	assert.True(t, itinerary.IsNotFound(err))
	_, err = env.trips.GetTree(ctx, stranger, env.tripID)
	assert.True(t, itinerary.IsNotFound(err))
	assert.True(t, itinerary.IsNotFound(env.trips.Delete(ctx, stranger, env.tripID)))

	_, err = env.trips.Get(ctx, env.owner, env.tripID)
	assert.NoError(t, err)
}

func TestTripService_UpdateAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC)
	end := start.Add(7 * 24 * time.Hour)
	updated, err := env.trips.Update(ctx, env.owner, env.tripID, &itinerary.UpdateTripRequest{
		StartDate:  &start,
		EndDate:    &end,
		CoverImage: &model.TripImage{URL: "https://img.example/nyc.jpg", AuthorName: "Lee"},
	})
	require.NoError(t, err)
	assert.Equal(t, "New York", updated.Name)
	require.NotNil(t, updated.CoverImage)
	assert.Equal(t, "Lee", updated.CoverImage.AuthorName)

	before := start.Add(-time.Hour)
	_, err = env.trips.Update(ctx, env.owner, env.tripID, &itinerary.UpdateTripRequest{EndDate: &before})
	assert.True(t, itinerary.IsInvalidElementRequest(err))

	_, err = env.trips.Create(ctx, env.owner, &itinerary.CreateTripRequest{Name: "Kyoto"})
	require.NoError(t, err)
	_, err = env.trips.Create(ctx, uuid.New(), &itinerary.CreateTripRequest{Name: "Someone else's"})
	require.NoError(t, err)

	page, err := env.trips.ListByOwner(ctx, env.owner, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Len(t, page.Items, 1)
	assert.True(t, page.HasNext)

	got, err := env.trips.Get(ctx, env.owner, env.tripID)
	require.NoError(t, err)
	require.NotNil(t, got.StartDate)
	assert.True(t, start.Equal(*got.StartDate))
	assert.Equal(t, "https://img.example/nyc.jpg", got.CoverImage.URL)
}

func TestTripService_DeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.elements.CreateAccommodation(ctx, env.optionID, accommodationReq(1, 2))
	require.NoError(t, err)
	_, err = env.elements.CreateTransport(ctx, env.optionID, transportReq(3))
	require.NoError(t, err)

	require.NoError(t, env.trips.Delete(ctx, env.owner, env.tripID))

	for _, m := range []any{
		&model.Trip{}, &model.Section{}, &model.Option{},
		&model.BaseElement{}, &model.TransportElement{},
		&model.AccommodationElement{}, &model.AccommodationEvent{},
	} {
		assert.Equal(t, int64(0), countRows(t, env.db, m), "%T", m)
	}
}

func TestTripService_DeleteWithBaseRowWithoutVariant(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	orphanTransport(t, env)
	_, err := env.elements.CreateActivity(ctx, env.optionID, activityReq("Ferry", 1))
	require.NoError(t, err)

	require.NoError(t, env.trips.Delete(ctx, env.owner, env.tripID))

	for _, m := range []any{&model.Trip{}, &model.Option{}, &model.BaseElement{}, &model.ActivityElement{}} {
		assert.Equal(t, int64(0), countRows(t, env.db, m), "%T", m)
	}
}

func TestSectionService_DeleteKeepsSiblings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	other, err := env.sections.Create(ctx, env.tripID, &itinerary.CreateSectionRequest{Name: "Return", Order: intPtr(2)})
	require.NoError(t, err)
	otherOpt, err := env.options.Create(ctx, other.ID, &itinerary.CreateOptionRequest{Name: "Red-eye", Order: intPtr(1)})
	require.NoError(t, err)
	kept, err := env.elements.CreateTransport(ctx, otherOpt.ID, transportReq(1))
	require.NoError(t, err)
	_, err = env.elements.CreateActivity(ctx, env.optionID, activityReq("Lounge", 1))
	require.NoError(t, err)

	require.NoError(t, env.sections.Delete(ctx, env.sectionID))

	sections, err := env.sections.ListByTrip(ctx, env.tripID)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "Return", sections[0].Name)

	items, err := env.elements.GetElementsForOption(ctx, otherOpt.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].Base().ID)
	assert.Equal(t, int64(0), countRows(t, env.db, &model.ActivityElement{}))

	assert.True(t, itinerary.IsNotFound(env.sections.Delete(ctx, env.sectionID)))
}

func TestOptionService_UpdateAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	second, err := env.options.Create(ctx, env.sectionID, &itinerary.CreateOptionRequest{Name: "Via Reykjavik", Order: intPtr(5)})
	require.NoError(t, err)

	_, err = env.options.Update(ctx, second.ID, &itinerary.UpdateOptionRequest{Order: intPtr(0)})
	require.NoError(t, err)

	list, err := env.options.ListBySection(ctx, env.sectionID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Via Reykjavik", list[0].Name)
	assert.Equal(t, "Direct flight", list[1].Name)

	_, err = env.options.Create(ctx, env.sectionID, &itinerary.CreateOptionRequest{Name: "No order"})
	assert.True(t, itinerary.IsInvalidElementRequest(err))

	_, err = env.options.Create(ctx, uuid.New(), &itinerary.CreateOptionRequest{Name: "Orphan", Order: intPtr(1)})
	assert.True(t, itinerary.IsNotFound(err))

	node, err := env.options.GetTree(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, node.Order)
	assert.NotNil(t, node.Elements)
}

func TestAccess_ChecksOwnershipThroughChain(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	stranger := uuid.New()

	require.NoError(t, env.access.CheckTrip(ctx, env.owner, env.tripID))
	require.NoError(t, env.access.CheckSection(ctx, env.owner, env.sectionID))
	require.NoError(t, env.access.CheckOption(ctx, env.owner, env.optionID))

	assert.True(t, itinerary.IsNotFound(env.access.CheckTrip(ctx, stranger, env.tripID)))
	assert.True(t, itinerary.IsNotFound(env.access.CheckSection(ctx, stranger, env.sectionID)))
	assert.True(t, itinerary.IsNotFound(env.access.CheckOption(ctx, stranger, env.optionID)))
	assert.True(t, itinerary.IsNotFound(env.access.CheckOption(ctx, env.owner, uuid.New())))
}
