package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Leganyst/itinerary-planner/internal/itinerary"
)

// GET /api/v1/trips?page=&pageSize=
func (h *Handler) ListTrips(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	page, err := h.trips.ListByOwner(c.Request.Context(), userID, queryInt(c, "page"), queryInt(c, "pageSize"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// POST /api/v1/trips
func (h *Handler) CreateTrip(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	var req itinerary.CreateTripRequest
	if !bind(c, &req) {
		return
	}
	trip, err := h.trips.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func (h *Handler) GetTrip(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	trip, err := h.trips.Get(c.Request.Context(), userID, tripID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *Handler) UpdateTrip(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	var req itinerary.UpdateTripRequest
	if !bind(c, &req) {
		return
	}
	trip, err := h.trips.Update(c.Request.Context(), userID, tripID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *Handler) DeleteTrip(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	if err := h.trips.Delete(c.Request.Context(), userID, tripID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/v1/trips/:tripId/tree returns sections, options and elements, each level ordered.
func (h *Handler) GetTripTree(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "tripId")
	if !ok {
		return
	}
	tree, err := h.trips.GetTree(c.Request.Context(), userID, tripID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}
