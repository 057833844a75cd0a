package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Leganyst/itinerary-planner/internal/itinerary"
)

// elementPath resolves :optionId (owned by the caller) and :elementId.
func (h *Handler) elementPath(c *gin.Context) (optionID, elementID uuid.UUID, ok bool) {
	optionID, ok = owned(c, "optionId", h.access.CheckOption)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	elementID, ok = pathID(c, "elementId")
	return optionID, elementID, ok
}

// GET /api/v1/options/:optionId/elements
func (h *Handler) ListElements(c *gin.Context) {
	optionID, ok := owned(c, "optionId", h.access.CheckOption)
	if !ok {
		return
	}
	items, err := h.elements.GetElementsForOption(c.Request.Context(), optionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/v1/options/:optionId/elements/:elementId returns one item, or two for an accommodation.
func (h *Handler) GetElement(c *gin.Context) {
	optionID, elementID, ok := h.elementPath(c)
	if !ok {
		return
	}
	items, err := h.elements.GetElement(c.Request.Context(), optionID, elementID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) DeleteElement(c *gin.Context) {
	optionID, elementID, ok := h.elementPath(c)
	if !ok {
		return
	}
	if err := h.elements.DeleteElement(c.Request.Context(), optionID, elementID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateTransport(c *gin.Context) {
	optionID, ok := owned(c, "optionId", h.access.CheckOption)
	if !ok {
		return
	}
	var req itinerary.CreateTransportRequest
	if !bind(c, &req) {
		return
	}
	item, err := h.elements.CreateTransport(c.Request.Context(), optionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) CreateActivity(c *gin.Context) {
	optionID, ok := owned(c, "optionId", h.access.CheckOption)
	if !ok {
		return
	}
	var req itinerary.CreateActivityRequest
	if !bind(c, &req) {
		return
	}
	item, err := h.elements.CreateActivity(c.Request.Context(), optionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// POST /api/v1/options/:optionId/elements/accommodation responds with [checkIn, checkOut].
func (h *Handler) CreateAccommodation(c *gin.Context) {
	optionID, ok := owned(c, "optionId", h.access.CheckOption)
	if !ok {
		return
	}
	var req itinerary.CreateAccommodationRequest
	if !bind(c, &req) {
		return
	}
	pair, err := h.elements.CreateAccommodation(c.Request.Context(), optionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pair)
}

func (h *Handler) UpdateTransport(c *gin.Context) {
	optionID, elementID, ok := h.elementPath(c)
	if !ok {
		return
	}
	var req itinerary.UpdateTransportRequest
	if !bind(c, &req) {
		return
	}
	item, err := h.elements.UpdateTransport(c.Request.Context(), optionID, elementID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) UpdateActivity(c *gin.Context) {
	optionID, elementID, ok := h.elementPath(c)
	if !ok {
		return
	}
	var req itinerary.UpdateActivityRequest
	if !bind(c, &req) {
		return
	}
	item, err := h.elements.UpdateActivity(c.Request.Context(), optionID, elementID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) UpdateAccommodation(c *gin.Context) {
	optionID, elementID, ok := h.elementPath(c)
	if !ok {
		return
	}
	var req itinerary.UpdateAccommodationRequest
	if !bind(c, &req) {
		return
	}
	pair, err := h.elements.UpdateAccommodation(c.Request.Context(), optionID, elementID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}
