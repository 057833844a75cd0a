package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Leganyst/itinerary-planner/internal/itinerary"
)

type ownerCheck func(ctx context.Context, userID, id uuid.UUID) error

// owned parses the path id and verifies the caller owns the resource behind it.
func owned(c *gin.Context, param string, check ownerCheck) (uuid.UUID, bool) {
	userID, ok := caller(c)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := pathID(c, param)
	if !ok {
		return uuid.Nil, false
	}
	if err := check(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) ListSections(c *gin.Context) {
	tripID, ok := owned(c, "tripId", h.access.CheckTrip)
	if !ok {
		return
	}
	sections, err := h.sections.ListByTrip(c.Request.Context(), tripID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (h *Handler) CreateSection(c *gin.Context) {
	tripID, ok := owned(c, "tripId", h.access.CheckTrip)
	if !ok {
		return
	}
	var req itinerary.CreateSectionRequest
	if !bind(c, &req) {
		return
	}
	section, err := h.sections.Create(c.Request.Context(), tripID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, section)
}

func (h *Handler) GetSection(c *gin.Context) {
	sectionID, ok := owned(c, "sectionId", h.access.CheckSection)
	if !ok {
		return
	}
	section, err := h.sections.Get(c.Request.Context(), sectionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (h *Handler) UpdateSection(c *gin.Context) {
	sectionID, ok := owned(c, "sectionId", h.access.CheckSection)
	if !ok {
		return
	}
	var req itinerary.UpdateSectionRequest
	if !bind(c, &req) {
		return
	}
	section, err := h.sections.Update(c.Request.Context(), sectionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (h *Handler) DeleteSection(c *gin.Context) {
	sectionID, ok := owned(c, "sectionId", h.access.CheckSection)
	if !ok {
		return
	}
	if err := h.sections.Delete(c.Request.Context(), sectionID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetSectionTree(c *gin.Context) {
	sectionID, ok := owned(c, "sectionId", h.access.CheckSection)
	if !ok {
		return
	}
	tree, err := h.sections.GetTree(c.Request.Context(), sectionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

func (h *Handler) ListOptions(c *gin.Context) {
	sectionID, ok := owned(c, "sectionId", h.access.CheckSection)
	if !ok {
		return
	}
	options, err := h.options.ListBySection(c.Request.Context(), sectionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

func (h *Handler) CreateOption(c *gin.Context) {
	sectionID, ok := owned(c, "sectionId", h.access.CheckSection)
	if !ok {
		return
	}
	var req itinerary.CreateOptionRequest
	if !bind(c, &req) {
		return
	}
	option, err := h.options.Create(c.Request.Context(), sectionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, option)
}

func (h *Handler) GetOption(c *gin.Context) {
	optionID, ok := owned(c, "optionId", h.access.CheckOption)
	if !ok {
		return
	}
	option, err := h.options.Get(c.Request.Context(), optionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, option)
}

func (h *Handler) UpdateOption(c *gin.Context) {
	optionID, ok := owned(c, "optionId", h.access.CheckOption)
	if !ok {
		return
	}
	var req itinerary.UpdateOptionRequest
	if !bind(c, &req) {
		return
	}
	option, err := h.options.Update(c.Request.Context(), optionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, option)
}

func (h *Handler) DeleteOption(c *gin.Context) {
	optionID, ok := owned(c, "optionId", h.access.CheckOption)
	if !ok {
		return
	}
	if err := h.options.Delete(c.Request.Context(), optionID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetOptionTree(c *gin.Context) {
	optionID, ok := owned(c, "optionId", h.access.CheckOption)
	if !ok {
		return
	}
	tree, err := h.options.GetTree(c.Request.Context(), optionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}
