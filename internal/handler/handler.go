package handler

import (
	"context"
	"log"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Leganyst/itinerary-planner/internal/auth"
	"github.com/Leganyst/itinerary-planner/internal/itinerary"
	"github.com/Leganyst/itinerary-planner/internal/service"
)

// Pinger reports whether the backing store answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	trips    *service.TripService
	sections *service.SectionService
	options  *service.OptionService
	elements *service.ElementService
	access   *service.Access
	db       Pinger
}

func New(
	trips *service.TripService,
	sections *service.SectionService,
	options *service.OptionService,
	elements *service.ElementService,
	access *service.Access,
	db Pinger,
) *Handler {
	return &Handler{
		trips:    trips,
		sections: sections,
		options:  options,
		elements: elements,
		access:   access,
		db:       db,
	}
}

type RouterConfig struct {
	JWTSecret   string
	CORSOrigins []string
}

func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), cors.New(corsConfig(cfg.CORSOrigins)))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "route not found", Code: "not_found"})
	})
	r.GET("/healthz", h.Health)

	api := r.Group("/api/v1", auth.Middleware(cfg.JWTSecret))
	{
		api.GET("/trips", h.ListTrips)
		api.POST("/trips", h.CreateTrip)
		api.GET("/trips/:tripId", h.GetTrip)
		api.PATCH("/trips/:tripId", h.UpdateTrip)
		api.DELETE("/trips/:tripId", h.DeleteTrip)
		api.GET("/trips/:tripId/tree", h.GetTripTree)

		api.GET("/trips/:tripId/sections", h.ListSections)
		api.POST("/trips/:tripId/sections", h.CreateSection)
		api.GET("/sections/:sectionId", h.GetSection)
		api.PATCH("/sections/:sectionId", h.UpdateSection)
		api.DELETE("/sections/:sectionId", h.DeleteSection)
		api.GET("/sections/:sectionId/tree", h.GetSectionTree)

		api.GET("/sections/:sectionId/options", h.ListOptions)
		api.POST("/sections/:sectionId/options", h.CreateOption)
		api.GET("/options/:optionId", h.GetOption)
		api.PATCH("/options/:optionId", h.UpdateOption)
		api.DELETE("/options/:optionId", h.DeleteOption)
		api.GET("/options/:optionId/tree", h.GetOptionTree)

		elements := api.Group("/options/:optionId/elements")
		elements.GET("", h.ListElements)
		elements.GET("/:elementId", h.GetElement)
		elements.DELETE("/:elementId", h.DeleteElement)
		elements.POST("/transport", h.CreateTransport)
		elements.POST("/activity", h.CreateActivity)
		elements.POST("/accommodation", h.CreateAccommodation)
		elements.PATCH("/transport/:elementId", h.UpdateTransport)
		elements.PATCH("/activity/:elementId", h.UpdateActivity)
		elements.PATCH("/accommodation/:elementId", h.UpdateAccommodation)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cc := cors.DefaultConfig()
	cc.AllowHeaders = append(cc.AllowHeaders, "Authorization")
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cc.AllowAllOrigins = true
		return cc
	}
	cc.AllowOrigins = origins
	cc.AllowCredentials = true
	return cc
}

func (h *Handler) Health(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondError maps the itinerary error kinds onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case itinerary.IsInvalidElementRequest(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
	case itinerary.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "not_found"})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: "internal_error"})
	}
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: name + " must be a UUID", Code: "invalid_request"})
		return uuid.Nil, false
	}
	return id, true
}

func caller(c *gin.Context) (uuid.UUID, bool) {
	id, err := auth.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Code: "unauthorized"})
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
