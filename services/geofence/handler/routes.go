package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nrattyp233/moneybuddy/services/geofence"
)

// Handler coordinates the geofence HTTP handlers
type Handler struct {
	geofenceHandler *GeofenceHandler
}

// NewHandler creates and initializes the geofence handlers
func NewHandler(geofenceUC geofence.UseCase) *Handler {
	return &Handler{
		geofenceHandler: NewGeofenceHandler(geofenceUC),
	}
}

// RegisterRoutes registers the geofence routes on the given group
func (h *Handler) RegisterRoutes(g *echo.Group) {
	fenceGroup := g.Group("/geofences")
	fenceGroup.POST("", h.geofenceHandler.Create)
	fenceGroup.GET("/nearby", h.geofenceHandler.Nearby)
	fenceGroup.GET("/:id", h.geofenceHandler.Get)
	fenceGroup.POST("/:id/claim", h.geofenceHandler.Claim)
	fenceGroup.POST("/:id/cancel", h.geofenceHandler.Cancel)
}
