package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
	"github.com/nrattyp233/moneybuddy/internal/utils"
	"github.com/nrattyp233/moneybuddy/services/geofence"
)

// GeofenceHandler handles HTTP requests for conditional transfers
type GeofenceHandler struct {
	geofenceUC geofence.UseCase
}

// NewGeofenceHandler creates a new geofence handler
func NewGeofenceHandler(geofenceUC geofence.UseCase) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: geofenceUC,
	}
}

// Create handles fence creation requests
func (h *GeofenceHandler) Create(c echo.Context) error {
	var req models.CreateGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	fence, err := h.geofenceUC.Create(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Geofence creation failed",
			logger.String("owner_account_id", req.OwnerAccountID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Geofence created", fence)
}

// Claim handles proof-of-presence claim attempts
func (h *GeofenceHandler) Claim(c echo.Context) error {
	fenceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid geofence ID")
	}

	var req models.ClaimGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.GeofenceID = fenceID

	fence, err := h.geofenceUC.Claim(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Geofence claim failed",
			logger.String("geofence_id", fenceID.String()),
			logger.String("claimant_account_id", req.ClaimantAccountID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Geofence claimed", fence)
}

// Cancel handles owner cancellation requests
func (h *GeofenceHandler) Cancel(c echo.Context) error {
	fenceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid geofence ID")
	}

	var req struct {
		AccountID uuid.UUID `json:"account_id"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	fence, err := h.geofenceUC.Cancel(c.Request().Context(), fenceID, req.AccountID)
	if err != nil {
		logger.Warn("Geofence cancellation failed",
			logger.String("geofence_id", fenceID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Geofence cancelled", fence)
}

// Get handles fence retrieval requests
func (h *GeofenceHandler) Get(c echo.Context) error {
	fenceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid geofence ID")
	}

	fence, err := h.geofenceUC.Get(c.Request().Context(), fenceID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Geofence retrieved", fence)
}

// Nearby handles proximity search requests
func (h *GeofenceHandler) Nearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	radiusM := 0.0
	if raw := c.QueryParam("radius_m"); raw != "" {
		radiusM, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusM < 0 {
			return utils.BadRequestResponse(c, "Invalid radius")
		}
	}

	fences, err := h.geofenceUC.Nearby(c.Request().Context(),
		models.GeoPosition{Latitude: lat, Longitude: lng}, radiusM)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Geofences retrieved", fences)
}
