package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
	"github.com/nrattyp233/moneybuddy/internal/utils"
	"github.com/nrattyp233/moneybuddy/services/savings"
)

// SavingsHandler handles HTTP requests for time-locked deposits
type SavingsHandler struct {
	savingsUC savings.UseCase
}

// NewSavingsHandler creates a new savings handler
func NewSavingsHandler(savingsUC savings.UseCase) *SavingsHandler {
	return &SavingsHandler{
		savingsUC: savingsUC,
	}
}

// Create handles lock creation requests
func (h *SavingsHandler) Create(c echo.Context) error {
	var req models.CreateSavingsLockRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	lock, err := h.savingsUC.Create(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Savings lock creation failed",
			logger.String("owner_account_id", req.OwnerAccountID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Savings lock created", lock)
}

// Break handles early-break requests
func (h *SavingsHandler) Break(c echo.Context) error {
	lockID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid savings lock ID")
	}

	var req struct {
		AccountID uuid.UUID `json:"account_id"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	lock, err := h.savingsUC.Break(c.Request().Context(), lockID, req.AccountID)
	if err != nil {
		logger.Warn("Savings lock break failed",
			logger.String("lock_id", lockID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Savings lock broken", lock)
}

// Withdraw handles post-maturity withdrawal requests
func (h *SavingsHandler) Withdraw(c echo.Context) error {
	lockID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid savings lock ID")
	}

	var req struct {
		AccountID uuid.UUID `json:"account_id"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	lock, err := h.savingsUC.Withdraw(c.Request().Context(), lockID, req.AccountID)
	if err != nil {
		logger.Warn("Savings lock withdrawal failed",
			logger.String("lock_id", lockID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Savings lock withdrawn", lock)
}

// Get handles lock retrieval requests
func (h *SavingsHandler) Get(c echo.Context) error {
	lockID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid savings lock ID")
	}

	lock, err := h.savingsUC.Get(c.Request().Context(), lockID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Savings lock retrieved", lock)
}
