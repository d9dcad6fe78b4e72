package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nrattyp233/moneybuddy/services/savings"
)

// Handler coordinates the savings HTTP handlers
type Handler struct {
	savingsHandler *SavingsHandler
}

// NewHandler creates and initializes the savings handlers
func NewHandler(savingsUC savings.UseCase) *Handler {
	return &Handler{
		savingsHandler: NewSavingsHandler(savingsUC),
	}
}

// RegisterRoutes registers the savings routes on the given group
func (h *Handler) RegisterRoutes(g *echo.Group) {
	lockGroup := g.Group("/savings")
	lockGroup.POST("", h.savingsHandler.Create)
	lockGroup.GET("/:id", h.savingsHandler.Get)
	lockGroup.POST("/:id/break", h.savingsHandler.Break)
	lockGroup.POST("/:id/withdraw", h.savingsHandler.Withdraw)
}
