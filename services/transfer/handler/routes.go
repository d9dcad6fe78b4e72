package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nrattyp233/moneybuddy/services/transfer"
)

// Handler coordinates the wallet HTTP handlers
type Handler struct {
	walletHandler *WalletHandler
}

// NewHandler creates and initializes the wallet handlers
func NewHandler(transferUC transfer.UseCase) *Handler {
	return &Handler{
		walletHandler: NewWalletHandler(transferUC),
	}
}

// RegisterRoutes registers the wallet routes on the given group
func (h *Handler) RegisterRoutes(g *echo.Group) {
	walletGroup := g.Group("/wallet")
	walletGroup.POST("/deposit", h.walletHandler.Deposit)
	walletGroup.POST("/withdraw", h.walletHandler.Withdraw)
	walletGroup.POST("/transfer", h.walletHandler.Transfer)
	walletGroup.POST("/reconcile", h.walletHandler.Reconcile)
	walletGroup.GET("/:id/balance", h.walletHandler.GetBalance)
	walletGroup.GET("/:id/transactions", h.walletHandler.ListTransactions)
}
