package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
	"github.com/nrattyp233/moneybuddy/internal/utils"
	"github.com/nrattyp233/moneybuddy/services/transfer"
)

// WalletHandler handles HTTP requests for wallet operations
type WalletHandler struct {
	transferUC transfer.UseCase
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(transferUC transfer.UseCase) *WalletHandler {
	return &WalletHandler{
		transferUC: transferUC,
	}
}

// Deposit handles wallet funding requests
func (h *WalletHandler) Deposit(c echo.Context) error {
	var req models.DepositRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txn, err := h.transferUC.Deposit(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Deposit failed",
			logger.String("account_id", req.AccountID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Deposit recorded", txn)
}

// Withdraw handles wallet withdrawal requests
func (h *WalletHandler) Withdraw(c echo.Context) error {
	var req models.WithdrawRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txn, err := h.transferUC.Withdraw(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Withdrawal failed",
			logger.String("account_id", req.AccountID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Withdrawal recorded", txn)
}

// Transfer handles peer transfer requests
func (h *WalletHandler) Transfer(c echo.Context) error {
	var req models.TransferRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txn, err := h.transferUC.Transfer(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Transfer failed",
			logger.String("from_account_id", req.FromAccountID.String()),
			logger.String("to_account_id", req.ToAccountID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transfer completed", txn)
}

// Reconcile handles processor settlement webhooks
func (h *WalletHandler) Reconcile(c echo.Context) error {
	var req models.ReconcileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txn, err := h.transferUC.Reconcile(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Reconciliation failed",
			logger.String("processor_ref", req.ProcessorRef),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Settlement reconciled", txn)
}

// GetBalance handles balance retrieval requests
func (h *WalletHandler) GetBalance(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid account ID")
	}

	balance, err := h.transferUC.GetBalance(c.Request().Context(), accountID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved", balance)
}

// ListTransactions handles transaction history requests
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid account ID")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
	}

	txns, err := h.transferUC.ListTransactions(c.Request().Context(), accountID, limit)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", txns)
}
