package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/nrattyp233/moneybuddy/internal/pkg/apperrors"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
	"github.com/nrattyp233/moneybuddy/services/transfer/mocks"
)

func newWalletTest(t *testing.T) (*mocks.MockUseCase, *WalletHandler, *echo.Echo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockUseCase(ctrl)
	return uc, NewWalletHandler(uc), echo.New()
}

func TestTransferHandler_Success(t *testing.T) {
	uc, h, e := newWalletTest(t)

	uc.EXPECT().Transfer(gomock.Any(), gomock.Any()).
		Return(&models.Transaction{
			ID:     uuid.New(),
			Amount: 5000,
			Fee:    100,
			Status: models.TransactionStatusCompleted,
		}, nil)

	body := `{"from_account_id":"11111111-1111-1111-1111-111111111111",` +
		`"to_account_id":"22222222-2222-2222-2222-222222222222","amount":5000}`
	req := httptest.NewRequest(http.MethodPost, "/wallet/transfer", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Transfer(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestTransferHandler_InsufficientFunds(t *testing.T) {
	uc, h, e := newWalletTest(t)

	uc.EXPECT().Transfer(gomock.Any(), gomock.Any()).
		Return(nil, &apperrors.InsufficientFundsError{Required: 5100, Available: 4000})

	body := `{"from_account_id":"11111111-1111-1111-1111-111111111111",` +
		`"to_account_id":"22222222-2222-2222-2222-222222222222","amount":5000}`
	req := httptest.NewRequest(http.MethodPost, "/wallet/transfer", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Transfer(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), `"shortfall":1100`)
}

func TestTransferHandler_InvalidPayload(t *testing.T) {
	_, h, e := newWalletTest(t)

	req := httptest.NewRequest(http.MethodPost, "/wallet/transfer", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Transfer(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBalanceHandler(t *testing.T) {
	uc, h, e := newWalletTest(t)

	accountID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	uc.EXPECT().GetBalance(gomock.Any(), accountID).
		Return(models.Money{Amount: 12345, Currency: "USD"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/wallet/:id/balance")
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	err := h.GetBalance(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amount":12345`)
}

func TestGetBalanceHandler_BadID(t *testing.T) {
	_, h, e := newWalletTest(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/wallet/:id/balance")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.GetBalance(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
