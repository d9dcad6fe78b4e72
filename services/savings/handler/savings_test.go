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
	"github.com/nrattyp233/moneybuddy/services/savings/mocks"
)

func newSavingsTest(t *testing.T) (*mocks.MockUseCase, *SavingsHandler, *echo.Echo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockUseCase(ctrl)
	return uc, NewSavingsHandler(uc), echo.New()
}

func TestCreateHandler_Success(t *testing.T) {
	uc, h, e := newSavingsTest(t)

	uc.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&models.SavingsLock{
			ID:        uuid.New(),
			Principal: 100000,
			RateBps:   200,
			State:     models.SavingsStateActive,
		}, nil)

	body := `{"owner_account_id":"11111111-1111-1111-1111-111111111111",` +
		`"amount":100000,"term_months":3}`
	req := httptest.NewRequest(http.MethodPost, "/savings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Create(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rate_bps":200`)
}

func TestCreateHandler_UnsupportedTerm(t *testing.T) {
	uc, h, e := newSavingsTest(t)

	uc.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrUnsupportedLockTerm)

	body := `{"owner_account_id":"11111111-1111-1111-1111-111111111111",` +
		`"amount":100000,"term_months":5}`
	req := httptest.NewRequest(http.MethodPost, "/savings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Create(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestWithdrawHandler_NotMatured(t *testing.T) {
	uc, h, e := newSavingsTest(t)

	lockID := uuid.New()
	ownerID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	uc.EXPECT().Withdraw(gomock.Any(), lockID, ownerID).
		Return(nil, apperrors.ErrLockNotMatured)

	body := `{"account_id":"11111111-1111-1111-1111-111111111111"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/savings/:id/withdraw")
	c.SetParamNames("id")
	c.SetParamValues(lockID.String())

	err := h.Withdraw(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBreakHandler_InvalidLockID(t *testing.T) {
	_, h, e := newSavingsTest(t)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/savings/:id/break")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Break(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
