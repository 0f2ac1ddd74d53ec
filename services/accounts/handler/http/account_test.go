package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/peermart/peermart/internal/pkg/apperrors"
	"github.com/peermart/peermart/internal/pkg/middleware"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/services/accounts/mocks"
	"github.com/stretchr/testify/assert"
)

func newContext(t *testing.T, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	e := echo.New()
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAccountHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().
		GetProfile(gomock.Any(), userID).
		Return(&models.Profile{User: models.User{ID: userID}, Roles: models.RoleSet{IsSeller: true}}, nil)

	c, rec := newContext(t, http.MethodGet, "/profile", nil)
	c.Set(middleware.ContextKeyUserID, userID.String())

	err := handler.GetProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProfile_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAccountHandler(mockUC)

	c, rec := newContext(t, http.MethodGet, "/profile", nil)

	err := handler.GetProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAccountHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().
		UpdateProfile(gomock.Any(), userID, gomock.Any()).
		Return(&models.Profile{User: models.User{ID: userID, Address: "14 Dock Street"}}, nil)

	c, rec := newContext(t, http.MethodPut, "/profile", map[string]interface{}{
		"address": "14 Dock Street",
	})
	c.Set(middleware.ContextKeyUserID, userID.String())

	err := handler.UpdateProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddPaymentMethod_InvalidDetailsMapToBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAccountHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().
		AddPaymentMethod(gomock.Any(), userID, gomock.Any()).
		Return(nil, apperrors.InvalidStatus("bank_account"))

	c, rec := newContext(t, http.MethodPost, "/payment-methods", map[string]interface{}{
		"account_type":    "bank_account",
		"billing_address": "9 Pier Road",
		"cc_num":          "4111111111111111",
	})
	c.Set(middleware.ContextKeyUserID, userID.String())

	err := handler.AddPaymentMethod(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPaymentMethods_ReturnsMasked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAccountHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().
		ListPaymentMethods(gomock.Any(), userID).
		Return([]*models.PaymentMethod{
			{
				AccountID:   uuid.New(),
				AccountType: models.AccountTypeCard,
				Details:     &models.PaymentMethodDetails{CCNum: "****1111", ExpDate: "09/27"},
			},
		}, nil)

	c, rec := newContext(t, http.MethodGet, "/payment-methods", nil)
	c.Set(middleware.ContextKeyUserID, userID.String())

	err := handler.ListPaymentMethods(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "****1111")
	assert.NotContains(t, rec.Body.String(), "4111111111111111")
}

func TestDeletePaymentMethod_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAccountHandler(mockUC)

	c, rec := newContext(t, http.MethodDelete, "/payment-methods/bad", nil)
	c.Set(middleware.ContextKeyUserID, uuid.New().String())
	c.SetParamNames("accountID")
	c.SetParamValues("bad")

	err := handler.DeletePaymentMethod(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSellerSummary_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAccountHandler(mockUC)

	sellerID := uuid.New()
	mockUC.EXPECT().
		SellerSummary(gomock.Any(), sellerID).
		Return(&models.SellerSummary{TotalListings: 7, ActiveListings: 3}, nil)

	c, rec := newContext(t, http.MethodGet, "/summaries/sellers/"+sellerID.String(), nil)
	c.SetParamNames("userID")
	c.SetParamValues(sellerID.String())

	err := handler.SellerSummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTransactionDetail_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAccountHandler(mockUC)

	transactionID := uuid.New()
	mockUC.EXPECT().
		TransactionDetail(gomock.Any(), transactionID).
		Return(nil, apperrors.NotFound("transaction"))

	c, rec := newContext(t, http.MethodGet, "/transactions/"+transactionID.String()+"/detail", nil)
	c.SetParamNames("transactionID")
	c.SetParamValues(transactionID.String())

	err := handler.TransactionDetail(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
