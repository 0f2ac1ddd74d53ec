package http

import (
	"bytes"
	"context"
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
	"github.com/peermart/peermart/services/listings/mocks"
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

func TestCreateListing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockListingUC(ctrl)
	handler := NewListingHandler(mockUC)

	sellerID := uuid.New()
	mockUC.EXPECT().
		CreateListing(gomock.Any(), sellerID, gomock.Any()).
		Return(&models.Listing{ListingID: uuid.New(), SellerID: sellerID}, nil)

	c, rec := newContext(t, http.MethodPost, "/listings", map[string]interface{}{
		"title": "Road bike",
		"price": "450.00",
	})
	c.Set(middleware.ContextKeyUserID, sellerID.String())

	err := handler.CreateListing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateListing_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockListingUC(ctrl)
	handler := NewListingHandler(mockUC)

	c, rec := newContext(t, http.MethodPost, "/listings", map[string]interface{}{"title": "x"})

	err := handler.CreateListing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSearchListings_ParsesFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockListingUC(ctrl)
	handler := NewListingHandler(mockUC)

	mockUC.EXPECT().
		SearchListings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.ListingFilter) ([]*models.Listing, error) {
			assert.Equal(t, "bike", filter.Query)
			assert.Equal(t, models.ListingStatusActive, filter.Status)
			assert.NotNil(t, filter.MinPrice)
			assert.Equal(t, "100", filter.MinPrice.String())
			return []*models.Listing{}, nil
		})

	c, rec := newContext(t, http.MethodGet, "/listings?q=bike&status=active&min_price=100", nil)

	err := handler.SearchListings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchListings_BadPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockListingUC(ctrl)
	handler := NewListingHandler(mockUC)

	c, rec := newContext(t, http.MethodGet, "/listings?min_price=cheap", nil)

	err := handler.SearchListings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateListing_WrongOwnerMapsToForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockListingUC(ctrl)
	handler := NewListingHandler(mockUC)

	ownerID := uuid.New()
	listingID := uuid.New()
	mockUC.EXPECT().
		UpdateListing(gomock.Any(), ownerID, listingID, gomock.Any()).
		Return(nil, apperrors.Unauthorized("listing belongs to another seller"))

	c, rec := newContext(t, http.MethodPut, "/listings/"+listingID.String(), map[string]interface{}{
		"title": "New title",
	})
	c.Set(middleware.ContextKeyUserID, ownerID.String())
	c.SetParamNames("listingID")
	c.SetParamValues(listingID.String())

	err := handler.UpdateListing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateListingStatus_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockListingUC(ctrl)
	handler := NewListingHandler(mockUC)

	ownerID := uuid.New()
	listingID := uuid.New()
	mockUC.EXPECT().
		UpdateListingStatus(gomock.Any(), ownerID, listingID, models.ListingStatusClosed).
		Return(&models.Listing{ListingID: listingID, Status: models.ListingStatusClosed}, nil)

	c, rec := newContext(t, http.MethodPut, "/listings/"+listingID.String()+"/status", map[string]interface{}{
		"status": "closed",
	})
	c.Set(middleware.ContextKeyUserID, ownerID.String())
	c.SetParamNames("listingID")
	c.SetParamValues(listingID.String())

	err := handler.UpdateListingStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteListing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockListingUC(ctrl)
	handler := NewListingHandler(mockUC)

	ownerID := uuid.New()
	listingID := uuid.New()
	mockUC.EXPECT().
		DeleteListing(gomock.Any(), ownerID, listingID).
		Return(nil)

	c, rec := newContext(t, http.MethodDelete, "/listings/"+listingID.String(), nil)
	c.Set(middleware.ContextKeyUserID, ownerID.String())
	c.SetParamNames("listingID")
	c.SetParamValues(listingID.String())

	err := handler.DeleteListing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
