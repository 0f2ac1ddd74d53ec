package utils_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/peermart/peermart/internal/pkg/apperrors"
	"github.com/peermart/peermart/internal/utils"
	"github.com/stretchr/testify/assert"
)

func performAppError(t *testing.T, err error) (*httptest.ResponseRecorder, utils.ErrorResponse) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, utils.AppErrorResponse(c, err))

	var body utils.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestAppErrorResponse_NotFound(t *testing.T) {
	rec, body := performAppError(t, apperrors.NotFound("transaction"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", body.Code)
	assert.Equal(t, "transaction not found", body.Error)
	assert.False(t, body.Retryable)
}

func TestAppErrorResponse_ConflictIsRetryable(t *testing.T) {
	rec, body := performAppError(t, apperrors.Conflict("listing is no longer available"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", body.Code)
	assert.True(t, body.Retryable)
}

func TestAppErrorResponse_StoreErrorHidesDetail(t *testing.T) {
	rec, body := performAppError(t, apperrors.Store(errors.New("pq: relation missing")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "store_error", body.Code)
	assert.Equal(t, "Internal server error", body.Error)
	assert.NotContains(t, body.Error, "pq:")
}

func TestAppErrorResponse_SelfTransaction(t *testing.T) {
	rec, body := performAppError(t, apperrors.SelfTransaction())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "self_transaction", body.Code)
}
