package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/peermart/peermart/internal/pkg/middleware"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/services/transactions"
	httpHandler "github.com/peermart/peermart/services/transactions/handler/http"
)

// Handler combines all handlers for the transactions service
type Handler struct {
	transactionHTTP *httpHandler.TransactionHandler
	cfg             *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	transactionUC transactions.TransactionUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		transactionHTTP: httpHandler.NewTransactionHandler(transactionUC),
		cfg:             cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtMW *middleware.JWTMiddleware) {
	group := e.Group("/transactions", jwtMW.Handler())

	group.POST("", h.transactionHTTP.CreateTransaction)
	group.GET("", h.transactionHTTP.ListTransactions)
	group.GET("/:transactionID", h.transactionHTTP.GetTransaction)
	group.PUT("/:transactionID/status", h.transactionHTTP.UpdateTransactionStatus)
}
