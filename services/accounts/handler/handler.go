package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/peermart/peermart/internal/pkg/middleware"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/services/accounts"
	httpHandler "github.com/peermart/peermart/services/accounts/handler/http"
)

// Handler combines all handlers for the accounts service
type Handler struct {
	accountHTTP *httpHandler.AccountHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	accountUC accounts.AccountUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		accountHTTP: httpHandler.NewAccountHandler(accountUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtMW *middleware.JWTMiddleware) {
	profile := e.Group("/profile", jwtMW.Handler())
	profile.GET("", h.accountHTTP.GetProfile)
	profile.PUT("", h.accountHTTP.UpdateProfile)
	profile.DELETE("", h.accountHTTP.DeactivateAccount)

	payments := e.Group("/payment-methods", jwtMW.Handler())
	payments.POST("/ensure", h.accountHTTP.EnsurePaymentAccount)
	payments.POST("", h.accountHTTP.AddPaymentMethod)
	payments.GET("", h.accountHTTP.ListPaymentMethods)
	payments.DELETE("/:accountID", h.accountHTTP.DeletePaymentMethod)

	summaries := e.Group("/summaries", jwtMW.Handler())
	summaries.GET("/sellers/:userID", h.accountHTTP.SellerSummary)
	summaries.GET("/buyers/:userID", h.accountHTTP.BuyerSummary)

	e.GET("/transactions/:transactionID/detail", h.accountHTTP.TransactionDetail, jwtMW.Handler())
}
