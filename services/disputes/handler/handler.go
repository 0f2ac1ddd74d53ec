package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/peermart/peermart/internal/pkg/middleware"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/services/disputes"
	httpHandler "github.com/peermart/peermart/services/disputes/handler/http"
)

// Handler combines all handlers for the disputes service
type Handler struct {
	disputeHTTP *httpHandler.DisputeHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	disputeUC disputes.DisputeUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		disputeHTTP: httpHandler.NewDisputeHandler(disputeUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtMW *middleware.JWTMiddleware) {
	group := e.Group("/disputes", jwtMW.Handler())

	group.POST("", h.disputeHTTP.OpenDispute)
	group.GET("", h.disputeHTTP.ListDisputes)
	group.GET("/:disputeID", h.disputeHTTP.GetDispute)
	group.PUT("/:disputeID/resolve", h.disputeHTTP.ResolveDispute)
}
