package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/peermart/peermart/internal/pkg/middleware"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/services/listings"
	httpHandler "github.com/peermart/peermart/services/listings/handler/http"
)

// Handler combines all handlers for the listings service
type Handler struct {
	listingHTTP *httpHandler.ListingHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	listingUC listings.ListingUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		listingHTTP: httpHandler.NewListingHandler(listingUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, jwtMW *middleware.JWTMiddleware) {
	group := e.Group("/listings", jwtMW.Handler())

	group.POST("", h.listingHTTP.CreateListing)
	group.GET("", h.listingHTTP.SearchListings)
	group.GET("/:listingID", h.listingHTTP.GetListing)
	group.PUT("/:listingID", h.listingHTTP.UpdateListing)
	group.PUT("/:listingID/status", h.listingHTTP.UpdateListingStatus)
	group.DELETE("/:listingID", h.listingHTTP.DeleteListing)
}
