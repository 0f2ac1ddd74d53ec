package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/peermart/peermart/internal/pkg/logger"
	"github.com/peermart/peermart/internal/pkg/middleware"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/internal/utils"
	"github.com/peermart/peermart/services/listings"
	"github.com/shopspring/decimal"
)

// ListingHandler handles HTTP requests for listing operations
type ListingHandler struct {
	listingUC listings.ListingUC
}

// NewListingHandler creates a new listing HTTP handler
func NewListingHandler(listingUC listings.ListingUC) *ListingHandler {
	return &ListingHandler{
		listingUC: listingUC,
	}
}

// CreateListing posts a new listing for the caller
func (h *ListingHandler) CreateListing(c echo.Context) error {
	sellerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	var req models.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	listing, err := h.listingUC.CreateListing(c.Request().Context(), sellerID, req)
	if err != nil {
		logger.Error("Failed to create listing",
			logger.String("seller_id", sellerID.String()),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Listing created successfully", listing)
}

// GetListing retrieves one listing
func (h *ListingHandler) GetListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("listingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid listing ID")
	}

	listing, err := h.listingUC.GetListing(c.Request().Context(), listingID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Listing retrieved successfully", listing)
}

// SearchListings returns listings matching the query parameters
func (h *ListingHandler) SearchListings(c echo.Context) error {
	var filter models.ListingFilter
	filter.Query = c.QueryParam("q")
	filter.Tag = c.QueryParam("tag")
	filter.Status = models.ListingStatus(c.QueryParam("status"))

	if v := c.QueryParam("seller_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid seller ID")
		}
		filter.SellerID = &id
	}
	if v := c.QueryParam("min_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid minimum price")
		}
		filter.MinPrice = &price
	}
	if v := c.QueryParam("max_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid maximum price")
		}
		filter.MaxPrice = &price
	}

	results, err := h.listingUC.SearchListings(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Listings retrieved successfully", results)
}

// UpdateListing applies the caller's listing changes
func (h *ListingHandler) UpdateListing(c echo.Context) error {
	ownerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	listingID, err := uuid.Parse(c.Param("listingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid listing ID")
	}

	var req models.UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	listing, err := h.listingUC.UpdateListing(c.Request().Context(), ownerID, listingID, req)
	if err != nil {
		logger.Error("Failed to update listing",
			logger.String("listing_id", listingID.String()),
			logger.String("seller_id", ownerID.String()),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Listing updated successfully", listing)
}

// UpdateListingStatus moves the caller's listing to a new status
func (h *ListingHandler) UpdateListingStatus(c echo.Context) error {
	ownerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	listingID, err := uuid.Parse(c.Param("listingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid listing ID")
	}

	var req struct {
		Status models.ListingStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	listing, err := h.listingUC.UpdateListingStatus(c.Request().Context(), ownerID, listingID, req.Status)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Listing status updated successfully", listing)
}

// DeleteListing removes the caller's listing
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	ownerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	listingID, err := uuid.Parse(c.Param("listingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid listing ID")
	}

	if err := h.listingUC.DeleteListing(c.Request().Context(), ownerID, listingID); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Listing deleted successfully", nil)
}
