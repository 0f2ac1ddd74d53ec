package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/peermart/peermart/internal/pkg/logger"
	"github.com/peermart/peermart/internal/pkg/middleware"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/internal/utils"
	"github.com/peermart/peermart/services/disputes"
)

// DisputeHandler handles HTTP requests for dispute operations
type DisputeHandler struct {
	disputeUC disputes.DisputeUC
}

// NewDisputeHandler creates a new dispute HTTP handler
func NewDisputeHandler(disputeUC disputes.DisputeUC) *DisputeHandler {
	return &DisputeHandler{
		disputeUC: disputeUC,
	}
}

// OpenDispute files a dispute on one of the caller's transactions
func (h *DisputeHandler) OpenDispute(c echo.Context) error {
	openerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	var req models.OpenDisputeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	dispute, err := h.disputeUC.OpenDispute(c.Request().Context(), openerID, req)
	if err != nil {
		logger.Error("Failed to open dispute",
			logger.String("transaction_id", req.TransactionID.String()),
			logger.String("opener_id", openerID.String()),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Dispute opened successfully", dispute)
}

// GetDispute retrieves one dispute
func (h *DisputeHandler) GetDispute(c echo.Context) error {
	disputeID, err := uuid.Parse(c.Param("disputeID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid dispute ID")
	}

	dispute, err := h.disputeUC.GetDispute(c.Request().Context(), disputeID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Dispute retrieved successfully", dispute)
}

// ResolveDispute applies an admin's status decision
func (h *DisputeHandler) ResolveDispute(c echo.Context) error {
	adminID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	disputeID, err := uuid.Parse(c.Param("disputeID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid dispute ID")
	}

	var req models.ResolveDisputeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	dispute, err := h.disputeUC.ResolveDispute(c.Request().Context(), adminID, disputeID, req.Status)
	if err != nil {
		logger.Error("Failed to resolve dispute",
			logger.String("dispute_id", disputeID.String()),
			logger.String("admin_id", adminID.String()),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Dispute resolved successfully", dispute)
}

// ListDisputes returns the disputes visible to the caller
func (h *DisputeHandler) ListDisputes(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	result, err := h.disputeUC.ListDisputes(c.Request().Context(), callerID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Disputes retrieved successfully", result)
}
