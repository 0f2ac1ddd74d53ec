package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/peermart/peermart/internal/pkg/logger"
	"github.com/peermart/peermart/internal/pkg/middleware"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/internal/utils"
	"github.com/peermart/peermart/services/transactions"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionUC transactions.TransactionUC
}

// NewTransactionHandler creates a new transaction HTTP handler
func NewTransactionHandler(transactionUC transactions.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
	}
}

// CreateTransaction handles the purchase request for a listing
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	buyerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	txn, err := h.transactionUC.CreateTransaction(c.Request().Context(), buyerID, req)
	if err != nil {
		logger.Error("Failed to create transaction",
			logger.String("listing_id", req.ListingID.String()),
			logger.String("buyer_id", buyerID.String()),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", txn)
}

// GetTransaction handles retrieval of a single transaction
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	transactionID, err := uuid.Parse(c.Param("transactionID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	txn, err := h.transactionUC.GetTransaction(c.Request().Context(), transactionID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", txn)
}

// UpdateTransactionStatus handles a status transition request
func (h *TransactionHandler) UpdateTransactionStatus(c echo.Context) error {
	transactionID, err := uuid.Parse(c.Param("transactionID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req models.UpdateTransactionStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	txn, err := h.transactionUC.UpdateTransactionStatus(c.Request().Context(), transactionID, req.Status)
	if err != nil {
		logger.Error("Failed to update transaction status",
			logger.String("transaction_id", transactionID.String()),
			logger.String("status", string(req.Status)),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction status updated successfully", txn)
}

// ListTransactions handles listing transactions with optional filters
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var filter models.TransactionFilter

	if v := c.QueryParam("buyer_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid buyer ID")
		}
		filter.BuyerID = &id
	}
	if v := c.QueryParam("seller_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid seller ID")
		}
		filter.SellerID = &id
	}
	if v := c.QueryParam("status"); v != "" {
		filter.Status = models.TransactionStatus(v)
	}

	txns, err := h.transactionUC.ListTransactions(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", txns)
}
