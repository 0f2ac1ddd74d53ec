package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/peermart/peermart/internal/pkg/logger"
	"github.com/peermart/peermart/internal/pkg/middleware"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/internal/utils"
	"github.com/peermart/peermart/services/accounts"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	accountUC accounts.AccountUC
}

// NewAccountHandler creates a new account HTTP handler
func NewAccountHandler(accountUC accounts.AccountUC) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
	}
}

// GetProfile returns the caller's profile with role flags
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	profile, err := h.accountUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfile applies the caller's profile changes
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	profile, err := h.accountUC.UpdateProfile(c.Request().Context(), userID, req)
	if err != nil {
		logger.Error("Failed to update profile",
			logger.String("user_id", userID.String()),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", profile)
}

// DeactivateAccount soft-deletes the caller's account
func (h *AccountHandler) DeactivateAccount(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	if err := h.accountUC.DeactivateAccount(c.Request().Context(), userID); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Account deactivated successfully", nil)
}

// EnsurePaymentAccount provisions the caller's payment account if missing
func (h *AccountHandler) EnsurePaymentAccount(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	account, err := h.accountUC.EnsurePaymentAccount(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment account ready", account)
}

// AddPaymentMethod stores a new payment instrument for the caller
func (h *AccountHandler) AddPaymentMethod(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	var req models.AddPaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	method, err := h.accountUC.AddPaymentMethod(c.Request().Context(), userID, req)
	if err != nil {
		logger.Error("Failed to add payment method",
			logger.String("user_id", userID.String()),
			logger.String("account_type", string(req.AccountType)),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Payment method added successfully", method)
}

// ListPaymentMethods returns the caller's payment instruments, masked
func (h *AccountHandler) ListPaymentMethods(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	methods, err := h.accountUC.ListPaymentMethods(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment methods retrieved successfully", methods)
}

// DeletePaymentMethod removes one of the caller's payment instruments
func (h *AccountHandler) DeletePaymentMethod(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user identity")
	}

	accountID, err := uuid.Parse(c.Param("accountID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid account ID")
	}

	if err := h.accountUC.DeletePaymentMethod(c.Request().Context(), userID, accountID); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment method deleted successfully", nil)
}

// SellerSummary returns a seller's aggregate listing and sales figures
func (h *AccountHandler) SellerSummary(c echo.Context) error {
	sellerID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	summary, err := h.accountUC.SellerSummary(c.Request().Context(), sellerID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Seller summary retrieved successfully", summary)
}

// BuyerSummary returns a buyer's aggregate purchase figures
func (h *AccountHandler) BuyerSummary(c echo.Context) error {
	buyerID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	summary, err := h.accountUC.BuyerSummary(c.Request().Context(), buyerID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Buyer summary retrieved successfully", summary)
}

// TransactionDetail returns the transaction with both billing addresses
func (h *AccountHandler) TransactionDetail(c echo.Context) error {
	transactionID, err := uuid.Parse(c.Param("transactionID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	detail, err := h.accountUC.TransactionDetail(c.Request().Context(), transactionID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transaction detail retrieved successfully", detail)
}
