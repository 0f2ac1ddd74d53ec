package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/peermart/peermart/internal/pkg/apperrors"
	"github.com/peermart/peermart/internal/pkg/logger"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/services/transactions"
)

type transactionUC struct {
	cfg  *models.Config
	repo transactions.TransactionRepo
	gw   transactions.TransactionGW
}

// NewTransactionUC creates a new transaction use case
func NewTransactionUC(
	cfg *models.Config,
	repo transactions.TransactionRepo,
	gw transactions.TransactionGW,
) transactions.TransactionUC {
	return &transactionUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}

// CreateTransaction runs the atomic purchase unit and publishes the created
// event. The event is best-effort: the transaction is already committed, so
// a publish failure is logged rather than surfaced.
func (uc *transactionUC) CreateTransaction(ctx context.Context, buyerUserID uuid.UUID, req models.CreateTransactionRequest) (*models.Transaction, error) {
	if req.ListingID == uuid.Nil {
		return nil, apperrors.NotFound("listing")
	}
	if req.AgreedPrice.IsNegative() || req.ServFee.IsNegative() {
		return nil, apperrors.InvalidStatus("negative amount")
	}

	txn, err := uc.repo.CreateTransaction(ctx, buyerUserID, req.ListingID, req.AgreedPrice, req.ServFee)
	if err != nil {
		return nil, err
	}

	if err := uc.gw.PublishTransactionCreated(ctx, txn); err != nil {
		logger.Warn("Failed to publish transaction created event",
			logger.ErrorField(err),
			logger.String("transaction_id", txn.TransactionID.String()),
		)
	}

	logger.Info("Transaction created",
		logger.String("transaction_id", txn.TransactionID.String()),
		logger.String("listing_id", txn.ListingID.String()),
		logger.String("buyer_id", txn.BuyerID.String()),
	)
	return txn, nil
}

// GetTransaction retrieves a single transaction by ID
func (uc *transactionUC) GetTransaction(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	return uc.repo.GetTransaction(ctx, transactionID)
}

// UpdateTransactionStatus validates and applies a status transition
func (uc *transactionUC) UpdateTransactionStatus(ctx context.Context, transactionID uuid.UUID, status models.TransactionStatus) (*models.Transaction, error) {
	if !models.ValidTransactionStatus(status) {
		return nil, apperrors.InvalidStatus(string(status))
	}

	txn, err := uc.repo.UpdateTransactionStatus(ctx, transactionID, status)
	if err != nil {
		return nil, err
	}

	if err := uc.gw.PublishTransactionUpdated(ctx, txn); err != nil {
		logger.Warn("Failed to publish transaction updated event",
			logger.ErrorField(err),
			logger.String("transaction_id", txn.TransactionID.String()),
		)
	}
	return txn, nil
}

// ListTransactions returns transactions matching the filter, newest first
func (uc *transactionUC) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	return uc.repo.ListTransactions(ctx, filter)
}
