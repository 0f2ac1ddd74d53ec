package transactions

import (
	"context"

	"github.com/google/uuid"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// TransactionRepo defines the interface for transaction data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/peermart/peermart/services/transactions TransactionRepo
type TransactionRepo interface {
	// CreateTransaction runs the whole purchase unit atomically: it locks the
	// listing row, rejects duplicates and self purchases, provisions the
	// buyer's payment account and role when absent, inserts the transaction
	// and flips the listing to pending. Any failure rolls the unit back.
	CreateTransaction(ctx context.Context, buyerUserID, listingID uuid.UUID, agreedPrice, servFee decimal.Decimal) (*models.Transaction, error)
	GetTransaction(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, transactionID uuid.UUID, status models.TransactionStatus) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
}
