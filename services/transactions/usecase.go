package transactions

import (
	"context"

	"github.com/google/uuid"
	"github.com/peermart/peermart/internal/pkg/models"
)

// TransactionUC defines the interface for transaction business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/peermart/peermart/services/transactions TransactionUC
type TransactionUC interface {
	CreateTransaction(ctx context.Context, buyerUserID uuid.UUID, req models.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, transactionID uuid.UUID, status models.TransactionStatus) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
}
