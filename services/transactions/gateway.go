package transactions

import (
	"context"

	"github.com/peermart/peermart/internal/pkg/models"
)

// TransactionGW defines the interface for transaction event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/peermart/peermart/services/transactions TransactionGW
type TransactionGW interface {
	PublishTransactionCreated(ctx context.Context, txn *models.Transaction) error
	PublishTransactionUpdated(ctx context.Context, txn *models.Transaction) error
}
