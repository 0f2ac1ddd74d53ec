package gateway

import (
	"context"
	"encoding/json"

	"github.com/peermart/peermart/internal/pkg/constants"
	"github.com/peermart/peermart/internal/pkg/models"
	natspkg "github.com/peermart/peermart/internal/pkg/nats"
	"github.com/peermart/peermart/services/transactions"
)

// TransactionGW handles NATS publishing for transaction events
type TransactionGW struct {
	natsClient *natspkg.Client
}

// NewTransactionGW creates a new transaction gateway
func NewTransactionGW(client *natspkg.Client) transactions.TransactionGW {
	return &TransactionGW{
		natsClient: client,
	}
}

// PublishTransactionCreated publishes a transaction created event
func (g *TransactionGW) PublishTransactionCreated(ctx context.Context, txn *models.Transaction) error {
	data, err := json.Marshal(txn)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectTransactionCreated, data)
}

// PublishTransactionUpdated publishes a transaction status change event
func (g *TransactionGW) PublishTransactionUpdated(ctx context.Context, txn *models.Transaction) error {
	data, err := json.Marshal(txn)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectTransactionUpdated, data)
}
