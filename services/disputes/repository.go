package disputes

import (
	"context"

	"github.com/google/uuid"
	"github.com/peermart/peermart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/peermart/peermart/services/disputes DisputeRepo

// TransactionParties identifies both sides of a disputed transaction
type TransactionParties struct {
	BuyerID  uuid.UUID `db:"buyer_id"`
	SellerID uuid.UUID `db:"seller_id"`
}

// DisputeRepo defines dispute persistence
type DisputeRepo interface {
	GetTransactionParties(ctx context.Context, transactionID uuid.UUID) (*TransactionParties, error)
	CreateDispute(ctx context.Context, dispute *models.Dispute) error
	GetDispute(ctx context.Context, disputeID uuid.UUID) (*models.Dispute, error)
	ResolveDispute(ctx context.Context, disputeID, adminID uuid.UUID, status models.DisputeStatus) (*models.Dispute, error)
	ListAll(ctx context.Context) ([]*models.Dispute, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Dispute, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}
