package disputes

import (
	"context"

	"github.com/google/uuid"
	"github.com/peermart/peermart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/peermart/peermart/services/disputes DisputeUC

// DisputeUC defines the dispute service business logic
type DisputeUC interface {
	OpenDispute(ctx context.Context, openerUserID uuid.UUID, req models.OpenDisputeRequest) (*models.Dispute, error)
	GetDispute(ctx context.Context, disputeID uuid.UUID) (*models.Dispute, error)
	ResolveDispute(ctx context.Context, adminUserID, disputeID uuid.UUID, status models.DisputeStatus) (*models.Dispute, error)
	ListDisputes(ctx context.Context, callerUserID uuid.UUID) ([]*models.Dispute, error)
}
