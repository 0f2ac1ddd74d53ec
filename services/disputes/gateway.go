package disputes

import (
	"context"

	"github.com/peermart/peermart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/peermart/peermart/services/disputes DisputeGW

// DisputeGW publishes dispute lifecycle events
type DisputeGW interface {
	PublishDisputeOpened(ctx context.Context, dispute *models.Dispute) error
	PublishDisputeResolved(ctx context.Context, dispute *models.Dispute) error
}
