package gateway

import (
	"context"
	"encoding/json"

	"github.com/peermart/peermart/internal/pkg/constants"
	"github.com/peermart/peermart/internal/pkg/models"
	natspkg "github.com/peermart/peermart/internal/pkg/nats"
	"github.com/peermart/peermart/services/disputes"
)

// DisputeGW publishes dispute events to NATS
type DisputeGW struct {
	natsClient *natspkg.Client
}

// NewDisputeGW creates a new dispute gateway
func NewDisputeGW(natsClient *natspkg.Client) disputes.DisputeGW {
	return &DisputeGW{
		natsClient: natsClient,
	}
}

// PublishDisputeOpened publishes a dispute opened event
func (g *DisputeGW) PublishDisputeOpened(ctx context.Context, dispute *models.Dispute) error {
	data, err := json.Marshal(dispute)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectDisputeOpened, data)
}

// PublishDisputeResolved publishes a dispute resolved event
func (g *DisputeGW) PublishDisputeResolved(ctx context.Context, dispute *models.Dispute) error {
	data, err := json.Marshal(dispute)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectDisputeResolved, data)
}
