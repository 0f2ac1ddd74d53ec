package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/peermart/peermart/internal/pkg/apperrors"
	"github.com/peermart/peermart/internal/pkg/logger"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/services/disputes"
)

type disputeUC struct {
	cfg  *models.Config
	repo disputes.DisputeRepo
	gw   disputes.DisputeGW
}

// NewDisputeUC creates a new dispute use case
func NewDisputeUC(
	cfg *models.Config,
	repo disputes.DisputeRepo,
	gw disputes.DisputeGW,
) disputes.DisputeUC {
	return &disputeUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}

// OpenDispute files a dispute against a transaction. Only the buyer or the
// seller on that transaction may open one.
func (uc *disputeUC) OpenDispute(ctx context.Context, openerUserID uuid.UUID, req models.OpenDisputeRequest) (*models.Dispute, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.InvalidStatus("empty description")
	}

	parties, err := uc.repo.GetTransactionParties(ctx, req.TransactionID)
	if err != nil {
		return nil, err
	}
	if openerUserID != parties.BuyerID && openerUserID != parties.SellerID {
		return nil, apperrors.Unauthorized("only transaction participants may open a dispute")
	}

	dispute := &models.Dispute{
		DisputeID:     uuid.New(),
		TransactionID: req.TransactionID,
		Description:   req.Description,
		Status:        models.DisputeStatusUnsolved,
	}
	if err := uc.repo.CreateDispute(ctx, dispute); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishDisputeOpened(ctx, dispute); err != nil {
		logger.Warn("Failed to publish dispute opened event",
			logger.ErrorField(err),
			logger.String("dispute_id", dispute.DisputeID.String()),
		)
	}

	logger.Info("Dispute opened",
		logger.String("dispute_id", dispute.DisputeID.String()),
		logger.String("transaction_id", req.TransactionID.String()),
		logger.String("opener_id", openerUserID.String()),
	)
	return dispute, nil
}

// GetDispute retrieves a single dispute
func (uc *disputeUC) GetDispute(ctx context.Context, disputeID uuid.UUID) (*models.Dispute, error) {
	return uc.repo.GetDispute(ctx, disputeID)
}

// ResolveDispute applies an admin's status decision
func (uc *disputeUC) ResolveDispute(ctx context.Context, adminUserID, disputeID uuid.UUID, status models.DisputeStatus) (*models.Dispute, error) {
	if !models.ValidDisputeStatus(status) {
		return nil, apperrors.InvalidStatus(string(status))
	}

	isAdmin, err := uc.repo.IsAdmin(ctx, adminUserID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, apperrors.Unauthorized("only admins may resolve disputes")
	}

	dispute, err := uc.repo.ResolveDispute(ctx, disputeID, adminUserID, status)
	if err != nil {
		return nil, err
	}

	if err := uc.gw.PublishDisputeResolved(ctx, dispute); err != nil {
		logger.Warn("Failed to publish dispute resolved event",
			logger.ErrorField(err),
			logger.String("dispute_id", dispute.DisputeID.String()),
		)
	}
	return dispute, nil
}

// ListDisputes returns all disputes for admins, or the caller's own
func (uc *disputeUC) ListDisputes(ctx context.Context, callerUserID uuid.UUID) ([]*models.Dispute, error) {
	isAdmin, err := uc.repo.IsAdmin(ctx, callerUserID)
	if err != nil {
		return nil, err
	}
	if isAdmin {
		return uc.repo.ListAll(ctx)
	}
	return uc.repo.ListForUser(ctx, callerUserID)
}
