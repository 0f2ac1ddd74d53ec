package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/peermart/peermart/internal/pkg/apperrors"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/services/disputes"
)

const disputeColumns = `dispute_id, transaction_id, admin_id, description, status, resolution_date`

// DisputeRepo implements dispute persistence over Postgres
type DisputeRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDisputeRepo creates a new dispute repository
func NewDisputeRepo(cfg *models.Config, db *sqlx.DB) *DisputeRepo {
	return &DisputeRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetTransactionParties returns both sides of the transaction
func (r *DisputeRepo) GetTransactionParties(ctx context.Context, transactionID uuid.UUID) (*disputes.TransactionParties, error) {
	var parties disputes.TransactionParties
	err := r.db.GetContext(ctx, &parties,
		`SELECT buyer_id, seller_id FROM transactions WHERE transaction_id = $1`,
		transactionID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("transaction")
		}
		return nil, apperrors.Store(err)
	}
	return &parties, nil
}

// CreateDispute inserts a new dispute row
func (r *DisputeRepo) CreateDispute(ctx context.Context, dispute *models.Dispute) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO disputes (dispute_id, transaction_id, admin_id, description, status, resolution_date)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		dispute.DisputeID, dispute.TransactionID, dispute.AdminID,
		dispute.Description, dispute.Status, dispute.ResolutionDate,
	)
	if err != nil {
		return apperrors.Store(err)
	}
	return nil
}

// GetDispute retrieves a dispute by ID
func (r *DisputeRepo) GetDispute(ctx context.Context, disputeID uuid.UUID) (*models.Dispute, error) {
	var dispute models.Dispute
	err := r.db.GetContext(ctx, &dispute,
		`SELECT `+disputeColumns+` FROM disputes WHERE dispute_id = $1`,
		disputeID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("dispute")
		}
		return nil, apperrors.Store(err)
	}
	return &dispute, nil
}

// ResolveDispute applies the status change. admin_id is only written when the
// dispute goes solved, and the first admin to solve it owns it;
// resolution_date is stamped once on solve and cleared on reopen.
func (r *DisputeRepo) ResolveDispute(ctx context.Context, disputeID, adminID uuid.UUID, status models.DisputeStatus) (*models.Dispute, error) {
	var dispute models.Dispute
	err := r.db.GetContext(ctx, &dispute,
		`UPDATE disputes
		 SET status = $1,
		     admin_id = CASE WHEN $1 = 'solved' THEN COALESCE(admin_id, $2) ELSE admin_id END,
		     resolution_date = CASE WHEN $1 = 'solved' THEN COALESCE(resolution_date, $3) ELSE NULL END
		 WHERE dispute_id = $4
		 RETURNING `+disputeColumns,
		status, adminID, time.Now(), disputeID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("dispute")
		}
		return nil, apperrors.Store(err)
	}
	return &dispute, nil
}

// ListAll returns every dispute, unresolved first
func (r *DisputeRepo) ListAll(ctx context.Context) ([]*models.Dispute, error) {
	result := []*models.Dispute{}
	err := r.db.SelectContext(ctx, &result,
		`SELECT `+disputeColumns+` FROM disputes ORDER BY status DESC, dispute_id`)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return result, nil
}

// ListForUser returns disputes on transactions the user participates in
func (r *DisputeRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Dispute, error) {
	result := []*models.Dispute{}
	err := r.db.SelectContext(ctx, &result,
		`SELECT d.dispute_id, d.transaction_id, d.admin_id, d.description, d.status, d.resolution_date
		 FROM disputes d
		 JOIN transactions t ON t.transaction_id = d.transaction_id
		 WHERE t.buyer_id = $1 OR t.seller_id = $1
		 ORDER BY d.status DESC, d.dispute_id`,
		userID,
	)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return result, nil
}

// IsAdmin reports whether the user holds an admin role record
func (r *DisputeRepo) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	var isAdmin bool
	err := r.db.GetContext(ctx, &isAdmin,
		`SELECT EXISTS (SELECT 1 FROM admins WHERE admin_id = $1)`, userID)
	if err != nil {
		return false, apperrors.Store(err)
	}
	return isAdmin, nil
}
