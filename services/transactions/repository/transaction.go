package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/peermart/peermart/internal/pkg/apperrors"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// TransactionRepo implements transaction persistence over Postgres
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(cfg *models.Config, db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTransaction executes the purchase unit in one database transaction.
// The listing row is locked FOR UPDATE so two buyers racing on the same
// listing serialize; the loser observes the listing already pending.
func (r *TransactionRepo) CreateTransaction(
	ctx context.Context,
	buyerUserID, listingID uuid.UUID,
	agreedPrice, servFee decimal.Decimal,
) (*models.Transaction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	defer tx.Rollback()

	var listing struct {
		SellerID uuid.UUID            `db:"seller_id"`
		Status   models.ListingStatus `db:"status"`
	}
	err = tx.GetContext(ctx, &listing,
		`SELECT seller_id, status FROM listings WHERE listing_id = $1 FOR UPDATE`,
		listingID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("listing")
		}
		return nil, apperrors.Store(err)
	}

	if listing.SellerID == buyerUserID {
		return nil, apperrors.SelfTransaction()
	}

	// Duplicate check runs before the availability check so a repeated
	// attempt by the same buyer reports the duplicate, not the flipped
	// listing state it caused.
	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE listing_id = $1 AND buyer_id = $2)`,
		listingID, buyerUserID,
	)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if exists {
		return nil, apperrors.DuplicateTransaction()
	}

	if listing.Status != models.ListingStatusActive {
		return nil, apperrors.Conflict("listing is no longer available")
	}

	if _, err := ensureBuyer(ctx, tx, buyerUserID); err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		TransactionID: uuid.New(),
		BuyerID:       buyerUserID,
		SellerID:      listing.SellerID,
		ListingID:     listingID,
		AgreedPrice:   agreedPrice,
		ServFee:       servFee,
		Status:        models.TransactionStatusPending,
		TDate:         time.Now(),
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (transaction_id, buyer_id, seller_id, listing_id, t_date, agreed_price, serv_fee, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		txn.TransactionID, txn.BuyerID, txn.SellerID, txn.ListingID,
		txn.TDate, txn.AgreedPrice, txn.ServFee, txn.Status,
	)
	if err != nil {
		return nil, apperrors.Store(err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE listings SET status = $1, t_last_edit = $2 WHERE listing_id = $3`,
		models.ListingStatusPending, time.Now(), listingID,
	)
	if err != nil {
		return nil, apperrors.Store(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.Store(err)
	}

	return txn, nil
}

// ensureBuyer provisions the buyer role record and, when needed, a payment
// account seeded with the user's profile billing address. Runs inside the
// caller's transaction so a later failure rolls everything back.
func ensureBuyer(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) (uuid.UUID, error) {
	var accountID uuid.UUID
	err := tx.GetContext(ctx, &accountID,
		`SELECT account_id FROM buyers WHERE buyer_id = $1`, userID)
	if err == nil {
		return accountID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, apperrors.Store(err)
	}

	err = tx.GetContext(ctx, &accountID,
		`SELECT account_id FROM accounts WHERE user_id = $1 ORDER BY account_id LIMIT 1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		var address string
		err = tx.GetContext(ctx, &address,
			`SELECT address FROM users WHERE user_id = $1`, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return uuid.Nil, apperrors.NoBillingAddress()
			}
			return uuid.Nil, apperrors.Store(err)
		}

		accountID = uuid.New()
		_, err = tx.ExecContext(ctx,
			`INSERT INTO accounts (account_id, user_id, account_type, billing_address)
			 VALUES ($1, $2, $3, $4)`,
			accountID, userID, models.AccountTypeBank, address,
		)
		if err != nil {
			return uuid.Nil, apperrors.Store(err)
		}
	} else if err != nil {
		return uuid.Nil, apperrors.Store(err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO buyers (buyer_id, account_id) VALUES ($1, $2)`,
		userID, accountID,
	)
	if err != nil {
		return uuid.Nil, apperrors.Store(err)
	}
	return accountID, nil
}

// GetTransaction retrieves a transaction by ID
func (r *TransactionRepo) GetTransaction(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn,
		`SELECT transaction_id, buyer_id, seller_id, listing_id, t_date, agreed_price, serv_fee, status
		 FROM transactions WHERE transaction_id = $1`,
		transactionID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("transaction")
		}
		return nil, apperrors.Store(err)
	}
	return &txn, nil
}

// UpdateTransactionStatus mutates the transaction status in place. Listing
// state is deliberately untouched; closing or relisting stays a seller
// action.
func (r *TransactionRepo) UpdateTransactionStatus(ctx context.Context, transactionID uuid.UUID, status models.TransactionStatus) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn,
		`UPDATE transactions SET status = $1 WHERE transaction_id = $2
		 RETURNING transaction_id, buyer_id, seller_id, listing_id, t_date, agreed_price, serv_fee, status`,
		status, transactionID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("transaction")
		}
		return nil, apperrors.Store(err)
	}
	return &txn, nil
}

// ListTransactions returns transactions matching all provided filters,
// most recent first. An empty filter returns everything; pagination is the
// caller's concern.
func (r *TransactionRepo) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	query := `SELECT transaction_id, buyer_id, seller_id, listing_id, t_date, agreed_price, serv_fee, status
		 FROM transactions WHERE 1=1`
	args := []interface{}{}

	if filter.BuyerID != nil {
		args = append(args, *filter.BuyerID)
		query += fmt.Sprintf(" AND buyer_id = $%d", len(args))
	}
	if filter.SellerID != nil {
		args = append(args, *filter.SellerID)
		query += fmt.Sprintf(" AND seller_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += ` ORDER BY t_date DESC`

	txns := []*models.Transaction{}
	if err := r.db.SelectContext(ctx, &txns, query, args...); err != nil {
		return nil, apperrors.Store(err)
	}
	return txns, nil
}
