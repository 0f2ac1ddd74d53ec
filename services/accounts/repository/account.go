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
)

// AccountRepo implements account persistence over Postgres
type AccountRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAccountRepo creates a new account repository
func NewAccountRepo(cfg *models.Config, db *sqlx.DB) *AccountRepo {
	return &AccountRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetUser retrieves a user by ID
func (r *AccountRepo) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user,
		`SELECT user_id, first_name, last_name, email, address, phone_number, acc_status, t_created, t_last_act
		 FROM users WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.Store(err)
	}
	return &user, nil
}

// GetRoles reports which role records exist for the user
func (r *AccountRepo) GetRoles(ctx context.Context, userID uuid.UUID) (models.RoleSet, error) {
	var roles models.RoleSet
	err := r.db.GetContext(ctx, &roles,
		`SELECT
			EXISTS (SELECT 1 FROM buyers WHERE buyer_id = $1) AS is_buyer,
			EXISTS (SELECT 1 FROM sellers WHERE seller_id = $1) AS is_seller,
			EXISTS (SELECT 1 FROM admins WHERE admin_id = $1) AS is_admin`,
		userID,
	)
	if err != nil {
		return models.RoleSet{}, apperrors.Store(err)
	}
	return roles, nil
}

// UpdateProfile applies the provided fields and bumps last activity
func (r *AccountRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	set := "t_last_act = $1"
	args := []interface{}{time.Now()}

	if req.FirstName != nil {
		args = append(args, *req.FirstName)
		set += fmt.Sprintf(", first_name = $%d", len(args))
	}
	if req.LastName != nil {
		args = append(args, *req.LastName)
		set += fmt.Sprintf(", last_name = $%d", len(args))
	}
	if req.Address != nil {
		args = append(args, *req.Address)
		set += fmt.Sprintf(", address = $%d", len(args))
	}
	if req.PhoneNumber != nil {
		args = append(args, *req.PhoneNumber)
		set += fmt.Sprintf(", phone_number = $%d", len(args))
	}

	args = append(args, userID)
	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE user_id = $%d
		 RETURNING user_id, first_name, last_name, email, address, phone_number, acc_status, t_created, t_last_act`,
		set, len(args),
	)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.Store(err)
	}
	return &user, nil
}

// DeactivateUser soft-deletes the user record
func (r *AccountRepo) DeactivateUser(ctx context.Context, userID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET acc_status = $1, t_last_act = $2 WHERE user_id = $3`,
		models.AccountStatusInactive, time.Now(), userID,
	)
	if err != nil {
		return apperrors.Store(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return apperrors.Store(err)
	}
	if rows == 0 {
		return apperrors.NotFound("user")
	}
	return nil
}

// EnsurePaymentAccount returns the user's payment account, creating one
// seeded with the profile address when none exists. Safe to call from any
// path that needs an account on file.
func (r *AccountRepo) EnsurePaymentAccount(ctx context.Context, userID uuid.UUID) (*models.PaymentAccount, error) {
	var account models.PaymentAccount
	err := r.db.GetContext(ctx, &account,
		`SELECT account_id, user_id, account_type, billing_address
		 FROM accounts WHERE user_id = $1 ORDER BY account_id LIMIT 1`,
		userID,
	)
	if err == nil {
		return &account, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.Store(err)
	}

	var address string
	err = r.db.GetContext(ctx, &address,
		`SELECT address FROM users WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NoBillingAddress()
		}
		return nil, apperrors.Store(err)
	}

	account = models.PaymentAccount{
		AccountID:      uuid.New(),
		UserID:         userID,
		AccountType:    models.AccountTypeBank,
		BillingAddress: address,
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO accounts (account_id, user_id, account_type, billing_address)
		 VALUES ($1, $2, $3, $4)`,
		account.AccountID, account.UserID, account.AccountType, account.BillingAddress,
	)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return &account, nil
}

// CreatePaymentAccount inserts the account row and its detail record in one
// database transaction.
func (r *AccountRepo) CreatePaymentAccount(ctx context.Context, rec *models.PaymentAccountRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Store(err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO accounts (account_id, user_id, account_type, billing_address)
		 VALUES ($1, $2, $3, $4)`,
		rec.AccountID, rec.UserID, rec.AccountType, rec.BillingAddress,
	)
	if err != nil {
		return apperrors.Store(err)
	}

	switch rec.AccountType {
	case models.AccountTypeBank:
		_, err = tx.ExecContext(ctx,
			`INSERT INTO bank_accounts (account_id, bank_acc_num, routing_num)
			 VALUES ($1, $2, $3)`,
			rec.AccountID, rec.Bank.BankAccNum, rec.Bank.RoutingNum,
		)
	case models.AccountTypeCard:
		_, err = tx.ExecContext(ctx,
			`INSERT INTO credit_cards (account_id, cc_num, exp_date)
			 VALUES ($1, $2, $3)`,
			rec.AccountID, rec.Card.CCNum, rec.Card.ExpDate,
		)
	}
	if err != nil {
		return apperrors.Store(err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Store(err)
	}
	return nil
}

type paymentAccountRow struct {
	models.PaymentAccount
	BankAccNum *string    `db:"bank_acc_num"`
	RoutingNum *string    `db:"routing_num"`
	CCNum      *string    `db:"cc_num"`
	ExpDate    *time.Time `db:"exp_date"`
}

// ListPaymentAccounts returns the user's accounts with raw detail rows
func (r *AccountRepo) ListPaymentAccounts(ctx context.Context, userID uuid.UUID) ([]*models.PaymentAccountRecord, error) {
	rows := []paymentAccountRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT a.account_id, a.user_id, a.account_type, a.billing_address,
		        b.bank_acc_num, b.routing_num, c.cc_num, c.exp_date
		 FROM accounts a
		 LEFT JOIN bank_accounts b ON b.account_id = a.account_id
		 LEFT JOIN credit_cards c ON c.account_id = a.account_id
		 WHERE a.user_id = $1
		 ORDER BY a.account_id`,
		userID,
	)
	if err != nil {
		return nil, apperrors.Store(err)
	}

	recs := make([]*models.PaymentAccountRecord, 0, len(rows))
	for _, row := range rows {
		rec := &models.PaymentAccountRecord{PaymentAccount: row.PaymentAccount}
		if row.BankAccNum != nil && row.RoutingNum != nil {
			rec.Bank = &models.BankAccount{
				AccountID:  row.AccountID,
				BankAccNum: *row.BankAccNum,
				RoutingNum: *row.RoutingNum,
			}
		}
		if row.CCNum != nil && row.ExpDate != nil {
			rec.Card = &models.CreditCard{
				AccountID: row.AccountID,
				CCNum:     *row.CCNum,
				ExpDate:   *row.ExpDate,
			}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// DeletePaymentAccount removes an account the user owns; detail rows go with
// it through the schema cascade.
func (r *AccountRepo) DeletePaymentAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	var ownerID uuid.UUID
	err := r.db.GetContext(ctx, &ownerID,
		`SELECT user_id FROM accounts WHERE account_id = $1`, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("payment account")
		}
		return apperrors.Store(err)
	}
	if ownerID != userID {
		return apperrors.Unauthorized("payment account belongs to another user")
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM accounts WHERE account_id = $1`, accountID); err != nil {
		return apperrors.Store(err)
	}
	return nil
}

// SellerSummary aggregates listing counts and completed sales revenue
func (r *AccountRepo) SellerSummary(ctx context.Context, sellerID uuid.UUID) (*models.SellerSummary, error) {
	var summary models.SellerSummary
	err := r.db.GetContext(ctx, &summary,
		`SELECT
			(SELECT COUNT(*) FROM listings WHERE seller_id = $1) AS total_listings,
			(SELECT COUNT(*) FROM listings WHERE seller_id = $1 AND status = 'active') AS active_listings,
			(SELECT COUNT(*) FROM transactions WHERE seller_id = $1) AS total_transactions,
			(SELECT COALESCE(SUM(agreed_price), 0) FROM transactions WHERE seller_id = $1 AND status = 'completed') AS total_revenue`,
		sellerID,
	)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return &summary, nil
}

// BuyerSummary aggregates purchase counts and completed spend including fees
func (r *AccountRepo) BuyerSummary(ctx context.Context, buyerID uuid.UUID) (*models.BuyerSummary, error) {
	var summary models.BuyerSummary
	err := r.db.GetContext(ctx, &summary,
		`SELECT
			(SELECT COUNT(*) FROM transactions WHERE buyer_id = $1) AS total_purchases,
			(SELECT COUNT(*) FROM transactions WHERE buyer_id = $1 AND status <> 'completed') AS active_transactions,
			(SELECT COUNT(*) FROM transactions WHERE buyer_id = $1 AND status = 'completed') AS completed_transactions,
			(SELECT COALESCE(SUM(agreed_price + serv_fee), 0) FROM transactions WHERE buyer_id = $1 AND status = 'completed') AS total_spent`,
		buyerID,
	)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return &summary, nil
}

// TransactionDetail joins both parties' billing addresses onto the
// transaction. The inner joins make a missing account surface as not_found.
func (r *AccountRepo) TransactionDetail(ctx context.Context, transactionID uuid.UUID) (*models.TransactionDetail, error) {
	var detail models.TransactionDetail
	err := r.db.GetContext(ctx, &detail,
		`SELECT t.transaction_id, t.buyer_id, t.seller_id, t.listing_id, t.t_date,
		        t.agreed_price, t.serv_fee, t.status,
		        ba.billing_address AS buyer_billing_address,
		        sa.billing_address AS seller_billing_address
		 FROM transactions t
		 JOIN buyers b ON b.buyer_id = t.buyer_id
		 JOIN accounts ba ON ba.account_id = b.account_id
		 JOIN sellers s ON s.seller_id = t.seller_id
		 JOIN accounts sa ON sa.account_id = s.account_id
		 WHERE t.transaction_id = $1`,
		transactionID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("transaction")
		}
		return nil, apperrors.Store(err)
	}
	return &detail, nil
}

// IsAdmin reports whether the user holds an admin role record
func (r *AccountRepo) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	var isAdmin bool
	err := r.db.GetContext(ctx, &isAdmin,
		`SELECT EXISTS (SELECT 1 FROM admins WHERE admin_id = $1)`, userID)
	if err != nil {
		return false, apperrors.Store(err)
	}
	return isAdmin, nil
}
