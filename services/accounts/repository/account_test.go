package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/peermart/peermart/internal/pkg/apperrors"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/services/accounts/repository"
	"github.com/stretchr/testify/assert"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func userColumns() []string {
	return []string{"user_id", "first_name", "last_name", "email", "address", "phone_number", "acc_status", "t_created", "t_last_act"}
}

func TestGetUser_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(userID, "Ana", "Silva", "ana@example.com", "9 Pier Road", "+15550100", "active", time.Now(), time.Now()))

	user, err := repo.GetUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, models.AccountStatusActive, user.AccStatus)
}

func TestGetUser_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.GetUser(context.Background(), userID)
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestGetRoles_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("EXISTS (SELECT 1 FROM buyers")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"is_buyer", "is_seller", "is_admin"}).AddRow(true, false, true))

	roles, err := repo.GetRoles(context.Background(), userID)
	assert.NoError(t, err)
	assert.True(t, roles.IsBuyer)
	assert.False(t, roles.IsSeller)
	assert.True(t, roles.IsAdmin)
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db)

	userID := uuid.New()
	newAddress := "14 Dock Street"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET t_last_act = $1, address = $2 WHERE user_id = $3")).
		WithArgs(sqlmock.AnyArg(), newAddress, userID).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(userID, "Ana", "Silva", "ana@example.com", newAddress, "+15550100", "active", time.Now(), time.Now()))

	user, err := repo.UpdateProfile(context.Background(), userID, models.UpdateProfileRequest{Address: &newAddress})
	assert.NoError(t, err)
	assert.Equal(t, newAddress, user.Address)
}

func TestDeactivateUser_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db)

	userID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET acc_status = $1")).
		WithArgs(models.AccountStatusInactive, sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeactivateUser(context.Background(), userID)
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestEnsurePaymentAccount_Existing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db)

	userID := uuid.New()
	accountID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "user_id", "account_type", "billing_address"}).
			AddRow(accountID, userID, "bank_account", "9 Pier Road"))

	account, err := repo.EnsurePaymentAccount(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, accountID, account.AccountID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsurePaymentAccount_ProvisionsFromProfile(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "user_id", "account_type", "billing_address"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT address FROM users")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"address"}).AddRow("9 Pier Road"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs(sqlmock.AnyArg(), userID, models.AccountTypeBank, "9 Pier Road").
		WillReturnResult(sqlmock.NewResult(1, 1))

	account, err := repo.EnsurePaymentAccount(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, models.AccountTypeBank, account.AccountType)
	assert.Equal(t, "9 Pier Road", account.BillingAddress)
}

func TestEnsurePaymentAccount_NoUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "user_id", "account_type", "billing_address"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT address FROM users")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"address"}))

	_, err := repo.EnsurePaymentAccount(context.Background(), userID)
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNoBillingAddress))
}

func TestCreatePaymentAccount_Card(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db)

	accountID := uuid.New()
	userID := uuid.New()
	rec := &models.PaymentAccountRecord{
		PaymentAccount: models.PaymentAccount{
			AccountID:      accountID,
			UserID:         userID,
			AccountType:    models.AccountTypeCard,
			BillingAddress: "9 Pier Road",
		},
		Card: &models.CreditCard{AccountID: accountID, CCNum: "4111111111111111", ExpDate: time.Now()},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs(accountID, userID, models.AccountTypeCard, "9 Pier Road").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO credit_cards")).
		WithArgs(accountID, "4111111111111111", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreatePaymentAccount(context.Background(), rec)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePaymentAccount_WrongOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db)

	accountID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM accounts")).
		WithArgs(accountID).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(uuid.New()))

	err := repo.DeletePaymentAccount(context.Background(), uuid.New(), accountID)
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))
}

func TestSellerSummary_Aggregates(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db)

	sellerID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("AS total_listings")).
		WithArgs(sellerID).
		WillReturnRows(sqlmock.NewRows([]string{"total_listings", "active_listings", "total_transactions", "total_revenue"}).
			AddRow(7, 3, 5, "1249.50"))

	summary, err := repo.SellerSummary(context.Background(), sellerID)
	assert.NoError(t, err)
	assert.Equal(t, 7, summary.TotalListings)
	assert.Equal(t, 3, summary.ActiveListings)
	assert.Equal(t, "1249.50", summary.TotalRevenue.StringFixed(2))
}

func TestBuyerSummary_Aggregates(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db)

	buyerID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("AS total_purchases")).
		WithArgs(buyerID).
		WillReturnRows(sqlmock.NewRows([]string{"total_purchases", "active_transactions", "completed_transactions", "total_spent"}).
			AddRow(4, 1, 3, "310.75"))

	summary, err := repo.BuyerSummary(context.Background(), buyerID)
	assert.NoError(t, err)
	assert.Equal(t, 4, summary.TotalPurchases)
	assert.Equal(t, "310.75", summary.TotalSpent.StringFixed(2))
}

func TestTransactionDetail_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db)

	transactionID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("buyer_billing_address")).
		WithArgs(transactionID).
		WillReturnRows(sqlmock.NewRows([]string{"transaction_id"}))

	_, err := repo.TransactionDetail(context.Background(), transactionID)
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestIsAdmin_True(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM admins")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	isAdmin, err := repo.IsAdmin(context.Background(), userID)
	assert.NoError(t, err)
	assert.True(t, isAdmin)
}
