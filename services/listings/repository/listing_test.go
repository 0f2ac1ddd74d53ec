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
	"github.com/peermart/peermart/services/listings/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func listingColumns() []string {
	return []string{"listing_id", "seller_id", "status", "title", "description", "price", "list_image", "location", "meta_tag", "t_created", "t_last_edit"}
}

func TestCreateListing_ExistingSeller(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewListingRepo(&models.Config{}, db)

	sellerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM sellers")).
		WithArgs(sellerID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO listings")).
		WithArgs(sqlmock.AnyArg(), sellerID, models.ListingStatusActive, "Road bike",
			"Barely used", decimal.NewFromInt(450), "", "Rotterdam", "bikes",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	listing, err := repo.CreateListing(context.Background(), sellerID, models.CreateListingRequest{
		Title:       "Road bike",
		Description: "Barely used",
		Price:       decimal.NewFromInt(450),
		Location:    "Rotterdam",
		MetaTag:     "bikes",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.ListingStatusActive, listing.Status)
	assert.Equal(t, sellerID, listing.SellerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateListing_ProvisionsSeller(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewListingRepo(&models.Config{}, db)

	sellerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM sellers")).
		WithArgs(sellerID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT account_id FROM accounts")).
		WithArgs(sellerID).
		WillReturnRows(sqlmock.NewRows([]string{"account_id"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT address FROM users")).
		WithArgs(sellerID).
		WillReturnRows(sqlmock.NewRows([]string{"address"}).AddRow("77 Quay Lane"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs(sqlmock.AnyArg(), sellerID, models.AccountTypeBank, "77 Quay Lane").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sellers")).
		WithArgs(sellerID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO listings")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	_, err := repo.CreateListing(context.Background(), sellerID, models.CreateListingRequest{
		Title: "Road bike",
		Price: decimal.NewFromInt(450),
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateListing_UnknownUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewListingRepo(&models.Config{}, db)

	sellerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM sellers")).
		WithArgs(sellerID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT account_id FROM accounts")).
		WithArgs(sellerID).
		WillReturnRows(sqlmock.NewRows([]string{"account_id"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT address FROM users")).
		WithArgs(sellerID).
		WillReturnRows(sqlmock.NewRows([]string{"address"}))
	mock.ExpectRollback()

	_, err := repo.CreateListing(context.Background(), sellerID, models.CreateListingRequest{
		Title: "Road bike",
	})

	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNoBillingAddress))
}

func TestGetListing_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewListingRepo(&models.Config{}, db)

	listingID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM listings WHERE listing_id = $1")).
		WithArgs(listingID).
		WillReturnRows(sqlmock.NewRows(listingColumns()))

	_, err := repo.GetListing(context.Background(), listingID)
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestSearchListings_CombinedFilters(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewListingRepo(&models.Config{}, db)

	sellerID := uuid.New()
	minPrice := decimal.NewFromInt(100)
	rows := sqlmock.NewRows(listingColumns()).
		AddRow(uuid.New(), sellerID, "active", "Road bike", "Barely used", "450.00", "", "Rotterdam", "bikes", time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("title ILIKE $1 OR description ILIKE $1")).
		WithArgs("%bike%", models.ListingStatusActive, sellerID, minPrice).
		WillReturnRows(rows)

	results, err := repo.SearchListings(context.Background(), models.ListingFilter{
		Query:    "bike",
		Status:   models.ListingStatusActive,
		SellerID: &sellerID,
		MinPrice: &minPrice,
	})

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Road bike", results[0].Title)
}

func TestUpdateListing_WrongOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewListingRepo(&models.Config{}, db)

	listingID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT seller_id FROM listings")).
		WithArgs(listingID).
		WillReturnRows(sqlmock.NewRows([]string{"seller_id"}).AddRow(uuid.New()))

	title := "New title"
	_, err := repo.UpdateListing(context.Background(), uuid.New(), listingID, models.UpdateListingRequest{Title: &title})
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))
}

func TestUpdateListingStatus_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewListingRepo(&models.Config{}, db)

	sellerID := uuid.New()
	listingID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT seller_id FROM listings")).
		WithArgs(listingID).
		WillReturnRows(sqlmock.NewRows([]string{"seller_id"}).AddRow(sellerID))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE listings SET status = $1")).
		WithArgs(models.ListingStatusClosed, sqlmock.AnyArg(), listingID).
		WillReturnRows(sqlmock.NewRows(listingColumns()).
			AddRow(listingID, sellerID, "closed", "Road bike", "", "450.00", "", "", "", time.Now(), time.Now()))

	listing, err := repo.UpdateListingStatus(context.Background(), sellerID, listingID, models.ListingStatusClosed)
	assert.NoError(t, err)
	assert.Equal(t, models.ListingStatusClosed, listing.Status)
}

func TestDeleteListing_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewListingRepo(&models.Config{}, db)

	listingID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT seller_id FROM listings")).
		WithArgs(listingID).
		WillReturnRows(sqlmock.NewRows([]string{"seller_id"}))

	err := repo.DeleteListing(context.Background(), uuid.New(), listingID)
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}
