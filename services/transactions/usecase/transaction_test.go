package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/peermart/peermart/internal/pkg/apperrors"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/services/transactions/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateTransaction_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo, mockGW)

	buyerID := uuid.New()
	listingID := uuid.New()
	price := decimal.NewFromFloat(99.95)
	fee := decimal.NewFromFloat(3.00)

	created := &models.Transaction{
		TransactionID: uuid.New(),
		BuyerID:       buyerID,
		SellerID:      uuid.New(),
		ListingID:     listingID,
		AgreedPrice:   price,
		ServFee:       fee,
		Status:        models.TransactionStatusPending,
	}

	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), buyerID, listingID, price, fee).
		Return(created, nil)
	mockGW.EXPECT().
		PublishTransactionCreated(gomock.Any(), created).
		Return(nil)

	txn, err := uc.CreateTransaction(context.Background(), buyerID, models.CreateTransactionRequest{
		ListingID:   listingID,
		AgreedPrice: price,
		ServFee:     fee,
	})

	assert.NoError(t, err)
	assert.Equal(t, created, txn)
}

func TestCreateTransaction_PublishFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo, mockGW)

	buyerID := uuid.New()
	listingID := uuid.New()
	created := &models.Transaction{TransactionID: uuid.New(), BuyerID: buyerID, ListingID: listingID}

	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), buyerID, listingID, gomock.Any(), gomock.Any()).
		Return(created, nil)
	mockGW.EXPECT().
		PublishTransactionCreated(gomock.Any(), created).
		Return(errors.New("nats unavailable"))

	txn, err := uc.CreateTransaction(context.Background(), buyerID, models.CreateTransactionRequest{
		ListingID:   listingID,
		AgreedPrice: decimal.NewFromInt(10),
	})

	assert.NoError(t, err)
	assert.Equal(t, created, txn)
}

func TestCreateTransaction_MissingListingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo, mockGW)

	_, err := uc.CreateTransaction(context.Background(), uuid.New(), models.CreateTransactionRequest{})

	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestCreateTransaction_NegativeAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo, mockGW)

	_, err := uc.CreateTransaction(context.Background(), uuid.New(), models.CreateTransactionRequest{
		ListingID:   uuid.New(),
		AgreedPrice: decimal.NewFromInt(-5),
	})

	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidStatus))
}

func TestCreateTransaction_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo, mockGW)

	buyerID := uuid.New()
	listingID := uuid.New()

	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), buyerID, listingID, gomock.Any(), gomock.Any()).
		Return(nil, apperrors.DuplicateTransaction())

	_, err := uc.CreateTransaction(context.Background(), buyerID, models.CreateTransactionRequest{
		ListingID:   listingID,
		AgreedPrice: decimal.NewFromInt(10),
	})

	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeDuplicateTransaction))
}

func TestUpdateTransactionStatus_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo, mockGW)

	_, err := uc.UpdateTransactionStatus(context.Background(), uuid.New(), models.TransactionStatus("shipped"))

	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidStatus))
}

func TestUpdateTransactionStatus_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo, mockGW)

	transactionID := uuid.New()
	updated := &models.Transaction{TransactionID: transactionID, Status: models.TransactionStatusCompleted}

	mockRepo.EXPECT().
		UpdateTransactionStatus(gomock.Any(), transactionID, models.TransactionStatusCompleted).
		Return(updated, nil)
	mockGW.EXPECT().
		PublishTransactionUpdated(gomock.Any(), updated).
		Return(nil)

	txn, err := uc.UpdateTransactionStatus(context.Background(), transactionID, models.TransactionStatusCompleted)

	assert.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, txn.Status)
}

func TestListTransactions_PassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo, mockGW)

	buyerID := uuid.New()
	filter := models.TransactionFilter{BuyerID: &buyerID, Status: models.TransactionStatusPending}
	expected := []*models.Transaction{{TransactionID: uuid.New(), BuyerID: buyerID}}

	mockRepo.EXPECT().
		ListTransactions(gomock.Any(), filter).
		Return(expected, nil)

	txns, err := uc.ListTransactions(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, expected, txns)
}
