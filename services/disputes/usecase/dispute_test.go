package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/peermart/peermart/internal/pkg/apperrors"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/services/disputes"
	"github.com/peermart/peermart/services/disputes/mocks"
	"github.com/stretchr/testify/assert"
)

func newUC(t *testing.T) (*mocks.MockDisputeRepo, *mocks.MockDisputeGW, disputes.DisputeUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockDisputeRepo(ctrl)
	mockGW := mocks.NewMockDisputeGW(ctrl)
	return mockRepo, mockGW, NewDisputeUC(&models.Config{}, mockRepo, mockGW), ctrl
}

func TestOpenDispute_BuyerSucceeds(t *testing.T) {
	mockRepo, mockGW, uc, ctrl := newUC(t)
	defer ctrl.Finish()

	buyerID := uuid.New()
	transactionID := uuid.New()

	mockRepo.EXPECT().
		GetTransactionParties(gomock.Any(), transactionID).
		Return(&disputes.TransactionParties{BuyerID: buyerID, SellerID: uuid.New()}, nil)
	mockRepo.EXPECT().
		CreateDispute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Dispute) error {
			assert.Equal(t, transactionID, d.TransactionID)
			assert.Equal(t, models.DisputeStatusUnsolved, d.Status)
			assert.Nil(t, d.AdminID)
			return nil
		})
	mockGW.EXPECT().
		PublishDisputeOpened(gomock.Any(), gomock.Any()).
		Return(nil)

	dispute, err := uc.OpenDispute(context.Background(), buyerID, models.OpenDisputeRequest{
		TransactionID: transactionID,
		Description:   "Item never arrived",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.DisputeStatusUnsolved, dispute.Status)
}

func TestOpenDispute_ThirdPartyRejected(t *testing.T) {
	mockRepo, _, uc, ctrl := newUC(t)
	defer ctrl.Finish()

	transactionID := uuid.New()
	mockRepo.EXPECT().
		GetTransactionParties(gomock.Any(), transactionID).
		Return(&disputes.TransactionParties{BuyerID: uuid.New(), SellerID: uuid.New()}, nil)

	_, err := uc.OpenDispute(context.Background(), uuid.New(), models.OpenDisputeRequest{
		TransactionID: transactionID,
		Description:   "Not my transaction",
	})

	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))
}

func TestOpenDispute_UnknownTransaction(t *testing.T) {
	mockRepo, _, uc, ctrl := newUC(t)
	defer ctrl.Finish()

	transactionID := uuid.New()
	mockRepo.EXPECT().
		GetTransactionParties(gomock.Any(), transactionID).
		Return(nil, apperrors.NotFound("transaction"))

	_, err := uc.OpenDispute(context.Background(), uuid.New(), models.OpenDisputeRequest{
		TransactionID: transactionID,
		Description:   "Where is it",
	})

	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestOpenDispute_EmptyDescription(t *testing.T) {
	_, _, uc, ctrl := newUC(t)
	defer ctrl.Finish()

	_, err := uc.OpenDispute(context.Background(), uuid.New(), models.OpenDisputeRequest{
		TransactionID: uuid.New(),
		Description:   "   ",
	})

	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidStatus))
}

func TestResolveDispute_NonAdminRejected(t *testing.T) {
	mockRepo, _, uc, ctrl := newUC(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	mockRepo.EXPECT().
		IsAdmin(gomock.Any(), callerID).
		Return(false, nil)

	_, err := uc.ResolveDispute(context.Background(), callerID, uuid.New(), models.DisputeStatusSolved)

	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))
}

func TestResolveDispute_InvalidStatus(t *testing.T) {
	_, _, uc, ctrl := newUC(t)
	defer ctrl.Finish()

	_, err := uc.ResolveDispute(context.Background(), uuid.New(), uuid.New(), "escalated")

	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidStatus))
}

func TestResolveDispute_AdminSucceeds(t *testing.T) {
	mockRepo, mockGW, uc, ctrl := newUC(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	disputeID := uuid.New()
	resolved := &models.Dispute{DisputeID: disputeID, AdminID: &adminID, Status: models.DisputeStatusSolved}

	mockRepo.EXPECT().
		IsAdmin(gomock.Any(), adminID).
		Return(true, nil)
	mockRepo.EXPECT().
		ResolveDispute(gomock.Any(), disputeID, adminID, models.DisputeStatusSolved).
		Return(resolved, nil)
	mockGW.EXPECT().
		PublishDisputeResolved(gomock.Any(), resolved).
		Return(nil)

	dispute, err := uc.ResolveDispute(context.Background(), adminID, disputeID, models.DisputeStatusSolved)

	assert.NoError(t, err)
	assert.Equal(t, models.DisputeStatusSolved, dispute.Status)
}

func TestListDisputes_AdminSeesAll(t *testing.T) {
	mockRepo, _, uc, ctrl := newUC(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	all := []*models.Dispute{{DisputeID: uuid.New()}, {DisputeID: uuid.New()}}

	mockRepo.EXPECT().IsAdmin(gomock.Any(), adminID).Return(true, nil)
	mockRepo.EXPECT().ListAll(gomock.Any()).Return(all, nil)

	result, err := uc.ListDisputes(context.Background(), adminID)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestListDisputes_ParticipantSeesOwn(t *testing.T) {
	mockRepo, _, uc, ctrl := newUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	own := []*models.Dispute{{DisputeID: uuid.New()}}

	mockRepo.EXPECT().IsAdmin(gomock.Any(), userID).Return(false, nil)
	mockRepo.EXPECT().ListForUser(gomock.Any(), userID).Return(own, nil)

	result, err := uc.ListDisputes(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
}
