package accounts

import (
	"context"

	"github.com/google/uuid"
	"github.com/peermart/peermart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/peermart/peermart/services/accounts AccountRepo

// AccountRepo defines persistence for users, roles and payment accounts
type AccountRepo interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetRoles(ctx context.Context, userID uuid.UUID) (models.RoleSet, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error)
	DeactivateUser(ctx context.Context, userID uuid.UUID) error

	EnsurePaymentAccount(ctx context.Context, userID uuid.UUID) (*models.PaymentAccount, error)
	CreatePaymentAccount(ctx context.Context, rec *models.PaymentAccountRecord) error
	ListPaymentAccounts(ctx context.Context, userID uuid.UUID) ([]*models.PaymentAccountRecord, error)
	DeletePaymentAccount(ctx context.Context, userID, accountID uuid.UUID) error

	SellerSummary(ctx context.Context, sellerID uuid.UUID) (*models.SellerSummary, error)
	BuyerSummary(ctx context.Context, buyerID uuid.UUID) (*models.BuyerSummary, error)
	TransactionDetail(ctx context.Context, transactionID uuid.UUID) (*models.TransactionDetail, error)

	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}
