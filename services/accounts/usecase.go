package accounts

import (
	"context"

	"github.com/google/uuid"
	"github.com/peermart/peermart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/peermart/peermart/services/accounts AccountUC

// AccountUC defines the account service business logic
type AccountUC interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.Profile, error)
	DeactivateAccount(ctx context.Context, userID uuid.UUID) error

	EnsurePaymentAccount(ctx context.Context, userID uuid.UUID) (*models.PaymentAccount, error)
	AddPaymentMethod(ctx context.Context, userID uuid.UUID, req models.AddPaymentMethodRequest) (*models.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context, userID uuid.UUID) ([]*models.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, userID, accountID uuid.UUID) error

	SellerSummary(ctx context.Context, sellerID uuid.UUID) (*models.SellerSummary, error)
	BuyerSummary(ctx context.Context, buyerID uuid.UUID) (*models.BuyerSummary, error)
	TransactionDetail(ctx context.Context, transactionID uuid.UUID) (*models.TransactionDetail, error)
}
