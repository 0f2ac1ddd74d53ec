package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/peermart/peermart/internal/pkg/apperrors"
	"github.com/peermart/peermart/internal/pkg/logger"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/internal/utils"
	"github.com/peermart/peermart/services/accounts"
)

const expDateLayout = "01/06" // MM/YY

type accountUC struct {
	cfg  *models.Config
	repo accounts.AccountRepo
}

// NewAccountUC creates a new account use case
func NewAccountUC(cfg *models.Config, repo accounts.AccountRepo) accounts.AccountUC {
	return &accountUC{
		cfg:  cfg,
		repo: repo,
	}
}

// GetProfile returns the user record with role flags attached
func (uc *accountUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	roles, err := uc.repo.GetRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.Profile{User: *user, Roles: roles}, nil
}

// UpdateProfile applies the mutable profile fields
func (uc *accountUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.Profile, error) {
	user, err := uc.repo.UpdateProfile(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	roles, err := uc.repo.GetRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.Profile{User: *user, Roles: roles}, nil
}

// DeactivateAccount soft-deletes the user
func (uc *accountUC) DeactivateAccount(ctx context.Context, userID uuid.UUID) error {
	if err := uc.repo.DeactivateUser(ctx, userID); err != nil {
		return err
	}
	logger.Info("Account deactivated", logger.String("user_id", userID.String()))
	return nil
}

// EnsurePaymentAccount returns the user's payment account, provisioning one
// when needed
func (uc *accountUC) EnsurePaymentAccount(ctx context.Context, userID uuid.UUID) (*models.PaymentAccount, error) {
	return uc.repo.EnsurePaymentAccount(ctx, userID)
}

// AddPaymentMethod stores a new payment instrument. The detail fields must
// match the declared account type.
func (uc *accountUC) AddPaymentMethod(ctx context.Context, userID uuid.UUID, req models.AddPaymentMethodRequest) (*models.PaymentMethod, error) {
	if req.BillingAddress == "" {
		return nil, apperrors.NoBillingAddress()
	}

	rec := &models.PaymentAccountRecord{
		PaymentAccount: models.PaymentAccount{
			AccountID:      uuid.New(),
			UserID:         userID,
			AccountType:    req.AccountType,
			BillingAddress: req.BillingAddress,
		},
	}

	switch req.AccountType {
	case models.AccountTypeBank:
		if req.BankAccNum == "" || req.RoutingNum == "" || req.CCNum != "" || req.ExpDate != "" {
			return nil, apperrors.InvalidStatus(string(req.AccountType))
		}
		rec.Bank = &models.BankAccount{
			AccountID:  rec.AccountID,
			BankAccNum: req.BankAccNum,
			RoutingNum: req.RoutingNum,
		}
	case models.AccountTypeCard:
		if req.CCNum == "" || req.ExpDate == "" || req.BankAccNum != "" || req.RoutingNum != "" {
			return nil, apperrors.InvalidStatus(string(req.AccountType))
		}
		expDate, err := time.Parse(expDateLayout, req.ExpDate)
		if err != nil {
			return nil, apperrors.InvalidStatus(req.ExpDate)
		}
		rec.Card = &models.CreditCard{
			AccountID: rec.AccountID,
			CCNum:     req.CCNum,
			ExpDate:   expDate,
		}
	default:
		return nil, apperrors.InvalidStatus(string(req.AccountType))
	}

	if err := uc.repo.CreatePaymentAccount(ctx, rec); err != nil {
		return nil, err
	}
	return maskPaymentAccount(rec), nil
}

// ListPaymentMethods returns the user's payment instruments with numbers
// masked
func (uc *accountUC) ListPaymentMethods(ctx context.Context, userID uuid.UUID) ([]*models.PaymentMethod, error) {
	recs, err := uc.repo.ListPaymentAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	methods := make([]*models.PaymentMethod, 0, len(recs))
	for _, rec := range recs {
		methods = append(methods, maskPaymentAccount(rec))
	}
	return methods, nil
}

// DeletePaymentMethod removes a payment instrument the user owns
func (uc *accountUC) DeletePaymentMethod(ctx context.Context, userID, accountID uuid.UUID) error {
	return uc.repo.DeletePaymentAccount(ctx, userID, accountID)
}

// SellerSummary aggregates a seller's listing and sales history
func (uc *accountUC) SellerSummary(ctx context.Context, sellerID uuid.UUID) (*models.SellerSummary, error) {
	return uc.repo.SellerSummary(ctx, sellerID)
}

// BuyerSummary aggregates a buyer's purchase history
func (uc *accountUC) BuyerSummary(ctx context.Context, buyerID uuid.UUID) (*models.BuyerSummary, error) {
	return uc.repo.BuyerSummary(ctx, buyerID)
}

// TransactionDetail joins both parties' billing addresses for display
func (uc *accountUC) TransactionDetail(ctx context.Context, transactionID uuid.UUID) (*models.TransactionDetail, error) {
	return uc.repo.TransactionDetail(ctx, transactionID)
}

// maskPaymentAccount converts a raw account record into the caller-facing
// shape. Instrument numbers keep only their last four digits.
func maskPaymentAccount(rec *models.PaymentAccountRecord) *models.PaymentMethod {
	method := &models.PaymentMethod{
		AccountID:      rec.AccountID,
		AccountType:    rec.AccountType,
		BillingAddress: rec.BillingAddress,
	}
	if rec.Bank != nil {
		method.Details = &models.PaymentMethodDetails{
			BankAccNum: utils.MaskSecret(rec.Bank.BankAccNum, 4),
			RoutingNum: utils.MaskSecret(rec.Bank.RoutingNum, 4),
		}
	}
	if rec.Card != nil {
		method.Details = &models.PaymentMethodDetails{
			CCNum:   utils.MaskSecret(rec.Card.CCNum, 4),
			ExpDate: rec.Card.ExpDate.Format(expDateLayout),
		}
	}
	return method
}
