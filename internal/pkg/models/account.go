package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountType represents the kind of payment instrument behind an account
type AccountType string

const (
	AccountTypeBank AccountType = "bank_account"
	AccountTypeCard AccountType = "credit_card"
)

// PaymentAccount represents a billing instrument owned by a user
type PaymentAccount struct {
	AccountID      uuid.UUID   `json:"account_id" db:"account_id"`
	UserID         uuid.UUID   `json:"user_id" db:"user_id"`
	AccountType    AccountType `json:"account_type" db:"account_type"`
	BillingAddress string      `json:"billing_address" db:"billing_address"`
}

// BankAccount holds bank details for a bank_account payment account
type BankAccount struct {
	AccountID  uuid.UUID `json:"account_id" db:"account_id"`
	BankAccNum string    `json:"bank_acc_num" db:"bank_acc_num"`
	RoutingNum string    `json:"routing_num" db:"routing_num"`
}

// CreditCard holds card details for a credit_card payment account
type CreditCard struct {
	AccountID uuid.UUID `json:"account_id" db:"account_id"`
	CCNum     string    `json:"cc_num" db:"cc_num"`
	ExpDate   time.Time `json:"exp_date" db:"exp_date"`
}

// PaymentAccountRecord is the unmasked account row with its detail record.
// Repository-internal shape; callers get PaymentMethod instead.
type PaymentAccountRecord struct {
	PaymentAccount
	Bank *BankAccount
	Card *CreditCard
}

// AddPaymentMethodRequest carries a new payment instrument
type AddPaymentMethodRequest struct {
	AccountType    AccountType `json:"account_type"`
	BillingAddress string      `json:"billing_address"`
	BankAccNum     string      `json:"bank_acc_num,omitempty"`
	RoutingNum     string      `json:"routing_num,omitempty"`
	CCNum          string      `json:"cc_num,omitempty"`
	ExpDate        string      `json:"exp_date,omitempty"` // MM/YY
}

// PaymentMethodDetails holds the masked instrument fields for display
type PaymentMethodDetails struct {
	BankAccNum string `json:"bank_acc_num,omitempty"`
	RoutingNum string `json:"routing_num,omitempty"`
	CCNum      string `json:"cc_num,omitempty"`
	ExpDate    string `json:"exp_date,omitempty"`
}

// PaymentMethod is the masked account representation returned to callers.
// Raw instrument numbers never leave the repository unmasked.
type PaymentMethod struct {
	AccountID      uuid.UUID             `json:"account_id"`
	AccountType    AccountType           `json:"account_type"`
	BillingAddress string                `json:"billing_address"`
	Details        *PaymentMethodDetails `json:"details,omitempty"`
}
