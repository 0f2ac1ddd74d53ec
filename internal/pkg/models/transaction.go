package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus represents the state of a purchase transaction
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusConfirming TransactionStatus = "confirming"
	TransactionStatusConfirmed  TransactionStatus = "confirmed"
	TransactionStatusCompleted  TransactionStatus = "completed"
)

// ValidTransactionStatus reports whether s is a member of the transaction status set
func ValidTransactionStatus(s TransactionStatus) bool {
	switch s {
	case TransactionStatusPending, TransactionStatusConfirming,
		TransactionStatusConfirmed, TransactionStatusCompleted:
		return true
	}
	return false
}

// Transaction links one buyer, one seller and one listing at an agreed price
type Transaction struct {
	TransactionID uuid.UUID         `json:"transaction_id" db:"transaction_id"`
	BuyerID       uuid.UUID         `json:"buyer_id" db:"buyer_id"`
	SellerID      uuid.UUID         `json:"seller_id" db:"seller_id"`
	ListingID     uuid.UUID         `json:"listing_id" db:"listing_id"`
	AgreedPrice   decimal.Decimal   `json:"agreed_price" db:"agreed_price"`
	ServFee       decimal.Decimal   `json:"serv_fee" db:"serv_fee"`
	Status        TransactionStatus `json:"status" db:"status"`
	TDate         time.Time         `json:"t_date" db:"t_date"`
}

// CreateTransactionRequest carries the inputs for a new transaction
type CreateTransactionRequest struct {
	ListingID   uuid.UUID       `json:"listing_id"`
	AgreedPrice decimal.Decimal `json:"agreed_price"`
	ServFee     decimal.Decimal `json:"serv_fee"`
}

// UpdateTransactionStatusRequest carries a status transition
type UpdateTransactionStatusRequest struct {
	Status TransactionStatus `json:"status"`
}

// TransactionFilter narrows transaction listings; nil/zero fields are ignored
type TransactionFilter struct {
	BuyerID  *uuid.UUID
	SellerID *uuid.UUID
	Status   TransactionStatus
}

// TransactionDetail joins both parties' billing addresses for display
type TransactionDetail struct {
	Transaction
	BuyerBillingAddress  string `json:"buyer_billing_address" db:"buyer_billing_address"`
	SellerBillingAddress string `json:"seller_billing_address" db:"seller_billing_address"`
}
