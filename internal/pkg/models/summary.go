package models

import "github.com/shopspring/decimal"

// SellerSummary aggregates a seller's listing and sales history
type SellerSummary struct {
	TotalListings     int             `json:"total_listings" db:"total_listings"`
	ActiveListings    int             `json:"active_listings" db:"active_listings"`
	TotalTransactions int             `json:"total_transactions" db:"total_transactions"`
	TotalRevenue      decimal.Decimal `json:"total_revenue" db:"total_revenue"`
}

// BuyerSummary aggregates a buyer's purchase history
type BuyerSummary struct {
	TotalPurchases        int             `json:"total_purchases" db:"total_purchases"`
	ActiveTransactions    int             `json:"active_transactions" db:"active_transactions"`
	CompletedTransactions int             `json:"completed_transactions" db:"completed_transactions"`
	TotalSpent            decimal.Decimal `json:"total_spent" db:"total_spent"`
}
