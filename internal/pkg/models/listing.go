package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingStatus represents the availability state of a listing
type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "active"
	ListingStatusPending   ListingStatus = "pending"
	ListingStatusClosed    ListingStatus = "closed"
	ListingStatusCompleted ListingStatus = "completed"
)

// ValidListingStatus reports whether s is a member of the listing status set
func ValidListingStatus(s ListingStatus) bool {
	switch s {
	case ListingStatusActive, ListingStatusPending, ListingStatusClosed, ListingStatusCompleted:
		return true
	}
	return false
}

// Listing represents a sellable item posted by a seller
type Listing struct {
	ListingID   uuid.UUID       `json:"listing_id" db:"listing_id"`
	SellerID    uuid.UUID       `json:"seller_id" db:"seller_id"`
	Status      ListingStatus   `json:"status" db:"status"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	ListImage   string          `json:"list_image" db:"list_image"`
	Location    string          `json:"location" db:"location"`
	MetaTag     string          `json:"meta_tag" db:"meta_tag"`
	CreatedAt   time.Time       `json:"t_created" db:"t_created"`
	LastEditAt  time.Time       `json:"t_last_edit" db:"t_last_edit"`
}

// CreateListingRequest carries the fields for a new listing
type CreateListingRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ListImage   string          `json:"list_image"`
	Location    string          `json:"location"`
	MetaTag     string          `json:"meta_tag"`
}

// UpdateListingRequest carries the mutable listing fields
type UpdateListingRequest struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	ListImage   *string          `json:"list_image,omitempty"`
	Location    *string          `json:"location,omitempty"`
	MetaTag     *string          `json:"meta_tag,omitempty"`
}

// ListingFilter narrows listing searches; zero fields are ignored
type ListingFilter struct {
	Query    string
	Status   ListingStatus
	SellerID *uuid.UUID
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Tag      string
}
