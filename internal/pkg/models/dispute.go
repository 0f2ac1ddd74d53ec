package models

import (
	"time"

	"github.com/google/uuid"
)

// DisputeStatus represents the resolution state of a dispute
type DisputeStatus string

const (
	DisputeStatusUnsolved DisputeStatus = "unsolved"
	DisputeStatusSolved   DisputeStatus = "solved"
)

// ValidDisputeStatus reports whether s is a member of the dispute status set
func ValidDisputeStatus(s DisputeStatus) bool {
	return s == DisputeStatusUnsolved || s == DisputeStatusSolved
}

// Dispute is an admin-mediated complaint tied to a transaction
type Dispute struct {
	DisputeID      uuid.UUID     `json:"dispute_id" db:"dispute_id"`
	TransactionID  uuid.UUID     `json:"transaction_id" db:"transaction_id"`
	AdminID        *uuid.UUID    `json:"admin_id" db:"admin_id"`
	Description    string        `json:"description" db:"description"`
	Status         DisputeStatus `json:"status" db:"status"`
	ResolutionDate *time.Time    `json:"resolution_date" db:"resolution_date"`
}

// OpenDisputeRequest carries the inputs for a new dispute
type OpenDisputeRequest struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Description   string    `json:"description"`
}

// ResolveDisputeRequest carries a dispute status transition
type ResolveDisputeRequest struct {
	Status DisputeStatus `json:"status"`
}
