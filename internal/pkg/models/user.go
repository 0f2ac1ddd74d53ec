package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountStatus represents the lifecycle state of a user account
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
	AccountStatusBanned   AccountStatus = "banned"
)

// User represents a registered marketplace user
type User struct {
	ID          uuid.UUID     `json:"user_id" db:"user_id"`
	FirstName   string        `json:"first_name" db:"first_name"`
	LastName    string        `json:"last_name" db:"last_name"`
	Email       string        `json:"email" db:"email"`
	Address     string        `json:"address" db:"address"`
	PhoneNumber string        `json:"phone_number" db:"phone_number"`
	AccStatus   AccountStatus `json:"acc_status" db:"acc_status"`
	CreatedAt   time.Time     `json:"t_created" db:"t_created"`
	LastActAt   time.Time     `json:"t_last_act" db:"t_last_act"`
}

// RoleSet carries the role records a user holds
type RoleSet struct {
	IsBuyer  bool `json:"is_buyer" db:"is_buyer"`
	IsSeller bool `json:"is_seller" db:"is_seller"`
	IsAdmin  bool `json:"is_admin" db:"is_admin"`
}

// Profile is the user representation returned to callers
type Profile struct {
	User
	Roles RoleSet `json:"roles"`
}

// UpdateProfileRequest carries the mutable profile fields
type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}
