package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer types. A GUEST becomes a MEMBER through promotion, never the
// other way round.
const (
	CustomerTypeGuest  = "GUEST"
	CustomerTypeMember = "MEMBER"
)

// Customer represents a customer record.
type Customer struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	Email     string    `json:"email" db:"email"`
	Address   string    `json:"address" db:"address"`
	Type      string    `json:"type" db:"customer_type"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Member is the credential sub-record attached to a MEMBER customer.
type Member struct {
	CustomerID   uuid.UUID  `json:"customerId" db:"customer_id"`
	PasswordHash string     `json:"-" db:"password_hash"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	RegisteredAt time.Time  `json:"registeredAt" db:"registered_at"`
}

// MemberProfile is a customer joined with its member record, as returned by
// the member listing.
type MemberProfile struct {
	CustomerID   uuid.UUID  `json:"customerId"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	Address      string     `json:"address"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	RegisteredAt time.Time  `json:"registeredAt"`
}

// MemberAccount carries the fields needed to verify a login.
type MemberAccount struct {
	CustomerID   uuid.UUID
	Name         string
	PasswordHash string
}

// MemberIdentity is the positive result of a successful login.
type MemberIdentity struct {
	CustomerID uuid.UUID `json:"customerId"`
	Name       string    `json:"name"`
}

// CreateCustomerRequest represents the request payload for creating a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Type    string `json:"type,omitempty"`
}

// PromoteMemberRequest represents the request payload for promoting a
// customer to a member.
type PromoteMemberRequest struct {
	Password    string     `json:"password"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
}

// LoginRequest represents the request payload for a member login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
