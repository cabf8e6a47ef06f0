package model

import (
	"strconv"
	"time"
)

// UserEntity represents the users table entity
type UserEntity struct {
	ID                    uint64     `db:"id" json:"id"`
	Name                  string     `db:"name" json:"name"`
	Phone                 string     `db:"phone" json:"phone"`
	Age                   *int64     `db:"age" json:"age"`
	ReferredBy            *uint64    `db:"referred_by" json:"referred_by"`
	ReferredOpportunityID *uint64    `db:"referred_opportunity_id" json:"referred_opportunity_id"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt             *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Phone string
}

// FilterFromIdentifier selects the lookup column by shape: an all-digit
// identifier is treated as a user id, anything else as a phone number.
func FilterFromIdentifier(identifier string) *UserFilter {
	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil && id != 0 {
		return &UserFilter{ID: id}
	}
	return &UserFilter{Phone: identifier}
}

// UpdateReferralItem carries the merged referral fields to persist for an
// existing user.
type UpdateReferralItem struct {
	UserID                uint64
	ReferredBy            *uint64
	ReferredOpportunityID *uint64
}

// UserProfile is the wire projection of a user
type UserProfile struct {
	ID                    uint64  `json:"id"`
	Name                  string  `json:"name"`
	Phone                 string  `json:"phone"`
	Age                   *int64  `json:"age"`
	ReferredBy            *uint64 `json:"referred_by"`
	ReferredOpportunityID *uint64 `json:"referred_opportunity_id"`
}

// Profile projects the entity onto the wire shape
func (u *UserEntity) Profile() *UserProfile {
	return &UserProfile{
		ID:                    u.ID,
		Name:                  u.Name,
		Phone:                 u.Phone,
		Age:                   u.Age,
		ReferredBy:            u.ReferredBy,
		ReferredOpportunityID: u.ReferredOpportunityID,
	}
}

// SignupRequest for user registration. Only phone is mandatory; referral
// fields are tri-state so the merge rule can tell omitted from null.
type SignupRequest struct {
	Phone                 string         `json:"phone" validate:"required"`
	Name                  string         `json:"name"`
	Age                   OptionalUint64 `json:"age"`
	ReferredBy            OptionalUint64 `json:"referred_by"`
	ReferredOpportunityID OptionalUint64 `json:"referred_opportunity_id"`
}

type SignupResponse struct {
	Success bool         `json:"success"`
	User    *UserProfile `json:"user"`
}

type ProfileResponse struct {
	Success bool         `json:"success"`
	User    *UserProfile `json:"user"`
}
