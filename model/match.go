package model

import (
	"database/sql"
	"time"

	"github.com/asklink/matching/constant"
)

// MatchEntity represents the matches table entity
type MatchEntity struct {
	ID            uint64               `db:"id"`
	AskID         uint64               `db:"ask_id"`
	RequesterID   uint64               `db:"requester_id"`
	MatchedUserID uint64               `db:"matched_user_id"`
	Status        constant.MatchStatus `db:"status"`
	CreatedAt     time.Time            `db:"created_at"`
	UpdatedAt     *time.Time           `db:"updated_at"`
}

// RespondRequest for recording a user's response to a match
type RespondRequest struct {
	Response string         `json:"response" validate:"required"`
	UserID   OptionalUint64 `json:"user_id"`
}

type RespondResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ArchiveRow is the scan target for the archive join
type ArchiveRow struct {
	MatchID       uint64         `db:"match_id"`
	AskID         uint64         `db:"ask_id"`
	Status        string         `db:"status"`
	UpdatedAt     *time.Time     `db:"updated_at"`
	Title         sql.NullString `db:"title"`
	AskText       sql.NullString `db:"ask_text"`
	Category      sql.NullString `db:"category"`
	RequesterID   uint64         `db:"requester_id"`
	RequesterName sql.NullString `db:"requester_name"`
}

// ArchiveItem is one archived opportunity on the wire. The duplicated
// title/name aliases are a compatibility shim for two generations of
// clients and must both be populated.
type ArchiveItem struct {
	MatchID       uint64     `json:"match_id"`
	AskID         uint64     `json:"ask_id"`
	AskTitle      string     `json:"ask_title"`
	Title         string     `json:"title"`
	AskText       string     `json:"ask_text"`
	Category      string     `json:"category"`
	Status        string     `json:"status"`
	RequesterID   uint64     `json:"requester_id"`
	RequesterName string     `json:"requester_name"`
	OtherName     string     `json:"other_name"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`
}

type ArchiveResponse struct {
	Success       bool          `json:"success"`
	Opportunities []ArchiveItem `json:"opportunities"`
	Count         int           `json:"count"`
}

// ScheduleExpirationRequest asks the expiration pipeline to flip a match
// to expired once the response window closes.
type ScheduleExpirationRequest struct {
	ExpiresAt time.Time `json:"expires_at" validate:"required"`
}

type ScheduleExpirationResponse struct {
	Success bool `json:"success"`
}

type ExpireResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
