package models

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusRejected  ReservationStatus = "rejected"
)

func (s ReservationStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusRejected
}

// Active reservations are the ones that hold seats against the daily capacity.
func (s ReservationStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

type Reservation struct {
	ID              uuid.UUID         `db:"id" json:"id"`
	Name            string            `db:"name" json:"name"`
	Phone           string            `db:"phone" json:"phone"`
	Email           string            `db:"email" json:"email,omitempty"`
	Date            string            `db:"date" json:"date"` // YYYY-MM-DD, venue local time
	Time            string            `db:"time" json:"time"` // HH:MM, venue local time
	Guests          int               `db:"guests" json:"guests"`
	SpecialRequests string            `db:"special_requests" json:"specialRequests,omitempty"`
	Status          ReservationStatus `db:"status" json:"status"`
	RejectionReason string            `db:"rejection_reason" json:"rejectionReason,omitempty"`
	CheckedIn       bool              `db:"checked_in" json:"checkedIn"`
	CheckedInAt     *time.Time        `db:"checked_in_at" json:"checkedInAt,omitempty"`
	CreatedAt       time.Time         `db:"created_at" json:"createdAt"`
}
