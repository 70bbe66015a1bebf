package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no reservation exists for the given id.
var ErrNotFound = errors.New("reservation not found")

// ValidationError reports rejected input. Handlers map it to a 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// CapacityError reports an admission refusal. It carries the seat count
// observed at write time so the caller can echo it back.
type CapacityError struct {
	AvailableSeats int
	Requested      int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("not enough available seats: requested %d, available %d", e.Requested, e.AvailableSeats)
}
