package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ristorante-africa/ristorante/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	resetReason  = "Reservation cancelled - daily seat reset"
	expiryReason = "Reservation expired - customer did not check in on time"
)

// Store is the persistence surface the ledger runs on. dbhelper provides the
// postgres implementation; MemStore backs the tests.
type Store interface {
	Insert(res *models.Reservation) error
	Get(id uuid.UUID) (models.Reservation, error)
	List() ([]models.Reservation, error)

	// ActiveOn returns pending and confirmed reservations for the given date.
	ActiveOn(date string) ([]models.Reservation, error)

	// RejectActiveBefore force-rejects every pending/confirmed reservation
	// dated strictly before date and returns how many rows changed.
	RejectActiveBefore(date, reason string) (int64, error)

	UpdateStatus(id uuid.UUID, status models.ReservationStatus, reason string) (models.Reservation, error)
	UpdateCheckedIn(id uuid.UUID, checkedIn bool, at *time.Time) (models.Reservation, error)

	// DeleteFinishedBefore purges checked-in and rejected reservations dated
	// strictly before date. Returns the two delete counts.
	DeleteFinishedBefore(date string) (checkedIn int64, rejected int64, err error)
}

type Config struct {
	Capacity       int
	ExpiryGrace    time.Duration
	CreationGrace  time.Duration
	RetentionAfter time.Duration
}

func DefaultConfig() Config {
	return Config{
		Capacity:       70,
		ExpiryGrace:    15 * time.Minute,
		CreationGrace:  5 * time.Minute,
		RetentionAfter: 7 * 24 * time.Hour,
	}
}

// Ledger owns reservation records and the daily seat pool. Capacity is a
// single pooled headcount per calendar day, not per table or time slot.
type Ledger struct {
	store Store
	clock Clock
	cfg   Config
}

func New(store Store, clock Clock, cfg Config) *Ledger {
	if clock == nil {
		clock = SystemClock()
	}
	def := DefaultConfig()
	if cfg.Capacity <= 0 {
		cfg.Capacity = def.Capacity
	}
	if cfg.ExpiryGrace <= 0 {
		cfg.ExpiryGrace = def.ExpiryGrace
	}
	if cfg.CreationGrace <= 0 {
		cfg.CreationGrace = def.CreationGrace
	}
	if cfg.RetentionAfter <= 0 {
		cfg.RetentionAfter = def.RetentionAfter
	}
	return &Ledger{store: store, clock: clock, cfg: cfg}
}

func (l *Ledger) Capacity() int { return l.cfg.Capacity }

func (l *Ledger) today() string { return l.clock.Now().Format(dateLayout) }

// Today returns the current calendar date per the injected clock.
func (l *Ledger) Today() string { return l.today() }

// ValidDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// Reconcile runs the two lazy corrections: the previous-day reset, then the
// same-day expiry. Both are idempotent, and the reset only touches dates
// before today while expiry only touches today, so their order never matters
// for correctness. Every capacity read used for an admission decision calls
// this first.
func (l *Ledger) Reconcile() (reset int64, expired int64, err error) {
	today := l.today()

	reset, err = l.store.RejectActiveBefore(today, resetReason)
	if err != nil {
		return 0, 0, err
	}
	if reset > 0 {
		logrus.Printf("daily reset: cancelled %d reservation(s) from previous days", reset)
	}

	active, err := l.store.ActiveOn(today)
	if err != nil {
		return reset, 0, err
	}

	now := l.clock.Now()
	for _, res := range active {
		if res.CheckedIn || !l.isExpired(res, now) {
			continue
		}
		if _, uerr := l.store.UpdateStatus(res.ID, models.StatusRejected, expiryReason); uerr != nil {
			logrus.Printf("failed to expire reservation %s: %v", res.ID, uerr)
			continue
		}
		expired++
		logrus.Printf("expired reservation %s (%s %s, not checked in)", res.ID, res.Date, res.Time)
	}

	return reset, expired, nil
}

// isExpired reports whether a same-day reservation's time has passed by more
// than the expiry grace period.
func (l *Ledger) isExpired(res models.Reservation, now time.Time) bool {
	t, err := time.Parse(timeLayout, res.Time)
	if err != nil {
		logrus.Printf("reservation %s has unparseable time %q", res.ID, res.Time)
		return false
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	return now.After(at.Add(l.cfg.ExpiryGrace))
}

// Availability is the per-day seat breakdown returned to callers.
type Availability struct {
	AvailableSeats       int `json:"availableSeats"`
	TotalCapacity        int `json:"totalCapacity"`
	BookedSeats          int `json:"bookedSeats"`
	ConfirmedBookedSeats int `json:"confirmedBookedSeats"`
	PendingBookedSeats   int `json:"pendingBookedSeats"`
}

// Availability computes the seat pool for date after reconciling. Available
// seats are capacity minus guests over pending and confirmed reservations,
// floored at zero.
func (l *Ledger) Availability(date string) (Availability, error) {
	if _, _, err := l.Reconcile(); err != nil {
		return Availability{}, err
	}

	active, err := l.store.ActiveOn(date)
	if err != nil {
		return Availability{}, err
	}

	var pending, confirmed int
	for _, res := range active {
		switch res.Status {
		case models.StatusPending:
			pending += res.Guests
		case models.StatusConfirmed:
			confirmed += res.Guests
		}
	}

	booked := pending + confirmed
	available := l.cfg.Capacity - booked
	if available < 0 {
		available = 0
	}

	return Availability{
		AvailableSeats:       available,
		TotalCapacity:        l.cfg.Capacity,
		BookedSeats:          booked,
		ConfirmedBookedSeats: confirmed,
		PendingBookedSeats:   pending,
	}, nil
}

// CheckAvailability reports whether date still has room for guests.
func (l *Ledger) CheckAvailability(date string, guests int) (bool, int, error) {
	avail, err := l.Availability(date)
	if err != nil {
		return false, 0, err
	}
	return avail.AvailableSeats >= guests, avail.AvailableSeats, nil
}

type CreateInput struct {
	Name            string
	Phone           string
	Email           string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

// Create validates the submission, re-checks capacity at write time and
// stores the reservation as pending. The capacity check and the insert are
// not a single atomic step: two concurrent submissions can both observe
// enough seats and both land, transiently over-booking the day. The counts
// self-correct on the next read; no stronger guarantee is provided.
func (l *Ledger) Create(input CreateInput) (models.Reservation, error) {
	if err := l.validate(input); err != nil {
		return models.Reservation{}, err
	}

	ok, seats, err := l.CheckAvailability(input.Date, input.Guests)
	if err != nil {
		return models.Reservation{}, err
	}
	if !ok {
		return models.Reservation{}, &CapacityError{AvailableSeats: seats, Requested: input.Guests}
	}

	res := models.Reservation{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(input.Name),
		Phone:           strings.TrimSpace(input.Phone),
		Email:           strings.TrimSpace(input.Email),
		Date:            input.Date,
		Time:            input.Time,
		Guests:          input.Guests,
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		Status:          models.StatusPending,
		CreatedAt:       l.clock.Now(),
	}
	if err := l.store.Insert(&res); err != nil {
		return models.Reservation{}, err
	}
	return res, nil
}

func (l *Ledger) validate(input CreateInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Phone) == "" ||
		input.Date == "" || input.Time == "" {
		return &ValidationError{Reason: "missing required fields"}
	}
	if input.Guests < 1 || input.Guests > 20 {
		return &ValidationError{Reason: "guests must be between 1 and 20"}
	}
	if !ValidDate(input.Date) {
		return &ValidationError{Reason: "invalid date format, expected YYYY-MM-DD"}
	}
	t, err := time.Parse(timeLayout, input.Time)
	if err != nil {
		return &ValidationError{Reason: "invalid time format, expected HH:MM"}
	}

	today := l.today()
	if input.Date < today {
		return &ValidationError{Reason: "cannot create a reservation for a past date"}
	}
	if input.Date == today {
		now := l.clock.Now()
		at := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
		// A same-day reservation whose time is already past would qualify
		// for auto-expiry the moment it lands.
		if now.After(at.Add(l.cfg.CreationGrace)) {
			return &ValidationError{Reason: "reservation time has already passed"}
		}
	}
	return nil
}

// Get returns a single reservation by id.
func (l *Ledger) Get(id uuid.UUID) (models.Reservation, error) {
	return l.store.Get(id)
}

// List returns every reservation ordered by date and time.
func (l *Ledger) List() ([]models.Reservation, error) {
	return l.store.List()
}

// UpdateStatus transitions a reservation to any status. Rejection requires a
// non-empty reason; any other status clears a previously stored reason.
func (l *Ledger) UpdateStatus(id uuid.UUID, status models.ReservationStatus, reason string) (models.Reservation, error) {
	if !status.IsValid() {
		return models.Reservation{}, &ValidationError{Reason: "invalid status"}
	}
	if status == models.StatusRejected && strings.TrimSpace(reason) == "" {
		return models.Reservation{}, &ValidationError{Reason: "rejection reason is required when rejecting a reservation"}
	}
	if status != models.StatusRejected {
		reason = ""
	}
	return l.store.UpdateStatus(id, status, reason)
}

// SetCheckedIn toggles the check-in flag independently of status. Checking in
// stamps the time; checking out clears it.
func (l *Ledger) SetCheckedIn(id uuid.UUID, checkedIn bool) (models.Reservation, error) {
	var at *time.Time
	if checkedIn {
		now := l.clock.Now()
		at = &now
	}
	return l.store.UpdateCheckedIn(id, checkedIn, at)
}

// CleanupResult reports what the housekeeping pass changed.
type CleanupResult struct {
	PreviousDayCount int64 `json:"previousDayCount"`
	ExpiredCount     int64 `json:"expiredCount"`
	CancelledCount   int64 `json:"cancelledCount"`
	DeletedCheckedIn int64 `json:"deletedCheckedIn"`
	DeletedRejected  int64 `json:"deletedRejected"`
	TotalDeleted     int64 `json:"totalDeleted"`
}

// Cleanup reconciles and then hard-deletes checked-in and rejected
// reservations older than the retention window. Invoked explicitly (cron
// endpoint), not part of the availability calculation.
func (l *Ledger) Cleanup() (CleanupResult, error) {
	reset, expired, err := l.Reconcile()
	if err != nil {
		return CleanupResult{}, err
	}

	cutoff := l.clock.Now().Add(-l.cfg.RetentionAfter).Format(dateLayout)
	deletedCheckedIn, deletedRejected, err := l.store.DeleteFinishedBefore(cutoff)
	if err != nil {
		return CleanupResult{}, err
	}

	return CleanupResult{
		PreviousDayCount: reset,
		ExpiredCount:     expired,
		CancelledCount:   reset + expired,
		DeletedCheckedIn: deletedCheckedIn,
		DeletedRejected:  deletedRejected,
		TotalDeleted:     deletedCheckedIn + deletedRejected,
	}, nil
}
