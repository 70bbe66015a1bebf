package notifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ristorante-africa/ristorante/models"
)

type stubNotifier struct {
	name      string
	err       error
	created   int
	confirmed int
	rejected  int
}

func (s *stubNotifier) Name() string { return s.name }

func (s *stubNotifier) ReservationCreated(models.Reservation) error {
	s.created++
	return s.err
}

func (s *stubNotifier) ReservationConfirmed(models.Reservation) error {
	s.confirmed++
	return s.err
}

func (s *stubNotifier) ReservationRejected(models.Reservation, string) error {
	s.rejected++
	return s.err
}

func TestDispatcher_FanOutReachesEveryChannel(t *testing.T) {
	a := &stubNotifier{name: "a"}
	b := &stubNotifier{name: "b"}
	d := NewDispatcher(a, b)

	require.NoError(t, d.ReservationCreated(models.Reservation{}))
	require.NoError(t, d.ReservationConfirmed(models.Reservation{}))
	require.NoError(t, d.ReservationRejected(models.Reservation{}, "full"))

	for _, s := range []*stubNotifier{a, b} {
		assert.Equal(t, 1, s.created)
		assert.Equal(t, 1, s.confirmed)
		assert.Equal(t, 1, s.rejected)
	}
}

func TestDispatcher_OneFailureDoesNotBlockOthers(t *testing.T) {
	failing := &stubNotifier{name: "sms", err: errors.New("provider down")}
	working := &stubNotifier{name: "email"}
	d := NewDispatcher(failing, working)

	err := d.ReservationConfirmed(models.Reservation{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider down")
	assert.Equal(t, 1, working.confirmed, "healthy channel must still fire")
}

func TestDispatcher_NotConfiguredIsStillReported(t *testing.T) {
	skipped := &stubNotifier{name: "sms", err: ErrNotConfigured}
	d := NewDispatcher(skipped)

	err := d.ReservationConfirmed(models.Reservation{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSMSNotifier_UnconfiguredSkips(t *testing.T) {
	n := NewSMSNotifier("", "", "")
	err := n.ReservationConfirmed(models.Reservation{Name: "Ada", Phone: "+390001"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestEmailNotifier_UnconfiguredSkips(t *testing.T) {
	n := NewEmailNotifier("", "", "")
	err := n.ReservationCreated(models.Reservation{Name: "Ada"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestEmailNotifier_DecisionEventsAreNoops(t *testing.T) {
	n := NewEmailNotifier("", "", "")
	assert.NoError(t, n.ReservationConfirmed(models.Reservation{}))
	assert.NoError(t, n.ReservationRejected(models.Reservation{}, "full"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Sunday, June 15, 2025", formatDate("2025-06-15"))
	assert.Equal(t, "not-a-date", formatDate("not-a-date"))
}
