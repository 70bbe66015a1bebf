// Package notifier fans reservation events out to the configured channels.
// Every channel is best-effort: failures are logged and reported back only as
// diagnostics, never as a failure of the operation that triggered them.
package notifier

import (
	"errors"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/ristorante-africa/ristorante/models"
)

// ErrNotConfigured is returned by a channel whose provider credentials are
// absent; the event is skipped, not failed.
var ErrNotConfigured = errors.New("notifier not configured")

type Notifier interface {
	Name() string
	ReservationCreated(res models.Reservation) error
	ReservationConfirmed(res models.Reservation) error
	ReservationRejected(res models.Reservation, reason string) error
}

// Dispatcher invokes every registered channel independently. The returned
// error aggregates per-channel failures for logging and diagnostic echo.
type Dispatcher struct {
	notifiers []Notifier
}

func NewDispatcher(notifiers ...Notifier) *Dispatcher {
	return &Dispatcher{notifiers: notifiers}
}

func (d *Dispatcher) ReservationCreated(res models.Reservation) error {
	return d.dispatch("reservation created", func(n Notifier) error {
		return n.ReservationCreated(res)
	})
}

func (d *Dispatcher) ReservationConfirmed(res models.Reservation) error {
	return d.dispatch("reservation confirmed", func(n Notifier) error {
		return n.ReservationConfirmed(res)
	})
}

func (d *Dispatcher) ReservationRejected(res models.Reservation, reason string) error {
	return d.dispatch("reservation rejected", func(n Notifier) error {
		return n.ReservationRejected(res, reason)
	})
}

func (d *Dispatcher) dispatch(event string, send func(Notifier) error) error {
	var errs error
	for _, n := range d.notifiers {
		if err := send(n); err != nil {
			if errors.Is(err, ErrNotConfigured) {
				logrus.Printf("%s notifier skipped for %q: not configured", n.Name(), event)
			} else {
				logrus.Printf("%s notifier failed for %q: %v", n.Name(), event, err)
			}
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}
