package notifier

import (
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"

	"github.com/ristorante-africa/ristorante/models"
)

// EmailNotifier mails the restaurant when a new request arrives so staff can
// confirm or reject it. Guest-facing decisions go out over SMS instead.
type EmailNotifier struct {
	client     *resend.Client
	from       string
	adminEmail string
}

func NewEmailNotifier(apiKey, from, adminEmail string) *EmailNotifier {
	n := &EmailNotifier{from: from, adminEmail: adminEmail}
	if apiKey != "" {
		n.client = resend.NewClient(apiKey)
	}
	return n
}

func (n *EmailNotifier) Name() string { return "email" }

func (n *EmailNotifier) ReservationCreated(res models.Reservation) error {
	if n.client == nil || n.from == "" || n.adminEmail == "" {
		return ErrNotConfigured
	}

	subject := fmt.Sprintf("New reservation - %s - %s", res.Name, formatDate(res.Date))
	sent, err := n.client.Emails.Send(&resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.adminEmail},
		Subject: subject,
		Html:    reservationHTML(res),
	})
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	logrus.Printf("admin email sent, id %s", sent.Id)
	return nil
}

func (n *EmailNotifier) ReservationConfirmed(models.Reservation) error { return nil }

func (n *EmailNotifier) ReservationRejected(models.Reservation, string) error { return nil }

func reservationHTML(res models.Reservation) string {
	requests := res.SpecialRequests
	if requests == "" {
		requests = "none"
	}
	return fmt.Sprintf(`<h2>New reservation request</h2>
<p><strong>Guest:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Date:</strong> %s at %s</p>
<p><strong>Guests:</strong> %d</p>
<p><strong>Special requests:</strong> %s</p>
<p>Open the admin panel to confirm or reject.</p>`,
		html.EscapeString(res.Name),
		html.EscapeString(res.Phone),
		html.EscapeString(formatDate(res.Date)),
		html.EscapeString(res.Time),
		res.Guests,
		html.EscapeString(requests))
}
