package notifier

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/ristorante-africa/ristorante/models"
)

// SMSNotifier texts the guest when the restaurant decides on their request.
// It stays silent on creation; that event belongs to the admin channel.
type SMSNotifier struct {
	client *twilio.RestClient
	from   string
}

func NewSMSNotifier(accountSID, authToken, from string) *SMSNotifier {
	n := &SMSNotifier{from: from}
	if accountSID != "" && authToken != "" {
		n.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	}
	return n
}

func (n *SMSNotifier) Name() string { return "sms" }

func (n *SMSNotifier) ReservationCreated(models.Reservation) error { return nil }

func (n *SMSNotifier) ReservationConfirmed(res models.Reservation) error {
	body := fmt.Sprintf(
		"Hello %s! Your reservation at Ristorante Africa has been confirmed. Date: %s Time: %s Guests: %d. We look forward to serving you!",
		res.Name, formatDate(res.Date), res.Time, res.Guests)
	return n.send(res.Phone, body)
}

func (n *SMSNotifier) ReservationRejected(res models.Reservation, reason string) error {
	body := fmt.Sprintf(
		"Hello %s, we're sorry to inform you that your reservation at Ristorante Africa could not be confirmed.",
		res.Name)
	if reason != "" {
		body += " Reason: " + reason
	}
	body += " Please contact us to make a new reservation."
	return n.send(res.Phone, body)
}

func (n *SMSNotifier) send(to, body string) error {
	if n.client == nil || n.from == "" {
		return ErrNotConfigured
	}
	if to == "" {
		return fmt.Errorf("reservation has no phone number")
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.from)
	params.SetBody(body)

	msg, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	if msg.Sid != nil {
		logrus.Printf("sms sent, sid %s", *msg.Sid)
	}
	return nil
}

func formatDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}
