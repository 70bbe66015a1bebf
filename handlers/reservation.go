package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ristorante-africa/ristorante/ledger"
	"github.com/ristorante-africa/ristorante/models"
	"github.com/ristorante-africa/ristorante/notifier"
)

// Wired in main before the server starts serving.
var (
	Ledger *ledger.Ledger
	Notify *notifier.Dispatcher
)

func GetAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" || !ledger.ValidDate(date) {
		date = Ledger.Today()
	}

	avail, err := Ledger.Availability(date)
	if err != nil {
		logrus.Printf("failed to compute availability for %s: %v", date, err)
		http.Error(w, "failed to fetch availability", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(avail)
}

func ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := Ledger.List()
	if err != nil {
		logrus.Printf("failed to list reservations: %v", err)
		http.Error(w, "failed to fetch reservations", http.StatusInternalServerError)
		return
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reservations)
}

func CreateReservation(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name            string `json:"name"`
		Phone           string `json:"phone"`
		Email           string `json:"email"`
		Date            string `json:"date"`
		Time            string `json:"time"`
		Guests          int    `json:"guests"`
		SpecialRequests string `json:"specialRequests"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	res, err := Ledger.Create(ledger.CreateInput{
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		var cerr *ledger.CapacityError
		var verr *ledger.ValidationError
		switch {
		case errors.As(err, &cerr):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error":           "Not enough available seats",
				"availableSeats":  cerr.AvailableSeats,
				"requestedGuests": cerr.Requested,
			})
		case errors.As(err, &verr):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": verr.Reason})
		default:
			logrus.Printf("failed to create reservation: %v", err)
			http.Error(w, "failed to create reservation", http.StatusInternalServerError)
		}
		return
	}

	// staff heads-up is best-effort; the reservation stands either way
	if err := Notify.ReservationCreated(res); err != nil {
		logrus.Printf("reservation %s created, notification incomplete: %v", res.ID, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(res)
}

func UpdateReservation(w http.ResponseWriter, r *http.Request) {
	type request struct {
		ID              string `json:"id"`
		Status          string `json:"status"`
		RejectionReason string `json:"rejectionReason"`
		CheckedIn       *bool  `json:"checkedIn"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		http.Error(w, "missing reservation id", http.StatusBadRequest)
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		http.Error(w, "invalid reservation id", http.StatusBadRequest)
		return
	}

	// check-in toggles are independent of the status transition branch
	if req.CheckedIn != nil {
		res, err := Ledger.SetCheckedIn(id, *req.CheckedIn)
		if err != nil {
			if errors.Is(err, ledger.ErrNotFound) {
				http.Error(w, "reservation not found", http.StatusNotFound)
				return
			}
			logrus.Printf("failed to update check-in for %s: %v", id, err)
			http.Error(w, "failed to update reservation", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
		return
	}

	if req.Status == "" {
		http.Error(w, "missing status", http.StatusBadRequest)
		return
	}

	res, err := Ledger.UpdateStatus(id, models.ReservationStatus(req.Status), req.RejectionReason)
	if err != nil {
		var verr *ledger.ValidationError
		switch {
		case errors.Is(err, ledger.ErrNotFound):
			http.Error(w, "reservation not found", http.StatusNotFound)
		case errors.As(err, &verr):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": verr.Reason})
		default:
			logrus.Printf("failed to update reservation %s: %v", id, err)
			http.Error(w, "failed to update reservation", http.StatusInternalServerError)
		}
		return
	}

	var notifyErr error
	switch res.Status {
	case models.StatusConfirmed:
		notifyErr = Notify.ReservationConfirmed(res)
	case models.StatusRejected:
		notifyErr = Notify.ReservationRejected(res, res.RejectionReason)
	}

	smsStatus := "sent"
	smsError := ""
	if notifyErr != nil {
		smsStatus = "not_sent"
		smsError = notifyErr.Error()
	}

	resp := struct {
		models.Reservation
		SMSStatus string `json:"_smsStatus"`
		SMSError  string `json:"_smsError,omitempty"`
	}{res, smsStatus, smsError}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func CleanupReservations(w http.ResponseWriter, r *http.Request) {
	result, err := Ledger.Cleanup()
	if err != nil {
		logrus.Printf("cleanup failed: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "failed to cleanup reservations",
		})
		return
	}

	resp := struct {
		Success bool `json:"success"`
		ledger.CleanupResult
		Message string `json:"message"`
	}{
		Success:       true,
		CleanupResult: result,
		Message: fmt.Sprintf("Cleanup done. Cancelled: %d (previous day + expired). Deleted: %d (checked-in & rejected past retention).",
			result.CancelledCount, result.TotalDeleted),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
