package dbhelper

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ristorante-africa/ristorante/database"
	"github.com/ristorante-africa/ristorante/ledger"
	"github.com/ristorante-africa/ristorante/models"
)

const reservationColumns = `id, name, phone, email, reservation_date, reservation_time, guests,
	special_requests, status, rejection_reason, checked_in, checked_in_at, created_at`

// ReservationStore is the postgres implementation of ledger.Store.
type ReservationStore struct{}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{}
}

func (s *ReservationStore) Insert(res *models.Reservation) error {
	_, err := database.Ristorante.Exec(`
		INSERT INTO reservations (id, name, phone, email, reservation_date, reservation_time,
			guests, special_requests, status, rejection_reason, checked_in, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, '', FALSE, $10)`,
		res.ID, res.Name, res.Phone, res.Email, res.Date, res.Time,
		res.Guests, res.SpecialRequests, res.Status, res.CreatedAt)
	return err
}

func (s *ReservationStore) Get(id uuid.UUID) (models.Reservation, error) {
	row := database.Ristorante.QueryRow(`
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE id = $1`, id)
	return scanReservation(row)
}

func (s *ReservationStore) List() ([]models.Reservation, error) {
	rows, err := database.Ristorante.Query(`
		SELECT ` + reservationColumns + `
		FROM reservations
		ORDER BY reservation_date ASC, reservation_time ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (s *ReservationStore) ActiveOn(date string) ([]models.Reservation, error) {
	rows, err := database.Ristorante.Query(`
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE reservation_date = $1 AND status IN ('pending', 'confirmed')`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (s *ReservationStore) RejectActiveBefore(date, reason string) (int64, error) {
	result, err := database.Ristorante.Exec(`
		UPDATE reservations
		SET status = 'rejected', rejection_reason = $1
		WHERE reservation_date < $2 AND status IN ('pending', 'confirmed')`, reason, date)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *ReservationStore) UpdateStatus(id uuid.UUID, status models.ReservationStatus, reason string) (models.Reservation, error) {
	row := database.Ristorante.QueryRow(`
		UPDATE reservations
		SET status = $1, rejection_reason = $2
		WHERE id = $3
		RETURNING `+reservationColumns, status, reason, id)
	return scanReservation(row)
}

func (s *ReservationStore) UpdateCheckedIn(id uuid.UUID, checkedIn bool, at *time.Time) (models.Reservation, error) {
	row := database.Ristorante.QueryRow(`
		UPDATE reservations
		SET checked_in = $1, checked_in_at = $2
		WHERE id = $3
		RETURNING `+reservationColumns, checkedIn, at, id)
	return scanReservation(row)
}

func (s *ReservationStore) DeleteFinishedBefore(date string) (int64, int64, error) {
	var checkedIn, rejected int64
	txErr := database.Tx(func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			DELETE FROM reservations
			WHERE checked_in = TRUE AND reservation_date < $1`, date)
		if err != nil {
			return err
		}
		if checkedIn, err = result.RowsAffected(); err != nil {
			return err
		}

		result, err = tx.Exec(`
			DELETE FROM reservations
			WHERE status = 'rejected' AND reservation_date < $1`, date)
		if err != nil {
			return err
		}
		rejected, err = result.RowsAffected()
		return err
	})
	if txErr != nil {
		return 0, 0, txErr
	}
	return checkedIn, rejected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (models.Reservation, error) {
	var res models.Reservation
	var checkedInAt sql.NullTime
	err := row.Scan(&res.ID, &res.Name, &res.Phone, &res.Email, &res.Date, &res.Time,
		&res.Guests, &res.SpecialRequests, &res.Status, &res.RejectionReason,
		&res.CheckedIn, &checkedInAt, &res.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Reservation{}, ledger.ErrNotFound
	}
	if err != nil {
		return models.Reservation{}, err
	}
	if checkedInAt.Valid {
		res.CheckedInAt = &checkedInAt.Time
	}
	return res, nil
}

func scanReservations(rows *sql.Rows) ([]models.Reservation, error) {
	var out []models.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
