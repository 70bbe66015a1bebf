package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ristorante-africa/ristorante/models"
)

// MemStore is an in-process Store keyed by reservation id. It mirrors the
// query surface of the postgres store and backs the engine and handler tests.
type MemStore struct {
	mu           sync.Mutex
	reservations map[uuid.UUID]models.Reservation
}

func NewMemStore() *MemStore {
	return &MemStore{reservations: make(map[uuid.UUID]models.Reservation)}
}

func (m *MemStore) Insert(res *models.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	m.reservations[res.ID] = *res
	return nil
}

func (m *MemStore) Get(id uuid.UUID) (models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[id]
	if !ok {
		return models.Reservation{}, ErrNotFound
	}
	return res, nil
}

func (m *MemStore) List() ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Reservation, 0, len(m.reservations))
	for _, res := range m.reservations {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (m *MemStore) ActiveOn(date string) ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Reservation
	for _, res := range m.reservations {
		if res.Date == date && res.Status.IsActive() {
			out = append(out, res)
		}
	}
	return out, nil
}

func (m *MemStore) RejectActiveBefore(date, reason string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, res := range m.reservations {
		if res.Date < date && res.Status.IsActive() {
			res.Status = models.StatusRejected
			res.RejectionReason = reason
			m.reservations[id] = res
			n++
		}
	}
	return n, nil
}

func (m *MemStore) UpdateStatus(id uuid.UUID, status models.ReservationStatus, reason string) (models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[id]
	if !ok {
		return models.Reservation{}, ErrNotFound
	}
	res.Status = status
	res.RejectionReason = reason
	m.reservations[id] = res
	return res, nil
}

func (m *MemStore) UpdateCheckedIn(id uuid.UUID, checkedIn bool, at *time.Time) (models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[id]
	if !ok {
		return models.Reservation{}, ErrNotFound
	}
	res.CheckedIn = checkedIn
	res.CheckedInAt = at
	m.reservations[id] = res
	return res, nil
}

func (m *MemStore) DeleteFinishedBefore(date string) (int64, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var checkedIn, rejected int64
	for id, res := range m.reservations {
		if res.Date >= date {
			continue
		}
		switch {
		case res.CheckedIn:
			delete(m.reservations, id)
			checkedIn++
		case res.Status == models.StatusRejected:
			delete(m.reservations, id)
			rejected++
		}
	}
	return checkedIn, rejected, nil
}
