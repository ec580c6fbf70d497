// Package memory implements the storage interfaces on process memory.
// It is selected when no database is configured, giving the service a
// demo/test mode with the same uniqueness semantics as Postgres.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/app"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/domain"
)

type Store struct {
	mu           sync.Mutex
	txMu         sync.Mutex
	courts       map[string]domain.Court
	courtOrder   []string
	reservations map[string]domain.Reservation
	audit        []domain.AuditEntry
}

func NewStore() *Store {
	return &Store{
		courts:       make(map[string]domain.Court),
		reservations: make(map[string]domain.Reservation),
	}
}

// WithTx serializes the callback against other transactions. Individual
// operations stay atomic under the data mutex, which is all the admin
// status transition needs here.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx)
}

func (s *Store) ReservedSlots(_ context.Context, courtID, date string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var slots []string
	for _, res := range s.reservations {
		if res.CourtID != courtID || res.Date != date {
			continue
		}
		if res.Status == domain.ReservationStatusCancelled {
			continue
		}
		slots = append(slots, res.Slot)
	}
	sort.Strings(slots)
	return slots, nil
}

func (s *Store) CreateReservation(_ context.Context, res domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.reservations {
		if existing.CourtID != res.CourtID || existing.Date != res.Date || existing.Slot != res.Slot {
			continue
		}
		if existing.Status == domain.ReservationStatusCancelled {
			continue
		}
		return domain.ErrSlotConflict
	}

	s.reservations[res.ID] = res
	return nil
}

func (s *Store) GetReservationForUpdate(_ context.Context, id string) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[id]
	if !ok {
		return domain.Reservation{}, domain.ErrReservationNotFound
	}
	return res, nil
}

func (s *Store) UpdateReservationStatus(_ context.Context, id string, status domain.ReservationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[id]
	if !ok {
		return domain.ErrReservationNotFound
	}
	res.Status = status
	s.reservations[id] = res
	return nil
}

func (s *Store) ListReservations(_ context.Context, filter app.ReservationFilter) ([]domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Reservation
	for _, res := range s.reservations {
		if filter.CourtID != "" && res.CourtID != filter.CourtID {
			continue
		}
		if filter.Date != "" && res.Date != filter.Date {
			continue
		}
		if filter.Status != "" && res.Status != filter.Status {
			continue
		}
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Slot < out[j].Slot
	})
	return out, nil
}

func (s *Store) CreateCourt(_ context.Context, court domain.Court) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.courts[court.ID] = court
	s.courtOrder = append(s.courtOrder, court.ID)
	return nil
}

func (s *Store) GetCourt(_ context.Context, id string) (domain.Court, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	court, ok := s.courts[id]
	if !ok {
		return domain.Court{}, domain.ErrCourtNotFound
	}
	return court, nil
}

func (s *Store) ListCourts(_ context.Context) ([]domain.Court, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Court, 0, len(s.courtOrder))
	for _, id := range s.courtOrder {
		out = append(out, s.courts[id])
	}
	return out, nil
}

func (s *Store) UpdateCourt(_ context.Context, court domain.Court) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courts[court.ID]; !ok {
		return domain.ErrCourtNotFound
	}
	s.courts[court.ID] = court
	return nil
}

func (s *Store) AppendAudit(_ context.Context, entry domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.audit = append(s.audit, entry)
	return nil
}

func (s *Store) ListAudit(_ context.Context, limit int) ([]domain.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.AuditEntry, 0, limit)
	for i := len(s.audit) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.audit[i])
	}
	return out, nil
}
