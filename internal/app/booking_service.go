package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/clock"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/domain"
)

type ReservationRepository interface {
	// ReservedSlots returns the slot labels held by non-cancelled
	// reservations for the court/date.
	ReservedSlots(ctx context.Context, courtID, date string) ([]string, error)
	CreateReservation(ctx context.Context, res domain.Reservation) error
}

type CourtGetter interface {
	GetCourt(ctx context.Context, id string) (domain.Court, error)
}

type BookingService struct {
	reservations ReservationRepository
	courts       CourtGetter
	clock        clock.Clock
	logger       *zap.Logger
}

func NewBookingService(reservations ReservationRepository, courts CourtGetter, clk clock.Clock, logger *zap.Logger) *BookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingService{
		reservations: reservations,
		courts:       courts,
		clock:        clk,
		logger:       logger,
	}
}

// ReservedSlots returns the taken slots for a court/date. Reads fail open:
// if the store cannot answer, the set is reported empty and the insert-time
// constraint remains the authority on conflicts.
func (s *BookingService) ReservedSlots(ctx context.Context, courtID, date string) ([]string, error) {
	if courtID == "" {
		return nil, domain.ErrInvalidID
	}
	if !validDate(date) {
		return nil, domain.ErrInvalidDate
	}

	slots, err := s.reservations.ReservedSlots(ctx, courtID, date)
	if err != nil {
		s.logger.Warn("reserved slots read failed, treating as empty",
			zap.String("court_id", courtID),
			zap.String("date", date),
			zap.Error(err),
		)
		return []string{}, nil
	}
	if slots == nil {
		slots = []string{}
	}
	return slots, nil
}

// checkConflicts returns the requested slots that are already reserved,
// preserving request order. Advisory only: a slot can still be taken
// between this check and the insert.
func checkConflicts(requested, reserved []string) []string {
	taken := make(map[string]struct{}, len(reserved))
	for _, slot := range reserved {
		taken[slot] = struct{}{}
	}

	var conflicts []string
	for _, slot := range requested {
		if _, ok := taken[slot]; ok {
			conflicts = append(conflicts, slot)
		}
	}
	return conflicts
}

type CreateReservationInput struct {
	BookingID     string
	CourtID       string
	Date          string
	Slot          string
	Price         float64
	CustomerName  string
	CustomerEmail string
}

// CreateReservation persists a single slot reservation. The optimistic
// pre-check gives a fast conflict answer; the storage uniqueness
// constraint makes the final call, so a conflict surfacing from the
// insert wins regardless of what the pre-check saw.
func (s *BookingService) CreateReservation(ctx context.Context, in CreateReservationInput) (domain.Reservation, error) {
	if in.CourtID == "" {
		return domain.Reservation{}, domain.ErrInvalidID
	}
	if !validDate(in.Date) {
		return domain.Reservation{}, domain.ErrInvalidDate
	}
	if in.Slot == "" {
		return domain.Reservation{}, domain.ErrNoSlotsRequested
	}
	if in.Price < 0 {
		return domain.Reservation{}, domain.ErrInvalidPrice
	}

	reserved, err := s.ReservedSlots(ctx, in.CourtID, in.Date)
	if err != nil {
		return domain.Reservation{}, err
	}
	if len(checkConflicts([]string{in.Slot}, reserved)) > 0 {
		return domain.Reservation{}, domain.ErrSlotConflict
	}

	bookingID := in.BookingID
	if bookingID == "" {
		bookingID = uuid.NewString()
	}

	res := domain.Reservation{
		ID:            uuid.NewString(),
		BookingID:     bookingID,
		CourtID:       in.CourtID,
		Date:          in.Date,
		Slot:          in.Slot,
		Price:         in.Price,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Status:        domain.ReservationStatusConfirmed,
		CreatedAt:     s.clock.Now(),
	}

	if err := s.reservations.CreateReservation(ctx, res); err != nil {
		return domain.Reservation{}, err
	}
	return res, nil
}

type CreateBookingInput struct {
	CourtID       string
	Date          string
	Slots         []string
	TotalPrice    float64
	CustomerName  string
	CustomerEmail string
}

// CreateBooking reserves each requested slot independently. One slot's
// failure does not stop the rest: a user asking for three hours where one
// is taken still gets the other two. The call fails outward only when no
// slot could be reserved.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (domain.BookingResult, error) {
	if in.CourtID == "" {
		return domain.BookingResult{}, domain.ErrInvalidID
	}
	if !validDate(in.Date) {
		return domain.BookingResult{}, domain.ErrInvalidDate
	}
	if len(in.Slots) == 0 {
		return domain.BookingResult{}, domain.ErrNoSlotsRequested
	}
	if in.TotalPrice < 0 {
		return domain.BookingResult{}, domain.ErrInvalidPrice
	}

	court, err := s.courts.GetCourt(ctx, in.CourtID)
	if err != nil {
		return domain.BookingResult{}, err
	}
	for _, slot := range in.Slots {
		if !court.HasSlot(slot) {
			return domain.BookingResult{}, domain.ErrInvalidSlot
		}
	}

	result := domain.BookingResult{BookingID: uuid.NewString()}
	perSlot := in.TotalPrice / float64(len(in.Slots))
	allConflicts := true

	for _, slot := range in.Slots {
		res, err := s.CreateReservation(ctx, CreateReservationInput{
			BookingID:     result.BookingID,
			CourtID:       in.CourtID,
			Date:          in.Date,
			Slot:          slot,
			Price:         perSlot,
			CustomerName:  in.CustomerName,
			CustomerEmail: in.CustomerEmail,
		})
		if err != nil {
			if !errors.Is(err, domain.ErrSlotConflict) {
				allConflicts = false
			}
			result.Failed = append(result.Failed, domain.SlotFailure{
				Slot:   slot,
				Reason: failureReason(slot, err),
			})
			continue
		}
		result.Succeeded = append(result.Succeeded, res)
	}

	if len(result.Succeeded) == 0 {
		return result, &domain.BookingFailedError{
			Failures:     result.Failed,
			AllConflicts: allConflicts,
		}
	}
	return result, nil
}

func failureReason(slot string, err error) string {
	if err == domain.ErrSlotConflict {
		return "slot " + slot + " is already booked"
	}
	return err.Error()
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
