package app

import (
	"context"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/clock"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/domain"
)

type AdminReservationRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetReservationForUpdate(ctx context.Context, id string) (domain.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error
	ListReservations(ctx context.Context, filter ReservationFilter) ([]domain.Reservation, error)
}

// ReservationFilter narrows back-office listings; zero values match all.
type ReservationFilter struct {
	CourtID string
	Date    string
	Status  domain.ReservationStatus
}

type AdminService struct {
	repo  AdminReservationRepository
	audit AuditRecorder
	clock clock.Clock
}

func NewAdminService(repo AdminReservationRepository, audit AuditRecorder, clk clock.Clock) *AdminService {
	return &AdminService{
		repo:  repo,
		audit: audit,
		clock: clk,
	}
}

type UpdateReservationStatusInput struct {
	ReservationID string
	Status        domain.ReservationStatus
	Actor         string
}

// UpdateReservationStatus drives confirmed -> cancelled/completed. The
// row is locked for the duration so a concurrent transition cannot slip
// past the state check.
func (s *AdminService) UpdateReservationStatus(ctx context.Context, in UpdateReservationStatusInput) (domain.Reservation, error) {
	if in.ReservationID == "" {
		return domain.Reservation{}, domain.ErrInvalidID
	}
	if in.Status != domain.ReservationStatusCancelled && in.Status != domain.ReservationStatusCompleted {
		return domain.Reservation{}, domain.ErrInvalidTransition
	}

	var result domain.Reservation
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		res, err := s.repo.GetReservationForUpdate(txCtx, in.ReservationID)
		if err != nil {
			return err
		}
		if !res.CanTransitionTo(in.Status) {
			return domain.ErrInvalidTransition
		}
		if err := s.repo.UpdateReservationStatus(txCtx, in.ReservationID, in.Status); err != nil {
			return err
		}
		res.Status = in.Status
		result = res
		return nil
	})
	if err != nil {
		return domain.Reservation{}, err
	}

	s.audit.Record(ctx, in.Actor, "reservation."+string(in.Status), "reservation", result.ID, result.Slot+" on "+result.Date)
	return result, nil
}

func (s *AdminService) ListReservations(ctx context.Context, filter ReservationFilter) ([]domain.Reservation, error) {
	if filter.Date != "" && !validDate(filter.Date) {
		return nil, domain.ErrInvalidDate
	}
	return s.repo.ListReservations(ctx, filter)
}
