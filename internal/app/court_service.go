package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/clock"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/domain"
)

type CourtRepository interface {
	CreateCourt(ctx context.Context, court domain.Court) error
	GetCourt(ctx context.Context, id string) (domain.Court, error)
	ListCourts(ctx context.Context) ([]domain.Court, error)
	UpdateCourt(ctx context.Context, court domain.Court) error
}

type CourtService struct {
	repo  CourtRepository
	audit AuditRecorder
	clock clock.Clock
}

func NewCourtService(repo CourtRepository, audit AuditRecorder, clk clock.Clock) *CourtService {
	return &CourtService{
		repo:  repo,
		audit: audit,
		clock: clk,
	}
}

type CreateCourtInput struct {
	Name        string
	Location    string
	HourlyPrice float64
	Slots       []string
	Actor       string
}

func (s *CourtService) CreateCourt(ctx context.Context, in CreateCourtInput) (domain.Court, error) {
	if in.Name == "" {
		return domain.Court{}, domain.ErrCourtNameRequired
	}
	if in.HourlyPrice < 0 {
		return domain.Court{}, domain.ErrInvalidPrice
	}

	slots := in.Slots
	if len(slots) == 0 {
		slots = DefaultSlots()
	}

	court := domain.Court{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Location:    in.Location,
		HourlyPrice: in.HourlyPrice,
		Slots:       slots,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.CreateCourt(ctx, court); err != nil {
		return domain.Court{}, err
	}
	s.audit.Record(ctx, in.Actor, "court.create", "court", court.ID, court.Name)
	return court, nil
}

func (s *CourtService) GetCourt(ctx context.Context, id string) (domain.Court, error) {
	if id == "" {
		return domain.Court{}, domain.ErrInvalidID
	}
	return s.repo.GetCourt(ctx, id)
}

func (s *CourtService) ListCourts(ctx context.Context) ([]domain.Court, error) {
	return s.repo.ListCourts(ctx)
}

type UpdateCourtInput struct {
	ID          string
	Name        *string
	Location    *string
	HourlyPrice *float64
	Slots       []string
	Actor       string
}

// UpdateCourt applies the provided fields and leaves the rest unchanged.
func (s *CourtService) UpdateCourt(ctx context.Context, in UpdateCourtInput) (domain.Court, error) {
	if in.ID == "" {
		return domain.Court{}, domain.ErrInvalidID
	}

	court, err := s.repo.GetCourt(ctx, in.ID)
	if err != nil {
		return domain.Court{}, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return domain.Court{}, domain.ErrCourtNameRequired
		}
		court.Name = *in.Name
	}
	if in.Location != nil {
		court.Location = *in.Location
	}
	if in.HourlyPrice != nil {
		if *in.HourlyPrice < 0 {
			return domain.Court{}, domain.ErrInvalidPrice
		}
		court.HourlyPrice = *in.HourlyPrice
	}
	if len(in.Slots) > 0 {
		court.Slots = in.Slots
	}

	if err := s.repo.UpdateCourt(ctx, court); err != nil {
		return domain.Court{}, err
	}
	s.audit.Record(ctx, in.Actor, "court.update", "court", court.ID, court.Name)
	return court, nil
}

// DefaultSlots returns the standard hourly labels, "06:00" through "23:00".
func DefaultSlots() []string {
	slots := make([]string, 0, 18)
	for h := 6; h <= 23; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}
