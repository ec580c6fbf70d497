package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/app"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/domain"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/testutil"
)

func TestReservationRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewReservationRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	newReservation := func(courtID, date, slot string) domain.Reservation {
		return domain.Reservation{
			ID:        uuid.NewString(),
			BookingID: uuid.NewString(),
			CourtID:   courtID,
			Date:      date,
			Slot:      slot,
			Price:     50,
			Status:    domain.ReservationStatusConfirmed,
			CreatedAt: time.Now().UTC(),
		}
	}

	t.Run("CreateReservation maps duplicate slot to ErrSlotConflict", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		courtID := testutil.InsertCourt(t, ctx, pool, "Center Court", 50, []string{"10:00", "11:00"})

		if err := repo.CreateReservation(ctx, newReservation(courtID, "2025-06-02", "10:00")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := repo.CreateReservation(ctx, newReservation(courtID, "2025-06-02", "10:00")); err != domain.ErrSlotConflict {
			t.Fatalf("expected ErrSlotConflict, got %v", err)
		}
	})

	t.Run("cancelled reservation frees the slot for rebooking", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		courtID := testutil.InsertCourt(t, ctx, pool, "Center Court", 50, []string{"10:00"})

		first := newReservation(courtID, "2025-06-02", "10:00")
		if err := repo.CreateReservation(ctx, first); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := repo.UpdateReservationStatus(ctx, first.ID, domain.ReservationStatusCancelled); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if err := repo.CreateReservation(ctx, newReservation(courtID, "2025-06-02", "10:00")); err != nil {
			t.Fatalf("expected rebooking after cancel to succeed, got %v", err)
		}
	})

	t.Run("ReservedSlots excludes cancelled and other dates", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		courtID := testutil.InsertCourt(t, ctx, pool, "Center Court", 50, []string{"10:00", "11:00", "12:00"})

		testutil.InsertReservation(t, ctx, pool, domain.Reservation{CourtID: courtID, Date: "2025-06-02", Slot: "11:00", Price: 50})
		testutil.InsertReservation(t, ctx, pool, domain.Reservation{CourtID: courtID, Date: "2025-06-02", Slot: "10:00", Price: 50})
		testutil.InsertReservation(t, ctx, pool, domain.Reservation{
			CourtID: courtID, Date: "2025-06-02", Slot: "12:00", Price: 50,
			Status: domain.ReservationStatusCancelled,
		})
		testutil.InsertReservation(t, ctx, pool, domain.Reservation{CourtID: courtID, Date: "2025-06-03", Slot: "10:00", Price: 50})

		slots, err := repo.ReservedSlots(ctx, courtID, "2025-06-02")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(slots) != 2 || slots[0] != "10:00" || slots[1] != "11:00" {
			t.Fatalf("expected [10:00 11:00], got %v", slots)
		}

		if _, err := repo.ReservedSlots(ctx, "not-a-uuid", "2025-06-02"); err != domain.ErrInvalidID {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("GetReservationForUpdate locks the row inside a tx", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		courtID := testutil.InsertCourt(t, ctx, pool, "Center Court", 50, []string{"10:00"})
		resID := testutil.InsertReservation(t, ctx, pool, domain.Reservation{
			CourtID: courtID, Date: "2025-06-02", Slot: "10:00", Price: 50,
			CustomerName: "Ada", CustomerEmail: "ada@example.com",
		})

		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			res, err := repo.GetReservationForUpdate(txCtx, resID)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if res.ID != resID || res.CourtID != courtID || res.Slot != "10:00" || res.Date != "2025-06-02" {
				t.Fatalf("unexpected reservation: %+v", res)
			}
			if res.Status != domain.ReservationStatusConfirmed {
				t.Fatalf("expected confirmed, got %s", res.Status)
			}

			missingID := "00000000-0000-0000-0000-000000000001"
			if _, err := repo.GetReservationForUpdate(txCtx, missingID); err != domain.ErrReservationNotFound {
				t.Fatalf("expected ErrReservationNotFound, got %v", err)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("tx failed: %v", err)
		}

		if _, err := repo.GetReservationForUpdate(ctx, "not-a-uuid"); err != domain.ErrInvalidID {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("UpdateReservationStatus reports missing rows", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		missingID := "00000000-0000-0000-0000-000000000001"
		if err := repo.UpdateReservationStatus(ctx, missingID, domain.ReservationStatusCancelled); err != domain.ErrReservationNotFound {
			t.Fatalf("expected ErrReservationNotFound, got %v", err)
		}
	})

	t.Run("ListReservations applies filters", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		courtA := testutil.InsertCourt(t, ctx, pool, "Court A", 50, []string{"10:00", "11:00"})
		courtB := testutil.InsertCourt(t, ctx, pool, "Court B", 35, []string{"10:00"})

		testutil.InsertReservation(t, ctx, pool, domain.Reservation{CourtID: courtA, Date: "2025-06-02", Slot: "11:00", Price: 50})
		testutil.InsertReservation(t, ctx, pool, domain.Reservation{CourtID: courtA, Date: "2025-06-02", Slot: "10:00", Price: 50})
		testutil.InsertReservation(t, ctx, pool, domain.Reservation{
			CourtID: courtA, Date: "2025-06-03", Slot: "10:00", Price: 50,
			Status: domain.ReservationStatusCancelled,
		})
		testutil.InsertReservation(t, ctx, pool, domain.Reservation{CourtID: courtB, Date: "2025-06-02", Slot: "10:00", Price: 35})

		all, err := repo.ListReservations(ctx, app.ReservationFilter{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(all) != 4 {
			t.Fatalf("expected 4 reservations, got %d", len(all))
		}

		byCourt, err := repo.ListReservations(ctx, app.ReservationFilter{CourtID: courtA, Date: "2025-06-02"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(byCourt) != 2 || byCourt[0].Slot != "10:00" || byCourt[1].Slot != "11:00" {
			t.Fatalf("expected court A slots sorted [10:00 11:00], got %+v", byCourt)
		}

		cancelled, err := repo.ListReservations(ctx, app.ReservationFilter{Status: domain.ReservationStatusCancelled})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(cancelled) != 1 || cancelled[0].Date != "2025-06-03" {
			t.Fatalf("expected single cancelled reservation on 2025-06-03, got %+v", cancelled)
		}
	})
}
