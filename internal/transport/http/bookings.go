package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/app"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/domain"
)

// BookingCreator is the minimal interface needed to create a booking.
type BookingCreator interface {
	CreateBooking(ctx context.Context, in app.CreateBookingInput) (domain.BookingResult, error)
}

// HandleCreateBooking returns an HTTP handler for multi-slot booking
// requests. Partial success is still 201: the response lists the slots
// that could not be reserved.
func HandleCreateBooking(svc BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req createBookingRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		slots, totalPrice, err := req.normalize()
		if err != nil {
			writeError(w, http.StatusBadRequest, codeForRequestErr(err), err.Error())
			return
		}

		result, err := svc.CreateBooking(r.Context(), app.CreateBookingInput{
			CourtID:       req.Court,
			Date:          req.Date,
			Slots:         slots,
			TotalPrice:    totalPrice,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
		})
		if err != nil {
			var failed *domain.BookingFailedError
			switch {
			case errors.As(err, &failed):
				status := http.StatusInternalServerError
				code := codeInternalError
				if failed.AllConflicts {
					status = http.StatusConflict
					code = codeSlotConflict
				}
				writeError(w, status, code, failed.Error())
			case err == domain.ErrCourtNotFound:
				writeError(w, http.StatusNotFound, codeCourtNotFound, err.Error())
			case err == domain.ErrInvalidID:
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case err == domain.ErrInvalidDate:
				writeError(w, http.StatusBadRequest, codeInvalidDate, err.Error())
			case err == domain.ErrNoSlotsRequested:
				writeError(w, http.StatusBadRequest, codeNoSlots, err.Error())
			case err == domain.ErrInvalidSlot:
				writeError(w, http.StatusBadRequest, codeInvalidSlot, err.Error())
			case err == domain.ErrInvalidPrice:
				writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		resp := bookingResponse{
			ID:         result.BookingID,
			Court:      req.Court,
			Date:       req.Date,
			TotalPrice: result.TotalPrice(),
			Status:     string(domain.ReservationStatusConfirmed),
		}
		for _, res := range result.Succeeded {
			resp.Slots = append(resp.Slots, res.Slot)
			resp.CreatedAt = res.CreatedAt
		}
		for _, f := range result.Failed {
			resp.FailedSlots = append(resp.FailedSlots, failedSlot{Slot: f.Slot, Reason: f.Reason})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type createBookingRequest struct {
	Court string `json:"court"`
	Date  string `json:"date"`
	// Slots and Slot are alternatives; single-slot callers send slot.
	Slots         []string `json:"slots,omitempty"`
	Slot          string   `json:"slot,omitempty"`
	TotalPrice    *float64 `json:"totalPrice,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	CustomerName  string   `json:"customerName,omitempty"`
	CustomerEmail string   `json:"customerEmail,omitempty"`
}

func (r createBookingRequest) normalize() ([]string, float64, error) {
	if r.Court == "" {
		return nil, 0, domain.ErrInvalidID
	}
	if r.Date == "" {
		return nil, 0, domain.ErrInvalidDate
	}

	slots := r.Slots
	if len(slots) == 0 && r.Slot != "" {
		slots = []string{r.Slot}
	}
	if len(slots) == 0 {
		return nil, 0, domain.ErrNoSlotsRequested
	}

	var total float64
	switch {
	case r.TotalPrice != nil:
		total = *r.TotalPrice
	case r.Price != nil:
		total = *r.Price * float64(len(slots))
	default:
		return nil, 0, domain.ErrInvalidPrice
	}
	if total < 0 {
		return nil, 0, domain.ErrInvalidPrice
	}
	return slots, total, nil
}

func codeForRequestErr(err error) string {
	switch err {
	case domain.ErrInvalidID:
		return codeInvalidID
	case domain.ErrInvalidDate:
		return codeInvalidDate
	case domain.ErrNoSlotsRequested:
		return codeNoSlots
	case domain.ErrInvalidPrice:
		return codeInvalidPrice
	default:
		return codeInvalidRequestBody
	}
}

type failedSlot struct {
	Slot   string `json:"slot"`
	Reason string `json:"reason"`
}

type bookingResponse struct {
	ID          string       `json:"id"`
	Court       string       `json:"court"`
	Date        string       `json:"date"`
	Slots       []string     `json:"slots"`
	TotalPrice  float64      `json:"totalPrice"`
	CreatedAt   time.Time    `json:"createdAt"`
	Status      string       `json:"status"`
	FailedSlots []failedSlot `json:"failedSlots,omitempty"`
}
