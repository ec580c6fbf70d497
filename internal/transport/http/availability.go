package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/domain"
)

// AvailabilityReader answers which slots are taken for a court/date.
type AvailabilityReader interface {
	ReservedSlots(ctx context.Context, courtID, date string) ([]string, error)
}

// CourtReader exposes the public court catalogue.
type CourtReader interface {
	GetCourt(ctx context.Context, id string) (domain.Court, error)
	ListCourts(ctx context.Context) ([]domain.Court, error)
}

// HandleAvailability returns an HTTP handler for
// GET /availability?court=...&date=....
func HandleAvailability(availability AvailabilityReader, courts CourtReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		courtID := r.URL.Query().Get("court")
		date := r.URL.Query().Get("date")
		if courtID == "" {
			writeError(w, http.StatusBadRequest, codeInvalidID, "court is required")
			return
		}
		if date == "" {
			writeError(w, http.StatusBadRequest, codeInvalidDate, "date is required")
			return
		}

		court, err := courts.GetCourt(r.Context(), courtID)
		if err != nil {
			switch err {
			case domain.ErrCourtNotFound:
				writeError(w, http.StatusNotFound, codeCourtNotFound, err.Error())
			case domain.ErrInvalidID:
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		reserved, err := availability.ReservedSlots(r.Context(), courtID, date)
		if err != nil {
			switch err {
			case domain.ErrInvalidDate:
				writeError(w, http.StatusBadRequest, codeInvalidDate, err.Error())
			case domain.ErrInvalidID:
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		taken := make(map[string]struct{}, len(reserved))
		for _, slot := range reserved {
			taken[slot] = struct{}{}
		}
		available := make([]string, 0, len(court.Slots))
		for _, slot := range court.Slots {
			if _, ok := taken[slot]; !ok {
				available = append(available, slot)
			}
		}

		resp := availabilityResponse{
			Court:          courtID,
			Date:           date,
			ReservedSlots:  reserved,
			AvailableSlots: available,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// HandleListCourts returns an HTTP handler for the public court listing.
func HandleListCourts(courts CourtReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		list, err := courts.ListCourts(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		resp := make([]courtResponse, 0, len(list))
		for _, c := range list {
			resp = append(resp, newCourtResponse(c))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type availabilityResponse struct {
	Court          string   `json:"court"`
	Date           string   `json:"date"`
	ReservedSlots  []string `json:"reservedSlots"`
	AvailableSlots []string `json:"availableSlots"`
}

type courtResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	HourlyPrice float64  `json:"hourlyPrice"`
	Slots       []string `json:"slots"`
}

func newCourtResponse(c domain.Court) courtResponse {
	return courtResponse{
		ID:          c.ID,
		Name:        c.Name,
		Location:    c.Location,
		HourlyPrice: c.HourlyPrice,
		Slots:       c.Slots,
	}
}
