package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/app"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/domain"
)

const actorHeader = "X-Admin-Actor"

// AdminCourtService is the minimal interface for admin court endpoints.
type AdminCourtService interface {
	CreateCourt(ctx context.Context, in app.CreateCourtInput) (domain.Court, error)
	ListCourts(ctx context.Context) ([]domain.Court, error)
	UpdateCourt(ctx context.Context, in app.UpdateCourtInput) (domain.Court, error)
}

// AdminReservationService is the minimal interface for admin reservation
// endpoints.
type AdminReservationService interface {
	UpdateReservationStatus(ctx context.Context, in app.UpdateReservationStatusInput) (domain.Reservation, error)
	ListReservations(ctx context.Context, filter app.ReservationFilter) ([]domain.Reservation, error)
}

// AuditReader lists recent back-office actions.
type AuditReader interface {
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

// HandleAdminCourts returns an HTTP handler for court creation/listing.
func HandleAdminCourts(svc AdminCourtService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			courts, err := svc.ListCourts(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			resp := make([]courtResponse, 0, len(courts))
			for _, c := range courts {
				resp = append(resp, newCourtResponse(c))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
			return
		case http.MethodPost:
			var req createCourtRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			court, err := svc.CreateCourt(r.Context(), app.CreateCourtInput{
				Name:        req.Name,
				Location:    req.Location,
				HourlyPrice: req.HourlyPrice,
				Slots:       req.Slots,
				Actor:       r.Header.Get(actorHeader),
			})
			if err != nil {
				switch err {
				case domain.ErrCourtNameRequired:
					writeError(w, http.StatusBadRequest, codeCourtNameRequired, err.Error())
				case domain.ErrInvalidPrice:
					writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(newCourtResponse(court))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleAdminCourtByID returns an HTTP handler for PATCH /admin/courts/{id}.
func HandleAdminCourtByID(svc AdminCourtService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courtID, ok := parseAdminCourtPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}
		if r.Method != http.MethodPatch {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req updateCourtRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		court, err := svc.UpdateCourt(r.Context(), app.UpdateCourtInput{
			ID:          courtID,
			Name:        req.Name,
			Location:    req.Location,
			HourlyPrice: req.HourlyPrice,
			Slots:       req.Slots,
			Actor:       r.Header.Get(actorHeader),
		})
		if err != nil {
			switch err {
			case domain.ErrCourtNotFound:
				writeError(w, http.StatusNotFound, codeCourtNotFound, err.Error())
			case domain.ErrInvalidID:
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case domain.ErrCourtNameRequired:
				writeError(w, http.StatusBadRequest, codeCourtNameRequired, err.Error())
			case domain.ErrInvalidPrice:
				writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newCourtResponse(court))
	}
}

// HandleAdminReservations returns an HTTP handler for the back-office
// reservation listing.
func HandleAdminReservations(svc AdminReservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		q := r.URL.Query()
		reservations, err := svc.ListReservations(r.Context(), app.ReservationFilter{
			CourtID: q.Get("court"),
			Date:    q.Get("date"),
			Status:  domain.ReservationStatus(q.Get("status")),
		})
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

		resp := make([]reservationResponse, 0, len(reservations))
		for _, res := range reservations {
			resp = append(resp, newReservationResponse(res))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// HandleReservationStatus returns an HTTP handler for
// POST /admin/reservations/{id}/status.
func HandleReservationStatus(svc AdminReservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reservationID, ok := parseReservationStatusPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req updateStatusRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		res, err := svc.UpdateReservationStatus(r.Context(), app.UpdateReservationStatusInput{
			ReservationID: reservationID,
			Status:        domain.ReservationStatus(req.Status),
			Actor:         r.Header.Get(actorHeader),
		})
		if err != nil {
			switch err {
			case domain.ErrReservationNotFound:
				writeError(w, http.StatusNotFound, codeReservationNotFound, err.Error())
			case domain.ErrInvalidID:
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case domain.ErrInvalidTransition:
				writeError(w, http.StatusConflict, codeInvalidTransition, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newReservationResponse(res))
	}
}

// HandleAdminAudit returns an HTTP handler for GET /admin/audit.
func HandleAdminAudit(audit AuditReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid limit")
				return
			}
			limit = parsed
		}

		entries, err := audit.Recent(r.Context(), limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		resp := make([]auditResponse, 0, len(entries))
		for _, e := range entries {
			resp = append(resp, auditResponse{
				ID:         e.ID,
				Actor:      e.Actor,
				Action:     e.Action,
				EntityType: e.EntityType,
				EntityID:   e.EntityID,
				Detail:     e.Detail,
				CreatedAt:  e.CreatedAt,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type createCourtRequest struct {
	Name        string   `json:"name"`
	Location    string   `json:"location,omitempty"`
	HourlyPrice float64  `json:"hourlyPrice"`
	Slots       []string `json:"slots,omitempty"`
}

type updateCourtRequest struct {
	Name        *string  `json:"name,omitempty"`
	Location    *string  `json:"location,omitempty"`
	HourlyPrice *float64 `json:"hourlyPrice,omitempty"`
	Slots       []string `json:"slots,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type reservationResponse struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"bookingId"`
	Court         string    `json:"court"`
	Date          string    `json:"date"`
	Slot          string    `json:"slot"`
	Price         float64   `json:"price"`
	CustomerName  string    `json:"customerName,omitempty"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newReservationResponse(res domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:            res.ID,
		BookingID:     res.BookingID,
		Court:         res.CourtID,
		Date:          res.Date,
		Slot:          res.Slot,
		Price:         res.Price,
		CustomerName:  res.CustomerName,
		CustomerEmail: res.CustomerEmail,
		Status:        string(res.Status),
		CreatedAt:     res.CreatedAt,
	}
}

type auditResponse struct {
	ID         string    `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func parseAdminCourtPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 {
		return "", false
	}
	if parts[0] != "admin" || parts[1] != "courts" {
		return "", false
	}
	if parts[2] == "" {
		return "", false
	}
	return parts[2], true
}

func parseReservationStatusPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 4 {
		return "", false
	}
	if parts[0] != "admin" || parts[1] != "reservations" || parts[3] != "status" {
		return "", false
	}
	if parts[2] == "" {
		return "", false
	}
	return parts[2], true
}
