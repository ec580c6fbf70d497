package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed    = "method_not_allowed"
	codeNotFound            = "not_found"
	codeInvalidRequestBody  = "invalid_request_body"
	codeInvalidDate         = "invalid_date"
	codeInvalidID           = "invalid_id"
	codeInvalidPrice        = "invalid_price"
	codeInvalidSlot         = "invalid_slot"
	codeNoSlots             = "no_slots_requested"
	codeCourtNameRequired   = "court_name_required"
	codeCourtNotFound       = "court_not_found"
	codeSlotConflict        = "slot_conflict"
	codeReservationNotFound = "reservation_not_found"
	codeInvalidTransition   = "invalid_status_transition"
	codeRateLimited         = "rate_limited"
	codeForbidden           = "forbidden"
	codeInternalError       = "internal_error"
)

type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Message: msg,
		Code:    code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"message":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
