package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse error payload for all endpoints
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes a JSON response with the given status code.
// A nil payload produces an empty body.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondBadRequest writes a 400 response
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: message})
}

// RespondUnauthorized writes a 401 response
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: message})
}

// RespondForbidden writes a 403 response
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusForbidden, ErrorResponse{Error: message})
}

// RespondNotFound writes a 404 response
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: message})
}

// RespondConflict writes a 409 response
func RespondConflict(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Error: message})
}

// RespondInternalError writes a 500 response with a generic message
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// DecodeJSON decodes a request body into dst, rejecting unknown fields
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
