package httpapi

import (
	"encoding/json"
	"net/http"
)

// envelope is the common response body shape. Every response carries at
// least the error flag and a human-readable message; the payload fields are
// filled per endpoint.
type envelope struct {
	Error       bool   `json:"error"`
	Message     string `json:"message"`
	User        any    `json:"user,omitempty"`
	Note        any    `json:"note,omitempty"`
	Notes       any    `json:"notes,omitempty"`
	Email       string `json:"email,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Error: true, Message: message})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
