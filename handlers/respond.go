package handlers

import (
	"encoding/json"
	"net/http"
)

// Error kinds carried in the response envelope.
const (
	KindMissingField       = "missing_field"
	KindUsernameTaken      = "username_taken"
	KindInvalidCredentials = "invalid_credentials"
	KindUnauthorized       = "unauthorized"
	KindValidation         = "validation"
	KindNotFound           = "not_found"
	KindInternal           = "internal"
)

// apiError is the envelope every non-2xx response uses.
type apiError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, kind, message string) {
	writeJSON(w, code, apiError{Kind: kind, Message: message})
}
