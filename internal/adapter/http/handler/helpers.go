package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/iho/papertrade/internal/adapter/http/dto"
	"github.com/iho/papertrade/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to an HTTP status code and a
// client-facing message.
func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "Account not found"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest, "Insufficient balance"
	case errors.Is(err, domain.ErrNoSuchHolding):
		return http.StatusBadRequest, "Insufficient holdings to sell"
	case errors.Is(err, domain.ErrInsufficientHoldings):
		return http.StatusBadRequest, "Insufficient holdings to sell"
	case errors.Is(err, domain.ErrInvalidOrder):
		return http.StatusBadRequest, "Invalid order"
	case errors.Is(err, domain.ErrInvalidOwner):
		return http.StatusBadRequest, "Invalid owner"
	case errors.Is(err, domain.ErrPriceUnavailable):
		return http.StatusBadRequest, "Price unavailable"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "Conflicting concurrent update"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
