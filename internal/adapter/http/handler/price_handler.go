package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/papertrade/internal/adapter/http/dto"
	"github.com/iho/papertrade/internal/domain"
)

// PriceService defines the behavior needed by PriceHandler.
type PriceService interface {
	GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// PriceHandler handles price quote HTTP requests.
type PriceHandler struct {
	oracle PriceService
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(oracle PriceService) *PriceHandler {
	return &PriceHandler{oracle: oracle}
}

// Get returns the latest known price for a symbol.
func (h *PriceHandler) Get(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(chi.URLParam(r, "symbol"))
	if err := domain.ValidateSymbol(symbol); err != nil {
		status, msg := mapDomainError(err)
		writeError(w, status, msg, err.Error())

		return
	}

	price, err := h.oracle.GetPrice(r.Context(), symbol)
	if err != nil {
		// A symbol nobody quotes is an absent resource here, unlike order
		// settlement where it rejects the order.
		if errors.Is(err, domain.ErrPriceUnavailable) {
			writeError(w, http.StatusNotFound, "Price unavailable", err.Error())
			return
		}

		status, msg := mapDomainError(err)
		writeError(w, status, msg, err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.PriceResponse{Symbol: symbol, Price: price})
}
