package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/papertrade/internal/adapter/http/dto"
	"github.com/iho/papertrade/internal/domain"
	"github.com/iho/papertrade/internal/usecase"
)

// TradeService defines the behavior needed by TradeHandler.
type TradeService interface {
	ExecuteBuy(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error)
	ExecuteSell(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error)
}

// TradeHandler handles order settlement HTTP requests.
type TradeHandler struct {
	tradeUC TradeService
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeUC TradeService) *TradeHandler {
	return &TradeHandler{tradeUC: tradeUC}
}

// Buy settles a buy order against the account's cash balance.
func (h *TradeHandler) Buy(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	outcome, err := h.tradeUC.ExecuteBuy(r.Context(), req.ToUseCaseInput(accountID))
	if err != nil {
		status, msg := mapDomainError(err)
		writeError(w, status, msg, err.Error())

		return
	}

	resp := dto.BuyResponse{
		Message: fmt.Sprintf("Successfully bought %s shares of %s", outcome.Record.Quantity, outcome.Record.Symbol),
		Balance: outcome.Balance,
	}
	if outcome.Holding != nil {
		resp.Holding = dto.HoldingFromDomain(outcome.Holding)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Sell settles a sell order against the account's holdings.
func (h *TradeHandler) Sell(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	outcome, err := h.tradeUC.ExecuteSell(r.Context(), req.ToUseCaseInput(accountID))
	if err != nil {
		status, msg := mapDomainError(err)
		writeError(w, status, msg, err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.SellResponse{
		Message: fmt.Sprintf("Successfully sold %s shares of %s", outcome.Record.Quantity, outcome.Record.Symbol),
		Balance: outcome.Balance,
	})
}
