package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/papertrade/internal/adapter/http/dto"
	"github.com/iho/papertrade/internal/usecase"
)

// PortfolioService defines the behavior needed by PortfolioHandler.
type PortfolioService interface {
	GetPortfolio(ctx context.Context, accountID string) (*usecase.PortfolioView, error)
}

// PortfolioHandler handles portfolio valuation HTTP requests.
type PortfolioHandler struct {
	portfolioUC PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioUC PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioUC: portfolioUC}
}

// Get returns the account's holdings valued at the latest known prices.
func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	view, err := h.portfolioUC.GetPortfolio(r.Context(), accountID)
	if err != nil {
		status, msg := mapDomainError(err)
		writeError(w, status, msg, err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.PortfolioFromView(view))
}
