package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/papertrade/internal/domain"
	"github.com/iho/papertrade/internal/infrastructure/metrics"
)

// TradeUseCase is the settlement orchestrator: it loads an account's
// ledger under a row lock, runs the domain settlement engine, and persists
// the outcome. The whole load-settle-save sequence is one database
// transaction; concurrent orders for the same account serialize on the
// account row, orders for different accounts do not contend.
type TradeUseCase struct {
	txManager        TransactionManager
	accountRepo      AccountRepository
	holdingRepo      HoldingRepository
	transactionRepo  TransactionRepository
	outboxRepo       OutboxRepository
	oracle           PriceOracle
	retrier          Retrier
	idGen            IDGenerator
	metrics          *metrics.Metrics
	trustClientPrice bool
}

// TradeConfig holds dependencies for TradeUseCase.
type TradeConfig struct {
	TxManager       TransactionManager
	AccountRepo     AccountRepository
	HoldingRepo     HoldingRepository
	TransactionRepo TransactionRepository
	OutboxRepo      OutboxRepository
	Oracle          PriceOracle
	Retrier         Retrier
	IDGen           IDGenerator
	Metrics         *metrics.Metrics

	// TrustClientPrice makes settlement accept the price supplied with the
	// order instead of resolving the oracle price at settlement time. This
	// mirrors the leniency of client-driven paper-trading UIs; leave it off
	// to close the price-manipulation vector.
	TrustClientPrice bool
}

// NewTradeUseCase creates a new TradeUseCase.
func NewTradeUseCase(cfg TradeConfig) *TradeUseCase {
	return &TradeUseCase{
		txManager:        cfg.TxManager,
		accountRepo:      cfg.AccountRepo,
		holdingRepo:      cfg.HoldingRepo,
		transactionRepo:  cfg.TransactionRepo,
		outboxRepo:       cfg.OutboxRepo,
		oracle:           cfg.Oracle,
		retrier:          cfg.Retrier,
		idGen:            cfg.IDGen,
		metrics:          cfg.Metrics,
		trustClientPrice: cfg.TrustClientPrice,
	}
}

// OrderInput represents an order intent.
type OrderInput struct {
	AccountID string
	Symbol    string
	Quantity  decimal.Decimal

	// Price is the client-supplied execution price. It is only honored
	// when the use case was configured with TrustClientPrice; otherwise
	// the oracle price at settlement time wins.
	Price decimal.Decimal
}

// ExecuteBuy settles a buy order.
func (uc *TradeUseCase) ExecuteBuy(ctx context.Context, input OrderInput) (*domain.TradeOutcome, error) {
	return uc.settle(ctx, input, domain.SideBuy)
}

// ExecuteSell settles a sell order.
func (uc *TradeUseCase) ExecuteSell(ctx context.Context, input OrderInput) (*domain.TradeOutcome, error) {
	return uc.settle(ctx, input, domain.SideSell)
}

func (uc *TradeUseCase) settle(ctx context.Context, input OrderInput, side domain.Side) (*domain.TradeOutcome, error) {
	start := time.Now()

	price, err := uc.resolvePrice(ctx, input)
	if err != nil {
		uc.observeError(err)
		return nil, err
	}

	// The settlement engine never retries; on a transient conflict the
	// retrier re-runs the full load-settle-save sequence against fresh
	// state.
	var outcome *domain.TradeOutcome

	err = uc.retrier.Retry(ctx, func() error {
		o, err := uc.settleOnce(ctx, input, side, price)
		if err != nil {
			return err
		}
		outcome = o
		return nil
	})
	if err != nil {
		uc.observeError(err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TradesSettled.WithLabelValues(string(side)).Inc()
		uc.metrics.TradeDuration.Observe(time.Since(start).Seconds())
		uc.metrics.TradeNotional.Observe(outcome.Record.Total().InexactFloat64())
	}

	return outcome, nil
}

func (uc *TradeUseCase) observeError(err error) {
	if uc.metrics == nil {
		return
	}

	reason := "internal"
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		reason = "insufficient_balance"
	case errors.Is(err, domain.ErrNoSuchHolding), errors.Is(err, domain.ErrInsufficientHoldings):
		reason = "insufficient_holdings"
	case errors.Is(err, domain.ErrInvalidOrder):
		reason = "invalid_order"
	case errors.Is(err, domain.ErrPriceUnavailable):
		reason = "price_unavailable"
	case errors.Is(err, domain.ErrAccountNotFound):
		reason = "account_not_found"
	case errors.Is(err, domain.ErrConflict):
		reason = "conflict"
	}

	uc.metrics.TradeErrors.WithLabelValues(reason).Inc()
}

func (uc *TradeUseCase) settleOnce(ctx context.Context, input OrderInput, side domain.Side, price decimal.Decimal) (*domain.TradeOutcome, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Locks the account row until commit, serializing settlements per
	// account.
	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	holding, err := uc.holdingRepo.GetBySymbolForUpdate(ctx, tx, input.AccountID, input.Symbol)
	if err != nil {
		return nil, err
	}

	var holdings []*domain.Holding
	if holding != nil {
		holdings = append(holdings, holding)
	}

	ledger := domain.NewLedger(account, holdings)
	now := time.Now().UTC()

	var outcome *domain.TradeOutcome
	switch side {
	case domain.SideBuy:
		outcome, err = domain.ExecuteBuy(ledger, input.Symbol, input.Quantity, price, now)
	case domain.SideSell:
		outcome, err = domain.ExecuteSell(ledger, input.Symbol, input.Quantity, price, now)
	}
	if err != nil {
		return nil, err
	}

	outcome.Record.ID = uc.idGen.Generate()

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, outcome.Balance, now); err != nil {
		return nil, err
	}

	if outcome.HoldingRemoved {
		if err := uc.holdingRepo.Delete(ctx, tx, account.ID, input.Symbol); err != nil {
			return nil, err
		}
	} else {
		if err := uc.holdingRepo.Upsert(ctx, tx, outcome.Holding); err != nil {
			return nil, err
		}
	}

	if err := uc.transactionRepo.Create(ctx, tx, outcome.Record); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   outcome.Record.ID,
		AggregateType: domain.AggregateTypeTrade,
		EventType:     domain.EventTypeTradeExecuted,
		Payload: map[string]any{
			"trade_id":   outcome.Record.ID,
			"account_id": account.ID,
			"symbol":     input.Symbol,
			"side":       string(side),
			"quantity":   input.Quantity.String(),
			"price":      price.String(),
			"balance":    outcome.Balance.String(),
		},
		CreatedAt: now,
	}

	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return outcome, nil
}

// resolvePrice picks the execution price for an order. A zero or absent
// oracle price means "no live price yet" and rejects the order before any
// settlement work happens.
func (uc *TradeUseCase) resolvePrice(ctx context.Context, input OrderInput) (decimal.Decimal, error) {
	if uc.trustClientPrice && input.Price.IsPositive() {
		return input.Price, nil
	}

	price, err := uc.oracle.GetPrice(ctx, input.Symbol)
	if err != nil {
		return decimal.Zero, err
	}

	if !price.IsPositive() {
		return decimal.Zero, domain.ErrPriceUnavailable
	}

	return price, nil
}
