package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	adaptershttp "github.com/iho/papertrade/internal/adapter/http"
	"github.com/iho/papertrade/internal/adapter/http/handler"
	"github.com/iho/papertrade/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/papertrade/internal/adapter/repository/redis"
	infraredis "github.com/iho/papertrade/internal/infrastructure/redis"
	"github.com/iho/papertrade/internal/usecase"
	"github.com/iho/papertrade/tests/testutil"
)

// testEnv wires the full HTTP stack against real postgres and redis.
type testEnv struct {
	DB         *testutil.TestDB
	Redis      *goredis.Client
	PriceStore *redisrepo.PriceStore
	OutboxRepo *postgres.OutboxRepository
	Router     http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)
	testDB.TruncateAll(ctx)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	holdingRepo := postgres.NewHoldingRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	outboxRepo := postgres.NewOutboxRepository(pool)
	idGen := postgres.NewULIDGenerator()
	priceStore := redisrepo.NewPriceStore(redisClient, time.Minute)

	accountUC := usecase.NewAccountUseCase(txManager, accountRepo, outboxRepo, idGen, nil, decimal.NewFromInt(100000))
	tradeUC := usecase.NewTradeUseCase(usecase.TradeConfig{
		TxManager:       txManager,
		AccountRepo:     accountRepo,
		HoldingRepo:     holdingRepo,
		TransactionRepo: transactionRepo,
		OutboxRepo:      outboxRepo,
		Oracle:          priceStore,
		Retrier:         postgres.NewRetrier(),
		IDGen:           idGen,
	})
	portfolioUC := usecase.NewPortfolioUseCase(accountRepo, holdingRepo, priceStore)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AccountHandler:     handler.NewAccountHandler(accountUC),
		TradeHandler:       handler.NewTradeHandler(tradeUC),
		PortfolioHandler:   handler.NewPortfolioHandler(portfolioUC),
		TransactionHandler: handler.NewTransactionHandler(transactionUC),
		PriceHandler:       handler.NewPriceHandler(priceStore),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:   redisrepo.NewIdempotencyStore(redisClient),
	})

	return &testEnv{
		DB:         testDB,
		Redis:      redisClient,
		PriceStore: priceStore,
		OutboxRepo: outboxRepo,
		Router:     router,
	}
}

// setPrice seeds a live quote for a symbol.
func (env *testEnv) setPrice(t *testing.T, symbol, price string) {
	t.Helper()

	if err := env.PriceStore.SetPrice(context.Background(), symbol, decimal.RequireFromString(price)); err != nil {
		t.Fatalf("failed to set price for %s: %v", symbol, err)
	}
}

// do executes an HTTP request against the router.
func (env *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		r.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, r)

	return w
}

// decode unmarshals a response body into v.
func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse response %s: %v", w.Body.String(), err)
	}
}
