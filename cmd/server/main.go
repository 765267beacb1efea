package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	httpAdapter "github.com/iho/papertrade/internal/adapter/http"
	"github.com/iho/papertrade/internal/adapter/http/handler"
	"github.com/iho/papertrade/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/papertrade/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/papertrade/internal/adapter/repository/redis"
	"github.com/iho/papertrade/internal/infrastructure/auth"
	"github.com/iho/papertrade/internal/infrastructure/config"
	"github.com/iho/papertrade/internal/infrastructure/eventpublisher"
	"github.com/iho/papertrade/internal/infrastructure/feed"
	"github.com/iho/papertrade/internal/infrastructure/logger"
	"github.com/iho/papertrade/internal/infrastructure/metrics"
	"github.com/iho/papertrade/internal/infrastructure/postgres"
	"github.com/iho/papertrade/internal/infrastructure/redis"
	"github.com/iho/papertrade/internal/usecase"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	startingBalance, err := parseStartingBalance(cfg.StartingBalance)
	if err != nil {
		log.Fatal().Err(err).Str("starting_balance", cfg.StartingBalance).Msg("invalid starting balance")
	}

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if path := os.Getenv("MIGRATIONS_PATH"); path != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, path); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	holdingRepo := postgresRepo.NewHoldingRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	priceStore := redisRepo.NewPriceStore(redisClient, cfg.PriceTTL)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(txManager, accountRepo, outboxRepo, idGen, m, startingBalance)
	tradeUC := usecase.NewTradeUseCase(usecase.TradeConfig{
		TxManager:        txManager,
		AccountRepo:      accountRepo,
		HoldingRepo:      holdingRepo,
		TransactionRepo:  transactionRepo,
		OutboxRepo:       outboxRepo,
		Oracle:           priceStore,
		Retrier:          retrier,
		IDGen:            idGen,
		Metrics:          m,
		TrustClientPrice: cfg.TrustClientPrice,
	})
	portfolioUC := usecase.NewPortfolioUseCase(accountRepo, holdingRepo, priceStore)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	tradeHandler := handler.NewTradeHandler(tradeUC)
	portfolioHandler := handler.NewPortfolioHandler(portfolioUC)
	transactionHandler := handler.NewTransactionHandler(transactionUC)
	priceHandler := handler.NewPriceHandler(priceStore)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		log.Info().Msg("API authentication enabled")
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:     accountHandler,
		TradeHandler:       tradeHandler,
		PortfolioHandler:   portfolioHandler,
		TransactionHandler: transactionHandler,
		PriceHandler:       priceHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		JWTManager:         jwtManager,
		Logger:             &appLogger,
	})

	// Background workers
	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()

	priceFeed := feed.New(feed.Config{
		Sink:     priceStore,
		Symbols:  cfg.FeedSymbols,
		Interval: cfg.FeedInterval,
		Metrics:  m,
	})
	go func() {
		if err := priceFeed.Start(workerCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("price feed stopped")
		}
	}()

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  eventpublisher.NewLogPublisher(nil),
		Metrics:    m,
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxInterval,
	})
	go func() {
		if err := publisher.Start(workerCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopWorkers()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// parseStartingBalance validates the configured opening balance for new
// accounts. Zero is allowed, negative is not.
func parseStartingBalance(s string) (decimal.Decimal, error) {
	balance, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse starting balance %q: %w", s, err)
	}

	if balance.IsNegative() {
		return decimal.Zero, fmt.Errorf("starting balance %q must not be negative", s)
	}

	return balance, nil
}
