package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scrollcoin-ledger/config"
	"scrollcoin-ledger/internal/adapter/chain"
	httpHandler "scrollcoin-ledger/internal/adapter/http/handler"
	pgStorage "scrollcoin-ledger/internal/adapter/storage/postgres"
	redisStorage "scrollcoin-ledger/internal/adapter/storage/redis"
	"scrollcoin-ledger/internal/core/ports"
	"scrollcoin-ledger/internal/service"
	"scrollcoin-ledger/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting ScrollCoin Ledger")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	alertRepo := pgStorage.NewFraudAlertRepo(pool)
	rateRepo := pgStorage.NewExchangeRateRepo(pool)
	rewardRepo := pgStorage.NewRewardRuleRepo(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	capSvc := service.NewJWTCapabilityService(cfg.Capability.Secret, cfg.Capability.Issuer, cfg.Capability.Expiry)
	auditSvc := service.NewAuditService(auditRepo, log)

	custodian, err := service.NewKeyCustodianService(cfg.Custodian.OperatorSecret, cfg.Custodian.KDFSalt, capSvc, auditSvc, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize key custodian")
	}

	oracle := service.NewRateOracleService(rateRepo, auditSvc, cfg.Oracle.CacheTTL, cfg.Oracle.ReferenceExponent, log)
	sentinel := service.NewFraudSentinelService(txRepo, alertRepo, auditSvc, cfg.Fraud, log)

	// Chain anchor (optional)
	var anchorSvc *service.AnchorServiceImpl
	if cfg.Anchor.Enabled {
		anchorSvc = service.NewAnchorService(chain.NewNoopAnchor(log), log)
	}

	// Initialize business services
	var anchorPort ports.AnchorService
	if anchorSvc != nil {
		anchorPort = anchorSvc
	}
	ledgerSvc := service.NewLedgerService(
		accountRepo,
		txRepo,
		rewardRepo,
		idempotencyCache,
		sentinel,
		transactor,
		anchorPort,
		log,
	)
	if anchorSvc != nil {
		anchorSvc.BindLedger(ledgerSvc)
	}

	walletSvc := service.NewWalletService(accountRepo, custodian, auditSvc, log)
	reportingSvc := service.NewReportingService(accountRepo, txRepo, oracle, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		LedgerSvc:      ledgerSvc,
		ReportingSvc:   reportingSvc,
		Oracle:         oracle,
		Sentinel:       sentinel,
		CapabilitySvc:  capSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	if anchorSvc != nil {
		anchorSvc.Shutdown()
	}

	log.Info().Msg("Server exited")
}
