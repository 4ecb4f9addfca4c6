package handler

import (
	"scrollcoin-ledger/internal/adapter/http/middleware"
	redisStore "scrollcoin-ledger/internal/adapter/storage/redis"
	"scrollcoin-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	LedgerSvc      ports.LedgerService
	ReportingSvc   ports.ReportingService
	Oracle         ports.RateOracle
	Sentinel       ports.FraudSentinel
	CapabilitySvc  ports.CapabilityService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit trail disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit trail (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditTrail(deps.AuditSvc))
	}

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	ledgerAuth := middleware.CapabilityAuth(deps.CapabilitySvc, ports.ScopeLedger, deps.Logger)
	adminAuth := middleware.CapabilityAuth(deps.CapabilitySvc, ports.ScopeAdmin, deps.Logger)

	walletHandler := NewWalletHandler(deps.WalletSvc, deps.ReportingSvc)
	ledgerHandler := NewLedgerHandler(deps.LedgerSvc, deps.ReportingSvc)
	rateHandler := NewRateHandler(deps.Oracle)
	alertHandler := NewAlertHandler(deps.Sentinel)

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Ledger-scoped routes ---
	wallets := v1.Group("/wallets", ledgerAuth)
	{
		wallets.POST("", rl("wallets_create"), walletHandler.Create)
		wallets.GET("/:id/balance", rl("reports"), walletHandler.GetBalance)
	}

	ledger := v1.Group("/ledger", ledgerAuth)
	{
		ledger.POST("/mint", rl("ledger"), ledgerHandler.Mint)
		ledger.POST("/burn", rl("ledger"), ledgerHandler.Burn)
		ledger.POST("/transfer", rl("ledger"), ledgerHandler.Transfer)
		ledger.POST("/reward", rl("ledger"), ledgerHandler.Reward)
		ledger.GET("/transactions", rl("reports"), ledgerHandler.ListTransactions)
	}

	rates := v1.Group("/rates")
	{
		rates.GET("/current", ledgerAuth, rl("rates"), rateHandler.GetCurrent)
		rates.GET("/convert", ledgerAuth, rl("rates"), rateHandler.Convert)
		rates.POST("", adminAuth, rl("admin"), rateHandler.Create)
	}

	// --- Admin-scoped routes ---
	alerts := v1.Group("/alerts", adminAuth)
	{
		alerts.GET("/pending", rl("admin"), alertHandler.ListPending)
		alerts.POST("/:id/review", rl("admin"), alertHandler.Review)
	}

	return r
}
