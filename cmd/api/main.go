package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/app"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/clock"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/ratelimit"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/storage/memory"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/storage/postgres"
	transporthttp "github.com/umairmr377-gif/Play-Zone-sub000/internal/transport/http"
	"github.com/umairmr377-gif/Play-Zone-sub000/migrations"
)

const (
	defaultPort            = "8080"
	defaultCORSOrigins     = "http://localhost:3000,http://127.0.0.1:3000"
	defaultRateLimit       = 30
	defaultRateLimitWindow = time.Minute
	shutdownTimeout        = 10 * time.Second
)

func main() {
	// A .env file is a convenience; the environment alone is fine.
	_ = godotenv.Load()

	logger := newLogger(os.Getenv("ENV"))
	defer func() { _ = logger.Sync() }()

	port := os.Getenv("PORT")
	if port == "" {
		logger.Warn("PORT not set, using default", zap.String("port", defaultPort))
		port = defaultPort
	}

	corsEnv := os.Getenv("CORS_ORIGINS")
	if corsEnv == "" {
		logger.Warn("CORS_ORIGINS not set, using default local origins")
		corsEnv = defaultCORSOrigins
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var (
		reservations app.ReservationRepository
		adminRepo    app.AdminReservationRepository
		courts       app.CourtRepository
		auditRepo    app.AuditRepository
	)

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		// Dual-mode storage: without a configured database the service
		// runs on the in-memory store so browsing and booking still work.
		logger.Warn("DATABASE_URL not set, using in-memory store")
		store := memory.NewStore()
		reservations = store
		adminRepo = store
		courts = store
		auditRepo = store
	} else {
		pool, err := pgxpool.New(startupCtx, dbURL)
		if err != nil {
			logger.Fatal("connect to db", zap.Error(err))
		}
		defer pool.Close()

		if err := pool.Ping(startupCtx); err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		if err := migrations.Apply(startupCtx, pool); err != nil {
			logger.Fatal("apply migrations", zap.Error(err))
		}

		reservationRepo := postgres.NewReservationRepository(pool)
		reservations = reservationRepo
		adminRepo = reservationRepo
		courts = postgres.NewCourtRepository(pool)
		auditRepo = postgres.NewAuditRepository(pool)
	}

	clk := clock.NewSystem()
	audit := app.NewAuditLog(auditRepo, clk, logger)
	courtSvc := app.NewCourtService(courts, audit, clk)
	bookingSvc := app.NewBookingService(reservations, courts, clk, logger)
	adminSvc := app.NewAdminService(adminRepo, audit, clk)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", transporthttp.HealthHandler)
	mux.Handle("/bookings", transporthttp.HandleCreateBooking(bookingSvc))
	mux.Handle("/availability", transporthttp.HandleAvailability(bookingSvc, courtSvc))
	mux.Handle("/courts", transporthttp.HandleListCourts(courtSvc))
	mux.Handle("/admin/courts", transporthttp.HandleAdminCourts(courtSvc))
	mux.Handle("/admin/courts/", transporthttp.HandleAdminCourtByID(courtSvc))
	mux.Handle("/admin/reservations", transporthttp.HandleAdminReservations(adminSvc))
	mux.Handle("/admin/reservations/", transporthttp.HandleReservationStatus(adminSvc))
	mux.Handle("/admin/audit", transporthttp.HandleAdminAudit(audit))
	mux.Handle("/", transporthttp.NotFoundHandler())

	limiter := ratelimit.New(newLimitStore(logger, clk), rateLimitFromEnv(logger), defaultRateLimitWindow)
	corsOrigins := parseCSV(corsEnv)
	handler := transporthttp.RequestLogger(
		transporthttp.CORS(corsOrigins, transporthttp.RateLimit(limiter, logger, mux)),
		logger,
	)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	logger.Info("api listening", zap.String("port", port))

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(env string) *zap.Logger {
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	config.OutputPaths = []string{"stdout"}

	logger, err := config.Build()
	if err != nil {
		panic("build logger: " + err.Error())
	}
	return logger
}

// newLimitStore picks the rate-limit counter backend: Redis when
// REDIS_URL is set, otherwise process memory.
func newLimitStore(logger *zap.Logger, clk clock.Clock) ratelimit.Store {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return ratelimit.NewMemoryStore(clk)
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn("invalid REDIS_URL, using in-memory rate limiting", zap.Error(err))
		return ratelimit.NewMemoryStore(clk)
	}
	logger.Info("rate limiting via redis", zap.String("addr", opts.Addr))
	return ratelimit.NewRedisStore(redis.NewClient(opts))
}

func rateLimitFromEnv(logger *zap.Logger) int {
	raw := os.Getenv("RATE_LIMIT_PER_MINUTE")
	if raw == "" {
		return defaultRateLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		logger.Warn("invalid RATE_LIMIT_PER_MINUTE, using default",
			zap.String("value", raw),
			zap.Int("default", defaultRateLimit),
		)
		return defaultRateLimit
	}
	return limit
}

func parseCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
