package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boxoffice/api/routes"
	"boxoffice/internal/checkout"
	"boxoffice/internal/shared/config"
	"boxoffice/internal/shared/database"
	"boxoffice/internal/shared/middleware"
	"boxoffice/pkg/logger"
	"boxoffice/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// .env must be read before config.Load
	envErr := godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Logger depends on GIN_MODE and LOG_LEVEL
	appLogger := logger.New()
	logger.SetDefault(appLogger)

	if envErr != nil {
		if cfg.IsProduction() || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}
	appLogger.Info("Starting boxoffice",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("git_commit", GitCommit),
	)

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("Redis unavailable, falling back to in-memory selections", slog.Any("error", err))
		db = &database.DB{}
	}
	defer db.Close()

	// Rate limiter needs Redis for its shared window
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && db.HasRedis() {
		rateLimiter = ratelimit.NewRateLimiter(db.GetRedisClient(), &ratelimit.Config{
			Enabled:           cfg.RateLimit.Enabled,
			WindowDuration:    cfg.RateLimit.WindowDuration,
			DefaultRequests:   cfg.RateLimit.DefaultRequests,
			PublicRequests:    cfg.RateLimit.PublicRequests,
			SelectionRequests: cfg.RateLimit.SelectionRequests,
			CheckoutRequests:  cfg.RateLimit.CheckoutRequests,
			HealthRequests:    cfg.RateLimit.HealthRequests,
			WhitelistedIPs:    cfg.RateLimit.WhitelistedIPs,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
			slog.Int("checkout_requests", cfg.RateLimit.CheckoutRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	publisher := newOrderPublisher(cfg, appLogger)
	defer func() {
		appLogger.Info("Closing order publisher...")
		if err := publisher.Close(); err != nil {
			appLogger.Error("Error closing order publisher", slog.Any("error", err))
		}
	}()

	router, err := setupRouter(cfg, db, publisher, rateLimiter)
	if err != nil {
		appLogger.Error("Failed to set up routes", slog.Any("error", err))
		return
	}

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("api_base", cfg.GetAPIBasePath()),
			slog.Bool("redis", db.HasRedis()),
			slog.Bool("kafka", cfg.Kafka.Enabled),
			slog.Bool("rate_limiting", rateLimiter != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

// newOrderPublisher picks Kafka when enabled and reachable, the log publisher otherwise
func newOrderPublisher(cfg *config.Config, appLogger *logger.Logger) checkout.OrderPublisher {
	if !cfg.Kafka.Enabled {
		appLogger.Info("Kafka disabled, orders will be logged only")
		return checkout.NewLogOrderPublisher(appLogger)
	}

	kafkaConfig := checkout.DefaultKafkaProducerConfig()
	kafkaConfig.Brokers = cfg.Kafka.Brokers
	kafkaConfig.OrderTopic = cfg.Kafka.OrderTopic
	kafkaConfig.RetryMax = cfg.Kafka.RetryMax
	kafkaConfig.TimeoutMs = cfg.Kafka.TimeoutMs

	publisher, err := checkout.NewKafkaOrderPublisher(kafkaConfig)
	if err != nil {
		appLogger.Error("Failed to initialize Kafka order publisher", slog.Any("error", err))
		appLogger.Info("Continuing with log-only order publisher")
		return checkout.NewLogOrderPublisher(appLogger)
	}
	return publisher
}

func setupRouter(cfg *config.Config, db *database.DB, publisher checkout.OrderPublisher, rateLimiter *ratelimit.RateLimiter) (*gin.Engine, error) {
	engine := gin.New()
	appLogger := logger.GetDefault()

	engine.Use(middleware.RequestID(), middleware.RequestLogger(appLogger), gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.IsDevelopment() {
		// Local front-ends run on arbitrary ports
		corsConfig.AllowOrigins = nil
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	engine.Use(cors.New(corsConfig))

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	appRouter := routes.NewRouter(cfg, db, publisher)
	if err := appRouter.SetupRoutes(engine); err != nil {
		return nil, err
	}
	return engine, nil
}
