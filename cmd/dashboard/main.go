package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"inventory-client/internal/clock"
	"inventory-client/internal/config"
	"inventory-client/internal/gateway"
	"inventory-client/internal/handlers"
	"inventory-client/internal/health"
	"inventory-client/internal/mutation"
	"inventory-client/internal/notify"
	"inventory-client/internal/query"
	"inventory-client/internal/store"
	"inventory-client/pkg/logger"
	"inventory-client/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "inventory-client/docs" // Swagger spec
)

// @title           Inventory Dashboard API
// @version         1.0
// @description     View API over the inventory client core: debounced product queries, confirmed mutations and locally derived stock summaries.

// @host      localhost:8000
// @BasePath  /api/v1
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var port, staticDir, envFile string

	flagSet := pflag.NewFlagSet("dashboard", pflag.ContinueOnError)
	flagSet.StringVar(&port, "port", "", "HTTP port for the dashboard (overrides PORT)")
	flagSet.StringVar(&staticDir, "dir", "", "directory with the dashboard's static files")
	flagSet.StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	// Load configuration
	cfg := config.Load(envFile)
	if port != "" {
		cfg.Port = port
	}

	// Initialize logger
	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	appLogger.Info("🚀 Starting inventory dashboard",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
		zap.String("api_base_url", cfg.APIBaseURL),
	)

	// Remote API
	client := gateway.NewClient(cfg.APIBaseURL,
		gateway.WithTimeout(cfg.APITimeout),
		gateway.WithRateLimit(cfg.APIRateLimit, cfg.APIRateBurst),
		gateway.WithLogger(appLogger),
	)
	api := gateway.NewAPI(client)

	// Notifications
	feed := notify.NewFeed(cfg.NotificationHistory, clock.Real())
	sinks := notify.Multi{notify.NewLogSink(appLogger), feed}

	var kafkaSink *notify.KafkaSink
	if cfg.UseKafka {
		appLogger.Info("📡 Kafka Configuration",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic_notifications", cfg.KafkaTopicNotifications),
			zap.String("client_id", cfg.KafkaClientID),
			zap.String("acks", cfg.KafkaAcks),
			zap.Int("retries", cfg.KafkaRetries),
		)
		sink, err := notify.NewKafkaSink(cfg, appLogger)
		if err != nil {
			appLogger.Warn("Failed to initialize Kafka sink, notifications stay local", zap.Error(err))
		} else {
			kafkaSink = sink
			sinks = append(sinks, kafkaSink)
		}
	}

	// Client core
	appLogger.Info("🔧 Initializing client core...")
	state := store.New(appLogger)
	coordinator := query.New(api, state, sinks, clock.Real(), cfg.QueryDebounce, appLogger)
	orchestrator := mutation.New(api, coordinator, state, sinks, appLogger,
		mutation.WithArtifactSink(mutation.DirSink{Dir: cfg.ExportDir}),
		mutation.WithDefaultThreshold(cfg.DefaultThreshold),
	)
	monitor := health.NewMonitor(api, clock.Real(), cfg.HealthPollInterval, appLogger)
	appLogger.Info("✅ Client core initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go monitor.Run(ctx)
	go initialLoad(ctx, coordinator, appLogger)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RecoveryHandler(appLogger))
	router.Use(logger.GinMiddleware(appLogger))
	router.Use(middleware.RequestIDMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	dashboardHandler := handlers.NewDashboardHandler(appLogger, coordinator, orchestrator, state, monitor, feed).WithLookups(api)
	dashboardHandler.RegisterRoutes(router.Group("/api/v1"))

	if staticDir != "" {
		absDir, err := filepath.Abs(staticDir)
		if err != nil {
			return fmt.Errorf("failed to resolve static directory: %w", err)
		}
		if _, err := os.Stat(absDir); err != nil {
			return fmt.Errorf("static directory %s: %w", absDir, err)
		}
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(absDir))))
		appLogger.Info("📁 Serving static files", zap.String("dir", absDir))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting dashboard server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	}

	appLogger.Info("Shutting down server...")
	cancel()
	coordinator.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if kafkaSink != nil {
		if err := kafkaSink.Close(); err != nil {
			appLogger.Warn("Failed to close Kafka sink", zap.Error(err))
		}
	}

	appLogger.Info("Server exited")
	return nil
}

// initialLoad fills the view once at startup. Failures are already
// reported through the notification sinks.
func initialLoad(ctx context.Context, coordinator *query.Coordinator, log *zap.Logger) {
	steps := []struct {
		name string
		fn   func(context.Context) (query.Outcome, error)
	}{
		{"products", coordinator.Refresh},
		{"categories", coordinator.RefreshCategories},
		{"inventory", coordinator.RefreshInventory},
		{"alerts", coordinator.RefreshAlerts},
	}
	for _, step := range steps {
		if _, err := step.fn(ctx); err != nil {
			log.Warn("Initial load failed", zap.String("view", step.name), zap.Error(err))
		}
	}
}
