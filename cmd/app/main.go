package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordering/cmd"
	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := newLogger(configs)

	dialector, err := configs.Dialector()
	if err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}
	gormDB, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	runErr := startWebServer(app, configs, logger)

	jobManager.StopAll()
	if err = app.Close(); err != nil {
		logger.Error("Failed to release resources", "error", err)
	}
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
	if runErr != nil {
		log.Fatalf("Web server failed: %v", runErr)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		AppEnv:                 envOr("APP_ENV", "production"),
		DBDriver:               os.Getenv("DB_DRIVER"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		ReportDir:              os.Getenv("REPORT_DIR"),
		ReportSchedule:         envOr("REPORT_SCHEDULE", "0 0 2 * * *"),
		DefaultCustomerID:      os.Getenv("ORDER_DEFAULT_CUSTOMER_ID"),
		DefaultProductID:       os.Getenv("ORDER_DEFAULT_PRODUCT_ID"),
		DefaultQuantity:        os.Getenv("ORDER_DEFAULT_QUANTITY"),
		DefaultUnitPrice:       os.Getenv("ORDER_DEFAULT_UNIT_PRICE"),
		ActivationMaxDays:      os.Getenv("ACTIVATION_MAX_DAYS"),
		BusinessHoursStart:     os.Getenv("BUSINESS_HOURS_START"),
		BusinessHoursEnd:       os.Getenv("BUSINESS_HOURS_END"),
		BusinessTimezone:       os.Getenv("BUSINESS_TIMEZONE"),
	}
}

// envOr returns the variable or fallback when it is unset. An explicitly empty
// REPORT_SCHEDULE stays empty and disables the report job.
func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func newLogger(configs cmd.Config) *slog.Logger {
	level := slog.LevelInfo
	if configs.IsDevelopment() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), httpadapter.RouterConfig{
		Logger:      logger,
		Development: configs.IsDevelopment(),
		Metrics:     httpadapter.NewMetrics("ordering"),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", configs.HTTPPort)
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
