// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_rel_diary/internal/config"
	"go_rel_diary/internal/handlers"
	"go_rel_diary/internal/middleware"
	"go_rel_diary/internal/repository"
	"go_rel_diary/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the config decides the real one.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === slog setup based on config ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 2. Database (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 3. Dependency injection
	journalRepo := repository.NewGormJournalRepository()
	advisor := service.NewAdvisor(&config.Cfg)

	recordService := service.NewRecordService(db, journalRepo, &config.Cfg)
	agreementService := service.NewAgreementService(db, journalRepo, &config.Cfg)
	insightsService := service.NewInsightsService(db, journalRepo, &config.Cfg)
	settingsService := service.NewSettingsService(db, journalRepo, &config.Cfg)
	adviceService := service.NewAdviceService(db, journalRepo, advisor, &config.Cfg)

	recordHandler := handlers.NewRecordHandler(recordService, logger)
	agreementHandler := handlers.NewAgreementHandler(agreementService, logger)
	insightsHandler := handlers.NewInsightsHandler(insightsService, logger)
	settingsHandler := handlers.NewSettingsHandler(settingsService, logger)
	adviceHandler := handlers.NewAdviceHandler(adviceService, logger)

	// 4. Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/records", func(r chi.Router) {
			r.Get("/", recordHandler.GetRecords)
			r.Get("/{date}", recordHandler.GetRecord)
			r.Put("/{date}", recordHandler.PutRecord)
			r.Post("/{date}/lock", recordHandler.LockRecord)
			r.Delete("/{date}/lock", recordHandler.UnlockRecord)
			r.Post("/{date}/messages", recordHandler.ImportMessages)
		})

		r.Route("/agreements", func(r chi.Router) {
			r.Post("/", agreementHandler.PostAgreement)
			r.Get("/", agreementHandler.GetAgreements)
			r.Delete("/{short_name}", agreementHandler.DeleteAgreement)
			r.Get("/{short_name}/fulfillment", agreementHandler.GetFulfillmentRate)
		})

		r.Route("/insights", func(r chi.Router) {
			r.Get("/weekly-goals", insightsHandler.GetWeeklyGoals)
			r.Get("/heatmap", insightsHandler.GetHeatmap)
			r.Get("/streak", insightsHandler.GetStreak)
			r.Get("/time-capsule", insightsHandler.GetTimeCapsule)
			r.Get("/achievements", insightsHandler.GetAchievements)
			r.Get("/summary", insightsHandler.GetSummary)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/goals", settingsHandler.GetGoals)
			r.Put("/goals", settingsHandler.PutGoals)
			r.Get("/vocabulary", settingsHandler.GetVocabulary)
			r.Post("/vocabulary/{list}/options", settingsHandler.PostVocabularyOption)
			r.Put("/config", settingsHandler.PutConfig)
			r.Put("/relationship-start", settingsHandler.PutRelationshipStart)
		})

		r.Post("/advice", adviceHandler.PostAdvice)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Server with graceful shutdown
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
