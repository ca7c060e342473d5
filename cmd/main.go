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

	"vocaaid/internal/config"
	"vocaaid/internal/handlers"
	"vocaaid/internal/middleware"
	"vocaaid/internal/remote"
	"vocaaid/internal/repository"
	"vocaaid/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
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
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// データベース接続 (GORM)
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

	// Dependency Injection
	datasetRepo := repository.NewGormDatasetRepository()
	remoteClient := remote.NewClient(config.Cfg, logger)

	syncService := service.NewSyncService(
		remoteClient,
		time.Duration(config.Cfg.Sync.DebounceSeconds)*time.Second,
		config.Cfg.Sync.StartOnline,
		logger,
	)
	defer syncService.Stop()

	datasetService := service.NewDatasetService(db, datasetRepo, syncService)
	// プッシュ・プルの書き込みも DatasetService のロックを通す
	syncService.BindStore(datasetService)
	studyService := service.NewStudyService(datasetService)
	quizService := service.NewQuizService(datasetService)
	exportService := service.NewExportService()

	datasetHandler := handlers.NewDatasetHandler(datasetService, logger)
	exportHandler := handlers.NewExportHandler(datasetService, exportService, logger)
	remoteHandler := handlers.NewRemoteHandler(remoteClient, exportService, logger)
	syncHandler := handlers.NewSyncHandler(syncService, logger)
	studyHandler := handlers.NewStudyHandler(studyService, logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger)

	// Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewStructuredLogger(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// 単語帳本体
		r.Get("/data", datasetHandler.GetData)
		r.Post("/data/import", datasetHandler.ImportData)
		r.Post("/export", exportHandler.Export)

		r.Route("/words", func(r chi.Router) {
			r.Post("/", datasetHandler.PostWord)
			r.Post("/move", datasetHandler.MoveWords)
			r.Put("/{word_id}", datasetHandler.PutWord)
			r.Delete("/{word_id}", datasetHandler.DeleteWord)
		})

		r.Route("/folders", func(r chi.Router) {
			r.Post("/", datasetHandler.PostFolder)
			r.Delete("/{folder_id}", datasetHandler.DeleteFolder)
		})

		// リモートミラー直結API
		r.Route("/remote", func(r chi.Router) {
			r.Post("/sync", remoteHandler.SyncAll)
			r.Route("/words", func(r chi.Router) {
				r.Get("/", remoteHandler.GetWords)
				r.Post("/", remoteHandler.PostWord)
				r.Put("/", remoteHandler.PutWord)
				r.Delete("/", remoteHandler.DeleteWord)
			})
		})

		// 同期コーディネータ
		r.Route("/sync", func(r chi.Router) {
			r.Get("/status", syncHandler.GetStatus)
			r.Post("/", syncHandler.Sync)
			r.Post("/refresh", syncHandler.Refresh)
			r.Put("/online", syncHandler.PutOnline)
		})

		// 学習セッション（めくりカード）
		r.Route("/study", func(r chi.Router) {
			r.Get("/", studyHandler.GetState)
			r.Post("/start", studyHandler.Start)
			r.Post("/reveal", studyHandler.Reveal)
			r.Post("/advance", studyHandler.Advance)
			r.Post("/flip", studyHandler.Flip)
			r.Post("/star", studyHandler.ToggleStar)
			r.Post("/reset", studyHandler.Reset)
			r.Post("/retry", studyHandler.Retry)
		})

		// クイズセッション（記述式）
		r.Route("/quiz", func(r chi.Router) {
			r.Get("/", quizHandler.GetState)
			r.Get("/results", quizHandler.GetResults)
			r.Post("/start", quizHandler.Start)
			r.Post("/answer", quizHandler.SubmitAnswer)
			r.Post("/advance", quizHandler.Advance)
			r.Post("/star", quizHandler.ToggleStar)
			r.Post("/reset", quizHandler.Reset)
			r.Post("/retry", quizHandler.Retry)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
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
