package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-task-manager/config"
	_ "voice-task-manager/docs" // Swagger docs
	"voice-task-manager/internal/httpserver"
	"voice-task-manager/internal/middleware"
	taskHTTP "voice-task-manager/internal/task/delivery/http"
	memoryRepo "voice-task-manager/internal/task/repository/memory"
	"voice-task-manager/internal/task/usecase"
	"voice-task-manager/pkg/categorize"
	"voice-task-manager/pkg/datemath"
	"voice-task-manager/pkg/gcalendar"
	"voice-task-manager/pkg/llmprovider"
	"voice-task-manager/pkg/log"
)

// @title       Voice Task Manager API
// @description Turns spoken or typed text into structured tasks, with an optional hosted model and Google Calendar mirror.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Task Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Extraction engine
	dateMathParser, err := datemath.NewParser(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to Pacific rules: %v", cfg.Parser.Timezone, err)
		dateMathParser, _ = datemath.NewParser("")
	}

	lexicon := categorize.DefaultLexicon()
	if cfg.Classifier.LexiconPath != "" {
		loaded, lexErr := categorize.LoadLexicon(cfg.Classifier.LexiconPath)
		if lexErr != nil {
			logger.Warnf(ctx, "Lexicon %s not loaded, using built-in keywords: %v", cfg.Classifier.LexiconPath, lexErr)
		} else {
			lexicon = loaded
		}
	}
	classifier := categorize.NewClassifier(lexicon)

	// 4. Task store
	taskRepo := memoryRepo.New(logger)

	opts := usecase.Options{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		CacheSize:  cfg.LLM.CacheSize,
		CacheTTL:   cfg.LLM.CacheTTL,
	}

	// 5. Hosted model (optional)
	providers, warnings, err := llmprovider.InitializeProviders(&cfg.LLM)
	for _, w := range warnings {
		logger.Warn(ctx, w)
	}
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		logger.Info(ctx, "No LLM providers configured, using the local engine only")
	case err != nil:
		logger.Warnf(ctx, "LLM providers not available, using the local engine only: %v", err)
	default:
		opts.LLM = llmprovider.NewManager(providers, llmprovider.ManagerConfig(cfg.LLM), logger)
		logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))
	}

	// 6. Google Calendar (optional)
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			opts.Calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	taskUC := usecase.New(logger, taskRepo, dateMathParser, classifier, opts)
	taskHandler := taskHTTP.New(logger, taskUC, cfg.Classifier.DefaultCategories)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Timezone:    dateMathParser.Timezone(),
		Middleware:  middleware.New(logger, cfg.RateLimit.PerMin),
		TaskHandler: taskHandler,

		LLMEnabled:      opts.LLM != nil,
		CalendarEnabled: opts.Calendar != nil,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
