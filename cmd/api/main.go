package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study-assistant/config"
	_ "study-assistant/docs" // Swagger docs
	"study-assistant/internal/extract"
	"study-assistant/internal/httpserver"
	"study-assistant/internal/intent"
	"study-assistant/pkg/datemath"
	"study-assistant/pkg/gcalendar"
	"study-assistant/pkg/gemini"
	"study-assistant/pkg/log"
	"study-assistant/pkg/postgres"
)

// @title       Study Assistant API
// @description Vietnamese chat assistant for study tasks, schedules and reminders.
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

	logger.Info(ctx, "Starting Study Assistant API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Timezone
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		loc = time.UTC
	}

	// 4. Postgres
	pool, err := postgres.Connect(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Postgres: %v", err)
		return
	}
	defer pool.Close()

	// 5. Intent classification
	intentCfg, err := intent.LoadConfig(cfg.Intents.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to load intent config %q: %v", cfg.Intents.Path, err)
		return
	}
	rules := intent.NewRuleScorer(intentCfg, logger)

	var llm intent.Classifier
	if cfg.LLM.Enabled {
		opts := []gemini.Option{gemini.WithModel(cfg.LLM.Model)}
		if cfg.LLM.BaseURL != "" {
			opts = append(opts, gemini.WithBaseURL(cfg.LLM.BaseURL))
		}
		llm = intent.NewLLMClassifier(gemini.NewClient(cfg.LLM.APIKey, opts...), intentCfg, logger)
		logger.Infof(ctx, "LLM classifier enabled (model=%s)", cfg.LLM.Model)
	} else {
		logger.Info(ctx, "LLM classifier disabled, rule scorer only")
	}
	resolver := intent.NewResolver(llm, rules, intentCfg, logger)

	// 6. Entity extraction
	dateParser, err := datemath.NewParser(loc.String())
	if err != nil {
		dateParser, _ = datemath.NewParser("UTC")
	}
	extractor := extract.New(dateParser, logger)

	// 7. Google Calendar mirror (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		PostgresDB:          pool,
		Resolver:            resolver,
		Extractor:           extractor,
		Location:            loc,
		Calendar:            calendarClient,
		CalendarID:          cfg.GoogleCalendar.CalendarID,
		ChatRateLimitPerMin: cfg.HTTPServer.ChatRateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
