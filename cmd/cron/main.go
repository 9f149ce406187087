package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study-assistant/config"
	"study-assistant/internal/notification/engine"
	notifRepo "study-assistant/internal/notification/repository/postgre"
	reminderRepo "study-assistant/internal/reminder/repository/postgre"
	"study-assistant/pkg/log"
	"study-assistant/pkg/mailer"
	"study-assistant/pkg/postgres"
	"study-assistant/pkg/push"
)

// main is the entry point for the reminder delivery service.
// This binary scans due reminders on an interval and fans them out to the
// configured channels.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create repositories and channel gateways
//  3. Create the engine
//  4. Run & graceful shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Study Assistant reminder engine...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		loc = time.UTC
	}

	pool, err := postgres.Connect(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Postgres: %v", err)
		return
	}
	defer pool.Close()

	pushGW, err := push.New(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer pushGW.Close()

	eng := engine.New(
		engine.Config{
			Interval:     cfg.Cron.Interval,
			BatchSize:    cfg.Cron.BatchSize,
			OverdueGrace: cfg.Cron.OverdueGrace,
			Timezone:     loc,
		},
		reminderRepo.New(pool, logger),
		notifRepo.New(pool, logger),
		mailer.New(cfg.SMTP, logger),
		pushGW,
		logger,
	)

	eng.Run(ctx)
	logger.Info(ctx, "Reminder engine stopped gracefully")
}
