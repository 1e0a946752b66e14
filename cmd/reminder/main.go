package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-todo/config"
	"smart-todo/config/postgre"
	"smart-todo/internal/reminder"
	reminderUC "smart-todo/internal/reminder/usecase"
	todoRepo "smart-todo/internal/todo/repository/postgre"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
)

// main runs the reminder scheduler without the HTTP surface. Deploy it with
// reminder.enabled=false on the API so digests are not sent twice; the
// notification stream and list endpoints of the API then stay empty.
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

	logger.Info(ctx, "Starting reminder scheduler...")

	// Infrastructure
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(postgresDB)

	dateMathParser, err := datemath.NewParser(cfg.Reminder.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid timezone: ", err)
		return
	}

	notifiers := reminder.PlatformNotifiers(cfg.Reminder, cfg.Telegram)
	if len(notifiers) == 0 {
		logger.Warn(ctx, "No platform alert sink configured, notifications are only logged")
	}

	scheduler := reminderUC.New(
		logger,
		todoRepo.New(postgresDB, logger),
		dateMathParser,
		reminder.NewBroker(0),
		notifiers,
		nil,
		cfg.Reminder,
		reminder.SystemClock,
	)

	if err := scheduler.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to start reminder scheduler: ", err)
		return
	}

	<-ctx.Done()
	scheduler.Stop()
	logger.Info(ctx, "Reminder scheduler stopped gracefully")
}
