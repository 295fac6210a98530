// Command prune-chat removes assistant conversation messages older than
// the configured retention period (LLM_RETENTION_DAYS). It is intended to be
// invoked by an external cron job. A retention of 0 keeps everything.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/message"
	"github.com/heartmarshall/syllabus-backend/internal/app"
	"github.com/heartmarshall/syllabus-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.LLM.RetentionDays == 0 {
		logger.Info("retention disabled, nothing to prune")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	threshold := time.Now().AddDate(0, 0, -cfg.LLM.RetentionDays)

	deleted, err := message.New(pool).DeleteOlderThan(ctx, threshold)
	if err != nil {
		logger.Error("prune failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("prune completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
