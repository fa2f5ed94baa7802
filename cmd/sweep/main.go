package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/database"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/logger"
	"github.com/mike4422/ApexGlobalEarnings-sub001/internal/settlement"
)

// One-shot settlement sweep. Intended to run from cron: it accrues daily
// returns, backfills missing end dates, settles matured investments, and
// exits. Safe to re-run at any time.
func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweeper := settlement.NewSweeper(settlement.NewStore(dbManager.DB()), log)
	result, err := sweeper.Run(ctx)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	log.Infow("sweep completed",
		"evaluated", result.Evaluated,
		"accrued", result.Accrued,
		"backfilled", result.Backfilled,
		"settled", result.Settled,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
		"duration", result.Duration.String(),
	)

	for _, sweepErr := range result.Errors {
		log.Warnw("investment not processed",
			"investment_id", sweepErr.InvestmentID,
			"error", sweepErr.Err.Error(),
		)
	}

	if len(result.Errors) > 0 {
		os.Exit(2)
	}
	return nil
}
