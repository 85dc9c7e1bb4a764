package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"storefront/config"
	"storefront/internal/audit"
	"storefront/internal/database"
	"storefront/internal/logger"
	"storefront/internal/repository"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// One-off orphan report. Usage: go run cmd/audit/main.go [grace]
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	grace := cfg.Audit.OrphanGrace
	if len(os.Args) > 1 {
		d, err := time.ParseDuration(os.Args[1])
		if err != nil {
			fmt.Println("Usage: go run cmd/audit/main.go [grace]")
			fmt.Println("  grace - minimum order age, e.g. 15m or 2h (default ORPHAN_GRACE)")
			os.Exit(2)
		}
		grace = d
	}

	repos := repository.New(db)
	scanner := audit.NewOrphanScanner(repos.Orders, grace, cfg.Audit.OrphanInterval, log)

	ctx := context.Background()
	candidates, err := scanner.ScanOnce(ctx)
	if err != nil {
		log.Fatal("orphan scan failed", zap.Error(err))
	}
	orphans, err := audit.Confirm(ctx, repos.OrderItems, candidates)
	if err != nil {
		log.Fatal("orphan confirm failed", zap.Error(err))
	}
	for _, o := range orphans {
		fmt.Printf("%s\t%s\t%s\t%s\n", o.ID, o.CreatedAt.Format(time.RFC3339), o.CustomerName, o.TotalAmount.StringFixed(2))
	}
	log.Info("orphan scan completed", zap.Int("candidates", len(candidates)), zap.Int("orphans", len(orphans)))
}
