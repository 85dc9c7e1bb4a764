package main

import (
	"context"
	"fmt"
	"os"

	"storefront/config"
	"storefront/internal/database"
	"storefront/internal/logger"
	"storefront/internal/migrate"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	mode := "all"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	var opts migrate.MigrateOptions
	switch mode {
	case "all":
		opts = migrate.DefaultMigrateOptions()
	case "schema":
		// только таблицы, без ограничений и триггеров
	default:
		fmt.Println("Usage: go run cmd/migrate/main.go [all|schema]")
		fmt.Println("  all    - tables, constraints, indexes, FKs and triggers (default)")
		fmt.Println("  schema - tables only")
		os.Exit(2)
	}

	cfg := config.Load(log)

	db := database.ConnectDBForMigration(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	if err := migrate.MigrateStoreDB(context.Background(), db, log, opts); err != nil {
		log.Fatal("Ошибка при выполнении миграции", zap.String("mode", mode), zap.Error(err))
	}

	log.Info("Миграция успешно завершена", zap.String("mode", mode))
}
