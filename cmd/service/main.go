package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/config"
	_ "storefront/docs"
	"storefront/internal/audit"
	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/hashing"
	"storefront/internal/logger"
	"storefront/internal/producer"
	"storefront/internal/repository"
	"storefront/internal/service"
	"storefront/internal/token"
	httpapi "storefront/internal/transport/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @Title Storefront API
// @Version 1.0
// @Description API витрины: каталог, корзина, заказы и админка
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	if err := hashing.CheckHash(cfg.Admin.PasswordHash); err != nil {
		log.Fatal("invalid ADMIN_PASSWORD_HASH", zap.Error(err))
	}

	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	var catalogCache service.CatalogCache
	if cfg.Redis.Enabled {
		rc, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
		} else {
			defer rc.Close()
			catalogCache = rc
		}
	}

	// Event publishing is optional (nil disables it)
	var events service.OrderEvents
	if len(cfg.Kafka.Brokers) > 0 {
		kp := producer.NewKafkaOrderEvents(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kp.Close()
		events = kp
	}

	catalog := service.NewCatalogService(repos.Products, catalogCache, time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)
	submitter := service.NewOrderSubmitter(repos, events, log)
	admin := service.NewAdminService(repos.Orders, repos.Orders, events, log)
	auth := service.NewAdminAuth(
		cfg.Admin.PasswordHash,
		hashing.NewBcrypt(0),
		token.NewHSProvider(cfg.Admin.JWTSecret, cfg.Admin.Issuer, cfg.Admin.Audience),
		cfg.Admin.TokenTTL,
		log,
	)

	scanner := audit.NewOrphanScanner(repos.Orders, cfg.Audit.OrphanGrace, cfg.Audit.OrphanInterval, log)
	scanCtx, scanCancel := context.WithCancel(context.Background())
	defer scanCancel()
	scanner.Start(scanCtx)

	r := httpapi.Router(httpapi.Deps{
		Catalog:     catalog,
		Submitter:   submitter,
		Admin:       admin,
		Auth:        auth,
		StoreNumber: cfg.Store.WhatsAppNumber,
		CORSOrigins: cfg.CORSOrigins,
	}, log)

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Storefront HTTP server started", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down storefront HTTP server...")
	scanner.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	log.Info("Storefront HTTP server stopped gracefully")
}
