package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/database"

	"go.uber.org/zap"
)

type Config struct {
	Port  string
	DB    DB
	Admin Admin
	Store Store
	Redis Redis
	Kafka Kafka
	Audit Audit

	CORSOrigins []string
}

type DB struct {
	database.Config
}

type Admin struct {
	PasswordHash string
	JWTSecret    string
	Issuer       string
	Audience     string
	TokenTTL     time.Duration
}

type Store struct {
	// Номер магазина: ключ PIX и контакт WhatsApp
	WhatsAppNumber string
}

type Redis struct {
	Enabled    bool
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
}

type Kafka struct {
	Brokers []string
	Topic   string
}

type Audit struct {
	OrphanGrace    time.Duration
	OrphanInterval time.Duration
}

func Load(log *zap.Logger) *Config {
	cfg := &Config{
		Port: getEnv("APP_PORT", log),
		DB: DB{
			Config: database.Config{
				Host:     getEnv("DB_HOST", log),
				Port:     getEnv("DB_PORT", log),
				User:     getEnv("DB_USER", log),
				Password: getEnv("DB_PASSWORD", log),
				Name:     getEnv("DB_NAME", log),
				SSLMode:  getEnvDefault("DB_SSLMODE", "disable"),
			},
		},
		Admin: Admin{
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", log),
			JWTSecret:    getEnv("JWT_SECRET", log),
			Issuer:       getEnvDefault("JWT_ISSUER", "storefront"),
			Audience:     getEnvDefault("JWT_AUDIENCE", "storefront-admin"),
			TokenTTL:     parseDurationWithDays(getEnvDefault("ADMIN_TOKEN_TTL", "12h"), 12*time.Hour),
		},
		Store: Store{
			WhatsAppNumber: getEnvDefault("STORE_WHATSAPP_NUMBER", "5521968428374"),
		},
		Redis: Redis{
			Enabled:    getEnvDefault("REDIS_ENABLED", "false") == "true",
			Addr:       getEnvDefault("REDIS_ADDR", "localhost:6379"),
			Password:   getEnvDefault("REDIS_PASSWORD", ""),
			DB:         atoiDefault(getEnvDefault("REDIS_DB", "0"), 0),
			TTLSeconds: positiveIntDefault(getEnvDefault("CACHE_TTL_SECONDS", "60"), 60),
		},
		Kafka: Kafka{
			Brokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnvDefault("KAFKA_TOPIC_ORDERS", "storefront.orders"),
		},
		Audit: Audit{
			OrphanGrace:    parseDurationWithDays(getEnvDefault("ORPHAN_GRACE", "15m"), 15*time.Minute),
			OrphanInterval: parseDurationWithDays(getEnvDefault("ORPHAN_SCAN_INTERVAL", "30m"), 30*time.Minute),
		},
		CORSOrigins: splitAndTrim(getEnvDefault("CORS_ORIGINS", "*")),
	}
	return cfg
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("Обязательная переменная окружения не установлена", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

// parseDurationWithDays understands Go durations plus a "Nd" day suffix.
func parseDurationWithDays(s string, def time.Duration) time.Duration {
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil || days <= 0 {
			return def
		}
		return time.Duration(days) * 24 * time.Hour
	}

	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// positiveIntDefault returns def for unparsable or non-positive values.
func positiveIntDefault(s string, def int) int {
	n := atoiDefault(s, def)
	if n <= 0 {
		return def
	}
	return n
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
