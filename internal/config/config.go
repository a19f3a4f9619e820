package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	StoreDriver string // memory / file / redis / postgres
	StoreFile   string // STORE_DRIVER=file のときの保存先

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DatabaseURL      string // あればPostgres接続に最優先で使う
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string

	SessionSecret string // セッショントークンの署名シークレット

	AuthLatency    time.Duration // モックのAPI遅延（Login/Register）
	PasswordScheme string        // plain / bcrypt

	GoEnv string // dev/prod
}

// Loadは環境変数から読む。デモ用途なのでほぼ全部にデフォルトがある。
func Load() (Config, error) {
	redisDB, err := getenvInt("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}

	latencyMS, err := getenvInt("AUTH_LATENCY_MS", 1000)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		StoreDriver: getenv("STORE_DRIVER", "memory"),
		StoreFile:   getenv("STORE_FILE", "storefront.kv.json"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "storefront"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		SessionSecret: getenv("SESSION_SECRET", "dev_secret_change_me"),

		AuthLatency:    time.Duration(latencyMS) * time.Millisecond,
		PasswordScheme: getenv("AUTH_PASSWORD_SCHEME", "plain"),

		GoEnv: getenv("GO_ENV", "dev"),
	}

	switch cfg.StoreDriver {
	case "memory", "file", "redis", "postgres":
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER must be memory/file/redis/postgres, got %q", cfg.StoreDriver)
	}

	switch cfg.PasswordScheme {
	case "plain", "bcrypt":
	default:
		return Config{}, fmt.Errorf("AUTH_PASSWORD_SCHEME must be plain/bcrypt, got %q", cfg.PasswordScheme)
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
