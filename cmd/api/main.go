package main

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	"storefront/internal/infra/kv"
	infraRepo "storefront/internal/infra/repository"
	domainrepo "storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/usecase"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// STORE_DRIVERに応じてKVStoreを選ぶ。
func newKVStore(cfg config.Config) (domainrepo.KVStore, error) {
	switch cfg.StoreDriver {
	case "file":
		return kv.NewFile(cfg.StoreFile), nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return kv.NewRedis(client), nil

	case "postgres":
		gormDB, err := db.Connect(cfg)
		if err != nil {
			return nil, err
		}
		return kv.NewGorm(gormDB)

	default:
		return kv.NewMemory(), nil
	}
}

func newPasswordScheme(cfg config.Config) usecase.PasswordScheme {
	if cfg.PasswordScheme == "bcrypt" {
		return usecase.NewBcryptPasswordScheme(0)
	}
	// 既定は平文（モック仕様のまま）
	return usecase.NewPlainPasswordScheme()
}

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// .envは無くてもよい
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file", zap.Error(err))
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	store, err := newKVStore(cfg)
	if err != nil {
		log.Fatal("kv store init failed", zap.Error(err), zap.String("driver", cfg.StoreDriver))
	}

	// Repository生成
	dir := infraRepo.NewKVUserDirectory(store)
	sessions := infraRepo.NewKVSessionStore(store)

	// usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	scheme := newPasswordScheme(cfg)

	// Usecase生成
	authUC := usecase.NewAuthUsecase(dir, sessions, scheme, idGen, clock, cfg.AuthLatency)
	if err := authUC.Restore(context.Background()); err != nil {
		log.Fatal("session restore failed", zap.Error(err))
	}

	catalogStore := catalog.Default()
	catalogUC := usecase.NewCatalogUsecase(catalogStore)
	cartUC := usecase.NewCartUsecase(cart.NewEngine(idGen), catalogStore)

	scope := &handler.Scope{
		Auth: authUC,
		Cart: cartUC,
	}

	e := server.New(cfg, log, scope, catalogUC)

	log.Info("starting api",
		zap.String("port", cfg.Port),
		zap.String("store_driver", cfg.StoreDriver),
		zap.String("env", cfg.GoEnv),
	)

	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
