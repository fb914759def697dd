package main

import (
	"todolist/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"todolist/internal/adapter/clock"
	dbadapter "todolist/internal/adapter/db"
	"todolist/internal/adapter/events"
	httpadapter "todolist/internal/adapter/http"
	"todolist/internal/adapter/http/handlers"
	httpmiddleware "todolist/internal/adapter/http/middleware"
	"todolist/internal/adapter/memory"
	appservice "todolist/internal/app/service"
	"todolist/internal/config"
	"todolist/internal/core/ports"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	repository, closeStorage := openStorage(cfg, logger)
	defer closeStorage()

	sink, closeEvents := openEventSink(cfg, logger)
	defer closeEvents()

	todoService := appservice.NewSerializedTodoService(
		appservice.NewTodoService(repository, clock.SystemClock{}, sink, cfg.Limits),
	)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.GinZapMiddleware(logger))
	healthHandler := handlers.NewHealthHandler(repository, cfg.StorageDriver)
	todoHandler := handlers.NewTodoHandler(todoService)
	httpadapter.RegisterRoutes(r, healthHandler, todoHandler)

	addr := ":" + cfg.AppPort
	logger.Info("starting server",
		zap.String("addr", addr),
		zap.String("storage", cfg.StorageDriver),
		zap.Int("max_title_length", cfg.Limits.MaxTitleLength),
		zap.Int("max_description_length", cfg.Limits.MaxDescriptionLength),
		zap.Int("max_todos_per_owner", cfg.Limits.MaxTodosPerOwner),
	)
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

type ownerStateStorage interface {
	ports.OwnerStateRepository
	ports.HealthChecker
}

func openStorage(cfg *config.Config, logger *zap.Logger) (ownerStateStorage, func()) {
	if cfg.StorageDriver == config.StorageMemory {
		return memory.NewOwnerStateRepository(cfg.Limits.MaxTodosPerOwner), func() {}
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}
	return dbadapter.NewOwnerStateRepository(db, cfg.Limits.MaxTodosPerOwner), closeDB
}

func openEventSink(cfg *config.Config, logger *zap.Logger) (ports.EventSink, func()) {
	logSink := events.NewLogSink(logger)
	if cfg.RedisAddr == "" {
		return logSink, func() {}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	closeClient := func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close redis client", zap.Error(err))
		}
	}
	logger.Info("publishing todo events to redis",
		zap.String("addr", cfg.RedisAddr),
		zap.String("channel", cfg.RedisEventsChannel),
	)
	return events.NewMultiSink(logSink, events.NewRedisSink(client, cfg.RedisEventsChannel)), closeClient
}
