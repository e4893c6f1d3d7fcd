package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fread-app/fread-server-go/internal/config"
	"github.com/fread-app/fread-server-go/internal/server"
	"github.com/fread-app/fread-server-go/internal/service"
	"github.com/fread-app/fread-server-go/internal/service/ai"
	"github.com/fread-app/fread-server-go/internal/service/analysis"
	"github.com/fread-app/fread-server-go/internal/service/cache"
	"github.com/fread-app/fread-server-go/internal/service/database"
	"github.com/fread-app/fread-server-go/internal/service/spellcheck"
)

// Container bundles assembled services for constructing the HTTP server.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	postgres *database.PostgresService
	cache    *cache.Service
	handler  *server.Handler
}

// NewServer builds the HTTP server on the pre-built dependency graph.
func (c *Container) NewServer() (*server.Server, error) {
	if c == nil || c.handler == nil {
		return nil, fmt.Errorf("server dependencies not initialized")
	}
	router := server.NewRouter(c.handler, c.Logger)
	return server.New(c.Config.Server.Addr(), router, c.Logger), nil
}

// Close releases the backing connections. Safe to call after a failed Build.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.cache != nil {
		_ = c.cache.Close()
	}
	if c.postgres != nil {
		_ = c.postgres.Close()
	}
}

// Build assembles all infrastructure services. Heavy-weight initialization
// (DB/cache/model client) happens here so the handlers stay focused on
// request mapping.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	// Cache and database
	cacheSvc, err := cache.NewService(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache service: %w", err)
	}
	closers = append(closers, func() {
		_ = cacheSvc.Close()
	})

	postgresSvc, err := database.NewPostgresService(database.PostgresConfig{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres service: %w", err)
	}
	closers = append(closers, func() {
		_ = postgresSvc.Close()
	})

	if err := postgresSvc.Bootstrap(ctx); err != nil {
		return nil, fmt.Errorf("failed to bootstrap database: %w", err)
	}

	// Persistence with read-through cache
	repo := analysis.NewRepository(postgresSvc, logger)
	store := analysis.NewCachedRepository(repo, cacheSvc, logger)

	// Model client and pipeline
	modelClient, err := ai.NewOpenAIClient(ai.OpenAIConfig{
		APIKey:         cfg.OpenAI.APIKey,
		Model:          cfg.OpenAI.Model,
		RequestTimeout: cfg.OpenAI.RequestTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}

	analyzer := service.NewAnalyzer(modelClient, store, logger)
	speller := spellcheck.NewClient(cfg.SpellCheck, logger)

	handler := server.NewHandler(analyzer, store, speller, postgresSvc, cacheSvc, logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		postgres: postgresSvc,
		cache:    cacheSvc,
		handler:  handler,
	}, nil
}
