package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type PostgresService struct {
	db     *sql.DB
	logger *zap.Logger
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS analyses (
    id            BIGSERIAL PRIMARY KEY,
    user_id       BIGINT NOT NULL,
    analysis_type VARCHAR(20) NOT NULL,
    title         VARCHAR(200) NOT NULL DEFAULT '',
    original_text TEXT NOT NULL,
    word_count    INTEGER NOT NULL DEFAULT 0,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_analyses_user_created
    ON analyses (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS fread_analyses (
    analysis_id      BIGINT PRIMARY KEY REFERENCES analyses (id) ON DELETE CASCADE,
    total            DOUBLE PRECISION NOT NULL,
    logic            INTEGER NOT NULL,
    appeal           INTEGER NOT NULL,
    focus            INTEGER NOT NULL,
    simplicity       INTEGER NOT NULL,
    popularity       INTEGER NOT NULL,
    ai_comments_data JSONB NOT NULL,
    solutions_data   JSONB NOT NULL
);
`

func NewPostgresService(cfg PostgresConfig, logger *zap.Logger) (*PostgresService, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
	)

	return &PostgresService{
		db:     db,
		logger: logger,
	}, nil
}

// Bootstrap creates the analysis tables when they do not exist yet.
func (ps *PostgresService) Bootstrap(ctx context.Context) error {
	if _, err := ps.db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	ps.logger.Info("Database schema ready")
	return nil
}

func (ps *PostgresService) GetDB() *sql.DB {
	return ps.db
}

func (ps *PostgresService) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

func (ps *PostgresService) Ping(ctx context.Context) error {
	return ps.db.PingContext(ctx)
}
