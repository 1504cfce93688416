package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/cyprus-transfer/internal/config"
)

const (
	applicationName = "cyprus-transfer"
	pingTimeout     = 5 * time.Second
	retryDelay      = 2 * time.Second
)

// DB - подключение к Postgres управляемого бэкенда
type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

// New - пул соединений через pgx stdlib. Подключение проверяется пингом
// с cfg.ConnectRetries попытками.
func New(cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	connCfg, err := pgx.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}
	connCfg.RuntimeParams["application_name"] = applicationName
	if cfg.SimpleProtocol {
		connCfg.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}

	db := sqlx.NewDb(stdlib.OpenDB(*connCfg), "pgx")
	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	attempts := cfg.ConnectRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err = db.PingContext(ctx)
		cancel()
		if err == nil {
			break
		}
		if attempt >= attempts {
			db.Close()
			return nil, fmt.Errorf("failed to ping database after %d attempts: %w", attempt, err)
		}
		logger.Warn("PostgreSQL not ready, retrying",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		time.Sleep(retryDelay)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.DBName),
		zap.Bool("simple_protocol", cfg.SimpleProtocol),
	)

	return &DB{DB: db, logger: logger}, nil
}

func (db *DB) Close() error {
	stats := db.Stats()
	db.logger.Info("Closing PostgreSQL connection",
		zap.Int("open_connections", stats.OpenConnections),
		zap.Int64("wait_count", stats.WaitCount),
	)
	return db.DB.Close()
}

// Health - проверка доступности для /api/health
func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// NewDBForTest - обёртка над готовым *sqlx.DB (sqlmock, интеграционные тесты)
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{
		DB:     sqlxDB,
		logger: logger,
	}
}
