package api

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/poolhouse/go-prize-pool/internal/auth"
	"github.com/poolhouse/go-prize-pool/internal/config"
	"github.com/poolhouse/go-prize-pool/internal/pool"
	"github.com/poolhouse/go-prize-pool/internal/pool/selection"
	"github.com/poolhouse/go-prize-pool/internal/storage"
)

// PROVIDERS - construction helpers for the server components, kept out of
// their packages to avoid cyclic dependencies.

func NewClock(t ...*testing.T) time2.Clock {
	var clock time2.Clock

	useMock := len(t) > 0 && t[0] != nil

	if useMock {
		clock = time2.NewMockClock(time.Now())
	} else {
		clock = time2.DefaultClock
	}

	return clock
}

func NewJWTManager(cfg config.Server) *auth.JWTManager {
	return auth.NewJWTManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenDuration)
}

func NewDB(cfg config.Server) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func NewHistoryStore(db *sql.DB) storage.HistoryStore {
	return storage.NewPostgresStore(db)
}

func NewRedisClient(cfg config.Server) (*redis.Client, error) {
	if cfg.Redis.Endpoint == "" {
		return nil, fmt.Errorf("redis endpoint is not configured")
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Endpoint,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// NewStrategy 按配置构造选取策略
func NewStrategy(cfg config.Pool) (selection.Strategy, error) {
	switch cfg.Strategy {
	case "", "weighted_single_winner":
		return selection.NewWeightedSingleWinner(), nil
	case "multi_winner_split":
		parts := strings.Split(cfg.Splits, ",")
		splits := make([]decimal.Decimal, 0, len(parts))
		for _, part := range parts {
			d, err := decimal.NewFromString(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("invalid split %q: %w", part, err)
			}
			splits = append(splits, d)
		}
		return selection.NewMultiWinnerSplit(splits)
	default:
		return nil, fmt.Errorf("unknown strategy %q", cfg.Strategy)
	}
}

func NewPoolService(cfg config.Server, clock time2.Clock, history storage.HistoryStore, cache storage.StatusCache) (*pool.Service, error) {
	strategy, err := NewStrategy(cfg.Pool)
	if err != nil {
		return nil, err
	}

	return pool.NewService(pool.Options{
		Clock:         clock,
		RoundDuration: cfg.Pool.RoundDuration,
		FinalityDelay: cfg.Pool.FinalityDelay,
		MinDeposit:    cfg.Pool.MinDeposit,
		Seed:          []byte(cfg.Pool.BeaconSeed),
		Strategy:      strategy,
		History:       history,
		StatusCache:   cache,
	}), nil
}
