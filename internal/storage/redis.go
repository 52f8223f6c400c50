package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const statusKey = "pool:round:status"

// RedisStatusCache Redis轮次状态缓存实现
type RedisStatusCache struct {
	client *redis.Client
}

// NewRedisStatusCache 创建Redis状态缓存实例
func NewRedisStatusCache(client *redis.Client) StatusCache {
	return &RedisStatusCache{client: client}
}

// SaveStatus 缓存轮次状态
func (c *RedisStatusCache) SaveStatus(ctx context.Context, status *RoundStatus, ttl time.Duration) error {
	data, err := json.Marshal(status)
	if err != nil {
		return errors.Wrap(err, "failed to marshal round status")
	}

	if err := c.client.Set(ctx, statusKey, data, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save round status")
	}

	return nil
}

// GetStatus 获取缓存的轮次状态
func (c *RedisStatusCache) GetStatus(ctx context.Context) (*RoundStatus, error) {
	data, err := c.client.Get(ctx, statusKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStatusNotFound
		}
		return nil, errors.Wrap(err, "failed to get round status")
	}

	var status RoundStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal round status")
	}

	return &status, nil
}
