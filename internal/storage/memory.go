package storage

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// 存储错误
var (
	ErrDrawNotFound   = errors.New("draw record not found")
	ErrStatusNotFound = errors.New("round status not cached")
)

// MemoryStore 内存存储实现，用于测试和单机部署
type MemoryStore struct {
	mu     sync.RWMutex
	draws  map[int64]*DrawRecord
	order  []int64
	status *RoundStatus
}

// NewMemoryStore 创建内存存储实例
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		draws: make(map[int64]*DrawRecord),
	}
}

// SaveDraw 保存开奖记录
func (s *MemoryStore) SaveDraw(_ context.Context, record *DrawRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.draws[record.RoundID]; !exists {
		s.order = append(s.order, record.RoundID)
	}

	copied := *record
	s.draws[record.RoundID] = &copied
	return nil
}

// GetDraw 按轮次获取开奖记录
func (s *MemoryStore) GetDraw(_ context.Context, roundID int64) (*DrawRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.draws[roundID]
	if !ok {
		return nil, ErrDrawNotFound
	}

	copied := *record
	return &copied, nil
}

// ListDraws 按完成顺序倒序列出最近的开奖记录
func (s *MemoryStore) ListDraws(_ context.Context, limit int) ([]*DrawRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}

	out := make([]*DrawRecord, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		copied := *s.draws[s.order[i]]
		out = append(out, &copied)
	}

	return out, nil
}

// SaveStatus 缓存轮次状态。内存实现忽略 TTL。
func (s *MemoryStore) SaveStatus(_ context.Context, status *RoundStatus, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *status
	s.status = &copied
	return nil
}

// GetStatus 获取缓存的轮次状态
func (s *MemoryStore) GetStatus(_ context.Context) (*RoundStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status == nil {
		return nil, ErrStatusNotFound
	}

	copied := *s.status
	return &copied, nil
}
