package random

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// 随机数网关错误
var (
	ErrUnknownHandle   = errors.New("unknown randomness handle")
	ErrNotAvailable    = errors.New("randomness is not yet available")
	ErrAlreadyConsumed = errors.New("randomness has already been consumed")
)

// Handle 一次随机数请求的句柄
type Handle string

type request struct {
	index       uint64
	requestedAt time.Time
	consumed    bool
}

// Gateway 随机数提交-消费网关。
//
// 底层熵源需要终局延迟：请求后立即揭示是不安全的，请求方可能借助
// 结果偏置输入。因此请求在开奖一开始就发出，与批处理并行等待。
// 每个句柄只能消费一次。
type Gateway struct {
	beacon   Beacon
	delay    time.Duration
	next     uint64
	requests map[Handle]*request
}

// NewGateway 创建网关，delay 为熵源的终局延迟
func NewGateway(beacon Beacon, delay time.Duration) *Gateway {
	return &Gateway{
		beacon:   beacon,
		delay:    delay,
		requests: make(map[Handle]*request),
	}
}

// Request 提交一次熵请求，返回句柄
func (g *Gateway) Request(now time.Time) Handle {
	h := Handle(uuid.New().String())
	g.requests[h] = &request{
		index:       g.next,
		requestedAt: now,
	}
	g.next++
	return h
}

// IsAvailable 查询句柄对应的随机值是否已可消费
func (g *Gateway) IsAvailable(h Handle, now time.Time) bool {
	req, ok := g.requests[h]
	if !ok || req.consumed {
		return false
	}
	return !now.Before(req.requestedAt.Add(g.delay))
}

// Consume 消费随机值。重复消费返回 ErrAlreadyConsumed，
// 未就绪返回 ErrNotAvailable。
func (g *Gateway) Consume(h Handle, now time.Time) (Value, error) {
	req, ok := g.requests[h]
	if !ok {
		return nil, ErrUnknownHandle
	}
	if req.consumed {
		return nil, ErrAlreadyConsumed
	}
	if now.Before(req.requestedAt.Add(g.delay)) {
		return nil, ErrNotAvailable
	}

	val, err := g.beacon.Value(req.index)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch beacon value")
	}

	req.consumed = true
	return val, nil
}
