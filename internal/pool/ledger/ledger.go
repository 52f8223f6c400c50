package ledger

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// 余额账本错误
var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Event 余额变更事件（携带变更前后的余额）
type Event struct {
	Account string
	Prev    decimal.Decimal
	New     decimal.Decimal
	At      time.Time
}

// Ledger 余额账本只读接口
type Ledger interface {
	BalanceOf(account string) decimal.Decimal
}

// MemoryLedger 内存余额账本，按调用顺序向订阅者推送变更事件
type MemoryLedger struct {
	balances map[string]decimal.Decimal
	total    decimal.Decimal
	subs     []func(Event)
}

// NewMemoryLedger 创建内存余额账本
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		balances: make(map[string]decimal.Decimal),
	}
}

// Subscribe 订阅余额变更事件
func (l *MemoryLedger) Subscribe(fn func(Event)) {
	l.subs = append(l.subs, fn)
}

// BalanceOf 查询账户余额
func (l *MemoryLedger) BalanceOf(account string) decimal.Decimal {
	if bal, ok := l.balances[account]; ok {
		return bal
	}
	return decimal.Zero
}

// TotalDeposited 查询池内总余额
func (l *MemoryLedger) TotalDeposited() decimal.Decimal {
	return l.total
}

// Deposit 存入资金并通知订阅者
func (l *MemoryLedger) Deposit(account string, amount decimal.Decimal, at time.Time) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	prev := l.BalanceOf(account)
	next := prev.Add(amount)
	l.balances[account] = next
	l.total = l.total.Add(amount)

	l.notify(Event{Account: account, Prev: prev, New: next, At: at})
	return nil
}

// Withdraw 取出资金并通知订阅者
func (l *MemoryLedger) Withdraw(account string, amount decimal.Decimal, at time.Time) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	prev := l.BalanceOf(account)
	if prev.LessThan(amount) {
		return ErrInsufficientBalance
	}

	next := prev.Sub(amount)
	l.balances[account] = next
	l.total = l.total.Sub(amount)

	l.notify(Event{Account: account, Prev: prev, New: next, At: at})
	return nil
}

func (l *MemoryLedger) notify(e Event) {
	for _, fn := range l.subs {
		fn(e)
	}
}
