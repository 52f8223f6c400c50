package treasury

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// 奖金库错误
var (
	ErrInvalidAward  = errors.New("award amount must be positive")
	ErrUnknownNFT    = errors.New("nft is not in the prize pool")
	ErrNoPendingNFT  = errors.New("no pending nft claim at this index")
	ErrDuplicateNFT  = errors.New("nft is already in the prize pool")
	ErrEmptyNFTPool  = errors.New("nft prize pool is empty")
	ErrEmptyAccount  = errors.New("account must not be empty")
)

// Treasury 奖金发放接口（外部协作方）
type Treasury interface {
	Award(account string, amount decimal.Decimal, tier string, at time.Time) error
}

// NFT 非同质化奖品
type NFT struct {
	ID          uint64
	Name        string
	Description string
}

// AwardRecord 一笔奖金发放记录
type AwardRecord struct {
	Account string
	Amount  decimal.Decimal
	Tier    string
	At      time.Time
}

// MemoryTreasury 内存奖金库：记录现金发放，维护 NFT 奖品池与
// 待领取队列（赢家中奖后自行领取）。
type MemoryTreasury struct {
	awards       []AwardRecord
	earned       map[string]decimal.Decimal
	totalAwarded decimal.Decimal

	nftPool []NFT
	pending map[string][]NFT
}

// NewMemoryTreasury 创建内存奖金库
func NewMemoryTreasury() *MemoryTreasury {
	return &MemoryTreasury{
		earned:  make(map[string]decimal.Decimal),
		pending: make(map[string][]NFT),
	}
}

// Award 发放一笔现金奖
func (t *MemoryTreasury) Award(account string, amount decimal.Decimal, tier string, at time.Time) error {
	if account == "" {
		return ErrEmptyAccount
	}
	if amount.Sign() <= 0 {
		return ErrInvalidAward
	}

	t.awards = append(t.awards, AwardRecord{Account: account, Amount: amount, Tier: tier, At: at})
	t.earned[account] = t.earned[account].Add(amount)
	t.totalAwarded = t.totalAwarded.Add(amount)
	return nil
}

// TotalAwarded 历史发放总额
func (t *MemoryTreasury) TotalAwarded() decimal.Decimal {
	return t.totalAwarded
}

// EarnedBy 账户历史中奖总额
func (t *MemoryTreasury) EarnedBy(account string) decimal.Decimal {
	return t.earned[account]
}

// Awards 全部发放记录（副本）
func (t *MemoryTreasury) Awards() []AwardRecord {
	out := make([]AwardRecord, len(t.awards))
	copy(out, t.awards)
	return out
}

// DepositNFT 向奖品池存入一个 NFT
func (t *MemoryTreasury) DepositNFT(nft NFT) error {
	for _, existing := range t.nftPool {
		if existing.ID == nft.ID {
			return ErrDuplicateNFT
		}
	}

	t.nftPool = append(t.nftPool, nft)
	return nil
}

// AvailableNFTs 奖品池中可用的 NFT（副本）
func (t *MemoryTreasury) AvailableNFTs() []NFT {
	out := make([]NFT, len(t.nftPool))
	copy(out, t.nftPool)
	return out
}

// AwardNextNFT 把奖品池中最早存入的 NFT 划给赢家的待领取队列。
// 池空时返回 ErrEmptyNFTPool。
func (t *MemoryTreasury) AwardNextNFT(account string) (NFT, error) {
	if account == "" {
		return NFT{}, ErrEmptyAccount
	}
	if len(t.nftPool) == 0 {
		return NFT{}, ErrEmptyNFTPool
	}

	nft := t.nftPool[0]
	t.nftPool = t.nftPool[1:]
	t.pending[account] = append(t.pending[account], nft)
	return nft, nil
}

// PendingNFTs 账户的待领取 NFT（副本）
func (t *MemoryTreasury) PendingNFTs(account string) []NFT {
	queue := t.pending[account]
	out := make([]NFT, len(queue))
	copy(out, queue)
	return out
}

// ClaimNFT 按索引领取一个待领取的 NFT
func (t *MemoryTreasury) ClaimNFT(account string, index int) (NFT, error) {
	queue := t.pending[account]
	if index < 0 || index >= len(queue) {
		return NFT{}, ErrNoPendingNFT
	}

	nft := queue[index]
	t.pending[account] = append(queue[:index], queue[index+1:]...)
	return nft, nil
}
