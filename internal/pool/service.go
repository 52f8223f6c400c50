package pool

import (
	"context"
	"sync"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/poolhouse/go-prize-pool/internal/pool/bonus"
	"github.com/poolhouse/go-prize-pool/internal/pool/draw"
	"github.com/poolhouse/go-prize-pool/internal/pool/emergency"
	"github.com/poolhouse/go-prize-pool/internal/pool/ledger"
	"github.com/poolhouse/go-prize-pool/internal/pool/random"
	"github.com/poolhouse/go-prize-pool/internal/pool/registry"
	"github.com/poolhouse/go-prize-pool/internal/pool/round"
	"github.com/poolhouse/go-prize-pool/internal/pool/selection"
	"github.com/poolhouse/go-prize-pool/internal/pool/treasury"
	"github.com/poolhouse/go-prize-pool/internal/pool/twab"
	"github.com/poolhouse/go-prize-pool/internal/storage"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

// 服务层错误
var (
	ErrOperationBlocked    = errors.New("operation is blocked by emergency mode")
	ErrBelowMinimumDeposit = errors.New("deposit is below the minimum")
	ErrInvalidYield        = errors.New("yield amount must be positive")
	ErrAccountHasBalance   = errors.New("account still holds a balance")
)

const statusCacheTTL = 30 * time.Second

// Options 服务构造参数
type Options struct {
	Clock         time2.Clock
	RoundDuration time.Duration
	FinalityDelay time.Duration
	MinDeposit    decimal.Decimal
	Seed          []byte
	Strategy      selection.Strategy
	History       storage.HistoryStore
	StatusCache   storage.StatusCache
}

// Service 奖池服务。组合账本、权重累加器、轮次状态机、随机数网关与
// 选取策略，对外提供完整的无损奖池操作。内存状态是权威，
// 所有状态变更在一把互斥锁下串行执行。
type Service struct {
	mu    sync.Mutex
	clock time2.Clock

	ledger       *ledger.MemoryLedger
	accumulator  *twab.Accumulator
	participants *registry.Registry
	bonuses      *bonus.Registry
	machine      *round.Machine
	gateway      *random.Gateway
	strategy     selection.Strategy
	treasury     *treasury.MemoryTreasury
	mode         *emergency.Mode

	history storage.HistoryStore
	cache   storage.StatusCache

	prizePool  decimal.Decimal
	minDeposit decimal.Decimal
}

// Status 奖池状态快照
type Status struct {
	RoundID          int64
	Phase            round.Phase
	StartTime        time.Time
	EndTime          time.Time
	ActualEndTime    *time.Time
	CanDrawNow       bool
	SecondsUntilDraw int64
	BatchPosition    int
	BatchComplete    bool
	PrizePool        decimal.Decimal
	RegisteredCount  int
	TotalDeposited   decimal.Decimal
	Emergency        emergency.Info
}

// DrawOutcome 一次完成的开奖结果
type DrawOutcome struct {
	RoundID      int64
	Result       *selection.Result
	AwardedNFT   *treasury.NFT
	Participants int
	TotalWeight  decimal.Decimal
}

// NewService 创建奖池服务并开启第 1 轮
func NewService(opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = time2.DefaultClock
	}
	if opts.Strategy == nil {
		opts.Strategy = selection.NewWeightedSingleWinner()
	}
	if opts.History == nil {
		opts.History = storage.NewMemoryStore()
	}

	now := opts.Clock.Now()
	bank := ledger.NewMemoryLedger()

	s := &Service{
		clock:        opts.Clock,
		ledger:       bank,
		accumulator:  twab.NewAccumulator(now, opts.RoundDuration, bank.BalanceOf),
		participants: registry.NewRegistry(),
		bonuses:      bonus.NewRegistry(),
		machine:      round.NewMachine(now, opts.RoundDuration),
		gateway:      random.NewGateway(random.NewChainedBeacon(opts.Seed), opts.FinalityDelay),
		strategy:     opts.Strategy,
		treasury:     treasury.NewMemoryTreasury(),
		mode:         emergency.NewMode(),
		history:      opts.History,
		cache:        opts.StatusCache,
		minDeposit:   opts.MinDeposit,
	}

	// 账本是余额变更的唯一入口，累加器跟着账本走
	bank.Subscribe(func(e ledger.Event) {
		s.accumulator.Record(e.Account, e.Prev, e.New, e.At)
	})

	return s
}

// Deposit 存款。首次存款的账户自动注册为参与者。
func (s *Service) Deposit(ctx context.Context, account string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mode.IsAllowed(emergency.OpDeposit) {
		return ErrOperationBlocked
	}
	if amount.LessThan(s.minDeposit) {
		return ErrBelowMinimumDeposit
	}

	if err := s.ledger.Deposit(account, amount, s.clock.Now()); err != nil {
		return err
	}

	if s.participants.Register(account) {
		util.LogFromContext(ctx).Debug().
			Str("account", account).
			Msg("registered new participant")
	}

	return nil
}

// Withdraw 取款。紧急模式下依然允许：用户永远可以退出。
func (s *Service) Withdraw(ctx context.Context, account string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mode.IsAllowed(emergency.OpWithdraw) {
		return ErrOperationBlocked
	}

	return s.ledger.Withdraw(account, amount, s.clock.Now())
}

// AddYield 注入收益到奖金池。奖金池与本金完全隔离，未发放部分滚存。
func (s *Service) AddYield(ctx context.Context, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mode.IsAllowed(emergency.OpDeposit) {
		return ErrOperationBlocked
	}
	if amount.Sign() <= 0 {
		return ErrInvalidYield
	}

	s.prizePool = s.prizePool.Add(amount)

	util.LogFromContext(ctx).Info().
		Str("amount", amount.String()).
		Str("prize_pool", s.prizePool.String()).
		Msg("yield added to prize pool")

	return nil
}

// StartDraw 开始开奖：冻结本轮权重累计，提交熵请求，进入批处理阶段。
// 熵请求与批处理并行等待终局延迟。
func (s *Service) StartDraw(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mode.IsAllowed(emergency.OpDraw) {
		return ErrOperationBlocked
	}

	now := s.clock.Now()
	if err := s.machine.CanBeginDraw(now); err != nil {
		return err
	}

	handle := s.gateway.Request(now)
	if err := s.machine.BeginDraw(now, string(handle)); err != nil {
		return err
	}
	s.accumulator.SetCap(now)

	util.LogFromContext(ctx).Info().
		Int64("round_id", s.machine.Current().ID).
		Int("participants", s.participants.Len()).
		Msg("draw started")

	s.cacheStatus(ctx)
	return nil
}

// ProcessBatch 处理一批参与者的权重快照，返回剩余数量与是否完成。
// 游标跨调用持久，可多次调用直至完成。
func (s *Service) ProcessBatch(ctx context.Context, limit int) (remaining int, complete bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mode.IsAllowed(emergency.OpDraw) {
		return 0, false, ErrOperationBlocked
	}
	if err := s.machine.EnsureProcessing(); err != nil {
		return 0, false, err
	}

	current := s.machine.Current()
	capAt := current.ActualEndTime

	weigh := func(account string) decimal.Decimal {
		return s.accumulator.WeightAsOf(account, capAt).Add(s.bonuses.Get(account))
	}

	remaining, err = draw.Process(current.Cursor, s.participants.Members(), weigh, limit)
	if err != nil {
		return remaining, false, err
	}

	s.cacheStatus(ctx)
	return remaining, current.Cursor.Complete, nil
}

// CompleteDraw 完成开奖：消费随机数，选取赢家并发放奖金，
// 未发放部分滚存到下一轮奖金池，轮次进入间歇期。
func (s *Service) CompleteDraw(ctx context.Context) (*DrawOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mode.IsAllowed(emergency.OpDraw) {
		return nil, ErrOperationBlocked
	}
	if err := s.machine.EnsureCompletable(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	current := s.machine.Current()
	handle := random.Handle(current.RandomnessHandle)

	if !s.gateway.IsAvailable(handle, now) {
		return nil, round.ErrRandomnessNotReady
	}

	rnd, err := s.gateway.Consume(handle, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume randomness")
	}

	snapshot := current.Cursor.Snapshot
	result, err := s.strategy.Select(snapshot, rnd, s.prizePool)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select winners")
	}

	for _, award := range result.Awards {
		if award.Amount.Sign() <= 0 {
			continue
		}
		if err := s.treasury.Award(award.Account, award.Amount, award.Tier, now); err != nil {
			return nil, errors.Wrap(err, "failed to award prize")
		}
	}

	outcome := &DrawOutcome{
		RoundID:      current.ID,
		Result:       result,
		Participants: snapshot.Len(),
		TotalWeight:  snapshot.Total(),
	}

	// NFT 奖品池非空时划给头奖赢家，赢家稍后自行领取
	if result.HasWinner() {
		if nft, err := s.treasury.AwardNextNFT(result.Awards[0].Account); err == nil {
			outcome.AwardedNFT = &nft
		} else if err != treasury.ErrEmptyNFTPool {
			return nil, errors.Wrap(err, "failed to award nft")
		}
	}

	s.prizePool = result.CarryOver

	if _, err := s.machine.FinalizeDraw(); err != nil {
		return nil, err
	}

	s.saveDrawRecord(ctx, outcome, now)
	s.cacheStatus(ctx)

	log := util.LogFromContext(ctx)
	log.Info().
		Int64("round_id", outcome.RoundID).
		Int("winners", len(result.Awards)).
		Str("carry_over", result.CarryOver.String()).
		Msg("draw completed")

	return outcome, nil
}

// StartNextRound 从间歇期开启下一轮，权重窗口整体重置
func (s *Service) StartNextRound(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mode.IsAllowed(emergency.OpDraw) {
		return ErrOperationBlocked
	}

	now := s.clock.Now()
	next, err := s.machine.NextRound(now)
	if err != nil {
		return err
	}

	s.accumulator.StartRound(now, next.Duration)

	util.LogFromContext(ctx).Info().
		Int64("round_id", next.ID).
		Time("end_time", next.EndTime()).
		Msg("next round started")

	s.cacheStatus(ctx)
	return nil
}

// SetRoundDuration 调整后续轮次时长（当前轮次不受影响）
func (s *Service) SetRoundDuration(d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mode.IsAllowed(emergency.OpAdmin) {
		return ErrOperationBlocked
	}

	s.machine.SetDuration(d)
	return nil
}

// SetBonus 覆盖设置账户的奖励权重
func (s *Service) SetBonus(account string, weight decimal.Decimal, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bonuses.Set(account, weight, reason)
}

// AddBonus 叠加账户的奖励权重
func (s *Service) AddBonus(account string, delta decimal.Decimal, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bonuses.Add(account, delta, reason)
}

// RemoveBonus 删除账户的奖励权重
func (s *Service) RemoveBonus(account string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bonuses.Remove(account)
}

// BonusOf 查询账户的奖励权重
func (s *Service) BonusOf(account string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bonuses.Get(account)
}

// EnableEmergency 启用紧急模式：只允许取款和管理员操作
func (s *Service) EnableEmergency(ctx context.Context, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode.Enable(reason, s.clock.Now())

	util.LogFromContext(ctx).Warn().
		Str("reason", reason).
		Msg("emergency mode enabled")
}

// DisableEmergency 恢复正常模式
func (s *Service) DisableEmergency(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode.Disable()
	util.LogFromContext(ctx).Warn().Msg("emergency mode disabled")
}

// BalanceOf 查询账户余额
func (s *Service) BalanceOf(account string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.BalanceOf(account)
}

// WeightOf 查询账户截至当前时刻的本轮权重（含奖励权重）
func (s *Service) WeightOf(account string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.accumulator.WeightAsOf(account, s.clock.Now()).Add(s.bonuses.Get(account))
}

// EarnedBy 查询账户历史中奖总额
func (s *Service) EarnedBy(account string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.treasury.EarnedBy(account)
}

// DepositNFT 向奖品池存入一个 NFT
func (s *Service) DepositNFT(nft treasury.NFT) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mode.IsAllowed(emergency.OpDeposit) {
		return ErrOperationBlocked
	}

	return s.treasury.DepositNFT(nft)
}

// PendingNFTs 查询账户待领取的 NFT
func (s *Service) PendingNFTs(account string) []treasury.NFT {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.treasury.PendingNFTs(account)
}

// ClaimNFT 领取一个待领取的 NFT。紧急模式下依然允许。
func (s *Service) ClaimNFT(account string, index int) (treasury.NFT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.treasury.ClaimNFT(account, index)
}

// CleanupGhost 移除余额为零的注册账户。开奖处理期间拒绝执行，
// 否则批处理游标的索引会错位。
func (s *Service) CleanupGhost(account string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.machine.Current().Phase(s.clock.Now()) == round.PhaseDrawProcessing {
		return round.ErrDrawAlreadyInProgress
	}
	if s.ledger.BalanceOf(account).Sign() != 0 {
		return ErrAccountHasBalance
	}

	return s.participants.Remove(account)
}

// DrawHistory 列出最近完成的开奖记录
func (s *Service) DrawHistory(ctx context.Context, limit int) ([]*storage.DrawRecord, error) {
	return s.history.ListDraws(ctx, limit)
}

// DrawRecordOf 查询指定轮次的开奖记录
func (s *Service) DrawRecordOf(ctx context.Context, roundID int64) (*storage.DrawRecord, error) {
	return s.history.GetDraw(ctx, roundID)
}

// Status 返回奖池状态快照
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *Service) statusLocked() Status {
	now := s.clock.Now()
	current := s.machine.Current()

	st := Status{
		RoundID:         current.ID,
		Phase:           current.Phase(now),
		StartTime:       current.StartTime,
		EndTime:         current.EndTime(),
		CanDrawNow:      s.machine.CanBeginDraw(now) == nil,
		PrizePool:       s.prizePool,
		RegisteredCount: s.participants.Len(),
		TotalDeposited:  s.ledger.TotalDeposited(),
		Emergency:       s.mode.Info(),
	}

	if !current.ActualEndTime.IsZero() {
		at := current.ActualEndTime
		st.ActualEndTime = &at
	}
	if until := current.EndTime().Sub(now); until > 0 {
		st.SecondsUntilDraw = int64(until / time.Second)
	}
	if current.Cursor != nil {
		st.BatchPosition = current.Cursor.Position
		st.BatchComplete = current.Cursor.Complete
	}

	return st
}

// saveDrawRecord 把开奖结果镜像到历史存储。内存状态是权威，
// 存储失败只记日志不回滚。
func (s *Service) saveDrawRecord(ctx context.Context, outcome *DrawOutcome, at time.Time) {
	winners := make([]storage.WinnerRecord, 0, len(outcome.Result.Awards))
	for _, award := range outcome.Result.Awards {
		winners = append(winners, storage.WinnerRecord{
			Account: award.Account,
			Amount:  award.Amount,
			Tier:    award.Tier,
		})
	}

	awarded := decimal.Zero
	for _, w := range winners {
		awarded = awarded.Add(w.Amount)
	}

	record := &storage.DrawRecord{
		RoundID:      outcome.RoundID,
		CompletedAt:  at,
		Participants: outcome.Participants,
		TotalWeight:  outcome.TotalWeight,
		PrizeAwarded: awarded,
		CarryOver:    outcome.Result.CarryOver,
		Strategy:     s.strategy.Name(),
		Notes:        outcome.Result.Notes,
		Winners:      winners,
	}

	if err := s.history.SaveDraw(ctx, record); err != nil {
		util.LogFromContext(ctx).Error().Err(err).
			Int64("round_id", record.RoundID).
			Msg("failed to save draw record")
	}
}

// cacheStatus 把轮次状态镜像到状态缓存（未配置时跳过）
func (s *Service) cacheStatus(ctx context.Context) {
	if s.cache == nil {
		return
	}

	st := s.statusLocked()
	mirror := &storage.RoundStatus{
		RoundID:       st.RoundID,
		Phase:         string(st.Phase),
		StartTime:     st.StartTime,
		EndTime:       st.EndTime,
		ActualEndTime: st.ActualEndTime,
		BatchPosition: st.BatchPosition,
		BatchComplete: st.BatchComplete,
		PrizePool:     st.PrizePool,
		UpdatedAt:     s.clock.Now(),
	}

	if err := s.cache.SaveStatus(ctx, mirror, statusCacheTTL); err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Msg("failed to cache round status")
	}
}
