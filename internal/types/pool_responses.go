package types

import (
	"github.com/go-openapi/strfmt"
)

// AccountResponse 账户视图
type AccountResponse struct {
	Account *string `json:"account"`
	Balance *string `json:"balance"`
	Weight  *string `json:"weight"`
	Bonus   *string `json:"bonus"`
	Earned  *string `json:"earned"`
}

func (r *AccountResponse) Validate(_ strfmt.Registry) error {
	return nil
}

// EmergencyResponse 紧急模式状态
type EmergencyResponse struct {
	State     string           `json:"state"`
	Reason    string           `json:"reason,omitempty"`
	EnabledAt *strfmt.DateTime `json:"enabled_at,omitempty"`
}

// RoundStatusResponse 奖池状态视图
type RoundStatusResponse struct {
	RoundID          *int64            `json:"round_id"`
	Phase            *string           `json:"phase"`
	StartTime        strfmt.DateTime   `json:"start_time"`
	EndTime          strfmt.DateTime   `json:"end_time"`
	ActualEndTime    *strfmt.DateTime  `json:"actual_end_time,omitempty"`
	CanDrawNow       bool              `json:"can_draw_now"`
	SecondsUntilDraw int64             `json:"seconds_until_draw"`
	BatchPosition    int64             `json:"batch_position"`
	BatchComplete    bool              `json:"batch_complete"`
	PrizePool        *string           `json:"prize_pool"`
	RegisteredCount  int64             `json:"registered_count"`
	TotalDeposited   *string           `json:"total_deposited"`
	Emergency        EmergencyResponse `json:"emergency"`
}

func (r *RoundStatusResponse) Validate(_ strfmt.Registry) error {
	return nil
}

// ProcessBatchResponse 批处理结果
type ProcessBatchResponse struct {
	Remaining int64 `json:"remaining"`
	Complete  bool  `json:"complete"`
}

func (r *ProcessBatchResponse) Validate(_ strfmt.Registry) error {
	return nil
}

// WinnerResponse 单个赢家
type WinnerResponse struct {
	Account *string `json:"account"`
	Amount  *string `json:"amount"`
	Tier    string  `json:"tier"`
}

// NFTResponse NFT 视图
type NFTResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (r *NFTResponse) Validate(_ strfmt.Registry) error {
	return nil
}

// DrawOutcomeResponse 开奖结果
type DrawOutcomeResponse struct {
	RoundID      *int64            `json:"round_id"`
	Winners      []*WinnerResponse `json:"winners"`
	CarryOver    *string           `json:"carry_over"`
	Notes        []string          `json:"notes,omitempty"`
	Participants int64             `json:"participants"`
	TotalWeight  *string           `json:"total_weight"`
	AwardedNft   *NFTResponse      `json:"awarded_nft,omitempty"`
}

func (r *DrawOutcomeResponse) Validate(_ strfmt.Registry) error {
	return nil
}

// DrawRecordResponse 历史开奖记录
type DrawRecordResponse struct {
	RoundID      *int64            `json:"round_id"`
	CompletedAt  strfmt.DateTime   `json:"completed_at"`
	Participants int64             `json:"participants"`
	TotalWeight  *string           `json:"total_weight"`
	PrizeAwarded *string           `json:"prize_awarded"`
	CarryOver    *string           `json:"carry_over"`
	Strategy     string            `json:"strategy"`
	Notes        []string          `json:"notes,omitempty"`
	Winners      []*WinnerResponse `json:"winners"`
}

func (r *DrawRecordResponse) Validate(_ strfmt.Registry) error {
	return nil
}

// DrawHistoryResponse 历史开奖列表
type DrawHistoryResponse struct {
	Draws []*DrawRecordResponse `json:"draws"`
	Total int64                 `json:"total"`
}

func (r *DrawHistoryResponse) Validate(_ strfmt.Registry) error {
	return nil
}

// NFTListResponse NFT 列表
type NFTListResponse struct {
	Nfts []*NFTResponse `json:"nfts"`
}

func (r *NFTListResponse) Validate(_ strfmt.Registry) error {
	return nil
}

// GenericSuccessResponse 通用成功响应
type GenericSuccessResponse struct {
	Success bool `json:"success"`
}

func (r *GenericSuccessResponse) Validate(_ strfmt.Registry) error {
	return nil
}
