package types

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// 请求载荷校验错误
var (
	ErrFieldRequired  = errors.New("required field is missing")
	ErrInvalidDecimal = errors.New("field is not a valid decimal")
)

func requireString(v *string) error {
	if v == nil || swag.StringValue(v) == "" {
		return ErrFieldRequired
	}
	return nil
}

func requireDecimal(v *string) error {
	if err := requireString(v); err != nil {
		return err
	}
	if _, err := decimal.NewFromString(swag.StringValue(v)); err != nil {
		return ErrInvalidDecimal
	}
	return nil
}

// PostDepositPayload 存款请求
type PostDepositPayload struct {
	Account *string `json:"account"`
	Amount  *string `json:"amount"`
}

func (p *PostDepositPayload) Validate(_ strfmt.Registry) error {
	if err := requireString(p.Account); err != nil {
		return errors.Wrap(err, "account")
	}
	if err := requireDecimal(p.Amount); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

// PostWithdrawPayload 取款请求
type PostWithdrawPayload struct {
	Account *string `json:"account"`
	Amount  *string `json:"amount"`
}

func (p *PostWithdrawPayload) Validate(_ strfmt.Registry) error {
	if err := requireString(p.Account); err != nil {
		return errors.Wrap(err, "account")
	}
	if err := requireDecimal(p.Amount); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

// PostYieldPayload 收益注入请求
type PostYieldPayload struct {
	Amount *string `json:"amount"`
}

func (p *PostYieldPayload) Validate(_ strfmt.Registry) error {
	if err := requireDecimal(p.Amount); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

// PostProcessBatchPayload 批处理请求
type PostProcessBatchPayload struct {
	Limit *int64 `json:"limit"`
}

func (p *PostProcessBatchPayload) Validate(_ strfmt.Registry) error {
	if p.Limit == nil {
		return errors.Wrap(ErrFieldRequired, "limit")
	}
	return nil
}

// PostBonusPayload 奖励权重设置请求
type PostBonusPayload struct {
	Account *string `json:"account"`
	Weight  *string `json:"weight"`
	Reason  string  `json:"reason,omitempty"`
}

func (p *PostBonusPayload) Validate(_ strfmt.Registry) error {
	if err := requireString(p.Account); err != nil {
		return errors.Wrap(err, "account")
	}
	if err := requireDecimal(p.Weight); err != nil {
		return errors.Wrap(err, "weight")
	}
	return nil
}

// PostBonusDeltaPayload 奖励权重叠加请求。Delta 可为负（回收），
// 叠加结果不得为负。
type PostBonusDeltaPayload struct {
	Account *string `json:"account"`
	Delta   *string `json:"delta"`
	Reason  string  `json:"reason,omitempty"`
}

func (p *PostBonusDeltaPayload) Validate(_ strfmt.Registry) error {
	if err := requireString(p.Account); err != nil {
		return errors.Wrap(err, "account")
	}
	if err := requireDecimal(p.Delta); err != nil {
		return errors.Wrap(err, "delta")
	}
	return nil
}

// PostEmergencyPayload 紧急模式开关请求
type PostEmergencyPayload struct {
	Enabled *bool  `json:"enabled"`
	Reason  string `json:"reason,omitempty"`
}

func (p *PostEmergencyPayload) Validate(_ strfmt.Registry) error {
	if p.Enabled == nil {
		return errors.Wrap(ErrFieldRequired, "enabled")
	}
	return nil
}

// PostRoundDurationPayload 轮次时长调整请求
type PostRoundDurationPayload struct {
	Seconds *int64 `json:"seconds"`
}

func (p *PostRoundDurationPayload) Validate(_ strfmt.Registry) error {
	if p.Seconds == nil {
		return errors.Wrap(ErrFieldRequired, "seconds")
	}
	if *p.Seconds <= 0 {
		return errors.New("seconds must be positive")
	}
	return nil
}

// PostDepositNFTPayload NFT 奖品入池请求
type PostDepositNFTPayload struct {
	ID          *int64  `json:"id"`
	Name        *string `json:"name"`
	Description string  `json:"description,omitempty"`
}

func (p *PostDepositNFTPayload) Validate(_ strfmt.Registry) error {
	if p.ID == nil || *p.ID < 0 {
		return errors.Wrap(ErrFieldRequired, "id")
	}
	if err := requireString(p.Name); err != nil {
		return errors.Wrap(err, "name")
	}
	return nil
}

// PostClaimNFTPayload NFT 领取请求
type PostClaimNFTPayload struct {
	Account *string `json:"account"`
	Index   *int64  `json:"index"`
}

func (p *PostClaimNFTPayload) Validate(_ strfmt.Registry) error {
	if err := requireString(p.Account); err != nil {
		return errors.Wrap(err, "account")
	}
	if p.Index == nil || *p.Index < 0 {
		return errors.New("index must be a non-negative integer")
	}
	return nil
}

// PostCleanupPayload 幽灵账户清理请求
type PostCleanupPayload struct {
	Account *string `json:"account"`
}

func (p *PostCleanupPayload) Validate(_ strfmt.Registry) error {
	if err := requireString(p.Account); err != nil {
		return errors.Wrap(err, "account")
	}
	return nil
}
