package pool

import (
	"errors"
	"net/http"

	"github.com/poolhouse/go-prize-pool/internal/api/httperrors"
	poolsvc "github.com/poolhouse/go-prize-pool/internal/pool"
	"github.com/poolhouse/go-prize-pool/internal/pool/bonus"
	"github.com/poolhouse/go-prize-pool/internal/pool/draw"
	"github.com/poolhouse/go-prize-pool/internal/pool/ledger"
	"github.com/poolhouse/go-prize-pool/internal/pool/registry"
	"github.com/poolhouse/go-prize-pool/internal/pool/round"
	"github.com/poolhouse/go-prize-pool/internal/pool/treasury"
	"github.com/poolhouse/go-prize-pool/internal/storage"
	"github.com/poolhouse/go-prize-pool/internal/types"
)

// mapPoolError 把服务层的哨兵错误翻译为带类型的 HTTP 错误。
// 未识别的错误原样返回，由全局错误处理器按 500 兜底。
func mapPoolError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, poolsvc.ErrOperationBlocked):
		return httperrors.NewHTTPError(http.StatusForbidden, types.PublicHTTPErrorTypeBlocked, err.Error())

	case errors.Is(err, poolsvc.ErrBelowMinimumDeposit),
		errors.Is(err, poolsvc.ErrInvalidYield),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, bonus.ErrNegativeWeight),
		errors.Is(err, draw.ErrNegativeLimit):
		return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidPayload, err.Error())

	case errors.Is(err, ledger.ErrInsufficientBalance),
		errors.Is(err, poolsvc.ErrAccountHasBalance),
		errors.Is(err, treasury.ErrDuplicateNFT),
		errors.Is(err, round.ErrRoundNotEnded),
		errors.Is(err, round.ErrDrawAlreadyInProgress),
		errors.Is(err, round.ErrBatchNotComplete),
		errors.Is(err, round.ErrRandomnessNotReady),
		errors.Is(err, round.ErrNoActiveBatch),
		errors.Is(err, round.ErrRoundStillActive):
		return httperrors.NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypePrecondition, err.Error())

	case errors.Is(err, registry.ErrNotRegistered),
		errors.Is(err, bonus.ErrNoBonus),
		errors.Is(err, treasury.ErrNoPendingNFT),
		errors.Is(err, storage.ErrDrawNotFound):
		return httperrors.NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeNotFound, err.Error())
	}

	return err
}
