package pool

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/shopspring/decimal"

	"github.com/poolhouse/go-prize-pool/internal/pool/selection"
	"github.com/poolhouse/go-prize-pool/internal/pool/treasury"
	"github.com/poolhouse/go-prize-pool/internal/storage"
	"github.com/poolhouse/go-prize-pool/internal/types"
)

func decimalString(d decimal.Decimal) *string {
	return swag.String(d.String())
}

func toWinnerResponses(awards []selection.Award) []*types.WinnerResponse {
	out := make([]*types.WinnerResponse, len(awards))
	for i, a := range awards {
		out[i] = &types.WinnerResponse{
			Account: swag.String(a.Account),
			Amount:  decimalString(a.Amount),
			Tier:    a.Tier,
		}
	}
	return out
}

func toNFTResponse(n treasury.NFT) *types.NFTResponse {
	return &types.NFTResponse{
		ID:          int64(n.ID),
		Name:        n.Name,
		Description: n.Description,
	}
}

func toDrawRecordResponse(r *storage.DrawRecord) *types.DrawRecordResponse {
	winners := make([]*types.WinnerResponse, len(r.Winners))
	for i, w := range r.Winners {
		winners[i] = &types.WinnerResponse{
			Account: swag.String(w.Account),
			Amount:  decimalString(w.Amount),
			Tier:    w.Tier,
		}
	}

	return &types.DrawRecordResponse{
		RoundID:      swag.Int64(r.RoundID),
		CompletedAt:  strfmt.DateTime(r.CompletedAt),
		Participants: int64(r.Participants),
		TotalWeight:  decimalString(r.TotalWeight),
		PrizeAwarded: decimalString(r.PrizeAwarded),
		CarryOver:    decimalString(r.CarryOver),
		Strategy:     r.Strategy,
		Notes:        r.Notes,
		Winners:      winners,
	}
}
