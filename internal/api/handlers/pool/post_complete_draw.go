package pool

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

func PostCompleteDrawRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Admin.POST("/draw/complete", postCompleteDrawHandler(s))
}

func postCompleteDrawHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		outcome, err := s.Pool.CompleteDraw(ctx)
		if err != nil {
			return mapPoolError(err)
		}

		response := &types.DrawOutcomeResponse{
			RoundID:      swag.Int64(outcome.RoundID),
			Winners:      toWinnerResponses(outcome.Result.Awards),
			CarryOver:    decimalString(outcome.Result.CarryOver),
			Notes:        outcome.Result.Notes,
			Participants: int64(outcome.Participants),
			TotalWeight:  decimalString(outcome.TotalWeight),
		}
		if outcome.AwardedNFT != nil {
			response.AwardedNft = toNFTResponse(*outcome.AwardedNFT)
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
