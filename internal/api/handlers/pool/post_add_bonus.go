package pool

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

func PostAddBonusRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Admin.POST("/bonus/add", postAddBonusHandler(s))
}

// 在现有奖励权重上叠加增量，负增量用于回收
func postAddBonusHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostBonusDeltaPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		delta, _ := decimal.NewFromString(swag.StringValue(body.Delta))
		if err := s.Pool.AddBonus(swag.StringValue(body.Account), delta, body.Reason); err != nil {
			return mapPoolError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.GenericSuccessResponse{Success: true})
	}
}
