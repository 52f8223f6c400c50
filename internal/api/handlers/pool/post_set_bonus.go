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

func PostSetBonusRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Admin.POST("/bonus", postSetBonusHandler(s))
}

// 奖励权重：运营活动直接叠加中奖概率，与余额无关
func postSetBonusHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostBonusPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		weight, _ := decimal.NewFromString(swag.StringValue(body.Weight))
		if err := s.Pool.SetBonus(swag.StringValue(body.Account), weight, body.Reason); err != nil {
			return mapPoolError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.GenericSuccessResponse{Success: true})
	}
}
