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

func PostDepositRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Pool.POST("/deposits", postDepositHandler(s))
}

func postDepositHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostDepositPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		amount, _ := decimal.NewFromString(swag.StringValue(body.Amount))
		if err := s.Pool.Deposit(ctx, swag.StringValue(body.Account), amount); err != nil {
			return mapPoolError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.GenericSuccessResponse{Success: true})
	}
}
