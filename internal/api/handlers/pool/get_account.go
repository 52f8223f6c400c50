package pool

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/api/httperrors"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

func GetAccountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Pool.GET("/accounts/:account", getAccountHandler(s))
}

func getAccountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		account := c.Param("account")
		if account == "" {
			return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidPayload, "account must not be empty")
		}

		response := &types.AccountResponse{
			Account: swag.String(account),
			Balance: decimalString(s.Pool.BalanceOf(account)),
			Weight:  decimalString(s.Pool.WeightOf(account)),
			Bonus:   decimalString(s.Pool.BonusOf(account)),
			Earned:  decimalString(s.Pool.EarnedBy(account)),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
