package pool

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/api/httperrors"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

func DeleteBonusRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Admin.DELETE("/bonus/:account", deleteBonusHandler(s))
}

func deleteBonusHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		account := c.Param("account")
		if account == "" {
			return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidPayload, "account must not be empty")
		}

		if err := s.Pool.RemoveBonus(account); err != nil {
			return mapPoolError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.GenericSuccessResponse{Success: true})
	}
}
