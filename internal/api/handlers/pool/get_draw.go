package pool

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/api/httperrors"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

func GetDrawRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Pool.GET("/draws/:round_id", getDrawHandler(s))
}

func getDrawHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		roundID, err := strconv.ParseInt(c.Param("round_id"), 10, 64)
		if err != nil {
			return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidPayload, "round_id must be an integer")
		}

		record, err := s.Pool.DrawRecordOf(ctx, roundID)
		if err != nil {
			return mapPoolError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, toDrawRecordResponse(record))
	}
}
