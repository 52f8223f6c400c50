package pool

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

func GetDrawsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Pool.GET("/draws", getDrawsHandler(s))
}

func getDrawsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		limit := 50
		if limitStr := c.QueryParam("limit"); limitStr != "" {
			if l, err := strconv.Atoi(limitStr); err == nil {
				limit = l
			}
		}

		records, err := s.Pool.DrawHistory(ctx, limit)
		if err != nil {
			return mapPoolError(err)
		}

		response := &types.DrawHistoryResponse{
			Draws: make([]*types.DrawRecordResponse, len(records)),
			Total: int64(len(records)),
		}
		for i, record := range records {
			response.Draws[i] = toDrawRecordResponse(record)
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
