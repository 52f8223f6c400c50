package pool

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

func PostProcessBatchRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Admin.POST("/draw/process", postProcessBatchHandler(s))
}

func postProcessBatchHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostProcessBatchPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		remaining, complete, err := s.Pool.ProcessBatch(ctx, int(*body.Limit))
		if err != nil {
			return mapPoolError(err)
		}

		response := &types.ProcessBatchResponse{
			Remaining: int64(remaining),
			Complete:  complete,
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
