package pool

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

func PostRoundDurationRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Admin.POST("/round-duration", postRoundDurationHandler(s))
}

// 时长调整只影响后续轮次，当前轮次照旧
func postRoundDurationHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostRoundDurationPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		if err := s.Pool.SetRoundDuration(time.Duration(*body.Seconds) * time.Second); err != nil {
			return mapPoolError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.GenericSuccessResponse{Success: true})
	}
}
