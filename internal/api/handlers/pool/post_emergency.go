package pool

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

func PostEmergencyRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Admin.POST("/emergency", postEmergencyHandler(s))
}

func postEmergencyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostEmergencyPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		if *body.Enabled {
			s.Pool.EnableEmergency(ctx, body.Reason)
		} else {
			s.Pool.DisableEmergency(ctx)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.GenericSuccessResponse{Success: true})
	}
}
