package pool

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

func PostCleanupRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Admin.POST("/cleanup", postCleanupHandler(s))
}

// 幽灵账户清理：余额清零后把账户移出注册表，缩短批处理
func postCleanupHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostCleanupPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		if err := s.Pool.CleanupGhost(swag.StringValue(body.Account)); err != nil {
			return mapPoolError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.GenericSuccessResponse{Success: true})
	}
}
