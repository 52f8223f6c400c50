package common

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// 存活探针：进程在即健康
func getHealthyHandler(_ *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
}
