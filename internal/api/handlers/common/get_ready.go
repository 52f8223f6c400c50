package common

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// 就绪探针：依赖全部初始化后才返回 200
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(http.StatusServiceUnavailable, "Not ready")
		}

		if s.DB != nil {
			if err := s.DB.PingContext(c.Request().Context()); err != nil {
				return c.String(http.StatusServiceUnavailable, "Database unavailable")
			}
		}

		return c.String(http.StatusOK, "Ready")
	}
}
