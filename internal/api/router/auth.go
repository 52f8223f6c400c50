package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/api/httperrors"
	"github.com/poolhouse/go-prize-pool/internal/auth"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

// adminAuth guards the operations surface with bearer tokens carrying the
// admin role. With no secret configured the guard is disabled (development
// only).
func adminAuth(s *api.Server) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if s.Config.Auth.Secret == "" {
				util.LogFromEchoContext(c).Warn().Msg("Admin auth disabled, no secret configured (development only)")
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return httperrors.NewHTTPError(http.StatusUnauthorized,
					types.PublicHTTPErrorTypeUnauthorized, "Missing bearer token")
			}

			claims, err := s.Auth.Validate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				util.LogFromEchoContext(c).Debug().Err(err).Msg("Rejected admin token")
				return httperrors.NewHTTPError(http.StatusUnauthorized,
					types.PublicHTTPErrorTypeUnauthorized, "Invalid token")
			}

			if claims.Role != auth.RoleAdmin {
				return httperrors.NewHTTPError(http.StatusForbidden,
					types.PublicHTTPErrorTypeForbidden, "Admin role required")
			}

			c.Set("operator", claims.Subject)
			return next(c)
		}
	}
}
