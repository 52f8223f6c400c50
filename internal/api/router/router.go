package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/api/handlers"
	"github.com/poolhouse/go-prize-pool/internal/api/httperrors"
	"github.com/poolhouse/go-prize-pool/internal/types"
)

// Init attaches the echo instance, middleware stack and all routes to the
// server. Must be called before Server.Start.
func Init(s *api.Server) {
	s.Echo = echo.New()
	s.Echo.Debug = false
	s.Echo.HideBanner = true
	s.Echo.HTTPErrorHandler = errorHandler(s.Config.Echo.HideInternalServerErr)

	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(middleware.Recover())
	}
	if s.Config.Echo.EnableCORSMiddleware {
		s.Echo.Use(middleware.CORS())
	}
	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(requestLogger(s.Config.Logger))
	}

	s.Router = &api.Router{
		Routes:     nil, // filled by handlers.AttachAllRoutes
		Root:       s.Echo.Group(""),
		Management: s.Echo.Group("/-"),
		APIV1Pool:  s.Echo.Group("/api/v1/pool"),
		APIV1Admin: s.Echo.Group("/api/v1/admin", adminAuth(s)),
	}

	handlers.AttachAllRoutes(s)
}

// errorHandler renders httperrors.HTTPError envelopes and masks everything
// else as a generic 500 when configured to do so.
func errorHandler(hideInternal bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *httperrors.HTTPError
		if errors.As(err, &httpErr) {
			_ = c.JSON(httpErr.Code, httpErr)
			return
		}

		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			title := http.StatusText(echoErr.Code)
			if msg, ok := echoErr.Message.(string); ok {
				title = msg
			}
			_ = c.JSON(echoErr.Code, httperrors.NewHTTPError(echoErr.Code, types.PublicHTTPErrorTypeGeneric, title))
			return
		}

		title := http.StatusText(http.StatusInternalServerError)
		if !hideInternal {
			title = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError,
			httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, title))
	}
}
