package router

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/poolhouse/go-prize-pool/internal/config"
)

// requestLogger attaches a request-scoped zerolog logger to the context and
// emits one line per request at the configured level.
func requestLogger(cfg config.LoggerServer) echo.MiddlewareFunc {
	level, err := zerolog.ParseLevel(cfg.RequestLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			l := log.Logger.With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()
			c.SetRequest(req.WithContext(l.WithContext(req.Context())))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			l.WithLevel(level).
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Msg("request handled")

			return nil
		}
	}
}
