package api

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/poolhouse/go-prize-pool/internal/auth"
	"github.com/poolhouse/go-prize-pool/internal/config"
	"github.com/poolhouse/go-prize-pool/internal/pool"
	"github.com/poolhouse/go-prize-pool/internal/storage"

	// Import postgres driver for database/sql package
	_ "github.com/lib/pq"
)

type Router struct {
	Routes     []*echo.Route
	Root       *echo.Group
	Management *echo.Group
	APIV1Pool  *echo.Group
	APIV1Admin *echo.Group
}

// Server is a central struct keeping all the dependencies.
// Components are initialized by the providers in providers.go and
// attached here in dependency order.
type Server struct {
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo
	Router *Router

	Config  config.Server
	DB      *sql.DB
	Redis   *redis.Client
	Clock   time2.Clock
	Auth    *auth.JWTManager
	Pool    *pool.Service
	History storage.HistoryStore
	Cache   storage.StatusCache
}

func NewServer(config config.Server) *Server {
	return &Server{
		Config: config,
	}
}

// InitComponents 按依赖顺序初始化所有组件
func (s *Server) InitComponents() error {
	if s.Clock == nil {
		s.Clock = NewClock()
	}

	s.Auth = NewJWTManager(s.Config)

	db, err := NewDB(s.Config)
	if err != nil {
		return err
	}
	s.DB = db
	s.History = NewHistoryStore(db)

	if s.Config.Redis.Enabled {
		client, err := NewRedisClient(s.Config)
		if err != nil {
			return err
		}
		s.Redis = client
		s.Cache = storage.NewRedisStatusCache(client)
	}

	svc, err := NewPoolService(s.Config, s.Clock, s.History, s.Cache)
	if err != nil {
		return err
	}
	s.Pool = svc

	return nil
}

func (s *Server) Ready() bool {
	return s.Echo != nil && s.Router != nil && s.Pool != nil
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	return s.Echo.Start(s.Config.Echo.ListenAddress)
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")
		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	if s.Redis != nil {
		log.Debug().Msg("Closing redis connection")
		if err := s.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis connection")
			errs = append(errs, err)
		}
	}

	if s.DB != nil {
		log.Debug().Msg("Closing database connection")
		if err := s.DB.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
			log.Error().Err(err).Msg("Failed to close database connection")
			errs = append(errs, err)
		}
	}

	return errs
}
