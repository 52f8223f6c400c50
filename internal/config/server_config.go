package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/poolhouse/go-prize-pool/internal/util"
)

// EchoServer HTTP服务器配置
type EchoServer struct {
	ListenAddress           string
	HideInternalServerErr   bool
	EnableCORSMiddleware    bool
	EnableLoggerMiddleware  bool
	EnableRecoverMiddleware bool
}

// LoggerServer 日志配置
type LoggerServer struct {
	Level              string
	RequestLevel       string
	LogRequestBody     bool
	LogResponseBody    bool
	PrettyPrintConsole bool
}

// Database Postgres连接配置
type Database struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
	SSLMode  string
}

// ConnectionString 拼接 lib/pq 连接串
func (d Database) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.Username, d.Password, d.Database, d.SSLMode)
}

// AuthServer 运营接口鉴权配置。Secret 为空时 /api/v1/admin
// 不做鉴权，仅限开发环境。
type AuthServer struct {
	Secret        string
	Issuer        string
	TokenDuration time.Duration
}

// Redis 状态缓存配置
type Redis struct {
	Enabled  bool
	Endpoint string
}

// Pool 奖池业务配置
type Pool struct {
	RoundDuration time.Duration
	FinalityDelay time.Duration
	MinDeposit    decimal.Decimal
	BeaconSeed    string
	Strategy      string
	// Splits 逗号分隔的份额列表，仅 multi_winner_split 策略使用
	Splits string
}

// Server 服务总配置
type Server struct {
	Echo     EchoServer
	Logger   LoggerServer
	Auth     AuthServer
	Database Database
	Redis    Redis
	Pool     Pool
}

// DefaultServerConfigFromEnv 从环境变量加载配置，未设置时使用默认值
func DefaultServerConfigFromEnv() Server {
	return Server{
		Echo: EchoServer{
			ListenAddress:           util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			HideInternalServerErr:   util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			EnableCORSMiddleware:    util.GetEnvAsBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
			EnableLoggerMiddleware:  util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableRecoverMiddleware: util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
		},
		Logger: LoggerServer{
			Level:              util.GetEnv("SERVER_LOGGER_LEVEL", "info"),
			RequestLevel:       util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", "debug"),
			LogRequestBody:     util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_BODY", false),
			LogResponseBody:    util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_BODY", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Auth: AuthServer{
			Secret:        util.GetEnv("SERVER_AUTH_SECRET", ""),
			Issuer:        util.GetEnv("SERVER_AUTH_ISSUER", "prize-pool"),
			TokenDuration: util.GetEnvAsDuration("SERVER_AUTH_TOKEN_DURATION", 24*time.Hour),
		},
		Database: Database{
			Host:     util.GetEnv("PGHOST", "postgres"),
			Port:     util.GetEnvAsInt("PGPORT", 5432),
			Username: util.GetEnv("PGUSER", "dbuser"),
			Password: util.GetEnv("PGPASSWORD", ""),
			Database: util.GetEnv("PGDATABASE", "prizepool"),
			SSLMode:  util.GetEnv("PGSSLMODE", "disable"),
		},
		Redis: Redis{
			Enabled:  util.GetEnvAsBool("SERVER_REDIS_ENABLED", false),
			Endpoint: util.GetEnv("SERVER_REDIS_ENDPOINT", "redis:6379"),
		},
		Pool: Pool{
			RoundDuration: util.GetEnvAsDuration("SERVER_POOL_ROUND_DURATION", 24*time.Hour),
			FinalityDelay: util.GetEnvAsDuration("SERVER_POOL_FINALITY_DELAY", time.Minute),
			MinDeposit:    util.GetEnvAsDecimal("SERVER_POOL_MIN_DEPOSIT", decimal.NewFromInt(1)),
			BeaconSeed:    util.GetEnv("SERVER_POOL_BEACON_SEED", "dev-only-beacon-seed"),
			Strategy:      util.GetEnv("SERVER_POOL_STRATEGY", "weighted_single_winner"),
			Splits:        util.GetEnv("SERVER_POOL_SPLITS", "0.5,0.3,0.2"),
		},
	}
}
