package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   shared secrets), security settings
// - default: Values common across all environments (timeouts, tolerances,
//   rate limits), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Payments  PaymentsConfig
	Video     VideoWebhookConfig
	Notifier  NotifierConfig
	RateLimit RateLimitConfig
	Requests  RequestPolicyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// PaymentsConfig covers both the outbound processor API and the inbound
// processor webhook endpoint.
type PaymentsConfig struct {
	APIBaseURL       string        `envconfig:"PAYMENTS_API_BASE_URL" required:"true"`
	APIKey           string        `envconfig:"PAYMENTS_API_KEY" required:"true"`
	PlatformAccount  string        `envconfig:"PAYMENTS_PLATFORM_ACCOUNT" required:"true"`
	WebhookSecret    string        `envconfig:"PAYMENTS_WEBHOOK_SECRET" required:"true"`
	WebhookTolerance time.Duration `envconfig:"PAYMENTS_WEBHOOK_TOLERANCE" default:"300s"`
	RequestTimeout   time.Duration `envconfig:"PAYMENTS_REQUEST_TIMEOUT" default:"30s"`
}

type VideoWebhookConfig struct {
	Secret    string        `envconfig:"VIDEO_WEBHOOK_SECRET" required:"true"`
	Tolerance time.Duration `envconfig:"VIDEO_WEBHOOK_TOLERANCE" default:"300s"`
}

type NotifierConfig struct {
	BaseURL string        `envconfig:"NOTIFIER_BASE_URL" default:""`
	Timeout time.Duration `envconfig:"NOTIFIER_TIMEOUT" default:"5s"`
}

type RateLimitConfig struct {
	Window      time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	MaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"30"`
}

// RequestPolicyConfig keeps pending-request expiry a deployment decision.
// Zero TTL means pending requests never expire automatically.
type RequestPolicyConfig struct {
	PendingTTL time.Duration `envconfig:"REQUEST_PENDING_TTL" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Payments: PaymentsConfig{
			APIBaseURL:       "http://localhost:12111",
			APIKey:           "sk_test_dummy",
			PlatformAccount:  "acct_platform_test",
			WebhookSecret:    "whsec_test",
			WebhookTolerance: 300 * time.Second,
			RequestTimeout:   5 * time.Second,
		},
		Video: VideoWebhookConfig{
			Secret:    "vid_test_secret",
			Tolerance: 300 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Window:      time.Minute,
			MaxRequests: 1000,
		},
	}
}
