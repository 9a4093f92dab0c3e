package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.)
// - default: Values common across all environments (timezone, timers, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Cookie  CookieConfig
	Landing LandingConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

func (c CORSConfig) Validate() error {
	if len(c.AllowOrigins) == 0 {
		return errors.New(`CORS_ALLOW_ORIGINS must list at least one origin or "*"`)
	}
	return nil
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// LandingConfig tunes the per-visitor landing views. OfferConfigPath empty
// means the embedded default offer is used.
type LandingConfig struct {
	OfferConfigPath   string        `envconfig:"OFFER_CONFIG_PATH" default:""`
	CheckoutDelay     time.Duration `envconfig:"CHECKOUT_DELAY" default:"900ms"`
	CountdownTick     time.Duration `envconfig:"COUNTDOWN_TICK" default:"1s"`
	CriticalThreshold int           `envconfig:"SCARCITY_CRITICAL_THRESHOLD" default:"25"`
	ViewIdleTTL       time.Duration `envconfig:"VIEW_IDLE_TTL" default:"30m"`
	ViewReapInterval  time.Duration `envconfig:"VIEW_REAP_INTERVAL" default:"1m"`
	MaxViews          int           `envconfig:"VIEW_MAX" default:"10000"`
	StreamKeepAlive   time.Duration `envconfig:"SSE_KEEPALIVE" default:"15s"`
}

func (c LandingConfig) Validate() error {
	if c.CheckoutDelay < 0 {
		return fmt.Errorf("CHECKOUT_DELAY must not be negative: %s", c.CheckoutDelay)
	}
	if c.CountdownTick <= 0 {
		return fmt.Errorf("COUNTDOWN_TICK must be positive: %s", c.CountdownTick)
	}
	if c.CriticalThreshold < 0 {
		return fmt.Errorf("SCARCITY_CRITICAL_THRESHOLD must not be negative: %d", c.CriticalThreshold)
	}
	if c.ViewIdleTTL < 0 {
		return fmt.Errorf("VIEW_IDLE_TTL must not be negative: %s", c.ViewIdleTTL)
	}
	if c.ViewReapInterval <= 0 {
		return fmt.Errorf("VIEW_REAP_INTERVAL must be positive: %s", c.ViewReapInterval)
	}
	if c.MaxViews <= 0 {
		return fmt.Errorf("VIEW_MAX must be positive: %d", c.MaxViews)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.CORS.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid cors config: %w", err)
	}
	if err := cfg.Landing.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid landing config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length", "Location"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Landing: LandingConfig{
			CheckoutDelay:     900 * time.Millisecond,
			CountdownTick:     time.Second,
			CriticalThreshold: 25,
			ViewIdleTTL:       30 * time.Minute,
			ViewReapInterval:  time.Minute,
			MaxViews:          100,
			StreamKeepAlive:   0, // tests drive streams to completion
		},
	}
}
