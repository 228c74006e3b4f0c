package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" envconfig:"LOG_LEVEL"`
	Pretty bool   `mapstructure:"pretty" envconfig:"LOG_PRETTY"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port" envconfig:"SERVER_PORT"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// StoreConfig selects the key-value persistence backend. The file backend
// keeps one JSON slot per collection under Dir; the redis backend stores the
// same slots under a key prefix.
type StoreConfig struct {
	Backend  string `mapstructure:"backend" envconfig:"STORE_BACKEND"`
	Dir      string `mapstructure:"dir" envconfig:"STORE_DIR"`
	RedisURL string `mapstructure:"redis_url" envconfig:"STORE_REDIS_URL"`
	Prefix   string `mapstructure:"prefix"`
}

// GuestMode controls what the guest shortcut does: "passthrough" routes the
// fixed guest credentials through the authentication collaborator like any
// other login, "bypass" grants the guest identity without a network call,
// and empty disables the shortcut.
type AuthConfig struct {
	LoginURL      string        `mapstructure:"login_url" envconfig:"AUTH_LOGIN_URL"`
	GuestMode     string        `mapstructure:"guest_mode" envconfig:"AUTH_GUEST_MODE"`
	GuestEmail    string        `mapstructure:"guest_email"`
	GuestPassword string        `mapstructure:"guest_password"`
	JWTSecret     string        `mapstructure:"jwt_secret" envconfig:"AUTH_JWT_SECRET"`
	TokenExpiry   time.Duration `mapstructure:"token_expiry"`
}

type DashboardConfig struct {
	LowStockThreshold int `mapstructure:"low_stock_threshold"`
	TodayListCap      int `mapstructure:"today_list_cap"`
}

type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

const (
	GuestModePassthrough = "passthrough"
	GuestModeBypass      = "bypass"
)

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Environment variables win over the file.
	if err := envconfig.Process("medidash", &config); err != nil {
		return nil, fmt.Errorf("failed to process env overrides: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 15*time.Second)
	viper.SetDefault("server.write_timeout", 15*time.Second)
	viper.SetDefault("store.backend", "file")
	viper.SetDefault("store.dir", "./data")
	viper.SetDefault("store.prefix", "medidash")
	viper.SetDefault("auth.login_url", "http://127.0.0.1:8000/auth/login")
	viper.SetDefault("auth.guest_mode", GuestModePassthrough)
	viper.SetDefault("auth.guest_email", "guest@clinic.com")
	viper.SetDefault("auth.guest_password", "guest")
	viper.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	viper.SetDefault("auth.token_expiry", 24*time.Hour)
	viper.SetDefault("dashboard.low_stock_threshold", 10)
	viper.SetDefault("dashboard.today_list_cap", 6)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.rps", 50)
	viper.SetDefault("rate_limit.burst", 100)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", true)
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case "file", "redis":
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	switch c.Auth.GuestMode {
	case "", GuestModePassthrough, GuestModeBypass:
	default:
		return fmt.Errorf("unknown guest mode %q", c.Auth.GuestMode)
	}
	return nil
}
