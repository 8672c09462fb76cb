package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	LogLevel string
	LogFile  string

	APIBaseURL string
	APITimeout time.Duration

	RedisURL string

	SessionTTL          time.Duration
	SessionCookieName   string
	SessionCookieSecure bool

	// vazio desativa a trilha de auditoria
	DBUrl string

	ShopTimezone       string
	RatingsConcurrency int
	AllowedOrigins     []string
}

// fileConfig espelha o config.toml opcional
type fileConfig struct {
	Server struct {
		Port        string `toml:"port"`
		Environment string `toml:"environment"`
	} `toml:"server"`
	Log struct {
		Level string `toml:"level"`
		File  string `toml:"file"`
	} `toml:"log"`
	BookingAPI struct {
		BaseURL string `toml:"base_url"`
		Timeout string `toml:"timeout"`
	} `toml:"booking_api"`
	Redis struct {
		URL string `toml:"url"`
	} `toml:"redis"`
	Session struct {
		TTL          string `toml:"ttl"`
		CookieName   string `toml:"cookie_name"`
		CookieSecure *bool  `toml:"cookie_secure"`
	} `toml:"session"`
	Database struct {
		URL string `toml:"url"`
	} `toml:"database"`
	Shop struct {
		Timezone string `toml:"timezone"`
	} `toml:"shop"`
	Ratings struct {
		Concurrency int `toml:"concurrency"`
	} `toml:"ratings"`
	CORS struct {
		AllowedOrigins []string `toml:"allowed_origins"`
	} `toml:"cors"`
}

func defaults() *Config {
	return &Config{
		ServerPort:         "8080",
		Environment:        "development",
		LogLevel:           "info",
		APIBaseURL:         "http://localhost:3000/api",
		APITimeout:         10 * time.Second,
		RedisURL:           "redis://localhost:6379/0",
		SessionTTL:         24 * time.Hour,
		SessionCookieName:  "sid",
		ShopTimezone:       "America/Sao_Paulo",
		RatingsConcurrency: 4,
	}
}

// Load monta a configuração: padrões, depois o arquivo TOML (CONFIG_FILE,
// padrão config.toml, opcional), depois variáveis de ambiente (.env incluso).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	path := getEnv("CONFIG_FILE", "config.toml")
	if err := cfg.applyFile(path); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	setString(&c.ServerPort, fc.Server.Port)
	setString(&c.Environment, fc.Server.Environment)
	setString(&c.LogLevel, fc.Log.Level)
	setString(&c.LogFile, fc.Log.File)
	setString(&c.APIBaseURL, fc.BookingAPI.BaseURL)
	setString(&c.RedisURL, fc.Redis.URL)
	setString(&c.SessionCookieName, fc.Session.CookieName)
	setString(&c.DBUrl, fc.Database.URL)
	setString(&c.ShopTimezone, fc.Shop.Timezone)

	if fc.Session.CookieSecure != nil {
		c.SessionCookieSecure = *fc.Session.CookieSecure
	}
	if fc.Ratings.Concurrency > 0 {
		c.RatingsConcurrency = fc.Ratings.Concurrency
	}
	if len(fc.CORS.AllowedOrigins) > 0 {
		c.AllowedOrigins = fc.CORS.AllowedOrigins
	}

	var err error
	if fc.BookingAPI.Timeout != "" {
		if c.APITimeout, err = time.ParseDuration(fc.BookingAPI.Timeout); err != nil {
			return fmt.Errorf("config: booking_api.timeout: %w", err)
		}
	}
	if fc.Session.TTL != "" {
		if c.SessionTTL, err = time.ParseDuration(fc.Session.TTL); err != nil {
			return fmt.Errorf("config: session.ttl: %w", err)
		}
	}

	return nil
}

func (c *Config) applyEnv() error {
	c.ServerPort = getEnv("SERVER_PORT", c.ServerPort)
	c.Environment = getEnv("APP_ENV", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("LOG_FILE", c.LogFile)
	c.APIBaseURL = getEnv("BOOKING_API_URL", c.APIBaseURL)
	c.RedisURL = getEnv("REDIS_URL", c.RedisURL)
	c.SessionCookieName = getEnv("SESSION_COOKIE_NAME", c.SessionCookieName)
	c.DBUrl = getEnv("DATABASE_URL", c.DBUrl)
	c.ShopTimezone = getEnv("SHOP_TIMEZONE", c.ShopTimezone)

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}

	var err error
	if c.APITimeout, err = getEnvDuration("BOOKING_API_TIMEOUT", c.APITimeout); err != nil {
		return err
	}
	if c.SessionTTL, err = getEnvDuration("SESSION_TTL", c.SessionTTL); err != nil {
		return err
	}
	if c.SessionCookieSecure, err = getEnvBool("SESSION_COOKIE_SECURE", c.SessionCookieSecure); err != nil {
		return err
	}
	if c.RatingsConcurrency, err = getEnvInt("RATINGS_CONCURRENCY", c.RatingsConcurrency); err != nil {
		return err
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func getEnvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) AuditEnabled() bool {
	return c.DBUrl != ""
}
