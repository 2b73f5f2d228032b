// Package config loads server settings from an optional portfolio.yaml, the
// environment (and a .env file) and command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Port        int    `mapstructure:"port"`
	ContentFile string `mapstructure:"content_file"`
	ResumeFile  string `mapstructure:"resume_file"`
	StaticDir   string `mapstructure:"static_dir"`
	Watch       bool   `mapstructure:"watch"`
	LogLevel    string `mapstructure:"log_level"`
	Dev         bool   `mapstructure:"dev"`

	DatabasePath string        `mapstructure:"database_path"`
	Retention    time.Duration `mapstructure:"retention"`

	RedisURL string        `mapstructure:"redis_url"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
}

// Development credentials, used when none are configured.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

var defaults = map[string]any{
	"port":           8080,
	"content_file":   "",
	"resume_file":    "static/resume.pdf",
	"static_dir":     "static",
	"watch":          false,
	"log_level":      "info",
	"dev":            false,
	"database_path":  "portfolio.db",
	"retention":      365 * 24 * time.Hour,
	"redis_url":      "",
	"cache_ttl":      10 * time.Minute,
	"admin_username": "",
	"admin_password": "",
}

// Environment variable names. These match the deployment's existing .env
// files, so they carry no prefix.
var envNames = map[string]string{
	"port":           "PORT",
	"content_file":   "CONTENT_FILE",
	"resume_file":    "RESUME_FILE",
	"static_dir":     "STATIC_DIR",
	"watch":          "WATCH_CONTENT",
	"log_level":      "LOG_LEVEL",
	"dev":            "DEV",
	"database_path":  "DATABASE_PATH",
	"retention":      "RETENTION",
	"redis_url":      "REDIS_URL",
	"cache_ttl":      "CACHE_TTL",
	"admin_username": "ADMIN_USERNAME",
	"admin_password": "ADMIN_PASSWORD",
}

// Flags maps config keys to command-line flag names.
var Flags = map[string]string{
	"port":         "port",
	"content_file": "content",
	"watch":        "watch",
	"log_level":    "log-level",
	"dev":          "dev",
}

// Load resolves the configuration. file may be empty, in which case
// ./portfolio.yaml is used if present. flags may be nil.
// Precedence: flags, environment, file, defaults.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	for k, env := range envNames {
		if err := v.BindEnv(k, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	if flags != nil {
		for k, name := range Flags {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(k, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Retention <= 0 {
		return fmt.Errorf("retention must be positive, got %s", c.Retention)
	}
	if c.Watch && c.ContentFile == "" {
		return errors.New("watch needs a content file")
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AdminCredentials returns the configured admin login, falling back to the
// development defaults. usingDefaults reports whether a fallback was used.
func (c *Config) AdminCredentials() (user, pass string, usingDefaults bool) {
	user, pass = c.AdminUsername, c.AdminPassword
	if user == "" {
		user, usingDefaults = DefaultAdminUsername, true
	}
	if pass == "" {
		pass, usingDefaults = DefaultAdminPassword, true
	}
	return user, pass, usingDefaults
}
