// Package config loads runtime settings from the environment, an optional
// .env file and an optional skilledhelpers.yaml file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fwojciec/skilledhelpers"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageBolt   = "bolt"
	StorageRedis  = "redis"
	StorageFS     = "fs"
)

const (
	DefaultModel             = "gemini-2.5-flash"
	DefaultRedisAddr         = "localhost:6379"
	DefaultRequestsPerMinute = 10
	DefaultLogLevel          = "info"
)

// Config holds runtime settings.
type Config struct {
	Storage           string `mapstructure:"storage"`
	DBPath            string `mapstructure:"db_path"`
	DataDir           string `mapstructure:"data_dir"`
	RedisAddr         string `mapstructure:"redis_addr"`
	RedisPassword     string `mapstructure:"redis_password"`
	RedisDB           int    `mapstructure:"redis_db"`
	APIKey            string `mapstructure:"api_key"`
	Model             string `mapstructure:"model"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute"`
	LogLevel          string `mapstructure:"log_level"`
}

// envNames lists the environment variables bound to each key, in order of
// precedence.
var envNames = map[string][]string{
	"storage":             {"SKILLEDHELPERS_STORAGE"},
	"db_path":             {"SKILLEDHELPERS_DB_PATH"},
	"data_dir":            {"SKILLEDHELPERS_DATA_DIR"},
	"redis_addr":          {"SKILLEDHELPERS_REDIS_ADDR"},
	"redis_password":      {"SKILLEDHELPERS_REDIS_PASSWORD"},
	"redis_db":            {"SKILLEDHELPERS_REDIS_DB"},
	"api_key":             {"SKILLEDHELPERS_API_KEY", "GEMINI_API_KEY", "API_KEY"},
	"model":               {"SKILLEDHELPERS_MODEL"},
	"requests_per_minute": {"SKILLEDHELPERS_REQUESTS_PER_MINUTE"},
	"log_level":           {"SKILLEDHELPERS_LOG_LEVEL"},
}

// Loader reads configuration. The zero value searches the working
// directory and keeps data under ~/.skilledhelpers.
type Loader struct {
	// Dir is searched for .env and skilledhelpers.yaml.
	Dir string

	// ConfigFile names a YAML file explicitly. It must exist.
	ConfigFile string

	// Home is the base directory for default data paths.
	Home string
}

// Load reads configuration with the zero Loader.
func Load() (*Config, error) {
	return Loader{}.Load()
}

// Load reads configuration. Environment variables win over .env, which
// wins over the YAML file, which wins over defaults.
func (l Loader) Load() (*Config, error) {
	dir := l.Dir
	if dir == "" {
		dir = "."
	}
	home := l.Home
	if home == "" {
		home = defaultHome()
	}

	v := viper.New()
	v.SetDefault("storage", StorageSQLite)
	v.SetDefault("db_path", "")
	v.SetDefault("data_dir", filepath.Join(home, "data"))
	v.SetDefault("redis_addr", DefaultRedisAddr)
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("api_key", "")
	v.SetDefault("model", DefaultModel)
	v.SetDefault("requests_per_minute", DefaultRequestsPerMinute)
	v.SetDefault("log_level", DefaultLogLevel)

	for key, names := range envNames {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if l.ConfigFile != "" {
		v.SetConfigFile(l.ConfigFile)
	} else {
		v.SetConfigName("skilledhelpers")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, skilledhelpers.Errorf(skilledhelpers.EINVALID, "cannot read config file: %v", err)
		}
	}

	if err := applyDotEnv(v, filepath.Join(dir, ".env")); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, skilledhelpers.Errorf(skilledhelpers.EINVALID, "cannot decode config: %v", err)
	}

	if cfg.DBPath == "" {
		switch cfg.Storage {
		case StorageBolt:
			cfg.DBPath = filepath.Join(home, "skilledhelpers.bolt")
		default:
			cfg.DBPath = filepath.Join(home, "skilledhelpers.db")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDotEnv copies values from a .env file for keys whose environment
// variables are unset. The process environment is left untouched.
func applyDotEnv(v *viper.Viper, path string) error {
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return skilledhelpers.Errorf(skilledhelpers.EINVALID, "cannot read %s: %v", path, err)
	}

	for key, names := range envNames {
		if envSet(names) {
			continue
		}
		for _, name := range names {
			if val, ok := values[name]; ok && val != "" {
				v.Set(key, val)
				break
			}
		}
	}
	return nil
}

func envSet(names []string) bool {
	for _, name := range names {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".skilledhelpers"
	}
	return filepath.Join(home, ".skilledhelpers")
}

// Validate reports the first invalid setting as EINVALID.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageSQLite, StorageBolt:
		if c.DBPath == "" {
			return skilledhelpers.Errorf(skilledhelpers.EINVALID, "db_path is required for %s storage", c.Storage)
		}
	case StorageFS:
		if c.DataDir == "" {
			return skilledhelpers.Errorf(skilledhelpers.EINVALID, "data_dir is required for fs storage")
		}
	case StorageRedis:
		if c.RedisAddr == "" {
			return skilledhelpers.Errorf(skilledhelpers.EINVALID, "redis_addr is required for redis storage")
		}
		if c.RedisDB < 0 {
			return skilledhelpers.Errorf(skilledhelpers.EINVALID, "redis_db must not be negative")
		}
	default:
		return skilledhelpers.Errorf(skilledhelpers.EINVALID, "unknown storage %q (want sqlite, bolt, redis or fs)", c.Storage)
	}
	if c.Model == "" {
		return skilledhelpers.Errorf(skilledhelpers.EINVALID, "model is required")
	}
	if c.RequestsPerMinute < 0 {
		return skilledhelpers.Errorf(skilledhelpers.EINVALID, "requests_per_minute must not be negative")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, skilledhelpers.Errorf(skilledhelpers.EINVALID, "unknown log_level %q", c.LogLevel)
	}
	return level, nil
}
