package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInvalidAIMode    = errors.New("invalid ai mode")
	ErrInvalidDriver    = errors.New("invalid storage driver")
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"GOMOKU_LOG_LEVEL" env-default:"info"`
	BoardSize int     `yaml:"board-size" env:"GOMOKU_BOARD_SIZE" env-default:"15"`
	AIMode    string  `yaml:"ai-mode" env:"GOMOKU_AI_MODE" env-default:"off"`
	Storage   Storage `yaml:"storage"`
	Redis     Redis   `yaml:"redis"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"GOMOKU_STORAGE_DRIVER" env-default:"file"`
	Path   string `yaml:"path" env:"GOMOKU_STORAGE_PATH" env-default:"./saves"`
}

type Redis struct {
	Host string `yaml:"host" env:"GOMOKU_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"GOMOKU_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// LoadEnv builds the config from environment variables and defaults only.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// Validate reports every invalid field at once.
func (that *Config) Validate() error {
	var errs error

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = multierror.Append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel))
	}

	if that.BoardSize < entity.MinBoardSize {
		errs = multierror.Append(errs, fmt.Errorf("%w: %d", ErrInvalidBoardSize, that.BoardSize))
	}

	if _, err := entity.ParseAIMode(that.AIMode); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("%w: %q", ErrInvalidAIMode, that.AIMode))
	}

	switch that.Storage.Driver {
	case DriverFile, DriverRedis, DriverSQLite:
	default:
		errs = multierror.Append(errs, fmt.Errorf("%w: %q", ErrInvalidDriver, that.Storage.Driver))
	}

	return errs
}

// GetRedisAddr returns host:port, or "" when no host is set.
func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
