package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	CacheBackendNone   = "none"
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

var ErrInvalidDepth = errors.New("search depth must not be negative")

type Config struct {
	LogLevel     string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	StartingSide string     `yaml:"starting-side" env:"STARTING_SIDE" env-default:"X"`
	Difficulty   Difficulty `yaml:"difficulty"`
	Cache        Cache      `yaml:"cache"`
	Redis        Redis      `yaml:"redis"`
}

// Difficulty maps the menu levels to search depth bounds.
type Difficulty struct {
	HardDepth int `yaml:"hard-depth" env:"HARD_DEPTH" env-default:"9"`
	EasyDepth int `yaml:"easy-depth" env:"EASY_DEPTH" env-default:"3"`
}

// Cache selects where search results are kept between moves.
type Cache struct {
	Backend string        `yaml:"backend" env:"CACHE_BACKEND" env-default:"memory"`
	TTL     time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"24h"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file, falling back to the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
		if err = config.Difficulty.validate(); err != nil {
			return nil, err
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := config.Difficulty.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate - a negative depth would leave the computer without a move.
func (that *Difficulty) validate() error {
	if that.HardDepth < 0 {
		return fmt.Errorf("%w: hard-depth %d", ErrInvalidDepth, that.HardDepth)
	}

	if that.EasyDepth < 0 {
		return fmt.Errorf("%w: easy-depth %d", ErrInvalidDepth, that.EasyDepth)
	}

	return nil
}

// GetRedisAddr - empty when no host is configured.
func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
