package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v9"
	"github.com/sirupsen/logrus"
)

type Config struct {
	OutputPath string `env:"LIGHTEST_OUTPUT" envDefault:"lightest_test.cpp"` // флаг -o
	Count      int    `env:"LIGHTEST_COUNT" envDefault:"1000"`               // флаг -n
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

var ErrInvalidCount = errors.New("count must not be negative")

// NewConfig читает конфигурацию из переменных окружения.
// Значения по умолчанию воспроизводят исходный бенчмарк: 1000 тестов в lightest_test.cpp.
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, c.Count)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}
