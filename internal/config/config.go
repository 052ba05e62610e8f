package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	UpstreamConfig
	DemoConfig
}

// UpstreamConfig points the gateway at the auction backend. An empty URL
// serves the in-memory demo market instead.
type UpstreamConfig struct {
	URL     string        `env:"UPSTREAM_URL"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"5s"`
}

type DemoConfig struct {
	Seed     uint64 `env:"DEMO_SEED" envDefault:"42"`
	Auctions int    `env:"DEMO_AUCTIONS" envDefault:"12"`
}

func NewConfig() (*Config, error) {
	config := &Config{}

	err := env.Parse(config)
	if err != nil {
		err = fmt.Errorf("config.NewConfig: %w", err)
	}
	return config, err
}

// Addr is the listen address for gin
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Demo reports whether no upstream backend is configured
func (c *Config) Demo() bool {
	return c.URL == ""
}
