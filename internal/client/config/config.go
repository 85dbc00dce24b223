// Package config holds settings for the command-line client.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the gophauth CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the gRPC endpoint.
//   - Token: access token used by greet.
//   - Timeout: per-call deadline.
type Config struct {
	ServerEndpointAddr string        `env:"GOPHAUTH_ADDRESS"`
	Token              string        `env:"GOPHAUTH_TOKEN"`
	Timeout            time.Duration `env:"GOPHAUTH_TIMEOUT"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "localhost:50051"
	c.Timeout = 10 * time.Second
}

// LoadConfig applies defaults, environment variables and then the flags at
// the start of args. The remaining arguments (the command and its
// operands) are returned.
//
// Supported flags:
//
//	-a string         server address
//	-token string     access token
//	-timeout duration per-call deadline
func LoadConfig(args []string) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := env.Parse(cfg); err != nil {
		return nil, nil, fmt.Errorf("parse environment: %w", err)
	}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "access token")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-call timeout")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}
