// Package config handles configuration for the server component,
// including defaults, JSON overlay, dotenv and environment variables, and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingSecretKey   = errors.New("secret key is not configured (APP_KEY)")
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured (DATABASE_URL)")
)

// Config holds runtime settings for the gophauth server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx) or "sqlite:<dsn>".
//   - SecretKey: HMAC secret for signing access tokens (HS256).
//   - AccessTokenValidityDuration: access token lifetime.
//   - DBMaxConns: upper bound of the store connection pool.
//   - PasswordAlgorithm / BcryptCost: password hashing settings.
//   - LogBackend / LogFormat / LogLevel: logger selection.
//   - OTLPEndpoint: OTLP/HTTP collector URL; empty disables tracing.
type Config struct {
	EndpointAddrGRPC            string        `env:"GRPC_ADDRESS"`
	DatabaseDSN                 string        `env:"DATABASE_URL"`
	SecretKey                   string        `env:"APP_KEY"`
	AccessTokenValidityDuration time.Duration `env:"ACCESS_TOKEN_TTL"`
	DBMaxConns                  int           `env:"DATABASE_MAX_CONNS"`
	PasswordAlgorithm           string        `env:"PASSWORD_ALGORITHM"`
	BcryptCost                  int           `env:"BCRYPT_COST"`
	LogBackend                  string        `env:"LOG_BACKEND"`
	LogFormat                   string        `env:"LOG_FORMAT"`
	LogLevel                    string        `env:"LOG_LEVEL"`
	OTLPEndpoint                string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// LoadDefaults populates Config with development defaults. The secret key
// and the database DSN have no default and must be supplied.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = "localhost:50051"
	c.AccessTokenValidityDuration = auth.DefaultTokenTTL
	c.DBMaxConns = 10
	c.PasswordAlgorithm = auth.AlgorithmBcrypt
	c.BcryptCost = auth.DefaultBcryptCost
	c.LogBackend = logging.BackendZerolog
	c.LogFormat = logging.FormatJSON
	c.LogLevel = "info"
}

// LoadConfig builds a Config from the process arguments and environment.
// Sources are applied in this order, later ones winning: defaults, the JSON
// file named by -c/-config, the dotenv file, environment variables and
// command-line flags.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := loadDotEnv(args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every problem found; errors.Is matches the individual
// sentinels.
func (c *Config) Validate() error {
	var errs []error

	if c.SecretKey == "" {
		errs = append(errs, ErrMissingSecretKey)
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, ErrMissingDatabaseDSN)
	}
	if c.EndpointAddrGRPC == "" {
		errs = append(errs, errors.New("gRPC address is empty"))
	}
	if c.AccessTokenValidityDuration <= 0 {
		errs = append(errs, fmt.Errorf("access token validity must be positive, got %s", c.AccessTokenValidityDuration))
	}
	if c.DBMaxConns < 1 {
		errs = append(errs, fmt.Errorf("db max conns must be at least 1, got %d", c.DBMaxConns))
	}

	switch strings.ToLower(c.PasswordAlgorithm) {
	case auth.AlgorithmBcrypt:
		if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
			errs = append(errs, fmt.Errorf("bcrypt cost must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost))
		}
	case auth.AlgorithmArgon2id:
	default:
		errs = append(errs, fmt.Errorf("unsupported password algorithm %q", c.PasswordAlgorithm))
	}

	switch strings.ToLower(c.LogBackend) {
	case logging.BackendZerolog, logging.BackendSlog:
	default:
		errs = append(errs, fmt.Errorf("unknown log backend %q", c.LogBackend))
	}
	switch strings.ToLower(c.LogFormat) {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}
