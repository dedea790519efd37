// Package config manages environment variables.
//
// It reads variables from the `.env` file (if one exists),
// loads them into structured Go types, and validates that
// required values are present before any command touches
// the database.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Apply defaults for optional values.
//   - Validate required values so a command fails fast on bad/missing config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists in the working directory
	// it is loaded into the process env before Load reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the PRODUCTS_ prefix. Keys are lowercased and
	a double underscore marks a nesting level:

	  PRODUCTS_DATABASE__HOST          -> database.host     -> Config.Database.Host
	  PRODUCTS_DATABASE__SSL_MODE      -> database.ssl_mode -> Config.Database.SSLMode
	  PRODUCTS_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
*/

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "PRODUCTS_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from.
// The `validate:"..."` tags are enforced by go-playground/validator
// after defaults have been applied.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// It tags every log line and switches SQL tracing on in "local".
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// DatabaseConfig is the connection descriptor for the PostgreSQL store.
//
// There are no pool settings: every operation opens and closes its own
// connection.
type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required,min=1,max=65535"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`

	// ConnectTimeout bounds dialing. Zero means wait for the driver.
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// Load loads configuration from environment variables, unmarshals it into
// Config, applies defaults, validates it and returns the result.
//
// Behavior summary:
//   - Loads env vars with prefix PRODUCTS_
//   - Converts env keys into koanf keys using "." nesting ("__" -> ".")
//   - Unmarshals into Config
//   - Applies defaults for anything left empty
//   - Validates required fields, then the observability block
//
// A bad config is returned as an error; the caller decides the exit status.
func Load() (*Config, error) {
	return LoadWithPrefix(EnvPrefix)
}

// LoadWithPrefix is Load with a custom variable prefix.
func LoadWithPrefix(prefix string) (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting.
	// e.g. "database.host" means Config.Database.Host
	k := koanf.New(".")

	// env.Provider parameters:
	//   1) prefix: only env vars with this prefix are read
	//   2) delimiter: "." tells koanf how to interpret nested keys
	//   3) key-mapping func: transforms raw env var names into koanf keys
	//
	// Example:
	//   PRODUCTS_DATABASE__SSL_MODE -> "database__ssl_mode" -> "database.ssl_mode"
	//
	// Single underscores survive, so multi-word keys like ssl_mode keep
	// matching their koanf tags.
	err := k.Load(env.Provider(prefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, prefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal reads the flat key-value store from koanf and fills mainConfig.
	// Using "" as the path means "unmarshal everything from the root".
	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	// Defaults first: validation below then only fails on values that
	// were set and are wrong.
	mainConfig.applyDefaults()

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks struct tags and the observability rules.
func (c *Config) Validate() error {
	// This validator reads the `validate:"..."` tags and walks the
	// struct recursively, so nested blocks are checked as well.
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Observability has its own rules (allowed levels and formats).
	if c.Observability != nil {
		if err := c.Observability.Validate(); err != nil {
			return fmt.Errorf("invalid observability config: %w", err)
		}
	}

	return nil
}

// IsLocal reports whether the tool runs against a developer database.
// SQL statement tracing is enabled only there.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
