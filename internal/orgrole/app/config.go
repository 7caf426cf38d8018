package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/trust"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// EnvPrefix is prepended to every environment override, e.g.
// ORGROLE_TRUST_ISSUER_DOMAIN for trust.issuer_domain.
const EnvPrefix = "ORGROLE"

type Config struct {
	Env      string         `mapstructure:"env"` // dev, staging, prod (default: dev)
	Trust    TrustConfig    `mapstructure:"trust"`
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Log      LogConfig      `mapstructure:"log"`
}

type TrustConfig struct {
	IssuerDomain  string `mapstructure:"issuer_domain"`  // Required: identity provider issuer URL
	ApplicationID string `mapstructure:"application_id"` // Expected audience (default: convex)
	JWKSURL       string `mapstructure:"jwks_url"`       // Optional: defaults to <issuer_domain>/.well-known/jwks.json
}

// Anchor returns the trust anchor described by c.
func (c TrustConfig) Anchor() trust.TrustAnchor {
	return trust.TrustAnchor{
		IssuerDomain:  c.IssuerDomain,
		ApplicationID: c.ApplicationID,
		JWKSURL:       c.JWKSURL,
	}
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite or postgres (default: sqlite)
	DSN    string `mapstructure:"dsn"`
}

// Validate checks the settings needed to open the profile store.
func (c DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown database.driver %q (must be %s or %s)", c.Driver, DriverSQLite, DriverPostgres)
	}
	if c.DSN == "" {
		return errors.New("database.dsn is required")
	}
	return nil
}

type ServerConfig struct {
	Port                int           `mapstructure:"port"`                  // default: 8080
	ShutdownGracePeriod time.Duration `mapstructure:"shutdown_grace_period"` // default: 10s
}

// AdminConfig names the deployment operators. ORGROLE_ADMIN_OPERATORS takes
// a comma separated list.
type AdminConfig struct {
	Operators []string `mapstructure:"operators"` // token subjects allowed to call /v1/admin routes
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error (default: info)
	Format string `mapstructure:"format"` // json, text (default: json)
}

var configKeys = []string{
	"env",
	"trust.issuer_domain",
	"trust.application_id",
	"trust.jwks_url",
	"database.driver",
	"database.dsn",
	"server.port",
	"server.shutdown_grace_period",
	"admin.operators",
	"log.level",
	"log.format",
}

// LoadConfig reads defaults, then the YAML file at path (or ./orgrole.yaml
// when path is empty and the file exists), then ORGROLE_* environment
// variables. The result is not validated.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("orgrole")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/orgrole")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone is not consulted by Unmarshal for nested keys.
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("trust.application_id", trust.DefaultApplicationID)

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.dsn", "file:orgrole.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_grace_period", "10s")

	v.SetDefault("admin.operators", []string{})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Validate checks everything the HTTP service needs. The trust anchor is
// checked here so a misconfigured issuer stops startup.
func (c Config) Validate() error {
	if err := c.Trust.Anchor().Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	return nil
}
