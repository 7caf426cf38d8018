package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/trust"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, trust.DefaultApplicationID, cfg.Trust.ApplicationID)
	require.Equal(t, DriverSQLite, cfg.Database.Driver)
	require.NotEmpty(t, cfg.Database.DSN)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownGracePeriod)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Empty(t, cfg.Admin.Operators)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orgrole.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
trust:
  issuer_domain: https://clerk.example.com
  application_id: my-app
database:
  driver: postgres
  dsn: postgres://orgrole@localhost/orgrole
server:
  port: 9000
  shutdown_grace_period: 30s
admin:
  operators: [user_ops]
`), 0o600))

	t.Setenv("ORGROLE_SERVER_PORT", "9100")
	t.Setenv("ORGROLE_TRUST_APPLICATION_ID", "convex")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "https://clerk.example.com", cfg.Trust.IssuerDomain)
	require.Equal(t, "convex", cfg.Trust.ApplicationID)
	require.Equal(t, DriverPostgres, cfg.Database.Driver)
	require.Equal(t, "postgres://orgrole@localhost/orgrole", cfg.Database.DSN)
	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, 30*time.Second, cfg.Server.ShutdownGracePeriod)
	require.Equal(t, []string{"user_ops"}, cfg.Admin.Operators)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_OperatorsFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ORGROLE_ADMIN_OPERATORS", "user_ops,user_oncall")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, []string{"user_ops", "user_oncall"}, cfg.Admin.Operators)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Trust:    TrustConfig{IssuerDomain: "https://clerk.example.com", ApplicationID: "convex"},
			Database: DatabaseConfig{Driver: DriverSQLite, DSN: ":memory:"},
			Server:   ServerConfig{Port: 8080},
		}
	}

	require.NoError(t, valid().Validate())

	t.Run("missing issuer", func(t *testing.T) {
		cfg := valid()
		cfg.Trust.IssuerDomain = ""
		require.ErrorIs(t, cfg.Validate(), trust.ErrMisconfiguredTrustAnchor)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := valid()
		cfg.Database.Driver = "mysql"
		require.ErrorContains(t, cfg.Validate(), "unknown database.driver")
	})

	t.Run("missing dsn", func(t *testing.T) {
		cfg := valid()
		cfg.Database.DSN = ""
		require.ErrorContains(t, cfg.Validate(), "database.dsn is required")
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = 0
		require.ErrorContains(t, cfg.Validate(), "invalid server.port")
	})
}
