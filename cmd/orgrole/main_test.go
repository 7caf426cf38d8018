package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/app"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/catalog"
)

// run executes the CLI against a SQLite database in a temp dir shared by
// the calls of one test.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func useTempDatabase(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("ORGROLE_DATABASE_DRIVER", "sqlite")
	t.Setenv("ORGROLE_DATABASE_DSN", "file:"+filepath.Join(t.TempDir(), "orgrole.db"))
	t.Setenv("ORGROLE_LOG_LEVEL", "error")
}

func TestRepairCommand(t *testing.T) {
	useTempDatabase(t)

	_, err := run(t, "profile", "add", "--email", "a@x.com", "--role", "org:member")
	require.NoError(t, err)

	out, err := run(t, "repair", "--email", "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "Restored admin role for a@x.com\n", out)

	out, err = run(t, "repair", "--email", "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "Restored admin role for a@x.com\n", out)

	out, err = run(t, "repair", "--email", "ghost@x.com")
	require.NoError(t, err)
	require.Equal(t, "User not found\n", out)
}

func TestRepairCommand_RequiresEmail(t *testing.T) {
	useTempDatabase(t)

	_, err := run(t, "repair")
	require.ErrorContains(t, err, `required flag(s) "email" not set`)
}

func TestRepairCommand_BadDriver(t *testing.T) {
	useTempDatabase(t)
	t.Setenv("ORGROLE_DATABASE_DRIVER", "mysql")

	_, err := run(t, "repair", "--email", "a@x.com")
	require.ErrorContains(t, err, "unknown database.driver")
}

func TestProfileAdd_DefaultsToCatalogMember(t *testing.T) {
	useTempDatabase(t)
	ctx := context.Background()

	out, err := run(t, "profile", "add", "--email", "b@x.com")
	require.NoError(t, err)

	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	db, err := app.OpenStore(ctx, cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	p, err := db.Profiles().GetProfileByID(ctx, strings.TrimSpace(out))
	require.NoError(t, err)
	require.Equal(t, catalog.RoleMember, p.Role)
}

func TestRolesCommand(t *testing.T) {
	useTempDatabase(t)

	out, err := run(t, "roles")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "source: catalog", lines[0])
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[2], "org:admin"))
	require.True(t, strings.HasPrefix(lines[3], "org:member"))

	out, err = run(t, "roles", "--org", "org_1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "source: catalog\n"))
}

func TestMigrateCommand(t *testing.T) {
	useTempDatabase(t)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	require.Equal(t, "migrations applied\n", out)
}
