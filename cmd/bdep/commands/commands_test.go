package commands_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"go.trai.ch/bdep/cmd/bdep/commands"
	"go.trai.ch/bdep/internal/adapters/config"
	"go.trai.ch/bdep/internal/adapters/logger"
	"go.trai.ch/bdep/internal/adapters/rpmmeta"
	"go.trai.ch/bdep/internal/adapters/telemetry"
	"go.trai.ch/bdep/internal/app"
)

func newTestCLI() (*commands.CLI, *app.Components) {
	log := logger.New()
	log.SetOutput(io.Discard)
	components := &app.Components{
		App:    app.New(config.NewLoader(), log, telemetry.NewNoop(), rpmmeta.NewReader()),
		Logger: log,
	}
	return commands.New(components), components
}

func TestRootHelp(t *testing.T) {
	cli, _ := newTestCLI()
	cli.SetArgs([]string{"--help"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestVersion(t *testing.T) {
	cli, _ := newTestCLI()
	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestExpandRequiresThreeArgs(t *testing.T) {
	cli, _ := newTestCLI()
	cli.SetArgs([]string{"expand", "prj", "repo"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestMirrorRequiresTwoArgs(t *testing.T) {
	cli, _ := newTestCLI()
	cli.SetArgs([]string{"mirror", "prj"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestMirrorRunsAgainstConfiguredService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/build/prj/repo/x86_64/_repository", r.URL.Path)
		fmt.Fprint(w, `<binaryversionlist></binaryversionlist>`)
	}))
	defer server.Close()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "bdep.yaml")
	cfg := fmt.Sprintf("apiurl: %s\ncacheroot: %s\n", server.URL, filepath.Join(dir, "cache"))
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0o644))

	cli, _ := newTestCLI()
	cli.SetArgs([]string{"-c", configPath, "mirror", "prj", "repo"})
	require.NoError(t, cli.Execute(context.Background()))
	require.FileExists(t, filepath.Join(dir, "cache", "prj", "repo", ".listing"))
}
