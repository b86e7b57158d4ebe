package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/urbanhive/urbanhive-client/internal/devserver"
)

// newEnv starts a development backend and writes a config pointing at it
func newEnv(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(devserver.NewHandler(devserver.NewBackend(zerolog.Nop()), nil, zerolog.Nop()))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	body := fmt.Sprintf(`discovery:
  bootstrap_host: 127.0.0.1
client:
  base_url: %s
  timeout: 5s
session:
  store: sqlite
  sqlite_path: %s
  signing_key: test-signing-key
logging:
  level: error
  format: json
`, server.URL, filepath.Join(dir, "session.db"))

	path := filepath.Join(dir, "urbanhive.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"urbanhive", "--config", configPath}, args...))
	return out.String(), err
}

func mustRun(t *testing.T, configPath string, args ...string) string {
	t.Helper()
	out, err := run(t, configPath, args...)
	if err != nil {
		t.Fatalf("%v failed: %v", args, err)
	}
	return out
}

func TestSessionLifecycle(t *testing.T) {
	cfg := newEnv(t)

	if _, err := run(t, cfg, "whoami"); err == nil {
		t.Fatal("Expected whoami to fail before login")
	}

	out := mustRun(t, cfg, "register", "--id", "123456789", "--name", "Ava", "--email", "ava@example.com", "--password", "secret1", "--address", "Main St")
	if !strings.Contains(out, "Account created successfully") {
		t.Errorf("register output = %q", out)
	}

	out = mustRun(t, cfg, "login", "--id", "123456789", "--password", "secret1")
	if !strings.Contains(out, "Welcome, Ava") {
		t.Errorf("login output = %q", out)
	}

	out = mustRun(t, cfg, "whoami")
	if !strings.Contains(out, "123456789") || !strings.Contains(out, "Main St") {
		t.Errorf("whoami output = %q, expected id and address", out)
	}

	mustRun(t, cfg, "logout")
	if _, err := run(t, cfg, "whoami"); err == nil {
		t.Error("Expected whoami to fail after logout")
	}
}

func TestValidationFailsBeforeNetwork(t *testing.T) {
	cfg := newEnv(t)

	_, err := run(t, cfg, "register", "--id", "123", "--name", "Ava", "--email", "ava@example.com", "--password", "secret1")
	if err == nil {
		t.Fatal("Expected a validation error")
	}
	exit, ok := err.(cli.ExitCoder)
	if !ok || exit.ExitCode() != 1 {
		t.Errorf("Error = %v, expected exit code 1", err)
	}
}

func TestCommunityAndNightWatchFlow(t *testing.T) {
	cfg := newEnv(t)

	mustRun(t, cfg, "register", "--id", "111111111", "--name", "Ava", "--email", "ava@example.com", "--password", "secret1")
	mustRun(t, cfg, "login", "--id", "111111111", "--password", "secret1")

	mustRun(t, cfg, "communities", "create", "--lat", "32.08", "--lng", "34.78", "Downtown")

	out := mustRun(t, cfg, "communities", "list", "--search", "down")
	if !strings.Contains(out, "Downtown") {
		t.Errorf("list output = %q, expected Downtown", out)
	}

	out = mustRun(t, cfg, "watches", "list", "Downtown")
	if !strings.Contains(out, devserver.MsgNoFutureWatches) {
		t.Errorf("watches list output = %q, expected empty message", out)
	}

	mustRun(t, cfg, "watches", "create", "--community", "Downtown", "--date", "2099-01-01", "--positions", "1")
	if _, err := run(t, cfg, "watches", "create", "--community", "Downtown", "--date", "2099-01-01", "--positions", "1"); err == nil {
		t.Error("Expected a second watch on the same date to fail")
	}

	out = mustRun(t, cfg, "communities", "show", "Downtown")
	if !strings.Contains(out, "2099-01-01") || !strings.Contains(out, "0 / 1") {
		t.Errorf("show output = %q, expected the scheduled watch", out)
	}

	out = mustRun(t, cfg, "--json", "watches", "list", "Downtown")
	if !strings.Contains(out, `"positions_amount": 1`) {
		t.Errorf("json output = %q", out)
	}
}
