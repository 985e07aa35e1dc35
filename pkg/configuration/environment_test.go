package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadEnv_FallsBackToGoModRoot(t *testing.T) {
	tmp := t.TempDir()

	requireWriteFile(t, filepath.Join(tmp, "go.mod"), "module example.com/test\n\ngo 1.22\n")
	requireWriteFile(t, filepath.Join(tmp, ".env.local"), "JOBSBOARD_TEST_ENV_LOAD=ok\n")

	sub := filepath.Join(tmp, "pkg", "crud")
	requireMkdirAll(t, sub)

	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(sub); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	_ = os.Unsetenv("JOBSBOARD_TEST_ENV_LOAD")

	n, err := LoadEnv([]string{".env", ".env.local"})
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 env file loaded, got %d", n)
	}
	if got := os.Getenv("JOBSBOARD_TEST_ENV_LOAD"); got != "ok" {
		t.Fatalf("expected env var loaded from repo root, got %q", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_URL", "https://api.example.com/")
	t.Setenv("GO_APP_ENV", "development")

	conf, err := Load()
	require.NoError(t, err)
	t.Cleanup(conf.Unload)

	require.Equal(t, "https://api.example.com", conf.API.URL)
	require.Equal(t, 60*time.Second, conf.API.Timeout)
	require.Equal(t, 7*24*time.Hour, conf.Session.Duration)
	require.Equal(t, "token", conf.Session.CookieKey)
	require.Equal(t, "localhost:3000", conf.SocketAddress)
	require.NotNil(t, conf.Logger())
}

func TestLoad_RejectsInvalidOptions(t *testing.T) {
	cases := map[string]map[string]string{
		"relative api url":      {"API_URL": "/api"},
		"unsupported scheme":    {"API_URL": "ftp://api.example.com"},
		"redis without url":     {"RATE_LIMIT_STORAGE": "redis"},
		"unknown view storage":  {"VIEW_STATE_STORAGE": "disk"},
		"non-positive view ttl": {"VIEW_STATE_TTL": "0s"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func requireWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func requireMkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}
