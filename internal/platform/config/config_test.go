package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "ERROR", cfg.Log.Level)
	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, 30*time.Second, cfg.Browser.Timeout)
	assert.Equal(t, 10, cfg.LinkCheck.Concurrency)
	assert.Equal(t, 10*time.Second, cfg.LinkCheck.Timeout)
	assert.Equal(t, 5, cfg.GitHub.RecentLimit)
	assert.Equal(t, "appwrite", cfg.GitHub.Owner)

	assert.Equal(t, "production", cfg.Environment.Name)
	assert.Equal(t, "https://pocketaces2.github.io/fashionhub/", cfg.Environment.HomeURL)
	assert.Equal(t, "https://pocketaces2.github.io/fashionhub/login.html", cfg.Environment.BaseURL)
	assert.Equal(t, "demouser", cfg.Environment.Credentials.Username)
	assert.Equal(t, "testUser!", cfg.Environment.Credentials.Account)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TEST_ENV", "local")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LINK_CHECK_CONCURRENCY", "4")
	t.Setenv("LINK_CHECK_TIMEOUT", "5s")
	t.Setenv("LINK_CHECK_RPS", "2.5")
	t.Setenv("BROWSER_HEADLESS", "false")
	t.Setenv("GITHUB_TOKEN", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Environment.Name)
	assert.Equal(t, "http://localhost:4000/fashionhub/", cfg.Environment.HomeURL)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.Equal(t, 4, cfg.LinkCheck.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.LinkCheck.Timeout)
	assert.InDelta(t, 2.5, cfg.LinkCheck.RequestsPerSecond, 0.0001)
	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, "secret", cfg.GitHub.Token)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "port not a number", key: "PORT", value: "http", wantErr: errInvalidPort},
		{name: "port out of range", key: "PORT", value: "70000", wantErr: errInvalidPort},
		{name: "zero concurrency", key: "LINK_CHECK_CONCURRENCY", value: "0", wantErr: errConcurrencyOutOfRange},
		{name: "huge concurrency", key: "LINK_CHECK_CONCURRENCY", value: "101", wantErr: errConcurrencyOutOfRange},
		{name: "timeout too short", key: "LINK_CHECK_TIMEOUT", value: "100ms", wantErr: errTimeoutOutOfRange},
		{name: "timeout too long", key: "LINK_CHECK_TIMEOUT", value: "2m", wantErr: errTimeoutOutOfRange},
		{name: "negative rate", key: "LINK_CHECK_RPS", value: "-1", wantErr: errNegativeRate},
		{name: "recent limit", key: "GITHUB_RECENT_LIMIT", value: "0", wantErr: errRecentLimit},
		{name: "unknown environment", key: "TEST_ENV", value: "qa", wantErr: errUnknownEnvironment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_EnvironmentsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "envs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
fixture:
  base_url: http://127.0.0.1:9999/fashionhub/login.html
  home_url: http://127.0.0.1:9999/fashionhub/
  credentials:
    username: alice
    password: pw
    account: Alice
`), 0o600))

	t.Setenv("ENVIRONMENTS_FILE", path)
	t.Setenv("TEST_ENV", "fixture")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fixture", cfg.Environment.Name)
	assert.Equal(t, "alice", cfg.Environment.Credentials.Username)
}

func TestParseEnvironments_Invalid(t *testing.T) {
	_, err := ParseEnvironments([]byte("local: [not, a, map"))
	assert.Error(t, err)
}

func TestEnvironments_LookupListsKnownNames(t *testing.T) {
	envs, err := LoadEnvironments("")
	require.NoError(t, err)

	_, err = envs.Lookup("nope")
	require.ErrorIs(t, err, errUnknownEnvironment)
	assert.Contains(t, err.Error(), "[local production stage]")
}
