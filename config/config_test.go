package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"DISCORD_TOKEN", "DISCORD_API_URL", "DISCORD_CDN_URL", "HTTP_TIMEOUT", "ENV", "EXIT_ON_ERROR"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadReadsTokenFromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{"token": "abc.def.ghi"}`)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc.def.ghi", conf.Token)
	assert.Equal(t, "https://discord.com/api/v10", conf.APIBaseURL)
	assert.Equal(t, "https://cdn.discordapp.com", conf.CDNBaseURL)
	assert.Equal(t, 15*time.Second, conf.HTTPTimeout)
	assert.Equal(t, "local", conf.Env)
	assert.False(t, conf.ExitOnError)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "from-env")
	t.Setenv("DISCORD_API_URL", "http://127.0.0.1:9999/api/v10/")
	t.Setenv("DISCORD_CDN_URL", "http://127.0.0.1:9999")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("EXIT_ON_ERROR", "true")

	// the file is never read when the token comes from the environment
	conf, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", conf.Token)
	assert.Equal(t, "http://127.0.0.1:9999/api/v10", conf.APIBaseURL)
	assert.Equal(t, "http://127.0.0.1:9999", conf.CDNBaseURL)
	assert.Equal(t, 2*time.Second, conf.HTTPTimeout)
	assert.True(t, conf.ExitOnError)
}

func TestLoadCredentialErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents *string
	}{
		{name: "missing file"},
		{name: "malformed json", contents: strPtr(`{"token": `)},
		{name: "empty token", contents: strPtr(`{"token": "  "}`)},
		{name: "wrong type", contents: strPtr(`{"token": 42}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := filepath.Join(t.TempDir(), "config.json")
			if tt.contents != nil {
				path = writeConfig(t, *tt.contents)
			}

			conf, err := Load(path)
			assert.Nil(t, conf)

			var credErr *CredentialLoadError
			require.True(t, errors.As(err, &credErr), "got %v", err)
			assert.Equal(t, path, credErr.Path)
		})
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "x")
	t.Setenv("HTTP_TIMEOUT", "soon")

	_, err := Load("config.json")
	assert.ErrorContains(t, err, "HTTP_TIMEOUT")
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development", filepath.Join(t.TempDir(), "logs", "dev.log"))
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production", filepath.Join(t.TempDir(), "prod.log"))
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(1))
	assert.False(t, l.Core().Enabled(0))
}

func TestSetLoggerSetsLocalLogger(t *testing.T) {
	l, err := setLogger("local", filepath.Join(t.TempDir(), "local.log"))
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(0))
	assert.False(t, l.Core().Enabled(-1))
}

func TestSetLoggerWithoutFileOnlyLogsErrors(t *testing.T) {
	l, err := setLogger("development", "")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(2))
	assert.False(t, l.Core().Enabled(1))
}

func strPtr(s string) *string { return &s }
