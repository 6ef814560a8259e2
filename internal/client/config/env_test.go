package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_OverlaysVariables(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	t.Setenv(EnvAPIURL, "https://api.example.com/api")
	t.Setenv(EnvAIServiceURL, "https://ai.example.com")
	t.Setenv(EnvInternalAPIURL, "http://backend:8080/api")
	t.Setenv(EnvInternalAIServiceURL, "http://ai:8001")
	t.Setenv(EnvServerSide, "true")
	t.Setenv(EnvAppEnv, "production")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://api.example.com/api", cfg.APIURL)
	assert.Equal(t, "https://ai.example.com", cfg.AIServiceURL)
	assert.Equal(t, "http://backend:8080/api", cfg.InternalAPIURL)
	assert.Equal(t, "http://ai:8001", cfg.InternalAIServiceURL)
	assert.True(t, cfg.ServerSide)
	assert.Equal(t, "production", cfg.Environment)
}

func TestParseEnv_LoadsDotenvFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("JOBMATCH_SESSION_DSN=/tmp/from-dotenv.db\n"), 0o600))
	os.Args = []string{"testbin", "-env", path}
	t.Setenv(EnvSessionDSN, "")
	require.NoError(t, os.Unsetenv(EnvSessionDSN))

	cfg := &Config{SessionDSN: "default.db"}
	parseEnv(cfg)

	assert.Equal(t, "/tmp/from-dotenv.db", cfg.SessionDSN)
}

func TestParseEnv_MissingEnvFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-env", filepath.Join(t.TempDir(), "absent.env")}

	require.Panics(t, func() { parseEnv(&Config{}) })
}

func TestParseEnv_BadServerSidePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Setenv(EnvServerSide, "maybe")

	require.Panics(t, func() { parseEnv(&Config{}) })
}
