package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080/api", c.APIURL)
	assert.Equal(t, "http://localhost:8001", c.AIServiceURL)
	assert.Equal(t, "development", c.Environment)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 5*time.Second, c.ConnectionCheckTimeout)
	assert.False(t, c.ServerSide)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8080/api", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want BaseURLs
	}{
		{
			name: "client side ignores internal URLs",
			cfg: Config{
				APIURL: "https://api.example.com/api", AIServiceURL: "https://ai.example.com",
				InternalAPIURL: "http://backend:8080/api", InternalAIServiceURL: "http://ai:8001",
			},
			want: BaseURLs{API: "https://api.example.com/api", AIService: "https://ai.example.com"},
		},
		{
			name: "server side prefers internal URLs",
			cfg: Config{
				ServerSide: true,
				APIURL:     "https://api.example.com/api", AIServiceURL: "https://ai.example.com",
				InternalAPIURL: "http://backend:8080/api", InternalAIServiceURL: "http://ai:8001",
			},
			want: BaseURLs{API: "http://backend:8080/api", AIService: "http://ai:8001"},
		},
		{
			name: "server side without internal URLs falls back to public",
			cfg:  Config{ServerSide: true, APIURL: "https://api.example.com/api/", AIServiceURL: "https://ai.example.com"},
			want: BaseURLs{API: "https://api.example.com/api", AIService: "https://ai.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Resolve())
		})
	}
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Environment: "production"}).IsProduction())
	assert.False(t, (&Config{Environment: "development"}).IsProduction())
}
