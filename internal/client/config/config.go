package config

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/logging"
)

// Config holds runtime settings for the JobMatch CLI.
//
// Public URLs are what a user-facing client talks to; internal URLs are the
// container-network equivalents, used only when ServerSide is set.
type Config struct {
	APIURL                 string
	AIServiceURL           string
	InternalAPIURL         string
	InternalAIServiceURL   string
	ServerSide             bool
	Environment            string
	SessionDSN             string
	RequestTimeout         time.Duration
	ConnectionCheckTimeout time.Duration
}

// BaseURLs is the outcome of resolving public vs internal addresses.
type BaseURLs struct {
	API       string
	AIService string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:8080/api"
	c.AIServiceURL = "http://localhost:8001"
	c.Environment = "development"
	c.SessionDSN = ".jobmatch/session.db"
	c.RequestTimeout = 30 * time.Second
	c.ConnectionCheckTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Resolve picks the base URLs once. Internal URLs win only when running
// server side and they are configured.
func (c *Config) Resolve() BaseURLs {
	api := c.APIURL
	if c.ServerSide && c.InternalAPIURL != "" {
		api = c.InternalAPIURL
	}
	ai := c.AIServiceURL
	if c.ServerSide && c.InternalAIServiceURL != "" {
		ai = c.InternalAIServiceURL
	}
	return BaseURLs{
		API:       strings.TrimRight(api, "/"),
		AIService: strings.TrimRight(ai, "/"),
	}
}

// IsProduction reports whether request diagnostics must stay quiet.
func (c *Config) IsProduction() bool {
	return c.Environment == logging.EnvProduction
}
