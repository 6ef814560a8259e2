// Package config handles configuration for the development API server,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/logging"
)

// Config holds runtime settings for the JobMatch API server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default outside development.
//   - AccessTokenValidityDuration: lifetime of issued tokens.
//   - FrontendURL: origin of the web frontend, always allowed by CORS.
//   - Environment: "production" switches gin to release mode and logging to info.
//   - MaxUploadSize: upper bound for a resume upload, in bytes.
type Config struct {
	EndpointAddr                string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	FrontendURL                 string
	Environment                 string
	MaxUploadSize               int64
}

// LoadDefaults populates Config with development defaults.
// NOTE: these values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 24 * time.Hour
	c.FrontendURL = "http://localhost:3000"
	c.Environment = "development"
	c.MaxUploadSize = 10 << 20
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Environment == logging.EnvProduction
}
