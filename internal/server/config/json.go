package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/jobmatch/internal/flagx"
	"github.com/dmitrijs2005/jobmatch/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations
// accept both "24h" style strings and integer nanoseconds.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	FrontendURL                 string         `json:"frontend_url"`
	Environment                 string         `json:"environment"`
	MaxUploadSize               int64          `json:"max_upload_size"`
}

// parseJson overlays cfg with the file named by -c/-config. Empty fields in
// the file keep the current values. A missing or malformed file panics.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointAddr != "" {
		cfg.EndpointAddr = jc.EndpointAddr
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.AccessTokenValidityDuration.Duration > 0 {
		cfg.AccessTokenValidityDuration = jc.AccessTokenValidityDuration.Duration
	}
	if jc.FrontendURL != "" {
		cfg.FrontendURL = jc.FrontendURL
	}
	if jc.Environment != "" {
		cfg.Environment = jc.Environment
	}
	if jc.MaxUploadSize > 0 {
		cfg.MaxUploadSize = jc.MaxUploadSize
	}
}
