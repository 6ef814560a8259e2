package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/jobmatch/internal/flagx"
	"github.com/dmitrijs2005/jobmatch/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Pointer and zero-valued fields are skipped when overlaying, so a file may
// set only what it cares about.
type JsonConfig struct {
	APIURL                 string         `json:"api_url"`
	AIServiceURL           string         `json:"ai_service_url"`
	InternalAPIURL         string         `json:"internal_api_url"`
	InternalAIServiceURL   string         `json:"internal_ai_service_url"`
	ServerSide             *bool          `json:"server_side"`
	Environment            string         `json:"environment"`
	SessionDSN             string         `json:"session_dsn"`
	RequestTimeout         timex.Duration `json:"request_timeout"`
	ConnectionCheckTimeout timex.Duration `json:"connection_check_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config. Without the flag nothing happens. Read or unmarshal errors
// panic; main is expected to treat a broken config file as fatal.
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

	setString(&cfg.APIURL, jc.APIURL)
	setString(&cfg.AIServiceURL, jc.AIServiceURL)
	setString(&cfg.InternalAPIURL, jc.InternalAPIURL)
	setString(&cfg.InternalAIServiceURL, jc.InternalAIServiceURL)
	setString(&cfg.Environment, jc.Environment)
	setString(&cfg.SessionDSN, jc.SessionDSN)
	if jc.ServerSide != nil {
		cfg.ServerSide = *jc.ServerSide
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.ConnectionCheckTimeout.Duration > 0 {
		cfg.ConnectionCheckTimeout = jc.ConnectionCheckTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
