package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/dmitrijs2005/jobmatch/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIURL               = "NEXT_PUBLIC_API_URL"
	EnvAIServiceURL         = "NEXT_PUBLIC_AI_SERVICE_URL"
	EnvInternalAPIURL       = "INTERNAL_API_URL"
	EnvInternalAIServiceURL = "INTERNAL_AI_SERVICE_URL"
	EnvServerSide           = "JOBMATCH_SERVER_SIDE"
	EnvSessionDSN           = "JOBMATCH_SESSION_DSN"
	EnvAppEnv               = "APP_ENV"
)

// parseEnv loads a dotenv file into the process environment (variables that
// are already set win) and then overlays Config with the known variables.
// A missing default .env is fine; a missing file named by -env panics.
func parseEnv(cfg *Config) {
	if file := flagx.EnvFile(); file != "" {
		if err := godotenv.Load(file); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	setString(&cfg.APIURL, os.Getenv(EnvAPIURL))
	setString(&cfg.AIServiceURL, os.Getenv(EnvAIServiceURL))
	setString(&cfg.InternalAPIURL, os.Getenv(EnvInternalAPIURL))
	setString(&cfg.InternalAIServiceURL, os.Getenv(EnvInternalAIServiceURL))
	setString(&cfg.SessionDSN, os.Getenv(EnvSessionDSN))
	setString(&cfg.Environment, os.Getenv(EnvAppEnv))

	if v := os.Getenv(EnvServerSide); v != "" {
		serverSide, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		cfg.ServerSide = serverSide
	}
}
