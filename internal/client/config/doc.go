// Package config loads runtime configuration for the JobMatch CLI client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJson).
//  3. Environment variables, after loading an optional dotenv file
//     (.env in the working directory, or the file named by -env).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   public API base URL
//	-ai string  public AI service base URL
//	-e string   environment name ("production" disables request diagnostics)
//	-d string   session store DSN (SQLite file path, ":memory:" for none)
//	-t int      request timeout (seconds)
//
// Environment variables
//
//	NEXT_PUBLIC_API_URL, NEXT_PUBLIC_AI_SERVICE_URL   public base URLs
//	INTERNAL_API_URL, INTERNAL_AI_SERVICE_URL         container-network base URLs
//	JOBMATCH_SERVER_SIDE                              "true" prefers internal URLs
//	JOBMATCH_SESSION_DSN                              session store DSN
//	APP_ENV                                           environment name
//
// # JSON schema
//
//	{
//	  "api_url": "http://localhost:8080/api",
//	  "ai_service_url": "http://localhost:8001",
//	  "internal_api_url": "http://backend:8080/api",
//	  "internal_ai_service_url": "http://ai:8001",
//	  "server_side": false,
//	  "environment": "development",
//	  "session_dsn": ".jobmatch/session.db",
//	  "request_timeout": "30s",
//	  "connection_check_timeout": "5s"
//	}
//
// The base URLs are resolved exactly once, by (*Config).Resolve, and the
// result is handed to the API client; nothing else re-reads the environment.
package config
