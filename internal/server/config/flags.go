package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-f string   frontend origin allowed by CORS
//	-e string   environment name
//	-m int      maximum upload size, bytes
//
// Only recognised flags are passed to the FlagSet, see flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-f", "-e", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port to run server")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	validity := fs.Int("t", int(cfg.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	fs.StringVar(&cfg.FrontendURL, "f", cfg.FrontendURL, "frontend origin")
	fs.StringVar(&cfg.Environment, "e", cfg.Environment, "environment name")
	fs.Int64Var(&cfg.MaxUploadSize, "m", cfg.MaxUploadSize, "maximum upload size (in bytes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AccessTokenValidityDuration = time.Duration(*validity) * time.Minute
}
