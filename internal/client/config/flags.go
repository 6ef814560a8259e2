package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   public API base URL
//	-ai string  public AI service base URL
//	-e string   environment name
//	-d string   session store DSN
//	-t int      request timeout in seconds
//
// The function filters os.Args down to the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-ai", "-e", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "public API base URL")
	fs.StringVar(&cfg.AIServiceURL, "ai", cfg.AIServiceURL, "public AI service base URL")
	fs.StringVar(&cfg.Environment, "e", cfg.Environment, "environment name")
	fs.StringVar(&cfg.SessionDSN, "d", cfg.SessionDSN, "session store DSN")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
