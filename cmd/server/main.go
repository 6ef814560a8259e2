package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/jobmatch/internal/buildinfo"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/dmitrijs2005/jobmatch/internal/server"
	"github.com/dmitrijs2005/jobmatch/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stdout, cfg.Environment)

	app := server.NewApp(cfg, logger)
	app.Run(ctx)
}
