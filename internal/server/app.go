// Package server initializes and runs the JobMatch development API server.
// It wires in-memory storage into the services, handles graceful shutdown
// on OS signals and serves the REST API.
package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/dmitrijs2005/jobmatch/internal/server/applications"
	"github.com/dmitrijs2005/jobmatch/internal/server/config"
	"github.com/dmitrijs2005/jobmatch/internal/server/jobs"
	"github.com/dmitrijs2005/jobmatch/internal/server/rest"
	"github.com/dmitrijs2005/jobmatch/internal/server/resumes"
	"github.com/dmitrijs2005/jobmatch/internal/server/shared/db"
	"github.com/dmitrijs2005/jobmatch/internal/server/users"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	services rest.Services
	metrics  *rest.Metrics
}

func NewApp(c *config.Config, logger logging.Logger) *App {
	rm := db.NewInMemoryRepositoryManager()

	js := jobs.NewService(rm.Jobs())
	services := rest.Services{
		Users:        users.NewService(rm.Users(), rm.RevokedTokens(), c),
		Jobs:         js,
		Applications: applications.NewService(rm.Applications(), js),
		Resumes:      resumes.NewService(rm.Resumes(), c.MaxUploadSize),
	}

	return &App{config: c, logger: logger, services: services, metrics: rest.NewMetrics()}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	router := rest.NewRouter(app.config, app.logger, app.services, app.metrics)
	s := rest.NewServer(app.config.EndpointAddr, router, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until the server stops, either on a signal or on parent
// context cancellation.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "env", app.config.Environment)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
