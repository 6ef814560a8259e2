package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/jobmatch/internal/client/api"
	"github.com/dmitrijs2005/jobmatch/internal/client/config"
	"github.com/dmitrijs2005/jobmatch/internal/client/repositories/session"
	"github.com/dmitrijs2005/jobmatch/internal/client/services"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
)

type App struct {
	config    *config.Config
	endpoints *api.Endpoints
	log       logging.Logger

	authService        services.AuthService
	jobService         services.JobService
	resumeService      services.ResumeService
	userService        services.UserService
	applicationService services.ApplicationService
	checker            *api.ConnectionChecker

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the session database and builds every service on top of a
// single API client. Call Close when done.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.InitDatabase(ctx, c.SessionDSN)
	if err != nil {
		return nil, fmt.Errorf("init session store: %w", err)
	}
	store := session.NewSQLiteStore(db)

	endpoints := api.NewEndpoints(c.Resolve())
	client := api.New(c.RequestTimeout,
		api.WithTokenSource(services.TokenSource(store)),
		api.WithLogger(log),
		api.WithDiagnostics(!c.IsProduction()),
	)

	return &App{
		config:    c,
		endpoints: endpoints,
		log:       log,

		authService:        services.NewAuthService(client, endpoints, store, log),
		jobService:         services.NewJobService(client, endpoints),
		resumeService:      services.NewResumeService(client, endpoints),
		userService:        services.NewUserService(client, endpoints, store, log),
		applicationService: services.NewApplicationService(client, endpoints),
		checker:            api.NewConnectionChecker(c.ConnectionCheckTimeout),

		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to JobMatch CLI (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.IsAuthenticated(ctx)
}

// status renders the prompt suffix, e.g. " (ann@example.org JOB_SEEKER)".
func (a *App) status(ctx context.Context) string {
	if !a.isLoggedIn(ctx) {
		return ""
	}
	u, err := a.authService.StoredUser(ctx)
	if err != nil || u == nil {
		return " (signed in)"
	}
	return fmt.Sprintf(" (%s %s)", u.Email, u.Role)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}
