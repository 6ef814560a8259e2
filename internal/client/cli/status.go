package cli

import (
	"context"

	"github.com/dmitrijs2005/jobmatch/internal/client/api"
)

// Status probes the API and the AI service.
func (a *App) Status(ctx context.Context) error {
	report := a.checker.Check(ctx, a.endpoints)
	a.printCheck("API", report.Backend)
	a.printCheck("AI service", report.AIService)
	return nil
}

func (a *App) printCheck(name string, c api.ServiceCheck) {
	if c.TimeMs > 0 {
		a.printf("%-11s %-8s %s (%dms)\n", name+":", c.Status, c.Message, c.TimeMs)
		return
	}
	a.printf("%-11s %-8s %s\n", name+":", c.Status, c.Message)
}

// ShowConfig prints the resolved endpoints and settings. The session token
// is never shown.
func (a *App) ShowConfig(ctx context.Context) error {
	token := "(none)"
	if a.isLoggedIn(ctx) {
		token = "[REDACTED]"
	}
	a.printf("Environment:     %s\n", a.config.Environment)
	a.printf("Server side:     %t\n", a.config.ServerSide)
	a.printf("API base URL:    %s\n", a.endpoints.APIBase)
	a.printf("AI service URL:  %s\n", a.endpoints.AIBase)
	a.printf("Session store:   %s\n", a.config.SessionDSN)
	a.printf("Request timeout: %s\n", a.config.RequestTimeout)
	a.printf("Session token:   %s\n", token)
	return nil
}
