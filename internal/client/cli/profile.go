package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/jobmatch/internal/models"
)

func (a *App) Profile(ctx context.Context) error {
	p, err := a.userService.Profile(ctx)
	if err != nil {
		return err
	}
	a.printf("%s %s <%s> [%s]\n", p.FirstName, p.LastName, p.Email, p.Role)
	if p.Title != "" {
		a.printf("Title:      %s\n", p.Title)
	}
	if len(p.Skills) > 0 {
		a.printf("Skills:     %s\n", strings.Join(p.Skills, ", "))
	}
	for _, e := range p.Experience {
		a.printf("Experience: %s\n", e)
	}
	for _, e := range p.Education {
		a.printf("Education:  %s\n", e)
	}
	return nil
}

func (a *App) Applications(ctx context.Context) error {
	apps, err := a.applicationService.List(ctx)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		a.printf("No applications yet.\n")
		return nil
	}
	for _, app := range apps {
		a.printf("#%d  job #%d %s at %s: %s (applied %s)\n",
			app.ID, app.JobID, app.JobTitle, app.Company, app.Status, app.AppliedAt.Format("2006-01-02"))
	}
	return nil
}

func (a *App) Apply(ctx context.Context, args []string) error {
	jobID, err := parseID(args, "apply <jobId>")
	if err != nil {
		return err
	}
	req := models.ApplicationCreateRequest{JobID: jobID}

	if req.CoverLetter, err = GetMultiline(a.reader, "Cover letter (optional)", a.out); err != nil {
		return err
	}
	resume, err := a.ask("Resume id (optional)")
	if err != nil {
		return err
	}
	if resume != "" {
		id, err := parseID([]string{resume}, "resume id must be a number")
		if err != nil {
			return err
		}
		req.ResumeID = &id
	}

	app, err := a.applicationService.Create(ctx, req)
	if err != nil {
		return err
	}
	a.printf("Application #%d submitted: %s\n", app.ID, app.Status)
	return nil
}
