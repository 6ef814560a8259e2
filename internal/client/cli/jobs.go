package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobmatch/internal/models"
)

// matchPoolSize bounds how many jobs are sent to the AI service for matching.
const matchPoolSize = 50

var errUsage = errors.New("invalid arguments")

func parseID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w, usage: %s", errUsage, usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid id, usage: %s", errUsage, args[0], usage)
	}
	return id, nil
}

// Jobs lists the first page of jobs, optionally filtered by keyword.
func (a *App) Jobs(ctx context.Context, args []string) error {
	filters := &models.JobSearchFilters{Keyword: strings.Join(args, " ")}
	page, err := a.jobService.List(ctx, filters)
	if err != nil {
		return err
	}
	a.printJobPage(page)
	return nil
}

func (a *App) Job(ctx context.Context, args []string) error {
	id, err := parseID(args, "job <id>")
	if err != nil {
		return err
	}
	job, err := a.jobService.Get(ctx, id)
	if err != nil {
		return err
	}
	a.printJob(job)
	return nil
}

func (a *App) Search(ctx context.Context) error {
	var f models.JobSearchFilters
	prompts := []struct {
		text string
		dst  *string
	}{
		{"Keyword (optional)", &f.Keyword},
		{"Location (optional)", &f.Location},
		{"Company (optional)", &f.Company},
		{"Job type: FULL_TIME, PART_TIME, CONTRACT, INTERNSHIP, REMOTE (optional)", &f.JobType},
		{"Experience level: ENTRY, MID, SENIOR, LEAD (optional)", &f.ExperienceLevel},
	}
	for _, p := range prompts {
		v, err := a.ask(p.text)
		if err != nil {
			return err
		}
		*p.dst = v
	}
	f.JobType = strings.ToUpper(f.JobType)
	f.ExperienceLevel = strings.ToUpper(f.ExperienceLevel)

	page, err := a.jobService.Search(ctx, f)
	if err != nil {
		return err
	}
	a.printJobPage(page)
	return nil
}

// PostJob walks a recruiter through creating a posting.
func (a *App) PostJob(ctx context.Context) error {
	var req models.JobCreateRequest
	var err error

	for _, p := range []struct {
		text string
		dst  *string
	}{
		{"Title", &req.Title},
		{"Company", &req.Company},
		{"Location", &req.Location},
		{"Job type: FULL_TIME, PART_TIME, CONTRACT, INTERNSHIP, REMOTE (optional)", &req.JobType},
		{"Experience level: ENTRY, MID, SENIOR, LEAD (optional)", &req.ExperienceLevel},
	} {
		if *p.dst, err = a.ask(p.text); err != nil {
			return err
		}
	}
	req.JobType = strings.ToUpper(req.JobType)
	req.ExperienceLevel = strings.ToUpper(req.ExperienceLevel)

	if req.SalaryMin, err = a.askAmount("Minimum salary (optional)"); err != nil {
		return err
	}
	if req.SalaryMax, err = a.askAmount("Maximum salary (optional)"); err != nil {
		return err
	}
	if req.Skills, err = GetList(a.reader, "Skills", a.out); err != nil {
		return err
	}
	if req.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	if req.Requirements, err = GetMultiline(a.reader, "Requirements (optional)", a.out); err != nil {
		return err
	}

	job, err := a.jobService.Create(ctx, req)
	if err != nil {
		return err
	}
	a.printf("Job #%d created.\n", job.ID)
	return nil
}

func (a *App) askAmount(prompt string) (*float64, error) {
	s, err := a.ask(prompt)
	if err != nil || s == "" {
		return nil, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", errUsage, s)
	}
	return &v, nil
}

func (a *App) DeleteJob(ctx context.Context, args []string) error {
	id, err := parseID(args, "deletejob <id>")
	if err != nil {
		return err
	}
	if err := a.jobService.Delete(ctx, id); err != nil {
		return err
	}
	a.printf("Job #%d deleted.\n", id)
	return nil
}

// Match reads a plain-text resume, lets the AI service extract skills from
// it, then ranks the current job listings against it.
func (a *App) Match(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w, usage: match <path>", errUsage)
	}
	text, err := readFile(args[0])
	if err != nil {
		return err
	}

	analysis, err := a.resumeService.AnalyzeText(ctx, string(text), baseName(args[0]))
	if err != nil {
		return err
	}
	page, err := a.jobService.List(ctx, &models.JobSearchFilters{Size: matchPoolSize})
	if err != nil {
		return err
	}
	if len(page.Content) == 0 {
		a.printf("No jobs to match against.\n")
		return nil
	}

	resp, err := a.jobService.Match(ctx, models.JobMatchRequest{
		ResumeText:    string(text),
		ResumeSkills:  analysis.Skills,
		AvailableJobs: page.Content,
	})
	if err != nil {
		return err
	}
	if len(resp.Matches) == 0 {
		a.printf("No matches found.\n")
		return nil
	}
	for _, m := range resp.Matches {
		a.printf("#%d %s at %s: %.0f%%\n", m.JobID, m.JobTitle, m.Company, m.MatchScore*100)
		if len(m.MatchingSkills) > 0 {
			a.printf("    matching: %s\n", strings.Join(m.MatchingSkills, ", "))
		}
		if len(m.MissingSkills) > 0 {
			a.printf("    missing:  %s\n", strings.Join(m.MissingSkills, ", "))
		}
		if m.Explanation != "" {
			a.printf("    %s\n", m.Explanation)
		}
	}
	return nil
}

func (a *App) printJobPage(page *models.JobPage) {
	if len(page.Content) == 0 {
		a.printf("No jobs found.\n")
		return
	}
	for _, j := range page.Content {
		a.printf("#%d  %s | %s | %s\n", j.ID, j.Title, j.Company, j.Location)
	}
	a.printf("Page %d of %d, %d jobs total.\n", page.CurrentPage+1, max(page.TotalPages, 1), page.TotalElements)
}

func (a *App) printJob(j *models.Job) {
	a.printf("#%d %s\n", j.ID, j.Title)
	a.printf("Company:    %s\n", j.Company)
	a.printf("Location:   %s\n", j.Location)
	if j.JobType != "" {
		a.printf("Type:       %s\n", j.JobType)
	}
	if j.ExperienceLevel != "" {
		a.printf("Level:      %s\n", j.ExperienceLevel)
	}
	if s := salaryRange(j.SalaryMin, j.SalaryMax); s != "" {
		a.printf("Salary:     %s\n", s)
	}
	if len(j.Skills) > 0 {
		a.printf("Skills:     %s\n", strings.Join(j.Skills, ", "))
	}
	a.printf("\n%s\n", j.Description)
	if j.Requirements != "" {
		a.printf("\nRequirements:\n%s\n", j.Requirements)
	}
}

func salaryRange(lo, hi *float64) string {
	switch {
	case lo != nil && hi != nil:
		return fmt.Sprintf("%.0f - %.0f", *lo, *hi)
	case lo != nil:
		return fmt.Sprintf("from %.0f", *lo)
	case hi != nil:
		return fmt.Sprintf("up to %.0f", *hi)
	}
	return ""
}

// readFile is a test seam over os.ReadFile.
var readFile = os.ReadFile
