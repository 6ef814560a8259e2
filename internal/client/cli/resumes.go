package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/jobmatch/internal/models"
)

var openFile = func(path string) (io.ReadCloser, error) { return os.Open(path) }

func baseName(path string) string { return filepath.Base(path) }

func (a *App) Resumes(ctx context.Context) error {
	list, err := a.resumeService.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.printf("No resumes uploaded.\n")
		return nil
	}
	for _, r := range list {
		a.printf("#%d  %s (%d bytes, uploaded %s)\n", r.ID, r.FileName, r.FileSize, r.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w, usage: upload <path>", errUsage)
	}
	f, err := openFile(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	resp, err := a.resumeService.Upload(ctx, baseName(args[0]), f)
	if err != nil {
		return err
	}
	a.printf("%s: resume #%d (%s)\n", resp.Message, resp.Resume.ID, resp.Resume.FileName)
	return nil
}

// Analyze sends a plain-text resume to the AI service.
func (a *App) Analyze(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w, usage: analyze <path>", errUsage)
	}
	text, err := readFile(args[0])
	if err != nil {
		return err
	}
	res, err := a.resumeService.AnalyzeText(ctx, string(text), baseName(args[0]))
	if err != nil {
		return err
	}

	if res.Name != "" {
		a.printf("Name:       %s\n", res.Name)
	}
	a.printf("Email:      %s\n", res.Email)
	a.printf("Phone:      %s\n", res.Phone)
	a.printf("Skills:     %s\n", strings.Join(res.Skills, ", "))
	a.printf("Experience: %s\n", res.Experience)
	if len(res.Education) > 0 {
		a.printf("Education:  %s\n", strings.Join(res.Education, "; "))
	}
	if res.ATSScore != nil {
		a.printf("ATS score:  %d\n", *res.ATSScore)
	}
	if res.Summary != "" {
		a.printf("\n%s\n", res.Summary)
	}
	return nil
}

// Parse sends a resume file to the AI service. A signed-out user whose
// resume carries an email is offered a resume-based sign in.
func (a *App) Parse(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w, usage: parse <path>", errUsage)
	}
	f, err := openFile(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := a.resumeService.ParseFile(ctx, baseName(args[0]), f)
	if err != nil {
		return err
	}

	if res.Name != "" {
		a.printf("Name:       %s\n", res.Name)
	}
	if res.Title != "" {
		a.printf("Title:      %s\n", res.Title)
	}
	a.printf("Email:      %s\n", res.Email)
	a.printf("Skills:     %s\n", strings.Join(res.Skills, ", "))
	a.printf("ATS score:  %d (confidence %.2f)\n", res.ATSScore, res.ConfidenceScore)

	if res.Email == "" || a.isLoggedIn(ctx) {
		return nil
	}
	answer, err := a.ask(fmt.Sprintf("Sign in as %s? [y/N]", res.Email))
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		return nil
	}
	first, last := splitName(res.Name)
	return a.resumeLogin(ctx, models.ResumeLoginRequest{Email: res.Email, FirstName: first, LastName: last})
}

func splitName(name string) (first, last string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}
