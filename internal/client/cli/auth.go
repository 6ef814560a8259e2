package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readPassword() (string, error) {
	pw, err := getPassword(a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Register prompts for the account fields and creates the account. The
// new session is stored on success.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.Username, err = a.ask("Enter username"); err != nil {
		return err
	}
	if req.Email, err = a.ask("Enter email"); err != nil {
		return err
	}
	if req.Password, err = a.readPassword(); err != nil {
		return err
	}
	if req.FirstName, err = a.ask("Enter first name"); err != nil {
		return err
	}
	if req.LastName, err = a.ask("Enter last name"); err != nil {
		return err
	}
	role, err := a.ask("Role: (j)ob seeker or (r)ecruiter")
	if err != nil {
		return err
	}
	req.Role = parseRole(role)

	resp, err := a.authService.Register(ctx, req)
	if err != nil {
		return err
	}
	a.printf("Welcome, %s! Registered as %s.\n", resp.Email, resp.Role)
	return nil
}

func parseRole(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "recruiter", strings.ToLower(common.RoleRecruiter):
		return common.RoleRecruiter
	default:
		return common.RoleJobSeeker
	}
}

func (a *App) Login(ctx context.Context) error {
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	password, err := a.readPassword()
	if err != nil {
		return err
	}

	resp, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.printf("Login successful: %s (%s)\n", resp.Email, resp.Role)
	return nil
}

// ResumeLogin signs in by email only, creating a job seeker account on the
// server when the email is new.
func (a *App) ResumeLogin(ctx context.Context) error {
	var req models.ResumeLoginRequest
	var err error

	if req.Email, err = a.ask("Enter the email from your resume"); err != nil {
		return err
	}
	if req.FirstName, err = a.ask("First name (optional)"); err != nil {
		return err
	}
	if req.LastName, err = a.ask("Last name (optional)"); err != nil {
		return err
	}
	return a.resumeLogin(ctx, req)
}

func (a *App) resumeLogin(ctx context.Context, req models.ResumeLoginRequest) error {
	resp, err := a.authService.ResumeLogin(ctx, req)
	if err != nil {
		return err
	}
	a.printf("Signed in as %s (%s)\n", resp.Email, resp.Role)
	return nil
}

// Logout always ends the local session, whatever the server says.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.printf("Logged out.\n")
	return nil
}

// WhoAmI prints the stored user, then what the server knows.
func (a *App) WhoAmI(ctx context.Context) error {
	stored, err := a.authService.StoredUser(ctx)
	if err != nil {
		return err
	}
	if stored == nil {
		a.printf("Not signed in.\n")
		return nil
	}
	a.printf("Stored:  %s\n", describeUser(stored))

	current, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("server check failed: %w", err)
	}
	a.printf("Server:  %s\n", describeUser(current))
	return nil
}

func describeUser(u *models.User) string {
	s := u.Email + " [" + u.Role + "]"
	if name := u.FullName(); name != "" {
		s = name + " <" + s + ">"
	}
	if u.Username != "" {
		s += " @" + u.Username
	}
	return s
}
