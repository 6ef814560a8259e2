package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App implements
// it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	ResumeLogin(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Jobs(ctx context.Context, args []string) error
	Job(ctx context.Context, args []string) error
	Search(ctx context.Context) error
	PostJob(ctx context.Context) error
	DeleteJob(ctx context.Context, args []string) error
	Match(ctx context.Context, args []string) error

	Resumes(ctx context.Context) error
	Upload(ctx context.Context, args []string) error
	Analyze(ctx context.Context, args []string) error
	Parse(ctx context.Context, args []string) error

	Profile(ctx context.Context) error
	Applications(ctx context.Context) error
	Apply(ctx context.Context, args []string) error

	Status(ctx context.Context) error
	ShowConfig(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: register, login, resumelogin, jobs [keyword], job <id>, search, parse <path>, status, config, exit"
	helpMember = "Available commands: whoami, profile, jobs [keyword], job <id>, search, postjob, deletejob <id>, match <path>, " +
		"resumes, upload <path>, analyze <path>, parse <path>, applications, apply <jobId>, status, config, logout, exit"
)

// runREPL reads commands from reader until EOF or "exit"/"quit".
//
// The first token of each line selects the command; the remaining tokens
// are passed on as arguments. A command error is printed and the loop goes
// on with the next line.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("jobmatch%s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn(ctx) {
			printlnFn(helpMember)
		} else {
			printlnFn(helpGuest)
		}
		return nil

	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "resumelogin":
		return a.ResumeLogin(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)

	case "jobs", "l":
		return a.Jobs(ctx, args)
	case "job":
		return a.Job(ctx, args)
	case "search":
		return a.Search(ctx)
	case "postjob":
		return a.PostJob(ctx)
	case "deletejob":
		return a.DeleteJob(ctx, args)
	case "match":
		return a.Match(ctx, args)

	case "resumes":
		return a.Resumes(ctx)
	case "upload":
		return a.Upload(ctx, args)
	case "analyze":
		return a.Analyze(ctx, args)
	case "parse":
		return a.Parse(ctx, args)

	case "profile":
		return a.Profile(ctx)
	case "applications":
		return a.Applications(ctx)
	case "apply":
		return a.Apply(ctx, args)

	case "status":
		return a.Status(ctx)
	case "config":
		return a.ShowConfig(ctx)

	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}
