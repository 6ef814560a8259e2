// Package cli provides the interactive JobMatch command-line client.
//
// NewApp wires configuration, the SQLite session store, the API client and
// the typed services; App.Run starts a REPL that blocks until the user
// exits. A failed command prints its error and the loop carries on.
//
// Commands cover the session (register, login, resumelogin, logout,
// whoami), jobs (jobs, job, search, postjob, deletejob, match), resumes
// (resumes, upload, analyze, parse), the profile and applications, plus
// status and config for diagnostics.
package cli
