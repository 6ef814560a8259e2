// Package db groups the server's repositories behind one manager so the
// application wires storage in a single place.
package db

import (
	"github.com/dmitrijs2005/jobmatch/internal/server/applications"
	"github.com/dmitrijs2005/jobmatch/internal/server/jobs"
	"github.com/dmitrijs2005/jobmatch/internal/server/resumes"
	"github.com/dmitrijs2005/jobmatch/internal/server/revokedtokens"
	"github.com/dmitrijs2005/jobmatch/internal/server/users"
)

type RepositoryManager interface {
	Users() users.Repository
	RevokedTokens() revokedtokens.Repository
	Jobs() jobs.Repository
	Applications() applications.Repository
	Resumes() resumes.Repository
}
