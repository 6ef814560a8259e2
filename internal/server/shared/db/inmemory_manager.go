package db

import (
	"github.com/dmitrijs2005/jobmatch/internal/server/applications"
	"github.com/dmitrijs2005/jobmatch/internal/server/jobs"
	"github.com/dmitrijs2005/jobmatch/internal/server/resumes"
	"github.com/dmitrijs2005/jobmatch/internal/server/revokedtokens"
	"github.com/dmitrijs2005/jobmatch/internal/server/users"
)

// InMemoryRepositoryManager keeps all server state in process memory; it
// is lost on restart.
type InMemoryRepositoryManager struct {
	users         *users.MemoryRepository
	revokedTokens *revokedtokens.MemoryRepository
	jobs          *jobs.MemoryRepository
	applications  *applications.MemoryRepository
	resumes       *resumes.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:         users.NewMemoryRepository(),
		revokedTokens: revokedtokens.NewMemoryRepository(),
		jobs:          jobs.NewMemoryRepository(),
		applications:  applications.NewMemoryRepository(),
		resumes:       resumes.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) RevokedTokens() revokedtokens.Repository {
	return m.revokedTokens
}

func (m *InMemoryRepositoryManager) Jobs() jobs.Repository {
	return m.jobs
}

func (m *InMemoryRepositoryManager) Applications() applications.Repository {
	return m.applications
}

func (m *InMemoryRepositoryManager) Resumes() resumes.Repository {
	return m.resumes
}
