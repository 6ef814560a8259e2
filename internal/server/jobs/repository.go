// Package jobs stores job postings and enforces that only the posting
// recruiter may change them.
package jobs

import (
	"context"

	"github.com/dmitrijs2005/jobmatch/internal/models"
)

// Filter selects postings; empty fields match everything. Keyword is
// searched in title, description, company and skills.
type Filter struct {
	Keyword         string
	Location        string
	Company         string
	JobType         string
	ExperienceLevel string
}

type Repository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	Update(ctx context.Context, job *models.Job) (*models.Job, error)
	Get(ctx context.Context, id int64) (*models.Job, error)
	Delete(ctx context.Context, id int64) error
	// List returns one page of matches, newest first, and the total
	// number of matches.
	List(ctx context.Context, f Filter, offset, limit int) ([]models.Job, int64, error)
}
