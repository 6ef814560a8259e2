package applications

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/models"
	"github.com/dmitrijs2005/jobmatch/internal/server/auth"
)

// JobLookup resolves the posting an application refers to.
type JobLookup interface {
	Get(ctx context.Context, id int64) (*models.Job, error)
}

var ErrAlreadyApplied = fmt.Errorf("%w: already applied", common.ErrAlreadyExists)

type Service struct {
	repo Repository
	jobs JobLookup
}

func NewService(repo Repository, jobs JobLookup) *Service {
	return &Service{repo: repo, jobs: jobs}
}

// List returns the caller's own applications, or for a recruiter the
// applications received by their postings.
func (s *Service) List(ctx context.Context, caller auth.Caller) ([]models.Application, error) {
	return s.repo.List(ctx, func(a *models.Application) bool {
		if a.ApplicantEmail == caller.Email {
			return true
		}
		return caller.IsRecruiter() && s.postedBy(ctx, a.JobID, caller.Email)
	})
}

func (s *Service) postedBy(ctx context.Context, jobID int64, email string) bool {
	job, err := s.jobs.Get(ctx, jobID)
	return err == nil && job.RecruiterEmail == email
}

func (s *Service) Create(ctx context.Context, caller auth.Caller, req *models.ApplicationCreateRequest) (*models.Application, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	job, err := s.jobs.Get(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.List(ctx, func(a *models.Application) bool {
		return a.JobID == req.JobID && a.ApplicantEmail == caller.Email && a.Status != models.StatusWithdrawn
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrAlreadyApplied
	}

	return s.repo.Create(ctx, &models.Application{
		JobID:          job.ID,
		JobTitle:       job.Title,
		Company:        job.Company,
		ApplicantEmail: caller.Email,
		Status:         models.StatusApplied,
		CoverLetter:    req.CoverLetter,
		ResumeID:       req.ResumeID,
	})
}

// Get is allowed to the applicant and to the recruiter who posted the job.
func (s *Service) Get(ctx context.Context, caller auth.Caller, id int64) (*models.Application, error) {
	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.ApplicantEmail != caller.Email && !s.postedBy(ctx, app.JobID, caller.Email) {
		return nil, common.ErrForbidden
	}
	return app, nil
}

// Update moves an application to a new status. The posting recruiter may
// set any status; the applicant may only withdraw.
func (s *Service) Update(ctx context.Context, caller auth.Caller, id int64, req *models.ApplicationUpdateRequest) (*models.Application, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case s.postedBy(ctx, app.JobID, caller.Email):
	case app.ApplicantEmail == caller.Email:
		if req.Status != models.StatusWithdrawn {
			return nil, common.ErrForbidden
		}
	default:
		return nil, common.ErrForbidden
	}

	app.Status = req.Status
	if req.CoverLetter != "" {
		app.CoverLetter = req.CoverLetter
	}
	return s.repo.Update(ctx, app)
}
