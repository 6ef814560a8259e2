package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/jobmatch/internal/client/api"
	"github.com/dmitrijs2005/jobmatch/internal/models"
)

type JobService interface {
	List(ctx context.Context, filters *models.JobSearchFilters) (*models.JobPage, error)
	Get(ctx context.Context, id int64) (*models.Job, error)
	Create(ctx context.Context, req models.JobCreateRequest) (*models.Job, error)
	Update(ctx context.Context, id int64, req models.JobUpdateRequest) (*models.Job, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filters models.JobSearchFilters) (*models.JobPage, error)
	// Match asks the AI service to rank jobs against a resume. A
	// non-positive MaxMatches becomes models.DefaultMaxMatches.
	Match(ctx context.Context, req models.JobMatchRequest) (*models.JobMatchResponse, error)
}

type jobService struct {
	api       Requester
	endpoints *api.Endpoints
}

func NewJobService(r Requester, e *api.Endpoints) JobService {
	return &jobService{api: r, endpoints: e}
}

func (s *jobService) List(ctx context.Context, filters *models.JobSearchFilters) (*models.JobPage, error) {
	var page models.JobPage
	if err := s.api.Do(ctx, http.MethodGet, s.endpoints.JobList(filters.Query()), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *jobService) Get(ctx context.Context, id int64) (*models.Job, error) {
	var job models.Job
	if err := s.api.Do(ctx, http.MethodGet, s.endpoints.Job(id), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *jobService) Create(ctx context.Context, req models.JobCreateRequest) (*models.Job, error) {
	if err := models.Validate(&req); err != nil {
		return nil, err
	}
	var job models.Job
	if err := s.api.Do(ctx, http.MethodPost, s.endpoints.Jobs, &req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *jobService) Update(ctx context.Context, id int64, req models.JobUpdateRequest) (*models.Job, error) {
	if err := models.Validate(&req); err != nil {
		return nil, err
	}
	var job models.Job
	if err := s.api.Do(ctx, http.MethodPut, s.endpoints.Job(id), &req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *jobService) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, s.endpoints.Job(id), nil, nil)
}

func (s *jobService) Search(ctx context.Context, filters models.JobSearchFilters) (*models.JobPage, error) {
	var page models.JobPage
	if err := s.api.Do(ctx, http.MethodPost, s.endpoints.JobSearch, &filters, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *jobService) Match(ctx context.Context, req models.JobMatchRequest) (*models.JobMatchResponse, error) {
	if req.MaxMatches <= 0 {
		req.MaxMatches = models.DefaultMaxMatches
	}
	if req.ResumeSkills == nil {
		req.ResumeSkills = []string{}
	}
	if req.AvailableJobs == nil {
		req.AvailableJobs = []models.Job{}
	}
	var resp models.JobMatchResponse
	if err := s.api.Do(ctx, http.MethodPost, s.endpoints.MatchJobs, &req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
