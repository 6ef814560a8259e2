package jobs

import (
	"context"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/models"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the requested page of postings. Pages are zero-based; a
// missing or oversized size falls back to the limits above.
func (s *Service) List(ctx context.Context, filters *models.JobSearchFilters) (*models.JobPage, error) {
	if filters == nil {
		filters = &models.JobSearchFilters{}
	}

	page := max(filters.Page, 0)
	size := filters.Size
	if size <= 0 {
		size = DefaultPageSize
	}
	size = min(size, MaxPageSize)

	f := Filter{
		Keyword:         filters.Keyword,
		Location:        filters.Location,
		Company:         filters.Company,
		JobType:         filters.JobType,
		ExperienceLevel: filters.ExperienceLevel,
	}

	content, total, err := s.repo.List(ctx, f, page*size, size)
	if err != nil {
		return nil, err
	}

	return &models.JobPage{
		Content:       content,
		TotalElements: total,
		TotalPages:    int((total + int64(size) - 1) / int64(size)),
		CurrentPage:   page,
		PageSize:      size,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.Job, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, recruiterEmail string, req *models.JobCreateRequest) (*models.Job, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Company:         req.Company,
		Location:        req.Location,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		Skills:          req.Skills,
		Requirements:    req.Requirements,
		Benefits:        req.Benefits,
		RecruiterEmail:  recruiterEmail,
	})
}

// owned loads a posting and checks that recruiterEmail posted it.
func (s *Service) owned(ctx context.Context, id int64, recruiterEmail string) (*models.Job, error) {
	job, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.RecruiterEmail != recruiterEmail {
		return nil, common.ErrForbidden
	}
	return job, nil
}

// Update applies the fields set in req.
func (s *Service) Update(ctx context.Context, id int64, recruiterEmail string, req *models.JobUpdateRequest) (*models.Job, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	job, err := s.owned(ctx, id, recruiterEmail)
	if err != nil {
		return nil, err
	}

	setString(&job.Title, req.Title)
	setString(&job.Description, req.Description)
	setString(&job.Company, req.Company)
	setString(&job.Location, req.Location)
	setString(&job.JobType, req.JobType)
	setString(&job.ExperienceLevel, req.ExperienceLevel)
	setString(&job.Requirements, req.Requirements)
	setString(&job.Benefits, req.Benefits)
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.Skills != nil {
		job.Skills = req.Skills
	}

	return s.repo.Update(ctx, job)
}

func (s *Service) Delete(ctx context.Context, id int64, recruiterEmail string) error {
	if _, err := s.owned(ctx, id, recruiterEmail); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
