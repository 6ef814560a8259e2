package jobs

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const owner = "hr@acme.example"

func newJob(title, company, location string) *models.JobCreateRequest {
	return &models.JobCreateRequest{
		Title:       title,
		Description: "work on " + title,
		Company:     company,
		Location:    location,
		JobType:     models.JobTypeFullTime,
		Skills:      []string{"Go", "SQL"},
	}
}

func seed(t *testing.T, s *Service) {
	t.Helper()
	ctx := context.Background()
	for _, req := range []*models.JobCreateRequest{
		newJob("Backend Engineer", "Acme", "Berlin"),
		newJob("Frontend Engineer", "Acme", "Remote"),
		newJob("Data Analyst", "Globex", "Berlin"),
	} {
		_, err := s.Create(ctx, owner, req)
		require.NoError(t, err)
	}
}

func TestService_ListFilters(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewMemoryRepository())
	seed(t, s)

	tests := []struct {
		name    string
		filters *models.JobSearchFilters
		want    []string
	}{
		{name: "nil filters", filters: nil, want: []string{"Data Analyst", "Frontend Engineer", "Backend Engineer"}},
		{name: "location", filters: &models.JobSearchFilters{Location: "berlin"}, want: []string{"Data Analyst", "Backend Engineer"}},
		{name: "company", filters: &models.JobSearchFilters{Company: "acme"}, want: []string{"Frontend Engineer", "Backend Engineer"}},
		{name: "keyword in title", filters: &models.JobSearchFilters{Keyword: "engineer"}, want: []string{"Frontend Engineer", "Backend Engineer"}},
		{name: "keyword in skills", filters: &models.JobSearchFilters{Keyword: "sql"}, want: []string{"Data Analyst", "Frontend Engineer", "Backend Engineer"}},
		{name: "job type mismatch", filters: &models.JobSearchFilters{JobType: models.JobTypeContract}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := s.List(ctx, tt.filters)
			require.NoError(t, err)

			got := make([]string, 0, len(page.Content))
			for _, j := range page.Content {
				got = append(got, j.Title)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, int64(len(tt.want)), page.TotalElements)
		})
	}
}

func TestService_ListPaging(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewMemoryRepository())
	for i := 0; i < 5; i++ {
		_, err := s.Create(ctx, owner, newJob(fmt.Sprintf("Job %d", i), "Acme", "Berlin"))
		require.NoError(t, err)
	}

	page, err := s.List(ctx, &models.JobSearchFilters{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 2, page.PageSize)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "Job 2", page.Content[0].Title)

	page, err = s.List(ctx, &models.JobSearchFilters{Page: 9, Size: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.NotNil(t, page.Content)

	page, err = s.List(ctx, &models.JobSearchFilters{Size: 1000})
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, page.PageSize)
}

func TestService_CreateValidates(t *testing.T) {
	s := NewService(NewMemoryRepository())

	_, err := s.Create(context.Background(), owner, &models.JobCreateRequest{Title: "no company"})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestService_OwnerOnlyChanges(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewMemoryRepository())

	job, err := s.Create(ctx, owner, newJob("Backend Engineer", "Acme", "Berlin"))
	require.NoError(t, err)
	assert.Equal(t, owner, job.RecruiterEmail)

	_, err = s.Update(ctx, job.ID, "intruder@example.com", &models.JobUpdateRequest{Title: "Hacked"})
	require.ErrorIs(t, err, common.ErrForbidden)
	require.ErrorIs(t, s.Delete(ctx, job.ID, "intruder@example.com"), common.ErrForbidden)

	salary := 90000.0
	updated, err := s.Update(ctx, job.ID, owner, &models.JobUpdateRequest{Location: "Hamburg", SalaryMin: &salary})
	require.NoError(t, err)
	assert.Equal(t, "Hamburg", updated.Location)
	assert.Equal(t, "Backend Engineer", updated.Title)
	require.NotNil(t, updated.SalaryMin)
	assert.Equal(t, salary, *updated.SalaryMin)

	require.NoError(t, s.Delete(ctx, job.ID, owner))
	_, err = s.Get(ctx, job.ID)
	require.ErrorIs(t, err, common.ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, job.ID, owner), common.ErrNotFound)
}
