package jobs

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/models"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	jobs   map[int64]*models.Job
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{jobs: make(map[int64]*models.Job)}
}

func clone(j *models.Job) *models.Job {
	c := *j
	c.Skills = append([]string(nil), j.Skills...)
	return &c
}

func (r *MemoryRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	j := clone(job)
	j.ID = r.nextID
	now := time.Now().UTC()
	j.CreatedAt, j.UpdatedAt = now, now
	r.jobs[j.ID] = j

	return clone(j), nil
}

func (r *MemoryRepository) Update(ctx context.Context, job *models.Job) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.jobs[job.ID]
	if !ok {
		return nil, common.ErrNotFound
	}

	j := clone(job)
	j.CreatedAt = cur.CreatedAt
	j.UpdatedAt = time.Now().UTC()
	r.jobs[j.ID] = j

	return clone(j), nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return clone(j), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context, f Filter, offset, limit int) ([]models.Job, int64, error) {
	r.mu.RLock()
	matched := make([]models.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		if f.matches(j) {
			matched = append(matched, *clone(j))
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(a, b int) bool {
		if matched[a].CreatedAt.Equal(matched[b].CreatedAt) {
			return matched[a].ID > matched[b].ID
		}
		return matched[a].CreatedAt.After(matched[b].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.Job{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (f Filter) matches(j *models.Job) bool {
	if f.Location != "" && !contains(j.Location, f.Location) {
		return false
	}
	if f.Company != "" && !contains(j.Company, f.Company) {
		return false
	}
	if f.JobType != "" && !strings.EqualFold(j.JobType, f.JobType) {
		return false
	}
	if f.ExperienceLevel != "" && !strings.EqualFold(j.ExperienceLevel, f.ExperienceLevel) {
		return false
	}
	if f.Keyword == "" {
		return true
	}
	if contains(j.Title, f.Keyword) || contains(j.Description, f.Keyword) || contains(j.Company, f.Keyword) {
		return true
	}
	for _, s := range j.Skills {
		if contains(s, f.Keyword) {
			return true
		}
	}
	return false
}
