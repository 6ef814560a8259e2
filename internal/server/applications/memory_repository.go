package applications

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/models"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	apps   map[int64]models.Application
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{apps: make(map[int64]models.Application)}
}

func (r *MemoryRepository) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	a := *app
	a.ID = r.nextID
	now := time.Now().UTC()
	a.AppliedAt, a.UpdatedAt = now, now
	r.apps[a.ID] = a

	return &a, nil
}

func (r *MemoryRepository) Update(ctx context.Context, app *models.Application) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.apps[app.ID]
	if !ok {
		return nil, common.ErrNotFound
	}

	a := *app
	a.AppliedAt = cur.AppliedAt
	a.UpdatedAt = time.Now().UTC()
	r.apps[a.ID] = a

	return &a, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (*models.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.apps[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &a, nil
}

func (r *MemoryRepository) List(ctx context.Context, keep func(*models.Application) bool) ([]models.Application, error) {
	r.mu.RLock()
	out := make([]models.Application, 0)
	for _, a := range r.apps {
		if keep(&a) {
			out = append(out, a)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
