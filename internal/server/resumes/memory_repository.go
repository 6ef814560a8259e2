package resumes

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/models"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	resumes map[int64]*Stored
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{resumes: make(map[int64]*Stored)}
}

func (r *MemoryRepository) Create(ctx context.Context, s *Stored) (*Stored, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	c := *s
	c.ID = r.nextID
	c.Content = append([]byte(nil), s.Content...)
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	r.resumes[c.ID] = &c

	out := c
	return &out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (*Stored, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.resumes[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *s
	return &out, nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Resume, error) {
	r.mu.RLock()
	out := make([]models.Resume, 0)
	for _, s := range r.resumes {
		if s.OwnerID == ownerID {
			out = append(out, s.Resume)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.resumes[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.resumes, id)
	return nil
}
