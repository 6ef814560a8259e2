package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/common"
)

// MemoryRepository keeps accounts in process memory. Emails and usernames
// are matched case-insensitively.
type MemoryRepository struct {
	mu         sync.RWMutex
	nextID     int64
	byID       map[int64]*User
	byEmail    map[string]int64
	byUsername map[string]int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:       make(map[int64]*User),
		byEmail:    make(map[string]int64),
		byUsername: make(map[string]int64),
	}
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[key(user.Email)]; ok {
		return nil, ErrEmailTaken
	}
	if _, ok := r.byUsername[key(user.Username)]; ok {
		return nil, ErrUsernameTaken
	}

	r.nextID++
	u := user.clone()
	u.ID = r.nextID
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now

	r.byID[u.ID] = u
	r.byEmail[key(u.Email)] = u.ID
	r.byUsername[key(u.Username)] = u.ID

	return u.clone(), nil
}

// Update replaces the mutable fields of an existing account. Email and
// username are fixed once created.
func (r *MemoryRepository) Update(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[user.ID]
	if !ok {
		return nil, common.ErrNotFound
	}

	u := user.clone()
	u.Email, u.Username, u.CreatedAt = cur.Email, cur.Username, cur.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	r.byID[u.ID] = u

	return u.clone(), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u.clone(), nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[key(email)]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r.byID[id].clone(), nil
}

func (r *MemoryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[key(email)]
	return ok, nil
}

func (r *MemoryRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byUsername[key(username)]
	return ok, nil
}
