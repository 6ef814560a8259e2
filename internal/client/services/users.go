package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/jobmatch/internal/client/api"
	"github.com/dmitrijs2005/jobmatch/internal/client/repositories/session"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/dmitrijs2005/jobmatch/internal/models"
)

// UserService reads and edits the signed-in user's profile. Fresh profile
// data is merged into the stored user so later StoredUser calls see it.
type UserService interface {
	Profile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (*models.Profile, error)
}

type userService struct {
	api       Requester
	endpoints *api.Endpoints
	store     session.Store
	log       logging.Logger
}

func NewUserService(r Requester, e *api.Endpoints, store session.Store, log logging.Logger) UserService {
	return &userService{api: r, endpoints: e, store: store, log: log}
}

func (s *userService) Profile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := s.api.Do(ctx, http.MethodGet, s.endpoints.Profile, nil, &p); err != nil {
		return nil, err
	}
	s.merge(ctx, &p)
	return &p, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (*models.Profile, error) {
	var p models.Profile
	if err := s.api.Do(ctx, http.MethodPut, s.endpoints.Profile, &req, &p); err != nil {
		return nil, err
	}
	s.merge(ctx, &p)
	return &p, nil
}

// merge refreshes the cached user. It is skipped when nobody is signed in,
// and failures only cost freshness, so they are logged.
func (s *userService) merge(ctx context.Context, p *models.Profile) {
	u, err := loadUser(ctx, s.store)
	if err != nil {
		s.log.Warn(ctx, "cannot read stored user", "err", err)
		return
	}
	if u == nil {
		return
	}

	if p.Email != "" {
		u.Email = p.Email
	}
	if p.Role != "" {
		u.Role = p.Role
	}
	u.FirstName = p.FirstName
	u.LastName = p.LastName

	if err := saveUser(ctx, s.store, u); err != nil {
		s.log.Warn(ctx, "cannot update stored user", "err", err)
	}
}
