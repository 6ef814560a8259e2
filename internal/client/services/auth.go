package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/jobmatch/internal/client/api"
	"github.com/dmitrijs2005/jobmatch/internal/client/repositories/session"
	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/dmitrijs2005/jobmatch/internal/models"
)

// AuthService manages the client session.
//
// Contract:
//   - Login, Register, ResumeLogin: authenticate against the server and, when
//     the response carries a token, persist it with the reduced user record.
//   - Logout: tell the server (best effort), then always clear local state.
//   - CurrentUser: authoritative server round-trip.
//   - StoredUser, StoredToken: local session only, no network.
//   - IsAuthenticated: token presence; the token is never verified locally.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	ResumeLogin(ctx context.Context, req models.ResumeLoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	StoredUser(ctx context.Context) (*models.User, error)
	StoredToken(ctx context.Context) (string, error)
	IsAuthenticated(ctx context.Context) bool
}

type authService struct {
	api       Requester
	endpoints *api.Endpoints
	store     session.Store
	log       logging.Logger
}

func NewAuthService(r Requester, e *api.Endpoints, store session.Store, log logging.Logger) AuthService {
	return &authService{api: r, endpoints: e, store: store, log: log}
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}
	if err := models.Validate(&req); err != nil {
		return nil, err
	}
	a.log.Debug(ctx, "login", "endpoint", a.endpoints.Login, "email", email)
	return a.authenticate(ctx, a.endpoints.Login, &req)
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := models.Validate(&req); err != nil {
		return nil, err
	}
	a.log.Debug(ctx, "register", "endpoint", a.endpoints.Register, "email", req.Email, "username", req.Username, "role", req.Role)
	return a.authenticate(ctx, a.endpoints.Register, &req)
}

func (a *authService) ResumeLogin(ctx context.Context, req models.ResumeLoginRequest) (*models.AuthResponse, error) {
	if err := models.Validate(&req); err != nil {
		return nil, err
	}
	a.log.Debug(ctx, "resume login", "endpoint", a.endpoints.ResumeLogin, "email", req.Email)
	return a.authenticate(ctx, a.endpoints.ResumeLogin, &req)
}

func (a *authService) authenticate(ctx context.Context, url string, body any) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.api.Do(ctx, http.MethodPost, url, body, &resp); err != nil {
		return nil, err
	}
	if err := a.persist(ctx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// persist stores the token and reduced user together. A response without a
// token leaves the session untouched.
func (a *authService) persist(ctx context.Context, resp *models.AuthResponse) error {
	if resp.Token == "" {
		return nil
	}
	user, err := json.Marshal(resp.ReducedUser())
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	err = a.store.SetAll(ctx, map[string][]byte{
		common.TokenStorageKey: []byte(resp.Token),
		common.UserStorageKey:  user,
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Logout never fails because of the server; only a local store failure is
// returned.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.api.Do(ctx, http.MethodPost, a.endpoints.Logout, nil, nil); err != nil {
		a.log.Warn(ctx, "server logout failed, clearing local session anyway", "err", err)
	}
	if err := a.store.Remove(ctx, common.TokenStorageKey, common.UserStorageKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	token, err := a.StoredToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, api.AuthMissing()
	}

	var u models.User
	if err := a.api.Do(ctx, http.MethodGet, a.endpoints.Me, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// StoredUser returns (nil, nil) when no user is stored.
func (a *authService) StoredUser(ctx context.Context) (*models.User, error) {
	return loadUser(ctx, a.store)
}

func (a *authService) StoredToken(ctx context.Context) (string, error) {
	b, err := a.store.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return string(b), nil
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	token, err := a.StoredToken(ctx)
	if err != nil {
		a.log.Warn(ctx, "cannot read token", "err", err)
		return false
	}
	return token != ""
}

func loadUser(ctx context.Context, store session.Store) (*models.User, error) {
	b, err := store.Get(ctx, common.UserStorageKey)
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}
	if len(b) == 0 {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &u, nil
}

func saveUser(ctx context.Context, store session.Store, u *models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := store.Set(ctx, common.UserStorageKey, b); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}
