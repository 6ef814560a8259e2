package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/models"
	"github.com/dmitrijs2005/jobmatch/internal/server/auth"
	"github.com/dmitrijs2005/jobmatch/internal/server/config"
	"github.com/dmitrijs2005/jobmatch/internal/server/revokedtokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *MemoryRepository) {
	t.Helper()
	repo := NewMemoryRepository()
	cfg := &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour}
	return NewService(repo, revokedtokens.NewMemoryRepository(), cfg), repo
}

func registerReq() *models.RegisterRequest {
	return &models.RegisterRequest{
		Username:  "jane",
		Email:     "jane@example.com",
		Password:  "s3cret!",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      common.RoleRecruiter,
	}
}

func TestService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestService(t)

	resp, err := s.Register(ctx, registerReq())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Equal(t, common.RoleRecruiter, resp.Role)

	stored, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", stored.PasswordHash)

	resp, err = s.Login(ctx, &models.LoginRequest{Email: "jane@example.com", Password: "s3cret!"})
	require.NoError(t, err)

	claims, err := s.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, common.RoleRecruiter, claims.Role)
}

func TestService_RegisterDuplicates(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	_, err := s.Register(ctx, registerReq())
	require.NoError(t, err)

	_, err = s.Register(ctx, registerReq())
	require.ErrorIs(t, err, ErrEmailTaken)
	require.ErrorIs(t, err, common.ErrAlreadyExists)

	other := registerReq()
	other.Email = "someone@example.com"
	_, err = s.Register(ctx, other)
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_RegisterValidates(t *testing.T) {
	s, _ := newTestService(t)

	req := registerReq()
	req.Role = "ADMIN"
	_, err := s.Register(context.Background(), req)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestService_LoginRejects(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	_, err := s.Register(ctx, registerReq())
	require.NoError(t, err)

	_, err = s.Login(ctx, &models.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(ctx, &models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestService_ResumeLoginCreatesJobSeeker(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestService(t)

	resp, err := s.ResumeLogin(ctx, &models.ResumeLoginRequest{Email: "sam@example.org"})
	require.NoError(t, err)
	assert.Equal(t, common.RoleJobSeeker, resp.Role)
	assert.Empty(t, resp.FirstName)
	assert.Empty(t, resp.LastName)

	u, err := repo.GetByEmail(ctx, "sam@example.org")
	require.NoError(t, err)
	assert.Equal(t, "sam", u.Username)
	assert.NotEmpty(t, u.PasswordHash)

	again, err := s.ResumeLogin(ctx, &models.ResumeLoginRequest{Email: "sam@example.org", FirstName: "Ignored"})
	require.NoError(t, err)
	assert.Empty(t, again.FirstName, "existing accounts are not modified")
}

func TestService_ResumeLoginUsernameSuffix(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestService(t)

	_, err := repo.Create(ctx, &User{Username: "sam", Email: "sam@one.example"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &User{Username: "sam1", Email: "sam@two.example"})
	require.NoError(t, err)

	_, err = s.ResumeLogin(ctx, &models.ResumeLoginRequest{Email: "sam@three.example", FirstName: "Sam"})
	require.NoError(t, err)

	u, err := repo.GetByEmail(ctx, "sam@three.example")
	require.NoError(t, err)
	assert.Equal(t, "sam2", u.Username)
	assert.Equal(t, "Sam", u.FirstName)
}

// racingRepository lets a rival account land between the service's
// existence checks and its Create call.
type racingRepository struct {
	*MemoryRepository
	rival *User
}

func (r *racingRepository) Create(ctx context.Context, user *User) (*User, error) {
	if rival := r.rival; rival != nil {
		r.rival = nil
		if _, err := r.MemoryRepository.Create(ctx, rival); err != nil {
			return nil, err
		}
	}
	return r.MemoryRepository.Create(ctx, user)
}

func newRacingService(rival *User) (*Service, *racingRepository) {
	repo := &racingRepository{MemoryRepository: NewMemoryRepository(), rival: rival}
	cfg := &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour}
	return NewService(repo, revokedtokens.NewMemoryRepository(), cfg), repo
}

func TestService_RegisterReportsConcurrentConflict(t *testing.T) {
	ctx := context.Background()

	s, _ := newRacingService(&User{Username: "jane", Email: "other@example.com"})
	_, err := s.Register(ctx, registerReq())
	require.ErrorIs(t, err, ErrUsernameTaken)
	assert.False(t, errors.Is(err, ErrEmailTaken))

	s, _ = newRacingService(&User{Username: "someone", Email: "jane@example.com"})
	_, err = s.Register(ctx, registerReq())
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_ResumeLoginConcurrentSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("same email signs in the existing account", func(t *testing.T) {
		s, _ := newRacingService(&User{Username: "sammy", Email: "sam@example.org", Role: common.RoleJobSeeker, FirstName: "Rival"})
		resp, err := s.ResumeLogin(ctx, &models.ResumeLoginRequest{Email: "sam@example.org"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Rival", resp.FirstName)
	})

	t.Run("username taken picks the next one", func(t *testing.T) {
		s, repo := newRacingService(&User{Username: "sam", Email: "sam@elsewhere.org"})
		_, err := s.ResumeLogin(ctx, &models.ResumeLoginRequest{Email: "sam@example.org"})
		require.NoError(t, err)

		u, err := repo.GetByEmail(ctx, "sam@example.org")
		require.NoError(t, err)
		assert.Equal(t, "sam1", u.Username)
	})
}

func TestService_LogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	resp, err := s.Register(ctx, registerReq())
	require.NoError(t, err)

	claims, err := s.Authenticate(ctx, resp.Token)
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx, claims))

	_, err = s.Authenticate(ctx, resp.Token)
	require.ErrorIs(t, err, common.ErrTokenRevoked)

	fresh, err := s.Login(ctx, &models.LoginRequest{Email: "jane@example.com", Password: "s3cret!"})
	require.NoError(t, err)
	_, err = s.Authenticate(ctx, fresh.Token)
	require.NoError(t, err, "other tokens of the same user stay valid")
}

func TestService_AuthenticateRejectsForeignTokens(t *testing.T) {
	s, _ := newTestService(t)

	tok, err := auth.GenerateToken(1, "x@example.com", common.RoleJobSeeker, []byte("other"), time.Hour)
	require.NoError(t, err)

	_, err = s.Authenticate(context.Background(), tok)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestService_ProfileUpdate(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestService(t)

	_, err := s.Register(ctx, registerReq())
	require.NoError(t, err)
	u, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)

	p, err := s.UpdateProfile(ctx, u.ID, &models.ProfileUpdateRequest{Title: "Engineer", Skills: []string{"go"}})
	require.NoError(t, err)
	assert.Equal(t, "Engineer", p.Title)
	assert.Equal(t, []string{"go"}, p.Skills)
	assert.Equal(t, "Jane", p.FirstName, "unset fields are kept")

	me, err := s.Me(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane", me.Username)

	_, err = s.Profile(ctx, 999)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
