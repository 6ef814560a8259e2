package users

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/models"
	"github.com/dmitrijs2005/jobmatch/internal/server/auth"
	"github.com/dmitrijs2005/jobmatch/internal/server/config"
	"github.com/dmitrijs2005/jobmatch/internal/server/revokedtokens"
	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = fmt.Errorf("%w: email", common.ErrAlreadyExists)
	ErrUsernameTaken      = fmt.Errorf("%w: username", common.ErrAlreadyExists)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", common.ErrUnauthorized)
)

// resumeLoginAttempts bounds how often ResumeLogin picks a new username
// after losing it to a concurrent sign-up.
const resumeLoginAttempts = 3

type Service struct {
	repo                        Repository
	revoked                     revokedtokens.Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewService(repo Repository, revoked revokedtokens.Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		revoked:                     revoked,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, common.ErrInternal
	}
	if taken {
		return nil, ErrEmailTaken
	}

	taken, err = s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, common.ErrInternal
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user, err := s.repo.Create(ctx, &User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.issue(user)
}

func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

// ResumeLogin signs in the owner of email, creating a job seeker account
// with a random password when none exists yet.
func (s *Service) ResumeLogin(ctx context.Context, req *models.ResumeLoginRequest) (*models.AuthResponse, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return s.issue(user)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	hash, err := auth.HashPassword(uuid.NewString())
	if err != nil {
		return nil, common.ErrInternal
	}

	for attempt := 0; attempt < resumeLoginAttempts; attempt++ {
		username, err := s.freeUsername(ctx, req.Email)
		if err != nil {
			return nil, err
		}

		user, err = s.repo.Create(ctx, &User{
			Username:     username,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         common.RoleJobSeeker,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
		})
		switch {
		case err == nil:
			return s.issue(user)
		case errors.Is(err, ErrEmailTaken):
			// created concurrently by another resume login
			user, err = s.repo.GetByEmail(ctx, req.Email)
			if err != nil {
				return nil, common.ErrInternal
			}
			return s.issue(user)
		case errors.Is(err, ErrUsernameTaken):
			continue
		default:
			return nil, fmt.Errorf("error creating user: %w", err)
		}
	}

	return nil, fmt.Errorf("error creating user: %w", ErrUsernameTaken)
}

// freeUsername derives a username from the local part of email, appending
// 1, 2, ... until it is unused.
func (s *Service) freeUsername(ctx context.Context, email string) (string, error) {
	base, _, _ := strings.Cut(email, "@")
	candidate := base
	for suffix := 1; ; suffix++ {
		taken, err := s.repo.ExistsByUsername(ctx, candidate)
		if err != nil {
			return "", common.ErrInternal
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + strconv.Itoa(suffix)
	}
}

func (s *Service) issue(user *User) (*models.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, user.Role, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrInternal
	}
	return &models.AuthResponse{
		Token:     token,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}, nil
}

// Authenticate resolves a bearer token into its claims, rejecting revoked
// tokens with common.ErrTokenRevoked.
func (s *Service) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, common.ErrInternal
	}
	if revoked {
		return nil, common.ErrTokenRevoked
	}

	return claims, nil
}

// Logout revokes the token described by claims for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, claims *auth.Claims) error {
	expiresAt := time.Now().Add(s.accessTokenValidityDuration)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return s.revoked.Revoke(ctx, claims.ID, expiresAt)
}

func (s *Service) Me(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (s *Service) Profile(ctx context.Context, id int64) (*models.Profile, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

// UpdateProfile overwrites only the fields set in req.
func (s *Service) UpdateProfile(ctx context.Context, id int64, req *models.ProfileUpdateRequest) (*models.Profile, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Title != "" {
		user.Title = req.Title
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	if req.Education != nil {
		user.Education = req.Education
	}
	if req.Experience != nil {
		user.Experience = req.Experience
	}

	user, err = s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}
