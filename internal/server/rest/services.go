package rest

import (
	"context"

	"github.com/dmitrijs2005/jobmatch/internal/models"
	"github.com/dmitrijs2005/jobmatch/internal/server/auth"
)

// UserService covers accounts, sessions and profiles.
type UserService interface {
	Authenticator
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	ResumeLogin(ctx context.Context, req *models.ResumeLoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	Me(ctx context.Context, id int64) (*models.User, error)
	Profile(ctx context.Context, id int64) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id int64, req *models.ProfileUpdateRequest) (*models.Profile, error)
}

type JobService interface {
	List(ctx context.Context, filters *models.JobSearchFilters) (*models.JobPage, error)
	Get(ctx context.Context, id int64) (*models.Job, error)
	Create(ctx context.Context, recruiterEmail string, req *models.JobCreateRequest) (*models.Job, error)
	Update(ctx context.Context, id int64, recruiterEmail string, req *models.JobUpdateRequest) (*models.Job, error)
	Delete(ctx context.Context, id int64, recruiterEmail string) error
}

type ApplicationService interface {
	List(ctx context.Context, caller auth.Caller) ([]models.Application, error)
	Create(ctx context.Context, caller auth.Caller, req *models.ApplicationCreateRequest) (*models.Application, error)
	Get(ctx context.Context, caller auth.Caller, id int64) (*models.Application, error)
	Update(ctx context.Context, caller auth.Caller, id int64, req *models.ApplicationUpdateRequest) (*models.Application, error)
}

type ResumeService interface {
	Upload(ctx context.Context, ownerID int64, fileName string, data []byte) (*models.ResumeUploadResponse, error)
	List(ctx context.Context, ownerID int64) ([]models.Resume, error)
	Get(ctx context.Context, ownerID, id int64) (*models.Resume, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

// Services bundles what the router needs.
type Services struct {
	Users        UserService
	Jobs         JobService
	Applications ApplicationService
	Resumes      ResumeService
}
