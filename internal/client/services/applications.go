package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/jobmatch/internal/client/api"
	"github.com/dmitrijs2005/jobmatch/internal/models"
)

type ApplicationService interface {
	List(ctx context.Context) ([]models.Application, error)
	Create(ctx context.Context, req models.ApplicationCreateRequest) (*models.Application, error)
	Get(ctx context.Context, id int64) (*models.Application, error)
	Update(ctx context.Context, id int64, req models.ApplicationUpdateRequest) (*models.Application, error)
}

type applicationService struct {
	api       Requester
	endpoints *api.Endpoints
}

func NewApplicationService(r Requester, e *api.Endpoints) ApplicationService {
	return &applicationService{api: r, endpoints: e}
}

func (s *applicationService) List(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := s.api.Do(ctx, http.MethodGet, s.endpoints.Applications, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *applicationService) Create(ctx context.Context, req models.ApplicationCreateRequest) (*models.Application, error) {
	if err := models.Validate(&req); err != nil {
		return nil, err
	}
	var app models.Application
	if err := s.api.Do(ctx, http.MethodPost, s.endpoints.Applications, &req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *applicationService) Get(ctx context.Context, id int64) (*models.Application, error) {
	var app models.Application
	if err := s.api.Do(ctx, http.MethodGet, s.endpoints.Application(id), nil, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *applicationService) Update(ctx context.Context, id int64, req models.ApplicationUpdateRequest) (*models.Application, error) {
	if err := models.Validate(&req); err != nil {
		return nil, err
	}
	var app models.Application
	if err := s.api.Do(ctx, http.MethodPut, s.endpoints.Application(id), &req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}
