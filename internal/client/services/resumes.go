package services

import (
	"context"
	"io"
	"net/http"

	"github.com/dmitrijs2005/jobmatch/internal/client/api"
	"github.com/dmitrijs2005/jobmatch/internal/models"
)

// ResumeFileField is the multipart field both the API and the AI service
// read the uploaded file from.
const ResumeFileField = "file"

type ResumeService interface {
	// Upload stores a resume file for the signed-in user.
	Upload(ctx context.Context, fileName string, r io.Reader) (*models.ResumeUploadResponse, error)
	List(ctx context.Context) ([]models.Resume, error)
	Get(ctx context.Context, id int64) (*models.Resume, error)
	Delete(ctx context.Context, id int64) error
	// AnalyzeText sends plain resume text to the AI service.
	AnalyzeText(ctx context.Context, text, fileName string) (*models.ResumeAnalysis, error)
	// ParseFile sends a resume file to the AI service. No credentials are
	// attached; the AI service does not use them.
	ParseFile(ctx context.Context, fileName string, r io.Reader) (*models.ResumeParseResult, error)
}

type resumeService struct {
	api       Requester
	endpoints *api.Endpoints
}

func NewResumeService(r Requester, e *api.Endpoints) ResumeService {
	return &resumeService{api: r, endpoints: e}
}

func (s *resumeService) Upload(ctx context.Context, fileName string, r io.Reader) (*models.ResumeUploadResponse, error) {
	var resp models.ResumeUploadResponse
	if err := s.api.DoMultipart(ctx, s.endpoints.ResumeUpload, ResumeFileField, fileName, r, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *resumeService) List(ctx context.Context) ([]models.Resume, error) {
	var resumes []models.Resume
	if err := s.api.Do(ctx, http.MethodGet, s.endpoints.Resumes, nil, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

func (s *resumeService) Get(ctx context.Context, id int64) (*models.Resume, error) {
	var resume models.Resume
	if err := s.api.Do(ctx, http.MethodGet, s.endpoints.Resume(id), nil, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

func (s *resumeService) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, http.MethodDelete, s.endpoints.Resume(id), nil, nil)
}

func (s *resumeService) AnalyzeText(ctx context.Context, text, fileName string) (*models.ResumeAnalysis, error) {
	req := models.ResumeAnalysisRequest{ResumeText: text, FileName: fileName, FileType: "text"}
	var analysis models.ResumeAnalysis
	if err := s.api.Do(ctx, http.MethodPost, s.endpoints.AnalyzeText, &req, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (s *resumeService) ParseFile(ctx context.Context, fileName string, r io.Reader) (*models.ResumeParseResult, error) {
	var res models.ResumeParseResult
	if err := s.api.DoMultipart(ctx, s.endpoints.ParseResume, ResumeFileField, fileName, r, false, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
