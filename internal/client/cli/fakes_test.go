package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/client/api"
	"github.com/dmitrijs2005/jobmatch/internal/client/config"
	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/models"
)

// ---- auth ----

type fakeAuth struct {
	loggedIn bool
	user     *models.User

	current    *models.User
	currentErr error

	loginEmail    string
	loginPassword string
	loginErr      error

	registerReq models.RegisterRequest
	resumeReq   *models.ResumeLoginRequest
	logoutCalls int
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.AuthResponse, error) {
	f.loginEmail, f.loginPassword = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.loggedIn = true
	return &models.AuthResponse{Token: "t", Email: email, Role: common.RoleJobSeeker}, nil
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.registerReq = req
	f.loggedIn = true
	return &models.AuthResponse{Token: "t", Email: req.Email, Role: req.Role}, nil
}

func (f *fakeAuth) ResumeLogin(_ context.Context, req models.ResumeLoginRequest) (*models.AuthResponse, error) {
	f.resumeReq = &req
	f.loggedIn = true
	return &models.AuthResponse{Token: "t", Email: req.Email, Role: common.RoleJobSeeker}, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalls++
	f.loggedIn = false
	f.user = nil
	return nil
}

func (f *fakeAuth) CurrentUser(context.Context) (*models.User, error) { return f.current, f.currentErr }
func (f *fakeAuth) StoredUser(context.Context) (*models.User, error)  { return f.user, nil }
func (f *fakeAuth) IsAuthenticated(context.Context) bool              { return f.loggedIn }

func (f *fakeAuth) StoredToken(context.Context) (string, error) {
	if f.loggedIn {
		return "t", nil
	}
	return "", nil
}

// ---- jobs ----

type fakeJobs struct {
	listFilters []*models.JobSearchFilters
	page        *models.JobPage
	job         *models.Job
	created     models.JobCreateRequest
	deleted     int64
	searched    models.JobSearchFilters
	matchReq    models.JobMatchRequest
	matchResp   *models.JobMatchResponse
	err         error
}

func (f *fakeJobs) List(_ context.Context, filters *models.JobSearchFilters) (*models.JobPage, error) {
	f.listFilters = append(f.listFilters, filters)
	return f.pageOrEmpty(), f.err
}

func (f *fakeJobs) Get(_ context.Context, id int64) (*models.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.job, nil
}

func (f *fakeJobs) Create(_ context.Context, req models.JobCreateRequest) (*models.Job, error) {
	f.created = req
	return &models.Job{ID: 11, Title: req.Title}, f.err
}

func (f *fakeJobs) Update(_ context.Context, id int64, req models.JobUpdateRequest) (*models.Job, error) {
	return &models.Job{ID: id, Title: req.Title}, f.err
}

func (f *fakeJobs) Delete(_ context.Context, id int64) error {
	f.deleted = id
	return f.err
}

func (f *fakeJobs) Search(_ context.Context, filters models.JobSearchFilters) (*models.JobPage, error) {
	f.searched = filters
	return f.pageOrEmpty(), f.err
}

func (f *fakeJobs) Match(_ context.Context, req models.JobMatchRequest) (*models.JobMatchResponse, error) {
	f.matchReq = req
	if f.matchResp == nil {
		return &models.JobMatchResponse{}, f.err
	}
	return f.matchResp, f.err
}

func (f *fakeJobs) pageOrEmpty() *models.JobPage {
	if f.page == nil {
		return &models.JobPage{}
	}
	return f.page
}

// ---- resumes ----

type fakeResumes struct {
	uploadName    string
	uploadContent string
	list          []models.Resume
	analysis      *models.ResumeAnalysis
	analyzedText  string
	parsed        *models.ResumeParseResult
}

func (f *fakeResumes) Upload(_ context.Context, fileName string, r io.Reader) (*models.ResumeUploadResponse, error) {
	b, _ := io.ReadAll(r)
	f.uploadName, f.uploadContent = fileName, string(b)
	return &models.ResumeUploadResponse{Message: "Resume uploaded successfully", Resume: models.Resume{ID: 1, FileName: fileName}}, nil
}

func (f *fakeResumes) List(context.Context) ([]models.Resume, error) { return f.list, nil }

func (f *fakeResumes) Get(_ context.Context, id int64) (*models.Resume, error) {
	return &models.Resume{ID: id}, nil
}

func (f *fakeResumes) Delete(context.Context, int64) error { return nil }

func (f *fakeResumes) AnalyzeText(_ context.Context, text, _ string) (*models.ResumeAnalysis, error) {
	f.analyzedText = text
	if f.analysis == nil {
		return &models.ResumeAnalysis{}, nil
	}
	return f.analysis, nil
}

func (f *fakeResumes) ParseFile(_ context.Context, fileName string, r io.Reader) (*models.ResumeParseResult, error) {
	_, _ = io.ReadAll(r)
	if f.parsed == nil {
		return &models.ResumeParseResult{}, nil
	}
	return f.parsed, nil
}

// ---- users & applications ----

type fakeUsers struct{ profile *models.Profile }

func (f *fakeUsers) Profile(context.Context) (*models.Profile, error) { return f.profile, nil }

func (f *fakeUsers) UpdateProfile(_ context.Context, req models.ProfileUpdateRequest) (*models.Profile, error) {
	return f.profile, nil
}

type fakeApps struct {
	created models.ApplicationCreateRequest
	list    []models.Application
}

func (f *fakeApps) List(context.Context) ([]models.Application, error) { return f.list, nil }

func (f *fakeApps) Create(_ context.Context, req models.ApplicationCreateRequest) (*models.Application, error) {
	f.created = req
	return &models.Application{ID: 21, JobID: req.JobID, Status: models.StatusApplied}, nil
}

func (f *fakeApps) Get(_ context.Context, id int64) (*models.Application, error) {
	return &models.Application{ID: id}, nil
}

func (f *fakeApps) Update(_ context.Context, id int64, req models.ApplicationUpdateRequest) (*models.Application, error) {
	return &models.Application{ID: id, Status: req.Status}, nil
}

// ---- app ----

type testApp struct {
	*App
	out     *bytes.Buffer
	auth    *fakeAuth
	jobs    *fakeJobs
	resumes *fakeResumes
	users   *fakeUsers
	apps    *fakeApps
}

func newTestApp(t *testing.T, lines ...string) *testApp {
	t.Helper()

	oldPw := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { getPassword = oldPw })

	ta := &testApp{
		out:     &bytes.Buffer{},
		auth:    &fakeAuth{},
		jobs:    &fakeJobs{},
		resumes: &fakeResumes{},
		users:   &fakeUsers{},
		apps:    &fakeApps{},
	}
	ta.App = &App{
		config: &config.Config{
			Environment: "development", SessionDSN: "session.db", RequestTimeout: 30 * time.Second,
		},
		endpoints:          &api.Endpoints{APIBase: "http://localhost:8080/api", AIBase: "http://localhost:8001"},
		authService:        ta.auth,
		jobService:         ta.jobs,
		resumeService:      ta.resumes,
		userService:        ta.users,
		applicationService: ta.apps,
		checker:            api.NewConnectionChecker(time.Second),
		reader:             bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n")),
		out:                ta.out,
	}
	return ta
}
