package api

import (
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/jobmatch/internal/client/config"
)

// Endpoints holds absolute URLs for the JobMatch API and the AI service.
type Endpoints struct {
	APIBase string
	AIBase  string

	Login       string
	Register    string
	Logout      string
	Me          string
	ResumeLogin string

	Profile string

	Jobs      string
	JobSearch string

	Applications string

	Resumes      string
	ResumeUpload string

	AnalyzeText string
	ParseResume string
	MatchJobs   string

	APIHealth string
	AIHealth  string
}

// NewEndpoints derives every endpoint from the resolved base URLs.
func NewEndpoints(b config.BaseURLs) *Endpoints {
	api, ai := b.API, b.AIService
	e := &Endpoints{
		APIBase: api,
		AIBase:  ai,

		Login:       api + "/auth/login",
		Register:    api + "/auth/register",
		Logout:      api + "/auth/logout",
		Me:          api + "/auth/me",
		ResumeLogin: api + "/auth/resume-login",

		Profile: api + "/users/profile",

		Jobs:      api + "/jobs",
		JobSearch: api + "/jobs/search",

		Applications: api + "/applications",

		Resumes:      api + "/resumes",
		ResumeUpload: api + "/resumes/upload",

		AnalyzeText: ai + "/api/v1/analyze-text",
		ParseResume: ai + "/api/v1/parse-resume",
		MatchJobs:   ai + "/api/v1/match-jobs",
	}
	if api != "" {
		e.APIHealth = api + "/actuator/health"
	}
	if ai != "" {
		e.AIHealth = ai + "/health"
	}
	return e
}

func (e *Endpoints) Job(id int64) string {
	return e.Jobs + "/" + strconv.FormatInt(id, 10)
}

// JobList returns the jobs URL with q appended; empty q adds nothing.
func (e *Endpoints) JobList(q url.Values) string {
	if len(q) == 0 {
		return e.Jobs
	}
	return e.Jobs + "?" + q.Encode()
}

func (e *Endpoints) Application(id int64) string {
	return e.Applications + "/" + strconv.FormatInt(id, 10)
}

func (e *Endpoints) Resume(id int64) string {
	return e.Resumes + "/" + strconv.FormatInt(id, 10)
}
