package models

import (
	"net/url"
	"strconv"
	"time"
)

// Job types and experience levels accepted by the API.
const (
	JobTypeFullTime   = "FULL_TIME"
	JobTypePartTime   = "PART_TIME"
	JobTypeContract   = "CONTRACT"
	JobTypeInternship = "INTERNSHIP"
	JobTypeRemote     = "REMOTE"

	LevelEntry  = "ENTRY"
	LevelMid    = "MID"
	LevelSenior = "SENIOR"
	LevelLead   = "LEAD"
)

type Job struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	SalaryMin       *float64  `json:"salaryMin,omitempty"`
	SalaryMax       *float64  `json:"salaryMax,omitempty"`
	JobType         string    `json:"jobType,omitempty"`
	ExperienceLevel string    `json:"experienceLevel,omitempty"`
	Skills          []string  `json:"skills,omitempty"`
	Requirements    string    `json:"requirements,omitempty"`
	Benefits        string    `json:"benefits,omitempty"`
	RecruiterEmail  string    `json:"recruiterEmail,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type JobCreateRequest struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Company         string   `json:"company" validate:"required"`
	Location        string   `json:"location" validate:"required"`
	SalaryMin       *float64 `json:"salaryMin,omitempty" validate:"omitempty,gt=0"`
	SalaryMax       *float64 `json:"salaryMax,omitempty" validate:"omitempty,gt=0"`
	JobType         string   `json:"jobType,omitempty" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP REMOTE"`
	ExperienceLevel string   `json:"experienceLevel,omitempty" validate:"omitempty,oneof=ENTRY MID SENIOR LEAD"`
	Skills          []string `json:"skills,omitempty"`
	Requirements    string   `json:"requirements,omitempty"`
	Benefits        string   `json:"benefits,omitempty"`
}

// JobUpdateRequest is a partial update; unset fields are left alone.
type JobUpdateRequest struct {
	Title           string   `json:"title,omitempty"`
	Description     string   `json:"description,omitempty"`
	Company         string   `json:"company,omitempty"`
	Location        string   `json:"location,omitempty"`
	SalaryMin       *float64 `json:"salaryMin,omitempty" validate:"omitempty,gt=0"`
	SalaryMax       *float64 `json:"salaryMax,omitempty" validate:"omitempty,gt=0"`
	JobType         string   `json:"jobType,omitempty" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP REMOTE"`
	ExperienceLevel string   `json:"experienceLevel,omitempty" validate:"omitempty,oneof=ENTRY MID SENIOR LEAD"`
	Skills          []string `json:"skills,omitempty"`
	Requirements    string   `json:"requirements,omitempty"`
	Benefits        string   `json:"benefits,omitempty"`
}

// JobSearchFilters narrows job listings. Zero values mean "no filter";
// page 0 is the server's first page, so leaving it out changes nothing.
type JobSearchFilters struct {
	Keyword         string `json:"keyword,omitempty"`
	Location        string `json:"location,omitempty"`
	Company         string `json:"company,omitempty"`
	JobType         string `json:"jobType,omitempty"`
	ExperienceLevel string `json:"experienceLevel,omitempty"`
	Page            int    `json:"page,omitempty"`
	Size            int    `json:"size,omitempty"`
}

// Query renders the non-empty filters as URL query parameters.
func (f *JobSearchFilters) Query() url.Values {
	q := url.Values{}
	if f == nil {
		return q
	}
	add := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	add("keyword", f.Keyword)
	add("location", f.Location)
	add("company", f.Company)
	add("jobType", f.JobType)
	add("experienceLevel", f.ExperienceLevel)
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Size > 0 {
		q.Set("size", strconv.Itoa(f.Size))
	}
	return q
}

// JobPage is one page of a job listing or search.
type JobPage struct {
	Content       []Job `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	CurrentPage   int   `json:"currentPage"`
	PageSize      int   `json:"pageSize"`
}
