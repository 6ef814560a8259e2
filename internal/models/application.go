package models

import "time"

// Application statuses.
const (
	StatusApplied   = "APPLIED"
	StatusReviewing = "REVIEWING"
	StatusInterview = "INTERVIEW"
	StatusOffered   = "OFFERED"
	StatusRejected  = "REJECTED"
	StatusWithdrawn = "WITHDRAWN"
)

type Application struct {
	ID             int64     `json:"id"`
	JobID          int64     `json:"jobId"`
	JobTitle       string    `json:"jobTitle,omitempty"`
	Company        string    `json:"company,omitempty"`
	ApplicantEmail string    `json:"applicantEmail,omitempty"`
	Status         string    `json:"status"`
	CoverLetter    string    `json:"coverLetter,omitempty"`
	ResumeID       *int64    `json:"resumeId,omitempty"`
	AppliedAt      time.Time `json:"appliedAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ApplicationCreateRequest struct {
	JobID       int64  `json:"jobId" validate:"required,gt=0"`
	CoverLetter string `json:"coverLetter,omitempty"`
	ResumeID    *int64 `json:"resumeId,omitempty"`
}

type ApplicationUpdateRequest struct {
	Status      string `json:"status" validate:"required,oneof=APPLIED REVIEWING INTERVIEW OFFERED REJECTED WITHDRAWN"`
	CoverLetter string `json:"coverLetter,omitempty"`
}
