// Package models holds the client-side view of JobMatch resources: the
// session, users and profiles, jobs, resumes, applications and the AI
// service DTOs. Outgoing requests carry `validate` tags; Validate checks
// required fields before anything is sent.
package models
