// Package services contains the typed JobMatch client services: the auth
// session manager and thin wrappers for jobs, resumes, profiles and
// applications. Every service talks to the API through a Requester, which
// *api.Client satisfies.
package services
