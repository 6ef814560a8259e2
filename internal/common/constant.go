package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token inside the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName tags every request with a correlation id.
	RequestIDHeaderName = "X-Request-Id"

	// Keys of the persisted client session.
	TokenStorageKey = "authToken"
	UserStorageKey  = "user"
)

// Roles known to the API.
const (
	RoleJobSeeker = "JOB_SEEKER"
	RoleRecruiter = "RECRUITER"
)
