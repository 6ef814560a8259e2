package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/dmitrijs2005/jobmatch/internal/models"
	"github.com/dmitrijs2005/jobmatch/internal/server/applications"
	"github.com/dmitrijs2005/jobmatch/internal/server/resumes"
	"github.com/dmitrijs2005/jobmatch/internal/server/users"
	"github.com/gin-gonic/gin"
)

const (
	msgUnexpected         = "An unexpected error occurred"
	msgValidationFailed   = "Validation failed"
	msgMalformedJSON      = "Malformed JSON request"
	msgInvalidCredentials = "Invalid email or password"
	msgEmailTaken         = "Email already exists"
	msgUsernameTaken      = "Username already exists"
	msgAlreadyApplied     = "You have already applied to this job"
	msgConflict           = "Resource already exists"
	msgMissingToken       = "Missing or invalid Authorization header"
	msgInvalidToken       = "Invalid or expired access token"
	msgRevokedToken       = "Access token has been revoked"
	msgForbidden          = "Access denied"
	msgNotFound           = "Resource not found"
	msgTooLarge           = "File exceeds the maximum upload size"
	msgInvalidID          = "Invalid id"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ValidationBody is the error shape for rejected request fields.
type ValidationBody struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Status: status, Message: message})
}

func abortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Status: status, Message: message})
}

func tokenMessage(err error) string {
	if errors.Is(err, common.ErrTokenRevoked) {
		return msgRevokedToken
	}
	return msgInvalidToken
}

// writeError maps a service error onto a status and message. Unknown
// errors are logged and reported as 500 without details.
func writeError(c *gin.Context, log logging.Logger, err error) {
	status, message := http.StatusInternalServerError, msgUnexpected

	var invalid *models.ValidationError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, ValidationBody{
			Status:  http.StatusBadRequest,
			Message: msgValidationFailed,
			Errors:  invalid.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, common.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, users.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, msgInvalidCredentials
	case errors.Is(err, users.ErrEmailTaken):
		status, message = http.StatusConflict, msgEmailTaken
	case errors.Is(err, users.ErrUsernameTaken):
		status, message = http.StatusConflict, msgUsernameTaken
	case errors.Is(err, applications.ErrAlreadyApplied):
		status, message = http.StatusConflict, msgAlreadyApplied
	case errors.Is(err, common.ErrAlreadyExists):
		status, message = http.StatusConflict, msgConflict
	case errors.Is(err, common.ErrTokenRevoked):
		status, message = http.StatusUnauthorized, msgRevokedToken
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired), errors.Is(err, common.ErrUnauthorized):
		status, message = http.StatusUnauthorized, msgInvalidToken
	case errors.Is(err, common.ErrForbidden):
		status, message = http.StatusForbidden, msgForbidden
	case errors.Is(err, common.ErrNotFound):
		status, message = http.StatusNotFound, msgNotFound
	case errors.Is(err, resumes.ErrFileTooLarge):
		status, message = http.StatusRequestEntityTooLarge, msgTooLarge
	default:
		log.Error(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "error", err)
	}

	respondError(c, status, message)
}

// bindJSON decodes the request body into out, answering 400 on failure.
func bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		respondError(c, http.StatusBadRequest, msgMalformedJSON)
		return false
	}
	return true
}
