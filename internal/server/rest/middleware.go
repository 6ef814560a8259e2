package rest

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/dmitrijs2005/jobmatch/internal/server/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxRequestIDKey = "request_id"
	ctxClaimsKey    = "auth.claims"
)

// RequestID tags every request with an id, reusing the caller's one when
// supplied, and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(common.RequestIDHeaderName, id)
		c.Set(ctxRequestIDKey, id)
		c.Next()
	}
}

func RequestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		reqID, _ := c.Get(ctxRequestIDKey)
		log.Info(c.Request.Context(), "request",
			"method", method,
			"path", path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", reqID,
		)
	}
}

// Recovery turns a panic into a 500 with the usual error body.
func Recovery(log logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Error(c.Request.Context(), "panic recovered", "error", recovered, "path", c.Request.URL.Path)
		respondError(c, http.StatusInternalServerError, msgUnexpected)
	})
}

// SecurityHeaders sets the browser hardening headers on every response.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "0")
		c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}

// CORS admits cross-origin requests whose Origin matches one of origins,
// each of which may hold a single '*' wildcard. Other origins are refused
// with 403, and preflight requests stop here with 204.
func CORS(origins []string) gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowWildcard:    true,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		ExposeHeaders:    []string{common.AuthorizationHeaderName, "Content-Type"},
		MaxAge:           time.Hour,
	})

	return func(c *gin.Context) {
		c.Writer.Header().Add("Vary", "Origin")
		// any request header is allowed, so the preflight echoes what was asked
		if c.Request.Method == http.MethodOptions {
			if req := c.GetHeader("Access-Control-Request-Headers"); req != "" {
				c.Header("Access-Control-Allow-Headers", req)
			}
		}
		handler(c)
	}
}

// Authenticator resolves bearer tokens.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

// Authenticate requires a valid bearer token on every path outside
// publicPrefixes. On public paths a valid token is still recognised, so
// handlers like logout can see the caller.
func Authenticate(a Authenticator, publicPrefixes ...string) gin.HandlerFunc {
	public := func(path string) bool {
		for _, p := range publicPrefixes {
			if path == p || strings.HasPrefix(path, p+"/") {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		isPublic := public(c.Request.URL.Path)

		header := c.GetHeader(common.AuthorizationHeaderName)
		raw := strings.TrimSpace(strings.TrimPrefix(header, common.BearerPrefix))
		if !strings.HasPrefix(header, common.BearerPrefix) || raw == "" {
			if isPublic {
				c.Next()
				return
			}
			abortError(c, http.StatusUnauthorized, msgMissingToken)
			return
		}

		claims, err := a.Authenticate(c.Request.Context(), raw)
		if err != nil {
			if isPublic {
				c.Next()
				return
			}
			abortError(c, http.StatusUnauthorized, tokenMessage(err))
			return
		}

		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

// RequireRole lets only callers with role through.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			abortError(c, http.StatusUnauthorized, msgMissingToken)
			return
		}
		if claims.Role != role {
			abortError(c, http.StatusForbidden, msgForbidden)
			return
		}
		c.Next()
	}
}

func claimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ctxClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// callerFrom answers 401 itself when the request carries no usable identity.
func callerFrom(c *gin.Context) (auth.Caller, bool) {
	claims, ok := claimsFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, msgMissingToken)
		return auth.Caller{}, false
	}
	caller, err := claims.Caller()
	if err != nil {
		respondError(c, http.StatusUnauthorized, msgInvalidToken)
		return auth.Caller{}, false
	}
	return caller, true
}
