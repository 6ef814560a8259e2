package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/dmitrijs2005/jobmatch/internal/models"
	"github.com/dmitrijs2005/jobmatch/internal/server/applications"
	"github.com/dmitrijs2005/jobmatch/internal/server/config"
	"github.com/dmitrijs2005/jobmatch/internal/server/jobs"
	"github.com/dmitrijs2005/jobmatch/internal/server/resumes"
	"github.com/dmitrijs2005/jobmatch/internal/server/revokedtokens"
	"github.com/dmitrijs2005/jobmatch/internal/server/users"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
		FrontendURL:                 "https://jobmatch.example",
		Environment:                 "test",
		MaxUploadSize:               1 << 10,
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := testConfig()

	js := jobs.NewService(jobs.NewMemoryRepository())
	svc := Services{
		Users:        users.NewService(users.NewMemoryRepository(), revokedtokens.NewMemoryRepository(), cfg),
		Jobs:         js,
		Applications: applications.NewService(applications.NewMemoryRepository(), js),
		Resumes:      resumes.NewService(resumes.NewMemoryRepository(), cfg.MaxUploadSize),
	}
	return NewRouter(cfg, logging.Nop{}, svc, NewMetrics())
}

// call performs one request against h. body may be nil, a []byte or any
// JSON-encodable value.
func call(t *testing.T, h http.Handler, method, path, token string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		r = bytes.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func register(t *testing.T, h http.Handler, username, email, role string) string {
	t.Helper()
	w := call(t, h, http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Username:  username,
		Email:     email,
		Password:  "s3cret!",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[models.AuthResponse](t, w).Token
}
