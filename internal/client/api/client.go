package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/google/uuid"
)

// TokenSource yields the bearer token for the current session, or "" when
// there is none.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	log        logging.Logger
	debug      bool
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, timeout included.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithDiagnostics turns per-request debug logging on or off.
func WithDiagnostics(on bool) Option {
	return func(c *Client) { c.debug = on }
}

// New returns a Client whose calls time out after timeout.
func New(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		log:        logging.Nop{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Do performs a JSON call. body, when non-nil, is encoded as the request
// body; a 2xx response body is decoded into out unless out is nil or the
// body is empty.
func (c *Client) Do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindParse, Message: fmt.Sprintf("failed to encode request: %v", err), Err: err}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return networkError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if err := c.authorize(ctx, req); err != nil {
		return err
	}
	return c.send(req, out)
}

// DoMultipart posts r as a single file part named field. The Content-Type
// comes from the multipart writer; the bearer token is attached only when
// withAuth is set and a token exists.
func (c *Client) DoMultipart(ctx context.Context, url, field, fileName string, r io.Reader, withAuth bool, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(field, fileName)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("read %s: %w", fileName, err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return networkError(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	if withAuth {
		if err := c.authorize(ctx, req); err != nil {
			return err
		}
	}
	return c.send(req, out)
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	return nil
}

func (c *Client) send(req *http.Request, out any) error {
	ctx := req.Context()
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	if c.debug {
		c.log.Debug(ctx, "api request", "method", req.Method, "url", req.URL.String(), "request_id", requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error(ctx, "api request failed", "method", req.Method, "url", req.URL.String(), "request_id", requestID, "err", err)
		return networkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}

	if c.debug {
		c.log.Debug(ctx, "api response", "method", req.Method, "url", req.URL.String(),
			"status", resp.StatusCode, "latency", time.Since(start), "request_id", requestID)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr, decodeErr := errorFromResponse(resp.StatusCode, resp.Header.Get("Content-Type"), raw)
		if decodeErr != nil {
			c.log.Error(ctx, "failed to parse error response", "url", req.URL.String(), "err", decodeErr)
		}
		c.log.Error(ctx, "api error", "url", req.URL.String(), "status", apiErr.Status,
			"message", apiErr.Message, "request_id", requestID)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{
			Kind:    KindParse,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("failed to parse response: %v", err),
			Data:    map[string]any{"responseText": string(raw)},
			Err:     err,
		}
	}
	return nil
}
