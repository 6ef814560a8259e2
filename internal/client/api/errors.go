package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/jobmatch/internal/common"
)

// ErrorKind classifies a failed call.
type ErrorKind string

const (
	KindNetwork     ErrorKind = "network"
	KindHTTP        ErrorKind = "http"
	KindParse       ErrorKind = "parse"
	KindAuthMissing ErrorKind = "auth_missing"
)

// Error is the failure side of every API call. Message is meant for people;
// Data keeps the decoded error body (or {"responseText": ...} for plain
// text bodies) for callers that need more.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Data    any
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Is lets callers match API failures against the common sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case common.ErrUnavailable:
		return e.Kind == KindNetwork ||
			e.Status == http.StatusBadGateway ||
			e.Status == http.StatusServiceUnavailable ||
			e.Status == http.StatusGatewayTimeout
	case common.ErrUnauthorized:
		return e.Kind == KindAuthMissing ||
			e.Status == http.StatusUnauthorized ||
			e.Status == http.StatusForbidden
	case common.ErrForbidden:
		return e.Status == http.StatusForbidden
	case common.ErrNotFound:
		return e.Status == http.StatusNotFound
	case common.ErrAlreadyExists:
		return e.Status == http.StatusConflict
	case common.ErrValidation:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	case common.ErrInternal:
		return e.Status == http.StatusInternalServerError
	}
	return false
}

// AuthMissing reports that a call needing a session was attempted without one.
func AuthMissing() *Error {
	return &Error{Kind: KindAuthMissing, Message: "not authenticated: no token stored"}
}

// AsError unwraps err into an *Error when it is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "API request failed: " + err.Error(), Err: err}
}

func statusMessage(status int) string {
	return fmt.Sprintf("HTTP error! status: %d", status)
}

// errorFromResponse builds the *Error for a non-2xx response. It never
// fails; a body that cannot be decoded is reported through decodeErr and the
// message falls back to the status line.
func errorFromResponse(status int, contentType string, raw []byte) (apiErr *Error, decodeErr error) {
	apiErr = &Error{Kind: KindHTTP, Status: status, Message: statusMessage(status)}

	if strings.Contains(contentType, "application/json") {
		var data any
		if err := json.Unmarshal(raw, &data); err != nil {
			return apiErr, err
		}
		apiErr.Data = data
		if msg := messageOf(data); msg != "" {
			apiErr.Message = msg
		}
		return apiErr, nil
	}

	if text := string(raw); text != "" {
		apiErr.Message = text
		apiErr.Data = map[string]any{"responseText": text}
	}
	return apiErr, nil
}

var messageKeys = []string{"message", "error", "details", "detail"}

func messageOf(data any) string {
	obj, ok := data.(map[string]any)
	if !ok {
		return ""
	}
	for _, k := range messageKeys {
		switch v := obj[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case map[string]any:
			if m, ok := v["message"].(string); ok && m != "" {
				return m
			}
		}
	}
	return ""
}
