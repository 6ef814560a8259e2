package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

type ConnectionStatus string

const (
	StatusUnknown ConnectionStatus = "unknown"
	StatusSuccess ConnectionStatus = "success"
	StatusError   ConnectionStatus = "error"
)

// ServiceCheck is the outcome of probing one service. TimeMs is zero when
// no response arrived.
type ServiceCheck struct {
	URL        string           `json:"url,omitempty"`
	Status     ConnectionStatus `json:"status"`
	Message    string           `json:"message"`
	TimeMs     int64            `json:"timeMs,omitempty"`
	StatusCode int              `json:"statusCode,omitempty"`
}

type ConnectionReport struct {
	Timestamp time.Time    `json:"timestamp"`
	Backend   ServiceCheck `json:"backend"`
	AIService ServiceCheck `json:"aiService"`
}

// ConnectionChecker probes the health endpoints with HEAD requests, each
// bounded by its own timeout.
type ConnectionChecker struct {
	httpClient *http.Client
	timeout    time.Duration
}

func NewConnectionChecker(timeout time.Duration) *ConnectionChecker {
	return &ConnectionChecker{httpClient: &http.Client{}, timeout: timeout}
}

// Check probes both services concurrently.
func (c *ConnectionChecker) Check(ctx context.Context, e *Endpoints) ConnectionReport {
	report := ConnectionReport{Timestamp: time.Now().UTC()}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		report.Backend = c.probe(ctx, e.APIHealth, "Backend URL not configured")
	}()
	go func() {
		defer wg.Done()
		report.AIService = c.probe(ctx, e.AIHealth, "AI Service URL not configured")
	}()
	wg.Wait()

	return report
}

func (c *ConnectionChecker) probe(ctx context.Context, url, unconfigured string) ServiceCheck {
	if url == "" {
		return ServiceCheck{Status: StatusUnknown, Message: unconfigured}
	}
	res := ServiceCheck{URL: url}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		res.Status = StatusError
		res.Message = fmt.Sprintf("Connection error: %v", err)
		return res
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		res.Status = StatusError
		if errors.Is(err, context.DeadlineExceeded) {
			res.Message = fmt.Sprintf("Connection timeout after %dms", c.timeout.Milliseconds())
		} else {
			res.Message = fmt.Sprintf("Connection error: %v", err)
		}
		return res
	}
	defer resp.Body.Close()

	res.TimeMs = time.Since(start).Milliseconds()
	res.StatusCode = resp.StatusCode
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		res.Status = StatusSuccess
		res.Message = "Connection successful"
	} else {
		res.Status = StatusError
		res.Message = fmt.Sprintf("HTTP error: %d", resp.StatusCode)
	}
	return res
}
