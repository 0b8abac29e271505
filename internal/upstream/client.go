package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"medicenter-portal/config"
	"medicenter-portal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxResponseBytes = 4 << 20

// Client is the HTTP client for the upstream medical-center API. It is the
// only place that attaches the bearer token to outgoing requests, and the
// only place that recognizes an upstream 401.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
	metrics    *metrics.Metrics
}

func NewClient(cfg config.UpstreamConfig, log *logrus.Logger, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log:     log,
		metrics: m,
	}
}

// do issues one request and returns the raw response body for a 2xx status.
// Non-2xx statuses are mapped onto the error taxonomy: 401 -> ErrUnauthorized,
// other 4xx -> *APIError with the upstream message, 5xx and transport
// failures -> ErrUnavailable.
func (c *Client) do(ctx context.Context, operation, method, path, token string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s request: %w", operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", operation, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.UpstreamErrors.WithLabelValues(operation).Inc()
		}
		c.log.Warnf("Upstream %s failed: %+v", operation, err)
		return nil, fmt.Errorf("%s: %w", operation, ErrUnavailable)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.UpstreamRequests.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.log.Warnf("Upstream %s body read failed: %+v", operation, err)
		return nil, fmt.Errorf("%s: %w", operation, ErrUnavailable)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return respBody, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%s: %w", operation, ErrUnauthorized)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%s: %w", operation, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		})
	default:
		c.log.Warnf("Upstream %s returned status %d", operation, resp.StatusCode)
		return nil, fmt.Errorf("%s: %w", operation, ErrUnavailable)
	}
}

// errorMessage pulls a human-readable message out of an upstream error body.
// The upstream is not consistent about the field name.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

// unwrapData strips an optional {"data": ...} envelope. Some upstream
// deployments wrap list and object responses, some do not.
func unwrapData(body []byte) []byte {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		return envelope.Data
	}
	return body
}
