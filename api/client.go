package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultSystemPrompt is sent when the caller does not supply one.
const DefaultSystemPrompt = "You are a helpful assistant. Answer clearly and concisely."

var (
	// ErrRequest covers transport failures and non-2xx replies.
	ErrRequest = errors.New("HTTP request failed")
	// ErrDecode is returned when the reply body is not the expected JSON.
	ErrDecode = errors.New("JSON parsing error")
)

// Client talks to the model-serving daemon's HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
	log     logrus.FieldLogger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request. Zero disables the timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log logrus.FieldLogger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Generate sends a single non-streaming generation request.
func (c *Client) Generate(ctx context.Context, model, prompt, system string) (*GenerateResponse, error) {
	body, err := json.Marshal(NewGenerateRequest(model, prompt, system))
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", ErrDecode, err)
	}

	url := c.baseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log := c.log.WithFields(logrus.Fields{"url": url, "model": model})
	log.Debug("sending generate request")
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrRequest, err)
	}
	log.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"elapsed": time.Since(start),
	}).Debug("generate response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, data)
	}

	var out GenerateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &out, nil
}

func statusError(code int, body []byte) error {
	var e ErrorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return fmt.Errorf("%w: status %d: %s", ErrRequest, code, e.Error)
	}
	return fmt.Errorf("%w: status %d", ErrRequest, code)
}
