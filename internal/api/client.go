package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kapu/portfolio-client-go/internal/constants"
	"github.com/kapu/portfolio-client-go/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Request describes one outbound call. Headers are applied last and win over
// every header the client sets itself.
type Request struct {
	Method      string
	Path        string
	Body        io.Reader
	ContentType string
	Headers     map[string]string
	Credentials oauth2.TokenSource
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Requester performs exactly one HTTP exchange per Do call.
type Requester interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.APIConfig.DefaultTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends the request once. Transport errors are returned as produced by the
// underlying http.Client; non-2xx responses become *errors.APIError with the
// raw body attached.
func (c *Client) Do(ctx context.Context, r *Request) (*Response, error) {
	url := c.baseURL + r.Path

	req, err := http.NewRequestWithContext(ctx, r.Method, url, r.Body)
	if err != nil {
		return nil, errors.NewAPIError("failed to create request", 0, map[string]any{
			"url": url,
		}).WithCause(err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.APIConfig.UserAgent)
	req.Header.Set(constants.APIConfig.RequestIDHeader, requestID)
	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}

	if r.Credentials != nil {
		token, err := r.Credentials.Token()
		if err != nil {
			c.logger.Warn("Credential provider failed",
				zap.String("method", r.Method),
				zap.String("path", r.Path),
				zap.Error(err),
			)
			return nil, err
		}
		token.SetAuthHeader(req)
	}

	for key, value := range r.Headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.Path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("Failed to read response body",
			zap.String("method", r.Method),
			zap.String("path", r.Path),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Debug("Request completed",
		zap.String("method", r.Method),
		zap.String("path", r.Path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewHTTPStatusError(r.Method, url, resp.StatusCode, body)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
