// Package gateway talks to the remote inventory API. Every call returns
// a result value; transport, status and decode failures never panic and
// never escape as bare Go errors.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "inventory-client/pkg/errors"
	"inventory-client/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-ID"

// Kind is how a response body was interpreted.
type Kind int

const (
	KindJSON Kind = iota
	KindText
	KindBlob
)

// Envelope is the untyped outcome of one remote call.
type Envelope struct {
	Success     bool
	StatusCode  int
	Kind        Kind
	ContentType string
	Body        []byte
	Message     string
	Err         *apperrors.StandardError
}

// Upload is a file streamed as multipart form data.
type Upload struct {
	Field    string
	Filename string
	Reader   io.Reader
}

// Request describes one remote call.
type Request struct {
	Method     string
	Path       string
	Query      url.Values
	Body       interface{}
	Upload     *Upload
	ExpectBlob bool
}

// Client issues requests against the API base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every request, body read included.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRateLimit throttles outbound calls. A non-positive rps disables it.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client for baseURL, e.g. http://localhost:8080/api.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs the request and interprets the response by content type.
func (c *Client) Do(ctx context.Context, req Request) (env Envelope) {
	start := time.Now()
	defer func() {
		logger.RecordUpstream(ctx, env.Success, time.Since(start))
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.logger.Warn("API request throttled",
				zap.String("method", req.Method),
				zap.String("path", req.Path),
				zap.Error(err),
			)
			return Envelope{Err: apperrors.NewNetworkError(err)}
		}
	}

	httpReq, requestID, err := c.newRequest(ctx, req)
	if err != nil {
		return Envelope{Err: apperrors.NewInvalidRequest("failed to build request", err.Error())}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("API call failed",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return Envelope{Err: apperrors.NewNetworkError(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("Failed to read API response",
			zap.String("path", req.Path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return Envelope{StatusCode: resp.StatusCode, Err: apperrors.NewNetworkError(err)}
	}

	env = interpret(resp.StatusCode, resp.Header.Get("Content-Type"), body, req.ExpectBlob)

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("latency", time.Since(start)),
	}
	if env.Success {
		c.logger.Debug("API call", fields...)
	} else {
		c.logger.Warn("API call returned failure", append(fields, zap.String("error", env.Err.Message))...)
	}

	return env
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, string, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case req.Upload != nil:
		body, contentType = streamMultipart(req.Upload)
	case req.Body != nil:
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", err
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, "", err
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if !req.ExpectBlob {
		httpReq.Header.Set("Accept", "application/json")
	}

	requestID := logger.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	httpReq.Header.Set(requestIDHeader, requestID)

	return httpReq, requestID, nil
}

// streamMultipart pipes the upload so large files are never buffered whole.
func streamMultipart(upload *Upload) (io.Reader, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	field := upload.Field
	if field == "" {
		field = "file"
	}

	go func() {
		part, err := mw.CreateFormFile(field, upload.Filename)
		if err == nil {
			_, err = io.Copy(part, upload.Reader)
		}
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	return pr, mw.FormDataContentType()
}

func interpret(status int, contentType string, body []byte, expectBlob bool) Envelope {
	kind := classify(contentType, expectBlob)

	if status < 200 || status >= 300 {
		return Envelope{
			StatusCode:  status,
			Kind:        kind,
			ContentType: contentType,
			Err:         apperrors.NewHTTPError(status, failureMessage(kind, body)),
		}
	}

	env := Envelope{Success: true, StatusCode: status, Kind: kind, ContentType: contentType}

	switch kind {
	case KindBlob:
		env.Body = body
	case KindText:
		text := strings.TrimSpace(string(body))
		env.Message = text
		env.Body, _ = json.Marshal(map[string]string{"message": text})
	case KindJSON:
		trimmed := bytes.TrimSpace(body)
		if len(trimmed) == 0 {
			return env
		}
		if !json.Valid(trimmed) {
			return Envelope{StatusCode: status, Kind: kind, ContentType: contentType,
				Err: apperrors.NewDecodeError(errInvalidJSON)}
		}
		return unwrap(env, trimmed)
	}

	return env
}

// unwrap accepts both raw payloads and {success, data, message, error} wrappers.
func unwrap(env Envelope, body []byte) Envelope {
	if body[0] == '{' {
		var wrapper struct {
			Success *bool           `json:"success"`
			Data    json.RawMessage `json:"data"`
			Message string          `json:"message"`
			Error   string          `json:"error"`
		}
		if err := json.Unmarshal(body, &wrapper); err == nil {
			if wrapper.Success != nil {
				if !*wrapper.Success {
					message := wrapper.Error
					if message == "" {
						message = wrapper.Message
					}
					return Envelope{
						StatusCode:  env.StatusCode,
						Kind:        env.Kind,
						ContentType: env.ContentType,
						Err:         apperrors.NewHTTPError(env.StatusCode, message),
					}
				}
				env.Body = wrapper.Data
				env.Message = wrapper.Message
				return env
			}
			env.Message = wrapper.Message
		}
	}
	env.Body = body
	return env
}

func classify(contentType string, expectBlob bool) Kind {
	switch {
	case expectBlob:
		return KindBlob
	case strings.Contains(contentType, "application/json"):
		return KindJSON
	case strings.Contains(contentType, "text/"):
		return KindText
	default:
		return KindBlob
	}
}

// failureMessage prefers the body's message, then its error field.
func failureMessage(kind Kind, body []byte) string {
	switch kind {
	case KindJSON:
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
	case KindText:
		return strings.TrimSpace(string(body))
	}
	return ""
}
