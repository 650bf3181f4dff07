package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	apperrors "inventory-client/pkg/errors"
)

var errInvalidJSON = errors.New("response body is not valid JSON")

// Blob is a binary payload such as an export file.
type Blob struct {
	ContentType string
	Data        []byte
}

// Response is the typed outcome of a remote call. On failure Data is
// the zero value and Error holds a human readable reason.
type Response[T any] struct {
	Success    bool   `json:"success"`
	Data       T      `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"-"`

	cause *apperrors.StandardError
}

// Err returns the failure as a *StandardError, or nil on success.
func (r Response[T]) Err() error {
	if r.Success {
		return nil
	}
	if r.cause != nil {
		return r.cause
	}
	return apperrors.NewInternalError(r.Error, nil)
}

// OK builds a successful response.
func OK[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

// Fail builds a failed response carrying err.
func Fail[T any](err *apperrors.StandardError) Response[T] {
	if err == nil {
		err = apperrors.NewInternalError("request failed", nil)
	}
	return Response[T]{Success: false, Error: err.Message, StatusCode: err.Status, cause: err}
}

// Decode converts an envelope into a typed response.
func Decode[T any](env Envelope) Response[T] {
	if !env.Success {
		resp := Fail[T](env.Err)
		resp.StatusCode = env.StatusCode
		return resp
	}

	var out T
	if blob, ok := any(&out).(*Blob); ok {
		*blob = Blob{ContentType: env.ContentType, Data: env.Body}
		return Response[T]{Success: true, Data: out, Message: env.Message, StatusCode: env.StatusCode}
	}

	if env.Kind == KindBlob && len(env.Body) > 0 {
		resp := Fail[T](apperrors.NewDecodeError(fmt.Errorf("unexpected content type %q", env.ContentType)))
		resp.StatusCode = env.StatusCode
		return resp
	}

	if len(env.Body) > 0 && string(env.Body) != "null" {
		if err := json.Unmarshal(env.Body, &out); err != nil {
			resp := Fail[T](apperrors.NewDecodeError(err))
			resp.StatusCode = env.StatusCode
			return resp
		}
	}

	return Response[T]{Success: true, Data: out, Message: env.Message, StatusCode: env.StatusCode}
}

// Call performs req and decodes the result into T.
func Call[T any](ctx context.Context, c *Client, req Request) Response[T] {
	return Decode[T](c.Do(ctx, req))
}
