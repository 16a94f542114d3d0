package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// NoResponse tells Respond that the handler already wrote the response.
type NoResponse struct{}

func NewNoResponse() NoResponse {
	return NoResponse{}
}

// Encode implements the Encoder interface.
func (NoResponse) Encode() ([]byte, string, error) {
	return nil, "", nil
}

// JSONResponse encodes Data as JSON with an optional status code.
type JSONResponse[T any] struct {
	Data   T
	Status int
}

func (j *JSONResponse[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(j.Data)
	if err != nil {
		return nil, "", err
	}
	return data, "application/json; charset=utf-8", nil
}

func (j *JSONResponse[T]) HTTPStatus() int {
	if j.Status == 0 {
		return http.StatusOK
	}
	return j.Status
}

func NewJSONResponse[T any](data T) *JSONResponse[T] {
	return &JSONResponse[T]{Data: data}
}

func NewJSONResponseWithStatus[T any](data T, status int) *JSONResponse[T] {
	return &JSONResponse[T]{Data: data, Status: status}
}

type httpStatus interface {
	HTTPStatus() int
}

// StatusCode reports the status Respond will write for resp. A nil
// response means 204 No Content.
func StatusCode(resp Encoder) int {
	switch v := resp.(type) {
	case httpStatus:
		return v.HTTPStatus()
	case error:
		return http.StatusInternalServerError
	default:
		if resp == nil {
			return http.StatusNoContent
		}
		return http.StatusOK
	}
}

// Respond sends a response to the client.
func Respond(ctx context.Context, w http.ResponseWriter, resp Encoder) error {
	if _, ok := resp.(NoResponse); ok {
		return nil
	}

	// The client is no longer waiting for a response.
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("client disconnected, do not send response")
		}
	}

	statusCode := StatusCode(resp)
	if statusCode == http.StatusNoContent {
		w.WriteHeader(statusCode)
		return nil
	}

	data, contentType, err := resp.Encode()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return fmt.Errorf("respond: encode: %w", err)
	}

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if len(data) == 0 {
		return nil
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("respond: write: %w", err)
	}

	return nil
}
