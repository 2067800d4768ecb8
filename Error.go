package gohitbtc

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Error interface {
	error
	Code() int
}

type apiError struct {
	code    int
	message string
}

func (this *apiError) Error() string {
	return this.message
}

func (this *apiError) Code() int {
	return this.code
}

// NewError creates a new API error with a code and a message
func NewError(code int, message string, args ...interface{}) Error {
	if len(args) > 0 {
		return &apiError{code, fmt.Sprintf(message, args...)}
	}
	return &apiError{code, message}
}

// ErrApiKeysRequired is returned by every private endpoint when the client
// carries no credentials. No request leaves the process in that case.
var ErrApiKeysRequired = NewError(10001, "API keys are required for the private endpoint")

// APIError is the error object the exchange nests under "error" in a failed
// response body.
type APIError struct {
	ErrCode     int    `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func (this *APIError) Error() string {
	if this.Description != "" {
		return fmt.Sprintf("%s: %s", this.Message, this.Description)
	}
	return this.Message
}

func (this *APIError) Code() int {
	return this.ErrCode
}

// UnwrapError turns a non-2xx response into the most specific error
// available, in order: the exchange error object, the raw response body,
// the bare http status. This is the single place that ordering lives.
func UnwrapError(statusCode int, body []byte) error {
	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil &&
		envelope.Error != nil && envelope.Error.Message != "" {
		return envelope.Error
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return NewError(statusCode, text)
	}

	return NewError(statusCode, "HttpStatusCode:%d", statusCode)
}
