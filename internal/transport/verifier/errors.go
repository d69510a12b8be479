package verifier

import (
	"fmt"

	"github.com/fsdevblog/groph-auction/internal/domain"
)

// StatusCodeError ответ сервиса проверки с кодом отличным от 2xx.
type StatusCodeError struct {
	Code int
	Body string
}

func NewStatusCodeError(code int, body string) *StatusCodeError {
	return &StatusCodeError{Code: code, Body: body}
}

func (e *StatusCodeError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("Unexpected status code %d", e.Code)
	}
	return fmt.Sprintf("Unexpected status code %d: %s", e.Code, e.Body)
}

func (e *StatusCodeError) StatusCode() int {
	return e.Code
}

func (e *StatusCodeError) Unwrap() error {
	return domain.ErrUpstreamUnavailable
}

// UnexpectedResponseError тело ответа не содержит известного вердикта.
type UnexpectedResponseError struct {
	Body string
}

func NewUnexpectedResponseError(body string) *UnexpectedResponseError {
	return &UnexpectedResponseError{Body: body}
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("Unexpected verification response %q", e.Body)
}

func (e *UnexpectedResponseError) Unwrap() error {
	return domain.ErrUpstreamUnexpectedResponse
}
