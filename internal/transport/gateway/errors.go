package gateway

import (
	"fmt"
)

type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}

// GatewayStatusError ответ 200 с неуспешным статусом платежа в теле.
type GatewayStatusError struct {
	Status string
}

func NewGatewayStatusError(status string) *GatewayStatusError {
	return &GatewayStatusError{Status: status}
}

func (e *GatewayStatusError) Error() string {
	return fmt.Sprintf("Unexpected gateway payment status %q", e.Status)
}
