package apperrors

import (
	"errors"
)

var (
	ErrServiceNotFound             = errors.New("service not found")
	ErrVariantNotFound             = errors.New("variant not found")
	ErrHealthCheckURLNotConfigured = errors.New("service does not have a health check url configured")
)
