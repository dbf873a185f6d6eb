package domain

import (
	"errors"
	"fmt"
)

// Upstream news API errors.
var (
	ErrUpstreamUnavailable = errors.New("news API unavailable")
	ErrUpstreamStatus      = errors.New("news API returned non-success status")
	ErrUpstreamDecode      = errors.New("news API response could not be decoded")
)

// Dashboard state errors.
var (
	ErrSessionNotFound    = errors.New("dashboard session not found")
	ErrLoadAlreadyStarted = errors.New("dashboard load already started")
	ErrDashboardLoad      = errors.New("dashboard data could not be loaded")
	ErrUnknownFilterField = errors.New("unknown filter field")
)

// UpstreamStatusError carries the status code of a non-2xx news API response.
type UpstreamStatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s: %s returned status %d", ErrUpstreamStatus, e.Endpoint, e.StatusCode)
}

// Unwrap lets errors.Is match ErrUpstreamStatus.
func (e *UpstreamStatusError) Unwrap() error {
	return ErrUpstreamStatus
}
