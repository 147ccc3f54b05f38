package model

import "time"

const (
	ProbeStatusSuccess = "success"
	ProbeStatusFailure = "failure"
	ProbeStatusError   = "error"
)

// ProbeRecord is one append-only log entry of a single probe attempt.
// VariantID is nil for service level probes, counters are only set on those.
type ProbeRecord struct {
	ID                   string
	ServiceID            string
	VariantID            *string
	Status               string
	StatusCode           *int
	ResponseTime         *float64 // seconds
	Message              *string
	ConsecutiveFailures  *int
	ConsecutiveSuccesses *int
	CreatedAt            time.Time
}
