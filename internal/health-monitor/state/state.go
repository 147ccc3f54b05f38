package state

import "VCS_Registry_Health/internal/health-monitor/model"

const (
	DefaultFailureThreshold = 3
	DefaultSuccessThreshold = 2
)

// Thresholds are the number of consecutive identical outcomes needed before a
// service flips its health status.
type Thresholds struct {
	Failure int
	Success int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Failure: DefaultFailureThreshold,
		Success: DefaultSuccessThreshold,
	}
}

// Counters is the hysteresis state persisted on a service.
type Counters struct {
	HealthStatus         string
	ConsecutiveFailures  int
	ConsecutiveSuccesses int
}

func FromService(s model.Service) Counters {
	return Counters{
		HealthStatus:         s.HealthStatus,
		ConsecutiveFailures:  s.ConsecutiveFailures,
		ConsecutiveSuccesses: s.ConsecutiveSuccesses,
	}
}

// NextServiceState applies one probe outcome to the service counters.
// Thresholds are compared with >= so counters that overshoot still trigger.
func (t Thresholds) NextServiceState(current Counters, probeStatus string) Counters {
	next := current
	if probeStatus == model.ProbeStatusSuccess {
		next.ConsecutiveFailures = 0
		next.ConsecutiveSuccesses = current.ConsecutiveSuccesses + 1
		if next.ConsecutiveSuccesses >= t.Success && current.HealthStatus != model.HealthStatusActive {
			next.HealthStatus = model.HealthStatusActive
		}
		return next
	}
	next.ConsecutiveSuccesses = 0
	next.ConsecutiveFailures = current.ConsecutiveFailures + 1
	if next.ConsecutiveFailures >= t.Failure {
		next.HealthStatus = model.HealthStatusInactive
	}
	return next
}

// NextVariantStatus has no hysteresis: the latest outcome decides.
func NextVariantStatus(probeStatus string) string {
	if probeStatus == model.ProbeStatusSuccess {
		return model.HealthStatusActive
	}
	return model.HealthStatusInactive
}
