package model

import "time"

// Administrative status of a registered service. Only ACTIVE services are probed.
const (
	ServiceStatusActive   = "ACTIVE"
	ServiceStatusInactive = "INACTIVE"
)

// Health status of a service or a variant, decided by health checks.
const (
	HealthStatusActive   = "ACTIVE"
	HealthStatusInactive = "INACTIVE"
	HealthStatusUnknown  = "UNKNOWN"
)

type Service struct {
	ID                   string `gorm:"default:(-)"`
	Name                 string
	Status               string
	HealthCheckURL       *string
	HealthStatus         string
	ConsecutiveFailures  int
	ConsecutiveSuccesses int
	LastHealthCheckAt    *time.Time
	Variants             []Variant `gorm:"foreignKey:ServiceID"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// HasHealthCheckURL reports whether the service is monitored at all.
func (s Service) HasHealthCheckURL() bool {
	return s.HealthCheckURL != nil && *s.HealthCheckURL != ""
}

// Variant is a named deployment target of a service (production, staging...).
type Variant struct {
	ID                string `gorm:"default:(-)"`
	ServiceID         string
	Name              string
	BaseDomain        *string
	HealthStatus      string
	LastHealthCheckAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
