package response

import (
	"VCS_Registry_Health/internal/health-monitor/model"
	"time"
)

type VariantHealthResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	BaseDomain        *string    `json:"base_domain"`
	HealthStatus      string     `json:"health_status"`
	LastHealthCheckAt *time.Time `json:"last_health_check_at"`
}

type ServiceHealthResponse struct {
	ID                   string                  `json:"id"`
	Name                 string                  `json:"name"`
	Status               string                  `json:"status"`
	HealthCheckURL       *string                 `json:"health_check_url"`
	HealthStatus         string                  `json:"health_status"`
	ConsecutiveFailures  int                     `json:"consecutive_failures"`
	ConsecutiveSuccesses int                     `json:"consecutive_successes"`
	LastHealthCheckAt    *time.Time              `json:"last_health_check_at"`
	Variants             []VariantHealthResponse `json:"variants"`
}

type ProbeRecordResponse struct {
	ID                   string    `json:"id"`
	ServiceID            string    `json:"service_id"`
	VariantID            *string   `json:"variant_id"`
	Status               string    `json:"status"`
	StatusCode           *int      `json:"status_code"`
	ResponseTime         *float64  `json:"response_time"`
	Message              *string   `json:"message"`
	ConsecutiveFailures  *int      `json:"consecutive_failures,omitempty"`
	ConsecutiveSuccesses *int      `json:"consecutive_successes,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

func NewServiceHealthResponse(s model.Service) ServiceHealthResponse {
	variants := make([]VariantHealthResponse, 0, len(s.Variants))
	for _, v := range s.Variants {
		variants = append(variants, VariantHealthResponse{
			ID:                v.ID,
			Name:              v.Name,
			BaseDomain:        v.BaseDomain,
			HealthStatus:      v.HealthStatus,
			LastHealthCheckAt: v.LastHealthCheckAt,
		})
	}
	return ServiceHealthResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		Status:               s.Status,
		HealthCheckURL:       s.HealthCheckURL,
		HealthStatus:         s.HealthStatus,
		ConsecutiveFailures:  s.ConsecutiveFailures,
		ConsecutiveSuccesses: s.ConsecutiveSuccesses,
		LastHealthCheckAt:    s.LastHealthCheckAt,
		Variants:             variants,
	}
}

func NewProbeRecordResponse(r model.ProbeRecord) ProbeRecordResponse {
	return ProbeRecordResponse{
		ID:                   r.ID,
		ServiceID:            r.ServiceID,
		VariantID:            r.VariantID,
		Status:               r.Status,
		StatusCode:           r.StatusCode,
		ResponseTime:         r.ResponseTime,
		Message:              r.Message,
		ConsecutiveFailures:  r.ConsecutiveFailures,
		ConsecutiveSuccesses: r.ConsecutiveSuccesses,
		CreatedAt:            r.CreatedAt,
	}
}
