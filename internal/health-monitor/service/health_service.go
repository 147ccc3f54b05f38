package service

import (
	apperrors "VCS_Registry_Health/internal/health-monitor/errors"
	"VCS_Registry_Health/internal/health-monitor/model"
	"VCS_Registry_Health/internal/health-monitor/repository"
	"VCS_Registry_Health/internal/health-monitor/scheduler"
	"context"
	"fmt"
)

//go:generate mockgen -source=health_service.go -destination=../mocks/service/mock_health_service.go -package=mockservice

type HealthService interface {
	GetServiceHealth(ctx context.Context, serviceId string) (model.Service, error)
	GetProbeRecords(ctx context.Context, serviceId string, variantId string, limit int, offset int) ([]model.ProbeRecord, error)
	TriggerHealthCheck(ctx context.Context, serviceId string) error
}

type healthService struct {
	serviceRepository     repository.ServiceRepository
	probeRecordRepository repository.ProbeRecordRepository
	scheduler             scheduler.HealthScheduler
}

func (h *healthService) GetServiceHealth(ctx context.Context, serviceId string) (model.Service, error) {
	service, err := h.serviceRepository.GetServiceById(ctx, serviceId)
	if err != nil {
		return model.Service{}, fmt.Errorf("HealthService.GetServiceHealth: %w", err)
	}
	return service, nil
}

// GetProbeRecords returns apperrors.ErrVariantNotFound when variantId does not belong to the service.
func (h *healthService) GetProbeRecords(ctx context.Context, serviceId string, variantId string, limit int, offset int) ([]model.ProbeRecord, error) {
	service, err := h.serviceRepository.GetServiceById(ctx, serviceId)
	if err != nil {
		return nil, fmt.Errorf("HealthService.GetProbeRecords: %w", err)
	}
	if variantId != "" && !hasVariant(service, variantId) {
		return nil, fmt.Errorf("HealthService.GetProbeRecords: %w", apperrors.ErrVariantNotFound)
	}
	records, err := h.probeRecordRepository.GetProbeRecords(ctx, serviceId, variantId, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("HealthService.GetProbeRecords: %w", err)
	}
	return records, nil
}

// TriggerHealthCheck blocks until the sweep for the service has finished.
// The service is read with FindServices, which is never served from the snapshot cache,
// so a health check url set by the registry is seen right away.
func (h *healthService) TriggerHealthCheck(ctx context.Context, serviceId string) error {
	services, err := h.serviceRepository.FindServices(ctx, repository.ServiceFilter{ID: serviceId})
	if err != nil {
		return fmt.Errorf("HealthService.TriggerHealthCheck: %w", err)
	}
	if len(services) == 0 {
		return fmt.Errorf("HealthService.TriggerHealthCheck: %w", apperrors.ErrServiceNotFound)
	}
	if !services[0].HasHealthCheckURL() {
		return fmt.Errorf("HealthService.TriggerHealthCheck: %w", apperrors.ErrHealthCheckURLNotConfigured)
	}
	h.scheduler.RunNow(ctx, serviceId)
	return nil
}

func hasVariant(service model.Service, variantId string) bool {
	for _, v := range service.Variants {
		if v.ID == variantId {
			return true
		}
	}
	return false
}

func NewHealthService(serviceRepository repository.ServiceRepository, probeRecordRepository repository.ProbeRecordRepository, scheduler scheduler.HealthScheduler) HealthService {
	return &healthService{
		serviceRepository:     serviceRepository,
		probeRecordRepository: probeRecordRepository,
		scheduler:             scheduler,
	}
}
