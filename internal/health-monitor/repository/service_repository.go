package repository

import (
	apperrors "VCS_Registry_Health/internal/health-monitor/errors"
	"VCS_Registry_Health/internal/health-monitor/model"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=service_repository.go -destination=../mocks/repository/mock_service_repository.go -package=mockrepository

// ServiceFilter selects services for a sweep. An empty ID means every service.
type ServiceFilter struct {
	EnabledOnly bool
	ID          string
}

type ServiceRepository interface {
	FindServices(ctx context.Context, filter ServiceFilter) ([]model.Service, error)
	GetServiceById(ctx context.Context, serviceId string) (model.Service, error)
	UpdateServiceHealth(ctx context.Context, serviceId string, healthStatus string, consecutiveFailures int, consecutiveSuccesses int, checkedAt time.Time) error
	UpdateVariantHealth(ctx context.Context, serviceId string, variantId string, healthStatus string, checkedAt time.Time) error
}

type serviceRepository struct {
	db *gorm.DB
}

func (s *serviceRepository) FindServices(ctx context.Context, filter ServiceFilter) ([]model.Service, error) {
	query := s.db.WithContext(ctx).Preload("Variants")
	if filter.EnabledOnly {
		query = query.Where("status = ?", model.ServiceStatusActive)
	}
	if filter.ID != "" {
		query = query.Where("id = ?", filter.ID)
	}
	var services []model.Service
	result := query.Find(&services)
	if result.Error != nil {
		return nil, fmt.Errorf("ServiceRepository.FindServices: %w", result.Error)
	}
	return services, nil
}

func (s *serviceRepository) GetServiceById(ctx context.Context, serviceId string) (model.Service, error) {
	var service model.Service
	result := s.db.WithContext(ctx).Preload("Variants").First(&service, "id = ?", serviceId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return service, fmt.Errorf("ServiceRepository.GetServiceById: %w", apperrors.ErrServiceNotFound)
		}
		return service, fmt.Errorf("ServiceRepository.GetServiceById: %w", result.Error)
	}
	return service, nil
}

// UpdateServiceHealth only touches the health fields, a map is used so zero counters are written.
func (s *serviceRepository) UpdateServiceHealth(ctx context.Context, serviceId string, healthStatus string, consecutiveFailures int, consecutiveSuccesses int, checkedAt time.Time) error {
	result := s.db.WithContext(ctx).Model(&model.Service{}).Where("id = ?", serviceId).Updates(map[string]interface{}{
		"health_status":         healthStatus,
		"consecutive_failures":  consecutiveFailures,
		"consecutive_successes": consecutiveSuccesses,
		"last_health_check_at":  checkedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("ServiceRepository.UpdateServiceHealth: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServiceRepository.UpdateServiceHealth: %w", apperrors.ErrServiceNotFound)
	}
	return nil
}

func (s *serviceRepository) UpdateVariantHealth(ctx context.Context, serviceId string, variantId string, healthStatus string, checkedAt time.Time) error {
	result := s.db.WithContext(ctx).Model(&model.Variant{}).Where("id = ? AND service_id = ?", variantId, serviceId).Updates(map[string]interface{}{
		"health_status":        healthStatus,
		"last_health_check_at": checkedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("ServiceRepository.UpdateVariantHealth: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServiceRepository.UpdateVariantHealth: %w", apperrors.ErrVariantNotFound)
	}
	return nil
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}
