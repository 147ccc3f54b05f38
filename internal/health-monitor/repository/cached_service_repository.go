package repository

import (
	"VCS_Registry_Health/internal/health-monitor/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cachedServiceRepository caches service snapshots read by the admin api. Sweeps always
// read through to the database and every health update drops the cached snapshot.
type cachedServiceRepository struct {
	redis    *redis.Client
	repo     ServiceRepository
	cacheTTL time.Duration
	logger   *zap.Logger
}

func (*cachedServiceRepository) getServiceCachedKey(id string) string {
	return fmt.Sprintf("service:%s", id)
}

func (c *cachedServiceRepository) FindServices(ctx context.Context, filter ServiceFilter) ([]model.Service, error) {
	return c.repo.FindServices(ctx, filter)
}

func (c *cachedServiceRepository) GetServiceById(ctx context.Context, serviceId string) (model.Service, error) {
	key := c.getServiceCachedKey(serviceId)
	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var service model.Service
		e := json.Unmarshal(data, &service)
		if e == nil {
			return service, nil
		}
		c.logger.Warn("failed to decode cached service", zap.String("service_id", serviceId), zap.Error(e))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("failed to read service from cache", zap.String("service_id", serviceId), zap.Error(err))
	}

	service, err := c.repo.GetServiceById(ctx, serviceId)
	if err != nil {
		return service, fmt.Errorf("cachedServiceRepository.GetServiceById: %w", err)
	}
	b, err := json.Marshal(service)
	if err != nil {
		c.logger.Warn("failed to encode service for cache", zap.String("service_id", serviceId), zap.Error(err))
		return service, nil
	}
	if err = c.redis.Set(ctx, key, b, c.cacheTTL).Err(); err != nil {
		c.logger.Warn("failed to cache service", zap.String("service_id", serviceId), zap.Error(err))
	}
	return service, nil
}

func (c *cachedServiceRepository) UpdateServiceHealth(ctx context.Context, serviceId string, healthStatus string, consecutiveFailures int, consecutiveSuccesses int, checkedAt time.Time) error {
	err := c.repo.UpdateServiceHealth(ctx, serviceId, healthStatus, consecutiveFailures, consecutiveSuccesses, checkedAt)
	if err != nil {
		return fmt.Errorf("cachedServiceRepository.UpdateServiceHealth: %w", err)
	}
	c.invalidate(ctx, serviceId)
	return nil
}

func (c *cachedServiceRepository) UpdateVariantHealth(ctx context.Context, serviceId string, variantId string, healthStatus string, checkedAt time.Time) error {
	err := c.repo.UpdateVariantHealth(ctx, serviceId, variantId, healthStatus, checkedAt)
	if err != nil {
		return fmt.Errorf("cachedServiceRepository.UpdateVariantHealth: %w", err)
	}
	c.invalidate(ctx, serviceId)
	return nil
}

// invalidate runs after the database write, a failure only leaves a snapshot that expires with the ttl.
func (c *cachedServiceRepository) invalidate(ctx context.Context, serviceId string) {
	if err := c.redis.Del(ctx, c.getServiceCachedKey(serviceId)).Err(); err != nil {
		c.logger.Warn("failed to invalidate cached service", zap.String("service_id", serviceId), zap.Error(err))
	}
}

func NewCachedServiceRepository(redis *redis.Client, repo ServiceRepository, cacheTTL time.Duration, logger *zap.Logger) ServiceRepository {
	return &cachedServiceRepository{
		redis:    redis,
		repo:     repo,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}
