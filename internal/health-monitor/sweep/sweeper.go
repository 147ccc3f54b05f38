package sweep

import (
	"VCS_Registry_Health/internal/health-monitor/model"
	"VCS_Registry_Health/internal/health-monitor/notifier"
	"VCS_Registry_Health/internal/health-monitor/probe"
	"VCS_Registry_Health/internal/health-monitor/publisher"
	"VCS_Registry_Health/internal/health-monitor/repository"
	"VCS_Registry_Health/internal/health-monitor/state"
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=sweeper.go -destination=../mocks/sweep/mock_sweeper.go -package=mocksweep

// Sweeper runs one health sweep over the probe eligible services.
// RunSweep never fails: every error is logged and the sweep moves on.
type Sweeper interface {
	RunSweep(ctx context.Context, serviceId string)
}

type sweeper struct {
	serviceRepo repository.ServiceRepository
	recordRepo  repository.ProbeRecordRepository
	prober      probe.Prober
	publisher   publisher.Publisher
	notifier    notifier.Notifier
	thresholds  state.Thresholds
	concurrency int
	logger      *zap.Logger
	now         func() time.Time
}

type sweepStats struct {
	services     atomic.Int64
	probes       atomic.Int64
	failedWrites atomic.Int64
}

// RunSweep probes every administratively active service, or only serviceId when set.
// Two overlapping sweeps may read the same counters and the last write wins.
func (s *sweeper) RunSweep(ctx context.Context, serviceId string) {
	start := s.now()
	services, err := s.serviceRepo.FindServices(ctx, repository.ServiceFilter{
		EnabledOnly: true,
		ID:          serviceId,
	})
	if err != nil {
		s.logger.Error("failed to fetch services for health check", zap.Error(fmt.Errorf("sweeper.RunSweep: %w", err)), zap.String("service_id", serviceId))
		return
	}

	var stats sweepStats
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for _, service := range services {
		service := service
		g.Go(func() error {
			s.processServiceSafely(ctx, service, &stats)
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("health sweep completed",
		zap.String("service_id", serviceId),
		zap.Int("services", len(services)),
		zap.Int64("checked_services", stats.services.Load()),
		zap.Int64("probes", stats.probes.Load()),
		zap.Int64("failed_writes", stats.failedWrites.Load()),
		zap.Duration("duration", s.now().Sub(start)),
	)
}

func (s *sweeper) processServiceSafely(ctx context.Context, service model.Service, stats *sweepStats) {
	defer func() {
		if r := recover(); r != nil {
			stats.failedWrites.Add(1)
			s.logger.Error("panic while checking service health", zap.String("service_id", service.ID), zap.Any("panic", r))
		}
	}()
	s.processService(ctx, service, stats)
}

// processService writes the probe record before the service update, variants are only
// checked once both writes succeeded since their url is derived from the service url.
func (s *sweeper) processService(ctx context.Context, service model.Service, stats *sweepStats) {
	if !service.HasHealthCheckURL() {
		return
	}
	stats.services.Add(1)

	res := s.prober.Probe(ctx, *service.HealthCheckURL)
	stats.probes.Add(1)
	next := s.thresholds.NextServiceState(state.FromService(service), res.Status)

	record := newProbeRecord(service.ID, nil, res, s.now())
	record.ConsecutiveFailures = &next.ConsecutiveFailures
	record.ConsecutiveSuccesses = &next.ConsecutiveSuccesses
	if err := s.recordRepo.AppendProbeRecord(ctx, &record); err != nil {
		stats.failedWrites.Add(1)
		s.logger.Error("failed to append probe record", zap.Error(fmt.Errorf("sweeper.processService: %w", err)), zap.String("service_id", service.ID))
		return
	}
	err := s.serviceRepo.UpdateServiceHealth(ctx, service.ID, next.HealthStatus, next.ConsecutiveFailures, next.ConsecutiveSuccesses, s.now())
	if err != nil {
		stats.failedWrites.Add(1)
		s.logger.Error("failed to update service health", zap.Error(fmt.Errorf("sweeper.processService: %w", err)), zap.String("service_id", service.ID))
		return
	}
	if next.HealthStatus != service.HealthStatus {
		s.logger.Info("service health status changed",
			zap.String("service_id", service.ID),
			zap.String("from", service.HealthStatus),
			zap.String("to", next.HealthStatus),
			zap.Int("consecutive_failures", next.ConsecutiveFailures),
			zap.Int("consecutive_successes", next.ConsecutiveSuccesses),
		)
		s.notify(ctx, notifier.StatusChange{
			ServiceID:   service.ID,
			ServiceName: service.Name,
			From:        service.HealthStatus,
			To:          next.HealthStatus,
			Message:     res.Message,
			CheckedAt:   record.CreatedAt,
		})
	}
	s.publish(ctx, record, next.HealthStatus)

	for _, variant := range service.Variants {
		s.processVariant(ctx, service, variant, stats)
	}
}

func (s *sweeper) processVariant(ctx context.Context, service model.Service, variant model.Variant, stats *sweepStats) {
	if variant.BaseDomain == nil || *variant.BaseDomain == "" {
		return
	}
	variantURL, ok := probe.DeriveVariantURL(*service.HealthCheckURL, variant.BaseDomain)
	if !ok {
		s.logger.Warn("failed to construct variant health check url",
			zap.String("service_id", service.ID),
			zap.String("variant_id", variant.ID),
			zap.String("health_check_url", *service.HealthCheckURL),
		)
		return
	}

	res := s.prober.Probe(ctx, variantURL)
	stats.probes.Add(1)
	healthStatus := state.NextVariantStatus(res.Status)

	variantId := variant.ID
	record := newProbeRecord(service.ID, &variantId, res, s.now())
	if err := s.recordRepo.AppendProbeRecord(ctx, &record); err != nil {
		stats.failedWrites.Add(1)
		s.logger.Error("failed to append variant probe record", zap.Error(fmt.Errorf("sweeper.processVariant: %w", err)),
			zap.String("service_id", service.ID), zap.String("variant_id", variant.ID))
		return
	}
	if err := s.serviceRepo.UpdateVariantHealth(ctx, service.ID, variant.ID, healthStatus, s.now()); err != nil {
		stats.failedWrites.Add(1)
		s.logger.Error("failed to update variant health", zap.Error(fmt.Errorf("sweeper.processVariant: %w", err)),
			zap.String("service_id", service.ID), zap.String("variant_id", variant.ID))
		return
	}
	if healthStatus != variant.HealthStatus {
		s.logger.Info("variant health status changed",
			zap.String("service_id", service.ID),
			zap.String("variant_id", variant.ID),
			zap.String("from", variant.HealthStatus),
			zap.String("to", healthStatus),
		)
		s.notify(ctx, notifier.StatusChange{
			ServiceID:   service.ID,
			ServiceName: service.Name,
			VariantID:   variant.ID,
			VariantName: variant.Name,
			From:        variant.HealthStatus,
			To:          healthStatus,
			Message:     res.Message,
			CheckedAt:   record.CreatedAt,
		})
	}
	s.publish(ctx, record, healthStatus)
}

func (s *sweeper) publish(ctx context.Context, record model.ProbeRecord, healthStatus string) {
	if err := s.publisher.PublishProbeRecord(ctx, record, healthStatus); err != nil {
		s.logger.Warn("failed to publish probe record", zap.Error(fmt.Errorf("sweeper.publish: %w", err)), zap.String("service_id", record.ServiceID))
	}
}

// notify skips the first transition out of UNKNOWN when it is a healthy one.
func (s *sweeper) notify(ctx context.Context, change notifier.StatusChange) {
	if change.From == model.HealthStatusUnknown && change.To == model.HealthStatusActive {
		return
	}
	if err := s.notifier.NotifyStatusChange(ctx, change); err != nil {
		s.logger.Warn("failed to send status change notification", zap.Error(fmt.Errorf("sweeper.notify: %w", err)),
			zap.String("service_id", change.ServiceID), zap.String("variant_id", change.VariantID))
	}
}

func newProbeRecord(serviceId string, variantId *string, res probe.Result, createdAt time.Time) model.ProbeRecord {
	message := res.Message
	responseTime := res.ResponseTime
	return model.ProbeRecord{
		ServiceID:    serviceId,
		VariantID:    variantId,
		Status:       res.Status,
		StatusCode:   res.StatusCode,
		ResponseTime: &responseTime,
		Message:      &message,
		CreatedAt:    createdAt,
	}
}

type Option func(s *sweeper)

func WithClock(now func() time.Time) Option {
	return func(s *sweeper) {
		s.now = now
	}
}

func WithConcurrency(n int) Option {
	return func(s *sweeper) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func NewSweeper(serviceRepo repository.ServiceRepository, recordRepo repository.ProbeRecordRepository, prober probe.Prober,
	resultPublisher publisher.Publisher, statusNotifier notifier.Notifier, thresholds state.Thresholds, logger *zap.Logger, opts ...Option) Sweeper {
	s := &sweeper{
		serviceRepo: serviceRepo,
		recordRepo:  recordRepo,
		prober:      prober,
		publisher:   resultPublisher,
		notifier:    statusNotifier,
		thresholds:  thresholds,
		concurrency: 10,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
