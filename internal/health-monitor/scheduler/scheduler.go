package scheduler

import (
	"VCS_Registry_Health/internal/health-monitor/sweep"
	"VCS_Registry_Health/pkg/logger"
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock_scheduler.go -package=mockscheduler

// HealthScheduler triggers sweeps on a fixed cadence and on demand.
// Sweeps are not mutually exclusive: a manual run can overlap a periodic one.
type HealthScheduler interface {
	Start()
	Stop()
	RunNow(ctx context.Context, serviceId string)
}

type healthScheduler struct {
	mu       sync.Mutex
	cron     *cron.Cron
	running  bool
	interval time.Duration
	sweeper  sweep.Sweeper
	logger   *zap.Logger
}

// Start is a no-op when the scheduler is already running. One sweep is fired right away,
// the next ones every interval after the previous one was scheduled.
func (s *healthScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	cronLogger := logger.NewCronLogger(s.logger)
	// the startup run shares the recover chain with the scheduled ticks
	job := cron.NewChain(cron.Recover(cronLogger)).Then(cron.FuncJob(s.runPeriodic))
	s.cron = cron.New(cron.WithLogger(cronLogger))
	s.cron.Schedule(cron.Every(s.interval), job)
	s.cron.Start()
	s.running = true

	go job.Run()
	s.logger.Info("health scheduler started", zap.Duration("interval", s.interval))
}

// Stop does not wait for a sweep already in flight.
func (s *healthScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.cron.Stop()
	s.running = false
	s.logger.Info("health scheduler stopped")
}

// RunNow runs a sweep synchronously. The sweep keeps going if ctx is cancelled.
func (s *healthScheduler) RunNow(ctx context.Context, serviceId string) {
	s.sweeper.RunSweep(context.WithoutCancel(ctx), serviceId)
}

func (s *healthScheduler) runPeriodic() {
	s.sweeper.RunSweep(context.Background(), "")
}

func NewHealthScheduler(sweeper sweep.Sweeper, interval time.Duration, logger *zap.Logger) HealthScheduler {
	return &healthScheduler{
		interval: interval,
		sweeper:  sweeper,
		logger:   logger,
	}
}
