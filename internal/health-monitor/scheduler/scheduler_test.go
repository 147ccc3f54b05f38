package scheduler

import (
	mocksweep "VCS_Registry_Health/internal/health-monitor/mocks/sweep"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHealthScheduler_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSweeper := mocksweep.NewMockSweeper(ctrl)

	runs := make(chan struct{}, 10)
	mockSweeper.EXPECT().RunSweep(gomock.Any(), "").Do(func(context.Context, string) {
		runs <- struct{}{}
	}).MinTimes(2)

	scheduler := NewHealthScheduler(mockSweeper, time.Second, zap.NewNop())
	scheduler.Start()
	scheduler.Start()

	// one immediate run, then one per interval
	for i := 0; i < 2; i++ {
		select {
		case <-runs:
		case <-time.After(3 * time.Second):
			t.Fatalf("sweep %d was not triggered", i+1)
		}
	}

	scheduler.Stop()
	scheduler.Stop()

	// drain a run that may have been scheduled right before Stop
	time.Sleep(50 * time.Millisecond)
	for len(runs) > 0 {
		<-runs
	}
	select {
	case <-runs:
		t.Fatal("sweep triggered after stop")
	case <-time.After(1500 * time.Millisecond):
	}
}

func TestHealthScheduler_RestartAfterStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSweeper := mocksweep.NewMockSweeper(ctrl)

	runs := make(chan struct{}, 10)
	mockSweeper.EXPECT().RunSweep(gomock.Any(), "").Do(func(context.Context, string) {
		runs <- struct{}{}
	}).MinTimes(2)

	scheduler := NewHealthScheduler(mockSweeper, time.Hour, zap.NewNop())
	scheduler.Start()
	scheduler.Stop()
	scheduler.Start()
	defer scheduler.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-runs:
		case <-time.After(time.Second):
			t.Fatalf("immediate sweep %d was not triggered", i+1)
		}
	}
}

func TestHealthScheduler_RunNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSweeper := mocksweep.NewMockSweeper(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockSweeper.EXPECT().RunSweep(gomock.Any(), "svc-1").Do(func(sweepCtx context.Context, _ string) {
		assert.NoError(t, sweepCtx.Err(), "sweep context must not inherit the caller cancellation")
	}).Times(1)

	scheduler := NewHealthScheduler(mockSweeper, time.Minute, zap.NewNop())
	scheduler.RunNow(ctx, "svc-1")
}

func TestHealthScheduler_RecoversFromSweepPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSweeper := mocksweep.NewMockSweeper(ctrl)

	runs := make(chan struct{}, 10)
	var first atomic.Bool
	first.Store(true)
	mockSweeper.EXPECT().RunSweep(gomock.Any(), "").Do(func(context.Context, string) {
		runs <- struct{}{}
		if first.CompareAndSwap(true, false) {
			return
		}
		panic("sweep exploded")
	}).MinTimes(2)

	scheduler := NewHealthScheduler(mockSweeper, time.Second, zap.NewNop())
	scheduler.Start()
	defer scheduler.Stop()

	// immediate run, then at least two scheduled runs: the cron keeps going after a panicking job
	for i := 0; i < 3; i++ {
		select {
		case <-runs:
		case <-time.After(3 * time.Second):
			t.Fatalf("sweep %d was not triggered", i+1)
		}
	}
}

func TestHealthScheduler_RecoversFromStartupSweepPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSweeper := mocksweep.NewMockSweeper(ctrl)

	runs := make(chan struct{}, 10)
	mockSweeper.EXPECT().RunSweep(gomock.Any(), "").Do(func(context.Context, string) {
		runs <- struct{}{}
		panic("registry unreachable")
	}).MinTimes(2)

	core, logs := observer.New(zapcore.ErrorLevel)
	scheduler := NewHealthScheduler(mockSweeper, time.Second, zap.New(core))
	scheduler.Start()
	defer scheduler.Stop()

	// the immediate run panics too, the ticks after it still fire
	for i := 0; i < 2; i++ {
		select {
		case <-runs:
		case <-time.After(3 * time.Second):
			t.Fatalf("sweep %d was not triggered", i+1)
		}
	}
	assert.Eventually(t, func() bool {
		return logs.FilterMessage("panic").Len() >= 1
	}, time.Second, 10*time.Millisecond)
}
