package scheduler

import (
	"context"
	"sync"
	"time"

	subscriptionUsecases "milkrun/internal/application/subscription/usecases"
	"milkrun/internal/shared/logger"
)

// OrderSweepScheduler periodically materializes orders from due
// subscriptions. The same sweep is also reachable on demand through the
// admin maintenance endpoint.
type OrderSweepScheduler struct {
	generateOrdersUC *subscriptionUsecases.GenerateRecurringOrdersUseCase
	logger           logger.Interface
	stopChan         chan struct{}
	stopOnce         sync.Once
	wg               sync.WaitGroup
	interval         time.Duration
}

// NewOrderSweepScheduler creates a new OrderSweepScheduler
func NewOrderSweepScheduler(
	generateOrdersUC *subscriptionUsecases.GenerateRecurringOrdersUseCase,
	interval time.Duration,
	logger logger.Interface,
) *OrderSweepScheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &OrderSweepScheduler{
		generateOrdersUC: generateOrdersUC,
		logger:           logger,
		stopChan:         make(chan struct{}),
		interval:         interval,
	}
}

// Start starts the scheduler
func (s *OrderSweepScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting order sweep scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

// Stop stops the scheduler gracefully
func (s *OrderSweepScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping order sweep scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("order sweep scheduler stopped")
	})
}

func (s *OrderSweepScheduler) runLoop(ctx context.Context) {
	// Run immediately on startup to catch subscriptions that came due while
	// the process was down.
	s.runSweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("order sweep scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

func (s *OrderSweepScheduler) runSweep(ctx context.Context) {
	s.logger.Debugw("order sweep started")

	startTime := time.Now()

	summary, err := s.generateOrdersUC.Execute(ctx)
	if err != nil {
		s.logger.Errorw("order sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if summary.Processed > 0 {
		s.logger.Infow("order sweep completed",
			"processed", summary.Processed,
			"succeeded", summary.Succeeded,
			"failed", summary.Failed,
			"duration", time.Since(startTime),
		)
	} else {
		s.logger.Debugw("no due subscriptions",
			"duration", time.Since(startTime),
		)
	}
}
