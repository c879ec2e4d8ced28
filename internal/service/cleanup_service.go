package service

import (
	"context"
	"time"

	"hsms-be/internal/constant"
	"hsms-be/internal/pkg/logger"
	"hsms-be/internal/repository/unitofwork"
)

// ICleanupService purges accounts that were deactivated and never reactivated
// within the grace period. Customers and providers are swept independently so
// a failure in one sweep never blocks the other.
type ICleanupService interface {
	Start(ctx context.Context)
	SweepCustomers(ctx context.Context) (int64, error)
	SweepProviders(ctx context.Context) (int64, error)
}

type cleanupService struct {
	uowFactory   unitofwork.RepositoryFactory
	log          logger.ILogger
	interval     time.Duration
	startupDelay time.Duration
	now          func() time.Time
}

func NewCleanupService(
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
	interval time.Duration,
	startupDelay time.Duration,
) ICleanupService {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	if startupDelay <= 0 {
		startupDelay = 5 * time.Second
	}
	return &cleanupService{
		uowFactory:   uowFactory,
		log:          log,
		interval:     interval,
		startupDelay: startupDelay,
		now:          time.Now,
	}
}

// PurgeCutoff returns the deactivation timestamp before which an account is
// eligible for deletion.
func PurgeCutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -constant.GracePeriodDays)
}

// Start launches both sweeps in the background. Each runs once shortly after
// startup and then on every interval tick until ctx is cancelled.
func (s *cleanupService) Start(ctx context.Context) {
	go s.run(ctx, "customer_cleanup", s.SweepCustomers)
	go s.run(ctx, "provider_cleanup", s.SweepProviders)
}

func (s *cleanupService) run(ctx context.Context, module string, sweep func(context.Context) (int64, error)) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(s.startupDelay):
	}
	s.sweepOnce(ctx, module, sweep)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce(ctx, module, sweep)
		}
	}
}

func (s *cleanupService) sweepOnce(ctx context.Context, module string, sweep func(context.Context) (int64, error)) {
	deleted, err := sweep(ctx)
	if err != nil {
		s.log.Error(module, "Cleanup sweep failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if deleted > 0 {
		s.log.Info(module, "Purged expired deactivated accounts", map[string]interface{}{
			"deleted": deleted,
		})
	}
}

func (s *cleanupService) SweepCustomers(ctx context.Context) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CustomerRepository().DeleteDeactivatedBefore(ctx, PurgeCutoff(s.now()))
}

func (s *cleanupService) SweepProviders(ctx context.Context) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProviderRepository().DeleteDeactivatedBefore(ctx, PurgeCutoff(s.now()))
}
