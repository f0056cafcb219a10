package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"fitcenter-backend/internal/config"
	"fitcenter-backend/internal/repository"
)

// Scheduler runs the opt-in overdue-payroll sweep. With an empty
// schedule nothing is registered and Start is a no-op, which is the
// default: the API itself never runs background work.
type Scheduler struct {
	cron     *cron.Cron
	payrolls repository.PayrollStore
	cfg      config.SweepConfig
	logger   *zap.Logger
}

// NewScheduler creates a scheduler in the configured timezone.
func NewScheduler(cfg config.SweepConfig, payrolls repository.PayrollStore, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to UTC", zap.String("timezone", cfg.Timezone))
		loc = time.UTC
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		payrolls: payrolls,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start registers the sweep when a schedule is configured.
func (s *Scheduler) Start() {
	if s.cfg.CronSchedule == "" {
		s.logger.Info("overdue sweep disabled")
		return
	}

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.sweepOverdue); err != nil {
		s.logger.Error("failed to schedule overdue sweep", zap.Error(err))
		return
	}

	s.logger.Info("overdue sweep scheduled", zap.String("schedule", s.cfg.CronSchedule))
	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) sweepOverdue() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	n, err := s.payrolls.MarkOverdueBefore(ctx, time.Now())
	if err != nil {
		s.logger.Error("overdue sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Info("payrolls marked overdue", zap.Int64("count", n))
	}
}
