// Package cleanup enforces data retention on a cron schedule.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/examkit/proctor/pkg/config"
	"github.com/examkit/proctor/pkg/services"
)

// Service runs the retention jobs:
//   - close open sessions idle past the configured timeout (sets ended_at)
//   - purge evaluation rows of closed sessions older than the retention window
//
// Each job is one conditional statement against the database, so the jobs are
// idempotent and safe to run from several replicas at once.
type Service struct {
	cfg         *config.RetentionConfig
	sessions    *services.SessionService
	evaluations *services.EvaluationService
	logger      *slog.Logger

	cron *cron.Cron
}

// NewService creates the cleanup service. A nil cfg uses the built-in
// retention defaults.
func NewService(cfg *config.RetentionConfig, sessions *services.SessionService, evaluations *services.EvaluationService) *Service {
	if cfg == nil {
		cfg = config.DefaultRetentionConfig()
	}
	return &Service{
		cfg:         cfg,
		sessions:    sessions,
		evaluations: evaluations,
		logger:      slog.Default().With("component", "cleanup"),
		cron:        cron.New(),
	}
}

// Start schedules the retention jobs and runs them once right away so a
// freshly restarted replica catches up without waiting for the next tick.
func (s *Service) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		s.RunOnce(context.Background())
	}); err != nil {
		return fmt.Errorf("invalid cleanup schedule %q: %w", s.cfg.Schedule, err)
	}
	s.cron.Start()

	go s.RunOnce(ctx)

	s.logger.Info("Cleanup service started",
		"schedule", s.cfg.Schedule,
		"session_idle_timeout", s.cfg.SessionIdleTimeout,
		"evaluation_retention_days", s.cfg.EvaluationRetentionDays)
	return nil
}

// Stop halts the scheduler and waits for any in-flight job to finish.
func (s *Service) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Cleanup service stopped")
}

// RunOnce executes both retention jobs immediately.
func (s *Service) RunOnce(ctx context.Context) {
	s.closeIdleSessions(ctx)
	s.purgeEvaluations(ctx)
}

func (s *Service) closeIdleSessions(ctx context.Context) {
	cutoff := time.Now().Add(-s.cfg.SessionIdleTimeout)
	count, err := s.sessions.CloseIdleSessions(ctx, cutoff)
	if err != nil {
		s.logger.Error("Retention: closing idle sessions failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: closed idle sessions", "count", count)
	}
}

func (s *Service) purgeEvaluations(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.cfg.EvaluationRetentionDays)
	count, err := s.evaluations.PurgeBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("Retention: evaluation purge failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: purged old evaluations", "count", count)
	}
}
