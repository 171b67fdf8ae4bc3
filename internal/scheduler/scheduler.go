package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/fishing-tracker/internal/config"
	"github.com/mamadbah2/fishing-tracker/internal/service/backup"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	backupSvc *backup.Service
	cfg       config.BackupConfig
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.BackupConfig, backupSvc *backup.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour, dom, month, dow).
	c := cron.New()

	return &Scheduler{
		cron:      c,
		backupSvc: backupSvc,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start registers the nightly backup job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("backup_schedule", s.cfg.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runBackup)
	if err != nil {
		s.logger.Error("failed to schedule backup job", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runBackup() {
	s.logger.Info("running scheduled backup")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	summary, err := s.backupSvc.CreateFullBackup(ctx)
	if err != nil {
		s.logger.Error("scheduled backup failed", zap.Error(err))
		return
	}

	if len(summary.Errors) > 0 {
		s.logger.Warn("scheduled backup finished with errors", zap.Strings("errors", summary.Errors))
	} else {
		s.logger.Info("scheduled backup finished",
			zap.Int("users", summary.Collections["users"]),
			zap.Int("storage_files", summary.StorageFiles))
	}
}
