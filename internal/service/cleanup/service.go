package cleanup

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/fishing-tracker/internal/domain/models"
)

// Eraser performs the cascading user-data deletion.
type Eraser interface {
	DeleteUserData(ctx context.Context, userID string) (*models.DeletionSummary, error)
}

// AuditSink appends records to the append-only audit collection.
type AuditSink interface {
	AppendAuditLog(ctx context.Context, entry models.AuditLogEntry) error
}

// Service is the account-deletion lifecycle variant of erasure: it runs the
// same ordered, best-effort cascade and writes an audit record of the
// attempt, tagged with which actor initiated it.
type Service struct {
	eraser Eraser
	audit  AuditSink
	logger *zap.Logger
}

// NewService wires a new cleanup service instance.
func NewService(eraser Eraser, audit AuditSink, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{eraser: eraser, audit: audit, logger: logger}
}

// Run deletes all data for the user and records the attempt. Partial
// per-collection failures still count as a completed cleanup; only a total
// inability to begin is a failure. Actor is models.ActorAuthTrigger when
// invoked from the identity-provider deletion event, models.ActorAdmin for
// manual invocations.
func (s *Service) Run(ctx context.Context, userID, actor string) (*models.DeletionSummary, error) {
	s.logger.Info("starting account deletion cleanup",
		zap.String("user_id", userID), zap.String("actor", actor))

	summary, err := s.eraser.DeleteUserData(ctx, userID)
	if err != nil {
		s.appendAudit(ctx, models.AuditLogEntry{
			UserID: userID,
			Event:  models.AuditEventCleanupFailed,
			Status: models.AuditStatusFailed,
			Actor:  actor,
		})
		return nil, fmt.Errorf("cleanup for %s: %w", userID, err)
	}

	s.appendAudit(ctx, models.AuditLogEntry{
		UserID:  userID,
		Event:   models.AuditEventCleanupCompleted,
		Summary: summary,
		Status:  models.AuditStatusSuccess,
		Actor:   actor,
	})

	if len(summary.Errors) > 0 {
		s.logger.Warn("cleanup completed with errors",
			zap.String("user_id", userID), zap.Strings("errors", summary.Errors))
	} else {
		s.logger.Info("cleanup completed", zap.String("user_id", userID))
	}

	return summary, nil
}

// appendAudit records the attempt. An audit write failure is logged, never
// escalated: the erasure outcome stands on its own.
func (s *Service) appendAudit(ctx context.Context, entry models.AuditLogEntry) {
	if err := s.audit.AppendAuditLog(ctx, entry); err != nil {
		s.logger.Error("failed to append audit log",
			zap.String("user_id", entry.UserID), zap.String("event", entry.Event), zap.Error(err))
	}
}
