package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/fishing-tracker/internal/domain/models"
	backupsvc "github.com/mamadbah2/fishing-tracker/internal/service/backup"
	cleanupsvc "github.com/mamadbah2/fishing-tracker/internal/service/cleanup"
)

// AdminHandler exposes operator endpoints: manual cleanup and backups.
// Authentication sits in front of these routes at the gateway; the handler
// only tags the actor.
type AdminHandler struct {
	cleanup *cleanupsvc.Service
	backup  *backupsvc.Service
	logger  *zap.Logger
}

// NewAdminHandler constructs the HTTP handler adapter.
func NewAdminHandler(cleanup *cleanupsvc.Service, backup *backupsvc.Service, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{cleanup: cleanup, backup: backup, logger: logger}
}

// Cleanup runs the audited account-deletion cascade for one user. Used when
// the automatic trigger failed and an operator re-invokes it; re-running
// against an already-emptied account yields zero counts.
func (h *AdminHandler) Cleanup(c *gin.Context) {
	userID := c.Param("userId")

	summary, err := h.cleanup.Run(c.Request.Context(), userID, models.ActorAdmin)
	if err != nil {
		h.logger.Error("manual cleanup failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "manual cleanup failed"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// RunBackup builds a full backup summary on demand.
func (h *AdminHandler) RunBackup(c *gin.Context) {
	summary, err := h.backup.CreateFullBackup(c.Request.Context())
	if err != nil {
		h.logger.Error("manual backup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "backup failed"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// BackupStats reports backup health counts.
func (h *AdminHandler) BackupStats(c *gin.Context) {
	stats, err := h.backup.GetBackupStats(c.Request.Context())
	if err != nil {
		h.logger.Error("backup stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load backup stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
