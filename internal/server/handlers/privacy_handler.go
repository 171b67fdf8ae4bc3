package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	privacysvc "github.com/mamadbah2/fishing-tracker/internal/service/privacy"
)

// PrivacyHandler exposes the data-rights endpoints: export, erasure and
// retention reporting.
type PrivacyHandler struct {
	svc    *privacysvc.Service
	logger *zap.Logger
}

// NewPrivacyHandler constructs the HTTP handler adapter.
func NewPrivacyHandler(svc *privacysvc.Service, logger *zap.Logger) *PrivacyHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PrivacyHandler{svc: svc, logger: logger}
}

// Export streams the user's full data snapshot as a JSON attachment. Export
// is all-or-nothing: any fetch failure surfaces as a retryable error rather
// than an incomplete file.
func (h *PrivacyHandler) Export(c *gin.Context) {
	userID := c.Param("userId")

	filename, payload, err := h.svc.ExportArtifact(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, privacysvc.ErrInvalidUserID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		h.logger.Error("export failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "export failed, please retry"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", payload)
}

// Delete runs the cascading deletion and returns the summary. Partial
// failures are reported inside the summary, not as an HTTP error.
func (h *PrivacyHandler) Delete(c *gin.Context) {
	userID := c.Param("userId")

	summary, err := h.svc.DeleteUserData(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, privacysvc.ErrInvalidUserID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		h.logger.Error("deletion failed to start", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "deletion failed to start"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Retention reports last activity, data age and the retention policy table.
func (h *PrivacyHandler) Retention(c *gin.Context) {
	userID := c.Param("userId")

	info, err := h.svc.GetDataRetentionInfo(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, privacysvc.ErrInvalidUserID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		h.logger.Error("retention lookup failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load retention info"})
		return
	}

	c.JSON(http.StatusOK, info)
}
