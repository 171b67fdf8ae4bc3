package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/fishing-tracker/internal/domain/models"
	catchsvc "github.com/mamadbah2/fishing-tracker/internal/service/catches"
	statssvc "github.com/mamadbah2/fishing-tracker/internal/service/stats"
)

// CatchHandler handles catch CRUD and statistics HTTP endpoints.
type CatchHandler struct {
	catches *catchsvc.Service
	stats   *statssvc.Service
	logger  *zap.Logger
}

// NewCatchHandler constructs the HTTP handler adapter.
func NewCatchHandler(catches *catchsvc.Service, stats *statssvc.Service, logger *zap.Logger) *CatchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatchHandler{catches: catches, stats: stats, logger: logger}
}

// Create stores a submitted catch.
func (h *CatchHandler) Create(c *gin.Context) {
	userID := c.Param("userId")

	var payload models.Catch
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("invalid catch payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid catch payload"})
		return
	}

	stored, err := h.catches.AddCatch(c.Request.Context(), userID, payload)
	if err != nil {
		h.logger.Error("failed to add catch", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add catch"})
		return
	}

	c.JSON(http.StatusCreated, stored)
}

// List returns the user's catches, newest first.
func (h *CatchHandler) List(c *gin.Context) {
	userID := c.Param("userId")

	catches, err := h.catches.ListCatches(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list catches", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list catches"})
		return
	}

	c.JSON(http.StatusOK, catches)
}

// Delete removes one catch.
func (h *CatchHandler) Delete(c *gin.Context) {
	userID := c.Param("userId")
	catchID := c.Param("catchId")

	if err := h.catches.DeleteCatch(c.Request.Context(), userID, catchID); err != nil {
		if errors.Is(err, catchsvc.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "catch not found"})
			return
		}
		h.logger.Error("failed to delete catch", zap.String("catch_id", catchID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete catch"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Statistics computes the user's statistics summary for an optional range.
func (h *CatchHandler) Statistics(c *gin.Context) {
	userID := c.Param("userId")
	timeRange := statssvc.TimeRange(c.DefaultQuery("range", string(statssvc.RangeAll)))

	summary, err := h.stats.GetUserStatistics(c.Request.Context(), userID, timeRange)
	if err != nil {
		switch timeRange {
		case statssvc.RangeWeek, statssvc.RangeMonth, statssvc.RangeYear, statssvc.RangeAll:
			h.logger.Error("failed to compute statistics", zap.String("user_id", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute statistics"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown time range"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

// RecomputeCounters refreshes the cached profile counters from the
// collections they are derived from.
func (h *CatchHandler) RecomputeCounters(c *gin.Context) {
	userID := c.Param("userId")

	counters, err := h.stats.RecomputeProfileCounters(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to recompute counters", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to recompute counters"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"catches":     counters.Catches,
		"totalWeight": counters.TotalWeight,
		"species":     counters.Species,
		"gearCount":   counters.GearCount,
	})
}
