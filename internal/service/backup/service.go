package backup

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/fishing-tracker/internal/domain/models"
	"github.com/mamadbah2/fishing-tracker/internal/repository/gcs"
)

// Repository defines the counting operations the backup walk needs.
type Repository interface {
	ListUserIDs(ctx context.Context) ([]string, error)
	CountOwnedDocuments(ctx context.Context, collection, userID string) (int, error)
}

// Service produces operational backup summaries and health statistics.
type Service struct {
	repo    Repository
	blobs   gcs.BlobStore
	logger  *zap.Logger
	now     func() time.Time
	version string
}

// NewService wires a new backup service instance.
func NewService(repository Repository, blobs gcs.BlobStore, version string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, blobs: blobs, logger: logger, now: time.Now, version: version}
}

// CreateFullBackup walks every user and accumulates per-collection document
// counts plus the storage object count. Per-user failures are recorded and
// skipped so one unreadable user never sinks the whole backup.
func (s *Service) CreateFullBackup(ctx context.Context) (*models.BackupSummary, error) {
	summary := &models.BackupSummary{
		BackupDate:  s.now().UTC(),
		Collections: map[string]int{},
		Errors:      []string{},
		Version:     s.version,
	}

	users, err := s.repo.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	summary.Collections["users"] = len(users)

	for _, userID := range users {
		for _, collection := range models.OwnedCollections() {
			count, err := s.repo.CountOwnedDocuments(ctx, collection, userID)
			if err != nil {
				summary.Errors = append(summary.Errors,
					fmt.Sprintf("failed to count %s for user %s: %v", collection, userID, err))
				continue
			}
			summary.Collections[collection] += count
		}
	}

	objects, err := s.blobs.List(ctx, "")
	if err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("failed to count storage files: %v", err))
	} else {
		summary.StorageFiles = len(objects)
	}

	s.logger.Info("full backup summary built",
		zap.Int("users", len(users)),
		zap.Int("storage_files", summary.StorageFiles),
		zap.Int("errors", len(summary.Errors)))

	return summary, nil
}

// GetBackupStats gives a quick health picture: counts per major data source
// and a verdict based on what was reachable.
func (s *Service) GetBackupStats(ctx context.Context) (*models.BackupStats, error) {
	stats := &models.BackupStats{
		BackupHealth:    models.BackupUnhealthy,
		Recommendations: []string{},
	}

	users, err := s.repo.ListUserIDs(ctx)
	if err != nil {
		stats.Recommendations = append(stats.Recommendations, "Unable to count users - check database access")
	} else {
		stats.TotalUsers = len(users)
		for _, userID := range users {
			count, err := s.repo.CountOwnedDocuments(ctx, models.CollectionCatches, userID)
			if err != nil {
				stats.Recommendations = append(stats.Recommendations,
					fmt.Sprintf("Unable to count catches for user %s - check database access", userID))
				continue
			}
			stats.TotalCatches += count
		}
	}

	objects, err := s.blobs.List(ctx, "")
	if err != nil {
		stats.Recommendations = append(stats.Recommendations, "Unable to count storage files - check storage access")
	} else {
		stats.TotalStorageFiles = len(objects)
	}

	switch {
	case stats.TotalUsers > 0 && stats.TotalCatches > 0:
		stats.BackupHealth = models.BackupHealthy
	case stats.TotalUsers > 0 || stats.TotalCatches > 0:
		stats.BackupHealth = models.BackupPartial
		stats.Recommendations = append(stats.Recommendations, "Some data collections are inaccessible")
	default:
		stats.Recommendations = append(stats.Recommendations, "No data accessible - check permissions and connectivity")
	}

	return stats, nil
}
