package privacy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mamadbah2/fishing-tracker/internal/domain/models"
	"github.com/mamadbah2/fishing-tracker/internal/repository/gcs"
)

// ErrInvalidUserID indicates an export or erasure could not even begin.
var ErrInvalidUserID = errors.New("user id must not be empty")

const exportFilenameFormat = "fishing-tracker-export-%s-%s.json"

// Repository defines the store operations the privacy flows need.
type Repository interface {
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	GetUserCatches(ctx context.Context, userID string) ([]models.Catch, error)
	GetUserGear(ctx context.Context, userID string) ([]models.Gear, error)
	GetWeatherLogs(ctx context.Context, userID string) ([]models.WeatherLog, error)
	GetFishingSpots(ctx context.Context, userID string) ([]models.FishingSpot, error)
	GetSocialInteractions(ctx context.Context, userID string) ([]models.SocialInteraction, error)
	GetRegulations(ctx context.Context, userID string) ([]models.Regulation, error)
	DeleteOwnedDocuments(ctx context.Context, collection, userID string) (int, error)
	DeleteUserProfile(ctx context.Context, userID string) (int, error)
}

// Service implements the data-rights operations: export, cascading deletion
// and retention reporting.
type Service struct {
	repo   Repository
	blobs  gcs.BlobStore
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new privacy service instance.
func NewService(repository Repository, blobs gcs.BlobStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, blobs: blobs, logger: logger, now: time.Now}
}

// ExportUserData assembles the complete data snapshot for one user. The
// seven fetches run concurrently and all must succeed: an incomplete export
// must never be presented as complete, so the first failure fails the whole
// call. Nothing is redacted.
func (s *Service) ExportUserData(ctx context.Context, userID string) (*models.ExportBundle, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidUserID
	}

	bundle := &models.ExportBundle{
		ExportDate: s.now().UTC(),
		UserID:     userID,
	}

	// Each goroutine writes a distinct bundle field; no state is shared.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, err := s.repo.GetUserProfile(gctx, userID)
		if err != nil {
			return fmt.Errorf("export profile: %w", err)
		}
		bundle.Data.Profile = profile
		return nil
	})
	g.Go(func() error {
		catches, err := s.repo.GetUserCatches(gctx, userID)
		if err != nil {
			return fmt.Errorf("export catches: %w", err)
		}
		bundle.Data.Catches = catches
		return nil
	})
	g.Go(func() error {
		gear, err := s.repo.GetUserGear(gctx, userID)
		if err != nil {
			return fmt.Errorf("export gear: %w", err)
		}
		bundle.Data.Gear = gear
		return nil
	})
	g.Go(func() error {
		logs, err := s.repo.GetWeatherLogs(gctx, userID)
		if err != nil {
			return fmt.Errorf("export weather logs: %w", err)
		}
		bundle.Data.WeatherLogs = logs
		return nil
	})
	g.Go(func() error {
		spots, err := s.repo.GetFishingSpots(gctx, userID)
		if err != nil {
			return fmt.Errorf("export fishing spots: %w", err)
		}
		bundle.Data.FishingSpots = spots
		return nil
	})
	g.Go(func() error {
		interactions, err := s.repo.GetSocialInteractions(gctx, userID)
		if err != nil {
			return fmt.Errorf("export social interactions: %w", err)
		}
		bundle.Data.SocialInteractions = interactions
		return nil
	})
	g.Go(func() error {
		regulations, err := s.repo.GetRegulations(gctx, userID)
		if err != nil {
			return fmt.Errorf("export regulations: %w", err)
		}
		bundle.Data.Regulations = regulations
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return bundle, nil
}

// ExportArtifact serializes the export bundle to its downloadable form:
// pretty-printed UTF-8 JSON and the deterministic filename carrying the
// export's own UTC date.
func (s *Service) ExportArtifact(ctx context.Context, userID string) (string, []byte, error) {
	bundle, err := s.ExportUserData(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	payload, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("serialize export for %s: %w", userID, err)
	}

	filename := fmt.Sprintf(exportFilenameFormat, userID, bundle.ExportDate.Format("2006-01-02"))
	return filename, payload, nil
}

// DeleteUserData performs the ordered, best-effort cascading deletion. Each
// owned collection is batch-deleted independently; a failure is recorded and
// the run moves on, so one stuck collection never leaves the others behind.
// The profile goes last so in-flight reads keyed off profile existence are
// not disrupted mid-erasure, then storage objects under the user's prefix
// are removed one by one. The summary is returned regardless of how many
// errors accumulated; only a total inability to begin is an error.
func (s *Service) DeleteUserData(ctx context.Context, userID string) (*models.DeletionSummary, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidUserID
	}

	summary := &models.DeletionSummary{
		UserID:             userID,
		DeletionDate:       s.now().UTC(),
		DeletedCollections: map[string]int{},
		Errors:             []string{},
	}

	for _, collection := range models.OwnedCollections() {
		count, err := s.repo.DeleteOwnedDocuments(ctx, collection, userID)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("failed to delete %s: %v", collection, err))
			s.logger.Warn("collection deletion failed",
				zap.String("user_id", userID), zap.String("collection", collection), zap.Error(err))
			continue
		}
		summary.DeletedCollections[collection] = count
	}

	if count, err := s.repo.DeleteUserProfile(ctx, userID); err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("failed to delete profile: %v", err))
		s.logger.Warn("profile deletion failed", zap.String("user_id", userID), zap.Error(err))
	} else {
		summary.DeletedCollections[models.CollectionProfile] = count
	}

	objects, err := s.blobs.List(ctx, storagePrefix(userID))
	if err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("failed to list storage files: %v", err))
	} else {
		for _, obj := range objects {
			if err := s.blobs.Delete(ctx, obj.Path); err != nil {
				summary.Errors = append(summary.Errors, fmt.Sprintf("failed to delete file %s: %v", obj.Path, err))
				continue
			}
			summary.DeletedStorageFiles++
		}
	}

	s.logger.Info("user data deletion finished",
		zap.String("user_id", userID),
		zap.Int("storage_files", summary.DeletedStorageFiles),
		zap.Int("errors", len(summary.Errors)))

	return summary, nil
}

// GetDataRetentionInfo reports the user's last activity, how old each data
// category is, and the declared retention policy.
func (s *Service) GetDataRetentionInfo(ctx context.Context, userID string) (*models.RetentionInfo, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidUserID
	}

	info := &models.RetentionInfo{
		UserID:          userID,
		RetentionPolicy: retentionPolicy(),
	}

	catches, err := s.repo.GetUserCatches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load catches for %s: %w", userID, err)
	}

	now := s.now().UTC()
	if len(catches) > 0 {
		newest, oldest := catches[0].DateTime, catches[0].DateTime
		for _, c := range catches[1:] {
			if c.DateTime.After(newest) {
				newest = c.DateTime
			}
			if c.DateTime.Before(oldest) {
				oldest = c.DateTime
			}
		}
		info.LastActivity = &newest
		info.DataAge.Catches = formatAge(now, oldest)
	}

	profile, err := s.repo.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile for %s: %w", userID, err)
	}
	if profile != nil && !profile.CreatedAt.IsZero() {
		info.DataAge.Profile = formatAge(now, profile.CreatedAt)
	}

	return info, nil
}

// formatAge buckets an elapsed time into a human-readable string. Day counts
// use ceiling, bucket divisions use floor; the thresholds are load-bearing
// for retention reporting and must not drift.
func formatAge(now, t time.Time) string {
	days := int(math.Ceil(math.Abs(now.Sub(t).Hours()) / 24))
	switch {
	case days < 1:
		return "Less than 1 day"
	case days < 7:
		return fmt.Sprintf("%d days", days)
	case days < 30:
		return fmt.Sprintf("%d weeks", days/7)
	case days < 365:
		return fmt.Sprintf("%d months", days/30)
	default:
		return fmt.Sprintf("%d years", days/365)
	}
}

// retentionPolicy is declarative configuration, not computed state.
func retentionPolicy() map[string]string {
	return map[string]string{
		"profile":      "Until account deletion",
		"catches":      "7 years (fishing records)",
		"gear":         "Until account deletion",
		"weatherLogs":  "2 years (weather data)",
		"photos":       "Until account deletion",
		"locationData": "Until account deletion",
	}
}

func storagePrefix(userID string) string {
	return fmt.Sprintf("users/%s/", userID)
}
