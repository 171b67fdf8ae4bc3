package catches

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/fishing-tracker/internal/domain/models"
)

// ErrNotFound indicates the requested catch does not exist for this user.
var ErrNotFound = errors.New("catch not found")

// Repository defines the catch storage operations the service needs.
type Repository interface {
	AddCatch(ctx context.Context, c models.Catch) (string, error)
	GetUserCatches(ctx context.Context, userID string) ([]models.Catch, error)
	DeleteCatch(ctx context.Context, userID, catchID string) (*models.Catch, error)
	UpdateProfileCounters(ctx context.Context, userID string, deltas models.CounterDeltas) error
}

// Service handles the catch submission flow and keeps the cached profile
// counters adjusted incrementally on add and delete.
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new catch service instance.
func NewService(repository Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, logger: logger, now: time.Now}
}

// AddCatch applies defaults, stores the catch and bumps the profile counters.
func (s *Service) AddCatch(ctx context.Context, userID string, c models.Catch) (models.Catch, error) {
	if userID == "" {
		return models.Catch{}, errors.New("user id must not be empty")
	}

	now := s.now().UTC()
	c.UserID = userID
	if c.KeptOrReleased != models.CatchKept {
		c.KeptOrReleased = models.CatchReleased
	}
	if c.DateTime.IsZero() {
		c.DateTime = now
	}
	if c.Photos == nil {
		c.Photos = []string{}
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	id, err := s.repo.AddCatch(ctx, c)
	if err != nil {
		return models.Catch{}, fmt.Errorf("add catch for %s: %w", userID, err)
	}
	c.ID = id

	deltas := models.CounterDeltas{Catches: 1, TotalWeight: c.Weight}
	if err := s.repo.UpdateProfileCounters(ctx, userID, deltas); err != nil {
		// The catch is stored; a stale counter is recoverable via the
		// recompute path.
		s.logger.Warn("failed to bump profile counters after add",
			zap.String("user_id", userID), zap.Error(err))
	}

	return c, nil
}

// ListCatches returns the user's catches, newest first.
func (s *Service) ListCatches(ctx context.Context, userID string) ([]models.Catch, error) {
	catches, err := s.repo.GetUserCatches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list catches for %s: %w", userID, err)
	}
	return catches, nil
}

// DeleteCatch removes a single catch and reverses its counter contribution.
func (s *Service) DeleteCatch(ctx context.Context, userID, catchID string) error {
	removed, err := s.repo.DeleteCatch(ctx, userID, catchID)
	if err != nil {
		return fmt.Errorf("delete catch %s: %w", catchID, err)
	}
	if removed == nil {
		return ErrNotFound
	}

	deltas := models.CounterDeltas{Catches: -1, TotalWeight: -removed.Weight}
	if err := s.repo.UpdateProfileCounters(ctx, userID, deltas); err != nil {
		s.logger.Warn("failed to adjust profile counters after delete",
			zap.String("user_id", userID), zap.Error(err))
	}

	return nil
}
