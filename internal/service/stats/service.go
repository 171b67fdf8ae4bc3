package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/fishing-tracker/internal/domain/models"
)

// TimeRange selects how far back GetUserStatistics looks.
type TimeRange string

// Supported time ranges. An empty range behaves like RangeAll.
const (
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeYear  TimeRange = "year"
	RangeAll   TimeRange = "all"
)

const unknownLocation = "Unknown"

// Repository defines the store reads and counter writes the service needs.
type Repository interface {
	GetUserCatches(ctx context.Context, userID string) ([]models.Catch, error)
	GetUserCatchesSince(ctx context.Context, userID string, cutoff time.Time) ([]models.Catch, error)
	GetUserGear(ctx context.Context, userID string) ([]models.Gear, error)
	SetProfileCounters(ctx context.Context, userID string, counters models.ProfileCounters) error
}

// Service computes catch statistics and keeps the cached profile counters in
// sync with the collections they are derived from.
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new statistics service instance.
func NewService(repository Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, logger: logger, now: time.Now}
}

// GetUserStatistics fetches the user's catches for the requested range and
// computes the summary. The range cutoff is inclusive: a catch dated exactly
// at now minus the window is included.
func (s *Service) GetUserStatistics(ctx context.Context, userID string, timeRange TimeRange) (models.StatisticsSummary, error) {
	var (
		catches []models.Catch
		err     error
	)

	switch timeRange {
	case RangeAll, "":
		catches, err = s.repo.GetUserCatches(ctx, userID)
	case RangeWeek, RangeMonth, RangeYear:
		cutoff := rangeCutoff(timeRange, s.now().UTC())
		catches, err = s.repo.GetUserCatchesSince(ctx, userID, cutoff)
	default:
		return models.StatisticsSummary{}, fmt.Errorf("unknown time range %q", timeRange)
	}
	if err != nil {
		return models.StatisticsSummary{}, fmt.Errorf("load catches for %s: %w", userID, err)
	}

	return ComputeStatistics(catches), nil
}

// RecomputeProfileCounters rebuilds the derived profile counters from the
// catch and gear collections and writes them back. The counters are a cache;
// this is the authoritative refresh path.
func (s *Service) RecomputeProfileCounters(ctx context.Context, userID string) (models.ProfileCounters, error) {
	catches, err := s.repo.GetUserCatches(ctx, userID)
	if err != nil {
		return models.ProfileCounters{}, fmt.Errorf("load catches for %s: %w", userID, err)
	}

	gear, err := s.repo.GetUserGear(ctx, userID)
	if err != nil {
		return models.ProfileCounters{}, fmt.Errorf("load gear for %s: %w", userID, err)
	}

	summary := ComputeStatistics(catches)
	counters := models.ProfileCounters{
		Catches:     summary.TotalCatches,
		TotalWeight: summary.TotalWeight,
		Species:     summary.SpeciesCount,
		GearCount:   len(gear),
	}

	if err := s.repo.SetProfileCounters(ctx, userID, counters); err != nil {
		return models.ProfileCounters{}, fmt.Errorf("write counters for %s: %w", userID, err)
	}

	s.logger.Debug("profile counters recomputed",
		zap.String("user_id", userID),
		zap.Int("catches", counters.Catches),
		zap.Int("species", counters.Species))

	return counters, nil
}

// ComputeStatistics builds a summary from an in-memory catch list in a single
// pass. It never fails: empty input yields a zero-valued summary and
// malformed entries fall back to defaults instead of erroring.
func ComputeStatistics(catches []models.Catch) models.StatisticsSummary {
	summary := models.StatisticsSummary{
		TotalCatches:       len(catches),
		SpeciesBreakdown:   map[string]int{},
		LocationBreakdown:  map[string]int{},
		MonthlyBreakdown:   map[int]int{},
		TimeOfDayBreakdown: map[string]int{},
		BaitBreakdown:      map[string]int{},
		WeatherBreakdown:   map[string]int{},
	}

	if len(catches) == 0 {
		return summary
	}

	speciesSeen := make(map[string]struct{})

	for i := range catches {
		c := &catches[i]

		if c.Weight > 0 {
			summary.TotalWeight += c.Weight
			// Strict > keeps the first-seen catch on equal weights.
			if summary.BiggestCatch == nil || c.Weight > summary.BiggestCatch.Weight {
				summary.BiggestCatch = c
			}
		}

		if c.Species != "" {
			speciesSeen[normalizeSpecies(c.Species)] = struct{}{}
			summary.SpeciesBreakdown[c.Species]++
		}

		location := c.Location.WaterBodyName
		if location == "" {
			location = unknownLocation
		}
		summary.LocationBreakdown[location]++

		if !c.DateTime.IsZero() {
			summary.MonthlyBreakdown[int(c.DateTime.Month())-1]++
		}

		if c.Fishing.TimeOfDay != "" {
			summary.TimeOfDayBreakdown[c.Fishing.TimeOfDay]++
		}

		if c.Fishing.Bait != "" {
			summary.BaitBreakdown[c.Fishing.Bait]++
		}

		if c.Environment.WeatherCondition != "" {
			summary.WeatherBreakdown[c.Environment.WeatherCondition]++
		}

		if c.KeptOrReleased == models.CatchKept {
			summary.KeepReleaseRatio.Kept++
		} else {
			summary.KeepReleaseRatio.Released++
		}
	}

	summary.SpeciesCount = len(speciesSeen)
	summary.AverageWeight = summary.TotalWeight / float64(len(catches))

	return summary
}

// normalizeSpecies folds case for the distinct species count so "Bass" and
// "bass" count as one species. Breakdown keys keep the literal string.
func normalizeSpecies(species string) string {
	return strings.ToLower(strings.TrimSpace(species))
}

func rangeCutoff(timeRange TimeRange, now time.Time) time.Time {
	var days int
	switch timeRange {
	case RangeWeek:
		days = 7
	case RangeMonth:
		days = 30
	case RangeYear:
		days = 365
	}
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}
