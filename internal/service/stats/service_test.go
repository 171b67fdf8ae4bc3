package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/fishing-tracker/internal/domain/models"
)

type fakeRepo struct {
	catches []models.Catch
	gear    []models.Gear

	fetchErr    error
	setCounters *models.ProfileCounters
}

func (f *fakeRepo) GetUserCatches(_ context.Context, _ string) ([]models.Catch, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.catches, nil
}

func (f *fakeRepo) GetUserCatchesSince(_ context.Context, _ string, cutoff time.Time) ([]models.Catch, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	var out []models.Catch
	for _, c := range f.catches {
		if !c.DateTime.Before(cutoff) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetUserGear(_ context.Context, _ string) ([]models.Gear, error) {
	return f.gear, nil
}

func (f *fakeRepo) SetProfileCounters(_ context.Context, _ string, counters models.ProfileCounters) error {
	f.setCounters = &counters
	return nil
}

func catchAt(species string, weight float64, dateTime time.Time) models.Catch {
	return models.Catch{Species: species, Weight: weight, DateTime: dateTime}
}

func TestComputeStatisticsEmptyInput(t *testing.T) {
	summary := ComputeStatistics(nil)

	assert.Equal(t, 0, summary.TotalCatches)
	assert.Nil(t, summary.BiggestCatch)
	assert.Equal(t, 0, summary.SpeciesCount)
	assert.Zero(t, summary.TotalWeight)
	assert.Zero(t, summary.AverageWeight)
	assert.Empty(t, summary.SpeciesBreakdown)
	assert.Empty(t, summary.LocationBreakdown)
	assert.Empty(t, summary.MonthlyBreakdown)
	assert.Empty(t, summary.BaitBreakdown)
	assert.Empty(t, summary.WeatherBreakdown)
}

func TestComputeStatisticsScenario(t *testing.T) {
	d1 := time.Date(2025, time.June, 10, 6, 30, 0, 0, time.UTC)
	d2 := time.Date(2025, time.July, 2, 19, 0, 0, 0, time.UTC)

	first := catchAt("Bass", 5, d1)
	first.KeptOrReleased = models.CatchKept
	second := catchAt("Bass", 3, d2) // no keptOrReleased set

	summary := ComputeStatistics([]models.Catch{first, second})

	assert.Equal(t, 2, summary.TotalCatches)
	assert.InDelta(t, 8, summary.TotalWeight, 1e-9)
	assert.InDelta(t, 4, summary.AverageWeight, 1e-9)
	assert.Equal(t, 1, summary.SpeciesCount)
	require.NotNil(t, summary.BiggestCatch)
	assert.InDelta(t, 5, summary.BiggestCatch.Weight, 1e-9)
	assert.Equal(t, models.KeepReleaseRatio{Kept: 1, Released: 1}, summary.KeepReleaseRatio)
	assert.Equal(t, map[string]int{"Bass": 2}, summary.SpeciesBreakdown)
	assert.Equal(t, 1, summary.MonthlyBreakdown[5]) // June
	assert.Equal(t, 1, summary.MonthlyBreakdown[6]) // July
}

func TestComputeStatisticsBiggestCatchTieFirstSeen(t *testing.T) {
	d := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	first := catchAt("Pike", 4, d)
	first.Notes = "first"
	second := catchAt("Pike", 4, d)
	second.Notes = "second"

	summary := ComputeStatistics([]models.Catch{first, second})

	require.NotNil(t, summary.BiggestCatch)
	assert.Equal(t, "first", summary.BiggestCatch.Notes)
}

func TestComputeStatisticsBiggestCatchNeverSmaller(t *testing.T) {
	d := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	catches := []models.Catch{
		catchAt("Perch", 1, d),
		catchAt("Pike", 7, d),
		catchAt("Bass", 3, d),
	}

	summary := ComputeStatistics(catches)

	require.NotNil(t, summary.BiggestCatch)
	for _, c := range catches {
		assert.GreaterOrEqual(t, summary.BiggestCatch.Weight, c.Weight)
	}
}

func TestComputeStatisticsDefaultsAndMalformed(t *testing.T) {
	d := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	withSpot := catchAt("Trout", 2, d)
	withSpot.Location.WaterBodyName = "Lake Mead"
	withSpot.Fishing.Bait = "worm"
	withSpot.Environment.WeatherCondition = "cloudy"

	noSpot := catchAt("trout", 0, d)

	undated := catchAt("Trout", 1, time.Time{}) // missing dateTime tolerated

	summary := ComputeStatistics([]models.Catch{withSpot, noSpot, undated})

	assert.Equal(t, 3, summary.TotalCatches)
	// Case folds for the distinct count, literal keys for the breakdown.
	assert.Equal(t, 1, summary.SpeciesCount)
	assert.Equal(t, map[string]int{"Trout": 2, "trout": 1}, summary.SpeciesBreakdown)
	assert.Equal(t, map[string]int{"Lake Mead": 1, "Unknown": 2}, summary.LocationBreakdown)
	// Absent bait and weather contribute to no bucket at all.
	assert.Equal(t, map[string]int{"worm": 1}, summary.BaitBreakdown)
	assert.Equal(t, map[string]int{"cloudy": 1}, summary.WeatherBreakdown)
	// The undated catch lands in no month bucket.
	total := 0
	for _, n := range summary.MonthlyBreakdown {
		total += n
	}
	assert.Equal(t, 2, total)
}

func TestComputeStatisticsBreakdownSums(t *testing.T) {
	d := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	catches := []models.Catch{
		catchAt("Bass", 2, d),
		catchAt("Pike", 0, d.AddDate(0, 1, 0)),
		catchAt("Bass", 5, d.AddDate(0, 2, 0)),
	}

	summary := ComputeStatistics(catches)

	locationTotal := 0
	for _, n := range summary.LocationBreakdown {
		locationTotal += n
	}
	assert.Equal(t, summary.TotalCatches, locationTotal)

	assert.Equal(t, summary.TotalCatches, summary.KeepReleaseRatio.Kept+summary.KeepReleaseRatio.Released)

	var weightSum float64
	for _, c := range catches {
		weightSum += c.Weight
	}
	assert.InDelta(t, weightSum, summary.TotalWeight, 1e-9)
	assert.InDelta(t, weightSum/float64(len(catches)), summary.AverageWeight, 1e-9)
}

func TestGetUserStatisticsWeekBoundaryInclusive(t *testing.T) {
	now := time.Date(2025, time.August, 8, 12, 0, 0, 0, time.UTC)

	onBoundary := catchAt("Bass", 1, now.Add(-7*24*time.Hour))
	justOutside := catchAt("Bass", 1, now.Add(-7*24*time.Hour).Add(-time.Second))

	repo := &fakeRepo{catches: []models.Catch{onBoundary, justOutside}}
	svc := NewService(repo, nil)
	svc.now = func() time.Time { return now }

	summary, err := svc.GetUserStatistics(context.Background(), "user-1", RangeWeek)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalCatches)
}

func TestGetUserStatisticsAllAppliesNoFilter(t *testing.T) {
	now := time.Date(2025, time.August, 8, 12, 0, 0, 0, time.UTC)
	old := catchAt("Bass", 1, now.AddDate(-3, 0, 0))

	repo := &fakeRepo{catches: []models.Catch{old}}
	svc := NewService(repo, nil)
	svc.now = func() time.Time { return now }

	summary, err := svc.GetUserStatistics(context.Background(), "user-1", RangeAll)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalCatches)
}

func TestGetUserStatisticsUnknownRange(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	_, err := svc.GetUserStatistics(context.Background(), "user-1", TimeRange("decade"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decade")
}

func TestRecomputeProfileCounters(t *testing.T) {
	d := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		catches: []models.Catch{
			catchAt("Bass", 2, d),
			catchAt("bass", 3, d),
			catchAt("Pike", 0, d),
		},
		gear: []models.Gear{{Name: "rod"}, {Name: "reel"}},
	}
	svc := NewService(repo, nil)

	counters, err := svc.RecomputeProfileCounters(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 3, counters.Catches)
	assert.InDelta(t, 5, counters.TotalWeight, 1e-9)
	assert.Equal(t, 2, counters.Species)
	assert.Equal(t, 2, counters.GearCount)
	require.NotNil(t, repo.setCounters)
	assert.Equal(t, counters, *repo.setCounters)
}
