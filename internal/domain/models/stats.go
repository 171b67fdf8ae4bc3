package models

// StatisticsSummary is a derived value computed from a user's catch history.
// It is never persisted as a source of truth.
type StatisticsSummary struct {
	TotalCatches       int              `json:"totalCatches"`
	TotalWeight        float64          `json:"totalWeight"`
	AverageWeight      float64          `json:"averageWeight"`
	BiggestCatch       *Catch           `json:"biggestCatch"`
	SpeciesCount       int              `json:"speciesCount"`
	SpeciesBreakdown   map[string]int   `json:"speciesBreakdown"`
	LocationBreakdown  map[string]int   `json:"locationBreakdown"`
	MonthlyBreakdown   map[int]int      `json:"monthlyBreakdown"` // month index 0-11
	TimeOfDayBreakdown map[string]int   `json:"timeOfDayBreakdown"`
	BaitBreakdown      map[string]int   `json:"baitBreakdown"`
	WeatherBreakdown   map[string]int   `json:"weatherBreakdown"`
	KeepReleaseRatio   KeepReleaseRatio `json:"keepReleaseRatio"`
}

// KeepReleaseRatio counts kept versus released catches.
type KeepReleaseRatio struct {
	Kept     int `json:"kept"`
	Released int `json:"released"`
}
