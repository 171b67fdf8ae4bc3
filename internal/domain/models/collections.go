package models

import "time"

// Names of the per-user collections. CollectionProfile only appears as a key
// in deletion summaries; the profile itself is a singleton document, not a
// collection of owned documents.
const (
	CollectionCatches            = "catches"
	CollectionGear               = "gear"
	CollectionWeatherLogs        = "weatherLogs"
	CollectionFishingSpots       = "fishingSpots"
	CollectionSocialInteractions = "socialInteractions"
	CollectionRegulations        = "regulations"
	CollectionProfile            = "profile"
)

// OwnedCollections returns every per-user collection in erasure order. The
// profile is handled separately and always deleted last.
func OwnedCollections() []string {
	return []string{
		CollectionCatches,
		CollectionGear,
		CollectionWeatherLogs,
		CollectionFishingSpots,
		CollectionSocialInteractions,
		CollectionRegulations,
	}
}

// Gear is a single piece of fishing equipment owned by a user.
type Gear struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	UserID       string     `bson:"userId" json:"userId"`
	Name         string     `bson:"name" json:"name"`
	Brand        string     `bson:"brand" json:"brand"`
	Model        string     `bson:"model" json:"model"`
	Category     string     `bson:"category" json:"category"` // "rod", "reel", "lure", "line", "accessory"
	Subcategory  string     `bson:"subcategory" json:"subcategory"`
	Images       []string   `bson:"images,omitempty" json:"images,omitempty"`
	Notes        string     `bson:"notes" json:"notes"`
	PurchaseDate *time.Time `bson:"purchaseDate,omitempty" json:"purchaseDate,omitempty"`
	Price        *float64   `bson:"price,omitempty" json:"price,omitempty"`
	Condition    string     `bson:"condition" json:"condition"` // "new", "good", "fair", "poor"
	IsActive     bool       `bson:"isActive" json:"isActive"`
	TimesUsed    int        `bson:"timesUsed" json:"timesUsed"`
	SuccessRate  float64    `bson:"successRate" json:"successRate"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// WeatherLog is a snapshot of observed or fetched weather conditions.
type WeatherLog struct {
	ID        string         `bson:"_id,omitempty" json:"id"`
	UserID    string         `bson:"userId" json:"userId"`
	Location  Location       `bson:"location" json:"location"`
	Weather   map[string]any `bson:"weather" json:"weather"`
	Source    string         `bson:"source" json:"source"` // "api", "manual"
	Timestamp time.Time      `bson:"timestamp" json:"timestamp"`
}

// FishingSpot is a user-saved location.
type FishingSpot struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Name        string    `bson:"name" json:"name"`
	Coordinates []float64 `bson:"coordinates,omitempty" json:"coordinates,omitempty"` // [lng, lat]
	WaterType   string    `bson:"waterType" json:"waterType"`
	Notes       string    `bson:"notes" json:"notes"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// SocialInteraction records a like, comment or follow tied to a user.
type SocialInteraction struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Type      string    `bson:"type" json:"type"`
	TargetID  string    `bson:"targetId" json:"targetId"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Regulation is a user-saved fishing regulation note.
type Regulation struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Region    string    `bson:"region" json:"region"`
	Species   string    `bson:"species" json:"species"`
	Season    string    `bson:"season" json:"season"`
	Limits    string    `bson:"limits" json:"limits"`
	Notes     string    `bson:"notes" json:"notes"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
