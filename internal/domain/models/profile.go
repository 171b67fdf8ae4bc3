package models

import "time"

// UserProfile is the singleton per-user document. The counter fields are a
// cache derived from the owned collections and must always be re-derivable
// from them; they are never the source of truth.
type UserProfile struct {
	UserID         string    `bson:"_id" json:"userId"`
	Name           string    `bson:"name" json:"name"`
	Username       string    `bson:"username" json:"username"`
	Email          string    `bson:"email" json:"email"`
	Avatar         string    `bson:"avatar" json:"avatar"`
	Bio            string    `bson:"bio" json:"bio"`
	Location       string    `bson:"location" json:"location"`
	ProfilePrivacy string    `bson:"profilePrivacy" json:"profilePrivacy"` // "public", "private"
	Catches        int       `bson:"catches" json:"catches"`
	Followers      int       `bson:"followers" json:"followers"`
	Following      int       `bson:"following" json:"following"`
	Species        int       `bson:"species" json:"species"`
	GearCount      int       `bson:"gearCount" json:"gearCount"`
	Locations      int       `bson:"locations" json:"locations"`
	TotalWeight    float64   `bson:"totalWeight" json:"totalWeight"`
	FavoriteBait   string    `bson:"favoriteBait" json:"favoriteBait"`
	PreferredWater string    `bson:"preferredWater" json:"preferredWater"` // "freshwater", "saltwater", "both"
	JoinDate       time.Time `bson:"joinDate" json:"joinDate"`
	LastActive     time.Time `bson:"lastActive" json:"lastActive"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// ProfileCounters holds the full set of derived profile counters written by
// the recompute path.
type ProfileCounters struct {
	Catches     int
	TotalWeight float64
	Species     int
	GearCount   int
}

// CounterDeltas holds incremental adjustments applied when a single catch is
// added or removed.
type CounterDeltas struct {
	Catches     int
	TotalWeight float64
}
