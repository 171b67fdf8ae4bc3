package models

import "time"

// Values for Catch.KeptOrReleased. Anything else is treated as released.
const (
	CatchKept     = "kept"
	CatchReleased = "released"
)

// Catch is one recorded fishing event.
type Catch struct {
	ID             string         `bson:"_id,omitempty" json:"id"`
	UserID         string         `bson:"userId" json:"userId"`
	Species        string         `bson:"species" json:"species"`
	SpeciesID      string         `bson:"speciesId,omitempty" json:"speciesId,omitempty"`
	Weight         float64        `bson:"weight" json:"weight"`
	Length         float64        `bson:"length" json:"length"`
	Photos         []string       `bson:"photos" json:"photos"`
	Notes          string         `bson:"notes" json:"notes"`
	KeptOrReleased string         `bson:"keptOrReleased" json:"keptOrReleased"`
	Location       Location       `bson:"location" json:"location"`
	Environment    Environment    `bson:"environment" json:"environment"`
	Fishing        FishingDetails `bson:"fishing" json:"fishing"`
	Tags           []string       `bson:"tags" json:"tags"`
	IsPublic       bool           `bson:"isPublic" json:"isPublic"`
	Verified       bool           `bson:"verified" json:"verified"`
	DateTime       time.Time      `bson:"dateTime" json:"dateTime"`
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// Location describes where a catch happened. Coordinates are [lng, lat].
type Location struct {
	Coordinates   []float64 `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	Address       string    `bson:"address" json:"address"`
	WaterBodyName string    `bson:"waterBodyName" json:"waterBodyName"`
	WaterType     string    `bson:"waterType" json:"waterType"`
	SpotName      string    `bson:"spotName" json:"spotName"`
}

// Environment captures the conditions at the time of the catch.
type Environment struct {
	AirTemperature   *float64 `bson:"airTemperature,omitempty" json:"airTemperature,omitempty"`
	WaterTemperature *float64 `bson:"waterTemperature,omitempty" json:"waterTemperature,omitempty"`
	WeatherCondition string   `bson:"weatherCondition" json:"weatherCondition"`
	WindSpeed        *float64 `bson:"windSpeed,omitempty" json:"windSpeed,omitempty"`
	WindDirection    string   `bson:"windDirection" json:"windDirection"`
	AirPressure      *float64 `bson:"airPressure,omitempty" json:"airPressure,omitempty"`
	MoonPhase        string   `bson:"moonPhase" json:"moonPhase"`
	TideInfo         string   `bson:"tideInfo" json:"tideInfo"`
	Visibility       string   `bson:"visibility" json:"visibility"`
	CloudCover       string   `bson:"cloudCover" json:"cloudCover"`
}

// FishingDetails records how the fish was caught.
type FishingDetails struct {
	Bait      string   `bson:"bait" json:"bait"`
	Lure      string   `bson:"lure" json:"lure"`
	Technique string   `bson:"technique" json:"technique"`
	GearUsed  []string `bson:"gearUsed,omitempty" json:"gearUsed,omitempty"`
	Depth     *float64 `bson:"depth,omitempty" json:"depth,omitempty"`
	TimeOfDay string   `bson:"timeOfDay" json:"timeOfDay"`
	Duration  *int     `bson:"duration,omitempty" json:"duration,omitempty"` // minutes
}
