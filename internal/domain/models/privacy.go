package models

import "time"

// ExportBundle is the complete data-portability snapshot for one user. The
// export is a faithful mirror of stored state: nothing is filtered or
// redacted.
type ExportBundle struct {
	ExportDate time.Time  `json:"exportDate"`
	UserID     string     `json:"userId"`
	Data       ExportData `json:"data"`
}

// ExportData groups the profile and every owned collection.
type ExportData struct {
	Profile            *UserProfile        `json:"profile"`
	Catches            []Catch             `json:"catches"`
	Gear               []Gear              `json:"gear"`
	WeatherLogs        []WeatherLog        `json:"weatherLogs"`
	FishingSpots       []FishingSpot       `json:"fishingSpots"`
	SocialInteractions []SocialInteraction `json:"socialInteractions"`
	Regulations        []Regulation        `json:"regulations"`
}

// DeletionSummary reports the outcome of a cascading user-data deletion.
// Partial failure never aborts the run; per-unit failures accumulate in
// Errors and the summary is returned regardless.
type DeletionSummary struct {
	UserID              string         `bson:"userId" json:"userId"`
	DeletionDate        time.Time      `bson:"deletionDate" json:"deletionDate"`
	DeletedCollections  map[string]int `bson:"deletedCollections" json:"deletedCollections"`
	DeletedStorageFiles int            `bson:"deletedStorageFiles" json:"deletedStorageFiles"`
	Errors              []string       `bson:"errors" json:"errors"`
}

// RetentionInfo describes how old a user's data is and what the declared
// retention policy says about each category.
type RetentionInfo struct {
	UserID          string            `json:"userId"`
	LastActivity    *time.Time        `json:"lastActivity"`
	DataAge         DataAge           `json:"dataAge"`
	RetentionPolicy map[string]string `json:"retentionPolicy"`
}

// DataAge holds human-readable elapsed times per data category.
type DataAge struct {
	Profile string `json:"profile,omitempty"`
	Catches string `json:"catches,omitempty"`
}

// Audit log events and actors for the account-deletion cleanup path.
const (
	AuditEventCleanupCompleted = "account_deletion_cleanup_completed"
	AuditEventCleanupFailed    = "account_deletion_cleanup_failed"

	AuditStatusSuccess = "success"
	AuditStatusFailed  = "failed"

	ActorAuthTrigger = "auth_trigger"
	ActorAdmin       = "admin"
)

// AuditLogEntry is one append-only record of a cleanup attempt. Entries are
// never updated in place.
type AuditLogEntry struct {
	UserID    string           `bson:"userId" json:"userId"`
	Event     string           `bson:"event" json:"event"`
	Timestamp time.Time        `bson:"timestamp" json:"timestamp"`
	Summary   *DeletionSummary `bson:"summary,omitempty" json:"summary,omitempty"`
	Status    string           `bson:"status" json:"status"`
	Actor     string           `bson:"actor" json:"actor"`
}
