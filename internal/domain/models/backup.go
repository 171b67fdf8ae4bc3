package models

import "time"

// BackupSummary reports one full-backup walk over all users.
type BackupSummary struct {
	BackupDate   time.Time      `bson:"backupDate" json:"backupDate"`
	Collections  map[string]int `bson:"collections" json:"collections"`
	StorageFiles int            `bson:"storageFiles" json:"storageFiles"`
	Errors       []string       `bson:"errors" json:"errors"`
	Version      string         `bson:"version" json:"version"`
}

// Health verdicts reported by backup statistics.
const (
	BackupHealthy   = "healthy"
	BackupPartial   = "partial"
	BackupUnhealthy = "unhealthy"
)

// BackupStats gives a quick health picture of the data behind backups.
type BackupStats struct {
	TotalUsers        int      `json:"totalUsers"`
	TotalCatches      int      `json:"totalCatches"`
	TotalStorageFiles int      `json:"totalStorageFiles"`
	BackupHealth      string   `json:"backupHealth"`
	Recommendations   []string `json:"recommendations"`
}
