package backup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/fishing-tracker/internal/domain/models"
	"github.com/mamadbah2/fishing-tracker/internal/repository/gcs"
)

type fakeRepo struct {
	users    []string
	usersErr error

	// counts[userID][collection]
	counts   map[string]map[string]int
	countErr map[string]error
}

func (f *fakeRepo) ListUserIDs(_ context.Context) ([]string, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return f.users, nil
}

func (f *fakeRepo) CountOwnedDocuments(_ context.Context, collection, userID string) (int, error) {
	if err := f.countErr[userID]; err != nil {
		return 0, err
	}
	return f.counts[userID][collection], nil
}

type fakeBlobStore struct {
	objects []gcs.ObjectInfo
	listErr error
}

func (f *fakeBlobStore) List(_ context.Context, _ string) ([]gcs.ObjectInfo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.objects, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, _ string) error { return nil }

func TestCreateFullBackupAggregatesCounts(t *testing.T) {
	repo := &fakeRepo{
		users: []string{"user-1", "user-2"},
		counts: map[string]map[string]int{
			"user-1": {models.CollectionCatches: 3, models.CollectionGear: 2},
			"user-2": {models.CollectionCatches: 1},
		},
		countErr: map[string]error{},
	}
	blobs := &fakeBlobStore{objects: []gcs.ObjectInfo{{Path: "users/user-1/a.jpg"}, {Path: "users/user-2/b.jpg"}}}
	svc := NewService(repo, blobs, "1.4.0", nil)
	svc.now = func() time.Time { return time.Date(2025, time.August, 8, 3, 0, 0, 0, time.UTC) }

	summary, err := svc.CreateFullBackup(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Collections["users"])
	assert.Equal(t, 4, summary.Collections[models.CollectionCatches])
	assert.Equal(t, 2, summary.Collections[models.CollectionGear])
	assert.Equal(t, 2, summary.StorageFiles)
	assert.Empty(t, summary.Errors)
	assert.Equal(t, "1.4.0", summary.Version)
	assert.Equal(t, time.Date(2025, time.August, 8, 3, 0, 0, 0, time.UTC), summary.BackupDate)
}

func TestCreateFullBackupSkipsUnreadableUser(t *testing.T) {
	repo := &fakeRepo{
		users: []string{"user-1", "user-2"},
		counts: map[string]map[string]int{
			"user-2": {models.CollectionCatches: 5},
		},
		countErr: map[string]error{"user-1": errors.New("permission denied")},
	}
	svc := NewService(repo, &fakeBlobStore{}, "1.4.0", nil)

	summary, err := svc.CreateFullBackup(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Collections[models.CollectionCatches])
	// One error per owned collection of the unreadable user.
	assert.Len(t, summary.Errors, len(models.OwnedCollections()))
}

func TestCreateFullBackupRecordsStorageFailure(t *testing.T) {
	repo := &fakeRepo{users: []string{}, countErr: map[string]error{}}
	blobs := &fakeBlobStore{listErr: errors.New("bucket gone")}
	svc := NewService(repo, blobs, "1.4.0", nil)

	summary, err := svc.CreateFullBackup(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.StorageFiles)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "storage")
}

func TestGetBackupStatsHealthy(t *testing.T) {
	repo := &fakeRepo{
		users: []string{"user-1"},
		counts: map[string]map[string]int{
			"user-1": {models.CollectionCatches: 2},
		},
		countErr: map[string]error{},
	}
	svc := NewService(repo, &fakeBlobStore{objects: []gcs.ObjectInfo{{Path: "a"}}}, "1.4.0", nil)

	stats, err := svc.GetBackupStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.BackupHealthy, stats.BackupHealth)
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalCatches)
	assert.Equal(t, 1, stats.TotalStorageFiles)
	assert.Empty(t, stats.Recommendations)
}

func TestGetBackupStatsPartial(t *testing.T) {
	repo := &fakeRepo{
		users:    []string{"user-1"},
		counts:   map[string]map[string]int{},
		countErr: map[string]error{},
	}
	svc := NewService(repo, &fakeBlobStore{}, "1.4.0", nil)

	stats, err := svc.GetBackupStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.BackupPartial, stats.BackupHealth)
	assert.NotEmpty(t, stats.Recommendations)
}

func TestGetBackupStatsUnhealthy(t *testing.T) {
	repo := &fakeRepo{usersErr: errors.New("no connection")}
	blobs := &fakeBlobStore{listErr: errors.New("no connection")}
	svc := NewService(repo, blobs, "1.4.0", nil)

	stats, err := svc.GetBackupStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.BackupUnhealthy, stats.BackupHealth)
	assert.Len(t, stats.Recommendations, 3)
}
