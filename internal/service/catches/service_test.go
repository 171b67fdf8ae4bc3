package catches

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/fishing-tracker/internal/domain/models"
)

type fakeRepo struct {
	stored  []models.Catch
	nextID  string
	addErr  error
	listErr error

	deleteResult *models.Catch
	deleteErr    error

	deltas     []models.CounterDeltas
	countersErr error
}

func (f *fakeRepo) AddCatch(_ context.Context, c models.Catch) (string, error) {
	if f.addErr != nil {
		return "", f.addErr
	}
	c.ID = f.nextID
	f.stored = append(f.stored, c)
	return f.nextID, nil
}

func (f *fakeRepo) GetUserCatches(_ context.Context, _ string) ([]models.Catch, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.stored, nil
}

func (f *fakeRepo) DeleteCatch(_ context.Context, _, _ string) (*models.Catch, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return f.deleteResult, nil
}

func (f *fakeRepo) UpdateProfileCounters(_ context.Context, _ string, deltas models.CounterDeltas) error {
	if f.countersErr != nil {
		return f.countersErr
	}
	f.deltas = append(f.deltas, deltas)
	return nil
}

func TestAddCatchAppliesDefaults(t *testing.T) {
	now := time.Date(2025, time.August, 8, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{nextID: "catch-1"}
	svc := NewService(repo, nil)
	svc.now = func() time.Time { return now }

	created, err := svc.AddCatch(context.Background(), "user-1", models.Catch{Species: "Bass", Weight: 2.5})
	require.NoError(t, err)

	assert.Equal(t, "catch-1", created.ID)
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, models.CatchReleased, created.KeptOrReleased)
	assert.True(t, created.DateTime.Equal(now))
	assert.NotNil(t, created.Photos)
	assert.True(t, created.CreatedAt.Equal(now))
	assert.True(t, created.UpdatedAt.Equal(now))

	require.Len(t, repo.deltas, 1)
	assert.Equal(t, models.CounterDeltas{Catches: 1, TotalWeight: 2.5}, repo.deltas[0])
}

func TestAddCatchKeepsExplicitFields(t *testing.T) {
	caught := time.Date(2025, time.July, 1, 6, 0, 0, 0, time.UTC)
	repo := &fakeRepo{nextID: "catch-2"}
	svc := NewService(repo, nil)

	created, err := svc.AddCatch(context.Background(), "user-1", models.Catch{
		Species:        "Pike",
		Weight:         4,
		KeptOrReleased: models.CatchKept,
		DateTime:       caught,
		Photos:         []string{"p1.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.CatchKept, created.KeptOrReleased)
	assert.True(t, created.DateTime.Equal(caught))
	assert.Equal(t, []string{"p1.jpg"}, created.Photos)
}

func TestAddCatchEmptyUserID(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	_, err := svc.AddCatch(context.Background(), "", models.Catch{Species: "Bass"})
	require.Error(t, err)
}

func TestAddCatchCounterFailureDoesNotFailAdd(t *testing.T) {
	repo := &fakeRepo{nextID: "catch-3", countersErr: errors.New("profile missing")}
	svc := NewService(repo, nil)

	created, err := svc.AddCatch(context.Background(), "user-1", models.Catch{Species: "Bass", Weight: 1})
	require.NoError(t, err)
	assert.Equal(t, "catch-3", created.ID)
}

func TestDeleteCatchReversesCounters(t *testing.T) {
	repo := &fakeRepo{deleteResult: &models.Catch{ID: "catch-1", Weight: 2.5}}
	svc := NewService(repo, nil)

	require.NoError(t, svc.DeleteCatch(context.Background(), "user-1", "catch-1"))

	require.Len(t, repo.deltas, 1)
	assert.Equal(t, models.CounterDeltas{Catches: -1, TotalWeight: -2.5}, repo.deltas[0])
}

func TestDeleteCatchNotFound(t *testing.T) {
	repo := &fakeRepo{deleteResult: nil}
	svc := NewService(repo, nil)

	err := svc.DeleteCatch(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, repo.deltas)
}

func TestListCatchesPropagatesError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection reset")}
	svc := NewService(repo, nil)

	_, err := svc.ListCatches(context.Background(), "user-1")
	require.Error(t, err)
}
