package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ynstf/boston-housing-api/domain/home"
	"github.com/ynstf/boston-housing-api/domain/repository"
	"github.com/ynstf/boston-housing-api/internal/database"
)

// newTestDB creates an in-memory SQLite database for testing.
// Cannot use the testdb package here due to import cycle (testdb imports
// persistence).
func newTestDB(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewDatabase(ctx, "sqlite:///:memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newHome(medv float64) home.Home {
	return home.NewHome(home.NewFeatures(6.5, 4.98, 6.0, 296, 15.3, 65.2, 2.31), medv)
}

func TestHomeStore_Save(t *testing.T) {
	store := NewHomeStore(newTestDB(t))
	ctx := context.Background()

	saved, err := store.Save(ctx, newHome(24.0))
	require.NoError(t, err)

	assert.True(t, saved.IsSaved())
	assert.Equal(t, int64(1), saved.ID())
	assert.Equal(t, 24.0, saved.MedianValue())
	assert.Equal(t, 6.5, saved.Features().Rooms())
	assert.Equal(t, 2.31, saved.Features().IndustrialPct())
	assert.False(t, saved.CreatedAt().IsZero())
}

func TestHomeStore_Save_AssignsSequentialIDs(t *testing.T) {
	store := NewHomeStore(newTestDB(t))
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		saved, err := store.Save(ctx, newHome(20.0))
		require.NoError(t, err)
		assert.Equal(t, i, saved.ID())
	}
}

func TestHomeStore_Save_RejectsSavedRecord(t *testing.T) {
	store := NewHomeStore(newTestDB(t))
	ctx := context.Background()

	saved, err := store.Save(ctx, newHome(24.0))
	require.NoError(t, err)

	_, err = store.Save(ctx, saved)
	assert.Error(t, err)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestHomeStore_SaveAll(t *testing.T) {
	store := NewHomeStore(newTestDB(t))
	ctx := context.Background()

	saved, err := store.SaveAll(ctx, []home.Home{newHome(10), newHome(20), newHome(30)})
	require.NoError(t, err)
	require.Len(t, saved, 3)

	for i, h := range saved {
		assert.Equal(t, int64(i+1), h.ID())
	}

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestHomeStore_SaveAll_RollsBackOnFailure(t *testing.T) {
	store := NewHomeStore(newTestDB(t))
	ctx := context.Background()

	already, err := store.Save(ctx, newHome(24.0))
	require.NoError(t, err)

	// The immutable record in the middle fails the batch; the first
	// insert must not survive.
	_, err = store.SaveAll(ctx, []home.Home{newHome(10), already, newHome(30)})
	require.Error(t, err)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestHomeStore_Find_Pagination(t *testing.T) {
	store := NewHomeStore(newTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Save(ctx, newHome(float64(10+i)))
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		options []repository.Option
		wantIDs []int64
	}{
		{
			name:    "full list in id order",
			options: []repository.Option{repository.WithOrderAsc("id")},
			wantIDs: []int64{1, 2, 3, 4, 5},
		},
		{
			name: "skip two limit two",
			options: append(
				repository.WithPagination(2, 2),
				repository.WithOrderAsc("id"),
			),
			wantIDs: []int64{3, 4},
		},
		{
			name: "skip past end",
			options: append(
				repository.WithPagination(100, 10),
				repository.WithOrderAsc("id"),
			),
			wantIDs: []int64{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			homes, err := store.Find(ctx, tt.options...)
			require.NoError(t, err)
			require.Len(t, homes, len(tt.wantIDs))
			for i, want := range tt.wantIDs {
				assert.Equal(t, want, homes[i].ID())
			}
		})
	}
}

func TestHomeStore_FindOne_ByID(t *testing.T) {
	store := NewHomeStore(newTestDB(t))
	ctx := context.Background()

	saved, err := store.Save(ctx, newHome(33.3))
	require.NoError(t, err)

	found, err := store.FindOne(ctx, repository.WithID(saved.ID()))
	require.NoError(t, err)
	assert.Equal(t, saved.ID(), found.ID())
	assert.Equal(t, 33.3, found.MedianValue())
}

func TestHomeStore_FindOne_NotFound(t *testing.T) {
	store := NewHomeStore(newTestDB(t))

	_, err := store.FindOne(context.Background(), repository.WithID(999))
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestHomeStore_NearestByPrice(t *testing.T) {
	store := NewHomeStore(newTestDB(t))
	ctx := context.Background()

	for _, medv := range []float64{10, 20, 30} {
		_, err := store.Save(ctx, newHome(medv))
		require.NoError(t, err)
	}

	homes, err := store.NearestByPrice(ctx, 21, 20)
	require.NoError(t, err)
	require.Len(t, homes, 3)

	assert.Equal(t, 20.0, homes[0].MedianValue())
	assert.Equal(t, 30.0, homes[1].MedianValue())
	assert.Equal(t, 10.0, homes[2].MedianValue())
}

func TestHomeStore_NearestByPrice_TieBreaksByID(t *testing.T) {
	store := NewHomeStore(newTestDB(t))
	ctx := context.Background()

	// 18 and 22 are equidistant from 20.
	for _, medv := range []float64{22, 18, 22} {
		_, err := store.Save(ctx, newHome(medv))
		require.NoError(t, err)
	}

	homes, err := store.NearestByPrice(ctx, 20, 20)
	require.NoError(t, err)
	require.Len(t, homes, 3)

	assert.Equal(t, int64(1), homes[0].ID())
	assert.Equal(t, int64(2), homes[1].ID())
	assert.Equal(t, int64(3), homes[2].ID())
}

func TestHomeStore_NearestByPrice_Limit(t *testing.T) {
	store := NewHomeStore(newTestDB(t))
	ctx := context.Background()

	for _, medv := range []float64{10, 20, 30, 40} {
		_, err := store.Save(ctx, newHome(medv))
		require.NoError(t, err)
	}

	homes, err := store.NearestByPrice(ctx, 25, 2)
	require.NoError(t, err)
	require.Len(t, homes, 2)
}

func TestHomeStore_NearestByPrice_NonPositiveLimit(t *testing.T) {
	store := NewHomeStore(newTestDB(t))
	ctx := context.Background()

	_, err := store.Save(ctx, newHome(24.0))
	require.NoError(t, err)

	for _, limit := range []int{0, -1} {
		homes, err := store.NearestByPrice(ctx, 24, limit)
		require.NoError(t, err)
		assert.Empty(t, homes)
	}
}

func TestHomeStore_NearestByPrice_EmptyTable(t *testing.T) {
	store := NewHomeStore(newTestDB(t))

	homes, err := store.NearestByPrice(context.Background(), 15, 20)
	require.NoError(t, err)
	assert.NotNil(t, homes)
	assert.Empty(t, homes)
}

func TestHomeMapper_RoundTrip(t *testing.T) {
	mapper := HomeMapper{}

	original := newHome(24.0)
	model := mapper.ToModel(original)
	restored := mapper.ToDomain(model)

	assert.Equal(t, original.Features(), restored.Features())
	assert.Equal(t, original.MedianValue(), restored.MedianValue())
}
