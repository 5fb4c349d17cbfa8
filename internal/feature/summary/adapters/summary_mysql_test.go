package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stockcalendar/internal/feature/summary/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	require.NoError(t, db.AutoMigrate(&entity.Summary{}), "failed to migrate table")
	return db
}

func TestSummaryRepository_UpsertKeepsOneRowPerDay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSummaryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.Summary{UserID: 1, Date: "2024-03-15", Content: "장 마감 메모"}))
	require.NoError(t, repo.Upsert(ctx, &entity.Summary{UserID: 1, Date: "2024-03-15", Content: "수정된 메모"}))

	var count int64
	require.NoError(t, db.Model(&entity.Summary{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "one row per (user, date)")

	found, err := repo.FindByDate(ctx, 1, "2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "수정된 메모", found.Content, "the later submission wins")
}

func TestSummaryRepository_FindByDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSummaryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.Summary{UserID: 1, Date: "2024-03-15", Content: "메모"}))

	t.Run("miss is nil without error", func(t *testing.T) {
		found, err := repo.FindByDate(ctx, 1, "2024-03-16")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("scoped to the owning user", func(t *testing.T) {
		found, err := repo.FindByDate(ctx, 2, "2024-03-15")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
