package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/resume-matcher/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "submissions.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Submission{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func TestSubmissionRepository_CreateAssignsIDAndTimestamp(t *testing.T) {
	repo := NewSubmissionRepository(newTestDB(t))
	ctx := context.Background()

	sub := &models.Submission{
		ResumeName: "resume.txt",
		JDSnippet:  "python sql aws",
		Score:      66.67,
		Feedback:   "Add AWS experience.",
	}
	require.NoError(t, repo.Create(ctx, sub))

	assert.NotZero(t, sub.ID)
	assert.False(t, sub.Timestamp.IsZero())

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "resume.txt", all[0].ResumeName)
	assert.Equal(t, "python sql aws", all[0].JDSnippet)
	assert.InDelta(t, 66.67, all[0].Score, 0.0001)
	assert.Equal(t, "Add AWS experience.", all[0].Feedback)
}

func TestSubmissionRepository_FindAllNewestFirst(t *testing.T) {
	repo := NewSubmissionRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first.txt", "second.txt", "third.txt"} {
		require.NoError(t, repo.Create(ctx, &models.Submission{
			ResumeName: name,
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third.txt", all[0].ResumeName)
	assert.Equal(t, "second.txt", all[1].ResumeName)
	assert.Equal(t, "first.txt", all[2].ResumeName)
}

func TestSubmissionRepository_FindAllTieBreaksByInsertionOrder(t *testing.T) {
	repo := NewSubmissionRepository(newTestDB(t))
	ctx := context.Background()

	same := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &models.Submission{ResumeName: "a.txt", Timestamp: same}))
	require.NoError(t, repo.Create(ctx, &models.Submission{ResumeName: "b.txt", Timestamp: same}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b.txt", all[0].ResumeName)
	assert.Equal(t, "a.txt", all[1].ResumeName)
}

func TestSubmissionRepository_FindAllEmpty(t *testing.T) {
	repo := NewSubmissionRepository(newTestDB(t))

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
