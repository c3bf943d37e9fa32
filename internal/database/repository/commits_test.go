package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/datefocus/internal/database"
)

func newTestRepo(t *testing.T) *CommitRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))
	// A second run is a no-op.
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewCommitRepo(db)
	clock := time.Date(2022, time.January, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return repo
}

func TestCommitRepoLatestEmpty(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := newTestRepo(t)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Nil(t, latest)
}

func TestCommitRepoInsertAndList(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := newTestRepo(t)

	first, err := repo.Insert(ctx, "2022-01-15", "en-EN")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	_, err = repo.Insert(ctx, "2022-02-01", "en-EN")
	require.NoError(t, err)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, "2022-02-01", latest.Value)

	all, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, first.ID, all[1].ID)
	require.True(t, all[0].CommittedAt.After(all[1].CommittedAt))
}

func TestCommitRepoRecordPrunes(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := newTestRepo(t)

	for _, v := range []string{"2022-01-01", "2022-01-02", "2022-01-03", "2022-01-04"} {
		_, err := repo.Record(ctx, v, "", 2)
		require.NoError(t, err)
	}
	all, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "2022-01-04", all[0].Value)
	require.Equal(t, "2022-01-03", all[1].Value)

	removed, err := repo.Prune(ctx, 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)
}
