// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangaread/data/migrations"
	"github.com/taibuivan/mangaread/internal/core/progress"
	"github.com/taibuivan/mangaread/internal/platform/migration"
	"github.com/taibuivan/mangaread/internal/platform/postgres"
	redisclient "github.com/taibuivan/mangaread/internal/platform/redis"
	"github.com/taibuivan/mangaread/internal/platform/sqlite"
	"github.com/taibuivan/mangaread/pkg/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func record(mangaID string, chapterNo int) *progress.ReadingProgress {
	return &progress.ReadingProgress{
		ID:         uuid.New(),
		MangaID:    mangaID,
		ChapterNo:  chapterNo,
		PageNo:     chapterNo * 2,
		LastReadAt: "2026-01-02T03:04:05.000Z",
	}
}

// # Backends

type backend struct {
	name string
	open func(t *testing.T) progress.Repository
}

func backends() []backend {
	return []backend{
		{"memory", func(*testing.T) progress.Repository { return progress.NewMemoryRepository() }},
		{"sqlite", openSQLite},
		{"postgres", openPostgres},
		{"redis", openRedis},
	}
}

func openSQLite(t *testing.T) progress.Repository {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "progress.db"), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repository, err := progress.NewSQLiteRepository(context.Background(), db)
	require.NoError(t, err)
	return repository
}

func openPostgres(t *testing.T) progress.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, migration.RunUp(context.Background(), dsn, migrations.FS, discardLogger()))

	pool, err := postgres.NewPool(context.Background(), dsn, discardLogger())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), "TRUNCATE reading_progress")
	require.NoError(t, err)

	return progress.NewPostgresRepository(pool)
}

func openRedis(t *testing.T) progress.Repository {
	t.Helper()

	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	client, err := redisclient.NewClient(context.Background(), url, discardLogger())
	require.NoError(t, err)

	key := "mangaread:test:" + uuid.New()
	t.Cleanup(func() {
		_ = client.Del(context.Background(), key, key+":order").Err()
		_ = client.Close()
	})

	return progress.NewRedisRepository(client, key)
}

// # Contract

func TestRepository_Contract(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			t.Run("find missing", func(t *testing.T) {
				_, err := b.open(t).Find(context.Background(), "nothing")
				assert.ErrorIs(t, err, progress.ErrProgressNotFound)
			})

			t.Run("upsert overwrites", func(t *testing.T) {
				repository := b.open(t)
				ctx := context.Background()

				first := record("solo", 1)
				second := record("solo", 7)
				require.NoError(t, repository.Upsert(ctx, first))
				require.NoError(t, repository.Upsert(ctx, second))

				stored, err := repository.Find(ctx, "solo")
				require.NoError(t, err)
				assert.Equal(t, second, stored)

				all, err := repository.List(ctx)
				require.NoError(t, err)
				assert.Len(t, all, 1)
			})

			t.Run("bulk is partial", func(t *testing.T) {
				repository := b.open(t)
				ctx := context.Background()
				require.NoError(t, repository.Upsert(ctx, record("b", 3)))

				found, err := repository.FindMany(ctx, []string{"a", "b", "c"})
				require.NoError(t, err)
				require.Len(t, found, 1)
				assert.Equal(t, 3, found["b"].ChapterNo)

				empty, err := repository.FindMany(ctx, nil)
				require.NoError(t, err)
				assert.NotNil(t, empty)
				assert.Empty(t, empty)
			})

			t.Run("list keeps first-save order", func(t *testing.T) {
				repository := b.open(t)
				ctx := context.Background()

				for _, id := range []string{"x", "y", "z"} {
					require.NoError(t, repository.Upsert(ctx, record(id, 1)))
				}
				require.NoError(t, repository.Upsert(ctx, record("x", 9)))

				all, err := repository.List(ctx)
				require.NoError(t, err)
				require.Len(t, all, 3)
				assert.Equal(t, []string{"x", "y", "z"}, []string{all[0].MangaID, all[1].MangaID, all[2].MangaID})
				assert.Equal(t, 9, all[0].ChapterNo)
			})

			t.Run("list empty", func(t *testing.T) {
				all, err := b.open(t).List(context.Background())
				require.NoError(t, err)
				assert.NotNil(t, all)
				assert.Empty(t, all)
			})

			t.Run("ping", func(t *testing.T) {
				assert.NoError(t, b.open(t).Ping(context.Background()))
			})
		})
	}
}

/*
TestRepository_ConcurrentUpserts saves many ids and one hot id in parallel.
*/
func TestRepository_ConcurrentUpserts(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			repository := b.open(t)
			ctx := context.Background()

			var wg sync.WaitGroup
			for i := range 40 {
				wg.Add(2)
				go func() {
					defer wg.Done()
					assert.NoError(t, repository.Upsert(ctx, record(fmt.Sprintf("title-%d", i), i)))
				}()
				go func() {
					defer wg.Done()
					assert.NoError(t, repository.Upsert(ctx, record("hot", i)))
				}()
			}
			wg.Wait()

			all, err := repository.List(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 41)

			hot, err := repository.Find(ctx, "hot")
			require.NoError(t, err)
			assert.GreaterOrEqual(t, hot.ChapterNo, 0)
			assert.Less(t, hot.ChapterNo, 40)
		})
	}
}

/*
TestMemoryRepository_NotDurable documents that a new process starts empty.
*/
func TestMemoryRepository_NotDurable(t *testing.T) {
	ctx := context.Background()

	before := progress.NewMemoryRepository()
	require.NoError(t, before.Upsert(ctx, record("solo", 4)))

	// A restart is a fresh repository.
	after := progress.NewMemoryRepository()
	_, err := after.Find(ctx, "solo")
	assert.ErrorIs(t, err, progress.ErrProgressNotFound)
}

func TestSQLiteRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress.db")

	db, err := sqlite.Open(ctx, path, discardLogger())
	require.NoError(t, err)
	repository, err := progress.NewSQLiteRepository(ctx, db)
	require.NoError(t, err)
	require.NoError(t, repository.Upsert(ctx, record("solo", 4)))
	require.NoError(t, db.Close())

	reopened, err := sqlite.Open(ctx, path, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	repository, err = progress.NewSQLiteRepository(ctx, reopened)
	require.NoError(t, err)

	stored, err := repository.Find(ctx, "solo")
	require.NoError(t, err)
	assert.Equal(t, 4, stored.ChapterNo)
}
