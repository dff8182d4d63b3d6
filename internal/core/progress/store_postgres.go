// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/mangaread/internal/platform/database/schema"
	"github.com/taibuivan/mangaread/internal/platform/dberr"
	"github.com/taibuivan/mangaread/internal/platform/postgres"
)

var postgresColumns = strings.Join([]string{
	schema.ReadingProgress.ID,
	schema.ReadingProgress.MangaID,
	schema.ReadingProgress.ChapterNo,
	schema.ReadingProgress.PageNo,
	schema.ReadingProgress.LastReadAt,
}, ", ")

// PostgresRepository stores progress in PostgreSQL. The table is created by
// the migrations in data/migrations.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a repository over an open pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Find implements [Repository].
func (repository *PostgresRepository) Find(ctx context.Context, mangaID string) (*ReadingProgress, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		postgresColumns, schema.ReadingProgress.Table, schema.ReadingProgress.MangaID)

	rows, err := repository.db.Query(ctx, query, mangaID)
	if err != nil {
		return nil, dberr.Wrap(err, "find_progress", ErrProgressNotFound)
	}

	progress, err := pgx.CollectExactlyOneRow(rows, scanProgress)
	if err != nil {
		return nil, dberr.Wrap(err, "find_progress", ErrProgressNotFound)
	}
	return progress, nil
}

// FindMany implements [Repository].
func (repository *PostgresRepository) FindMany(ctx context.Context, mangaIDs []string) (map[string]*ReadingProgress, error) {
	result := make(map[string]*ReadingProgress)
	if len(mangaIDs) == 0 {
		return result, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1)`,
		postgresColumns, schema.ReadingProgress.Table, schema.ReadingProgress.MangaID)

	records, err := repository.collect(ctx, "find_many_progress", query, mangaIDs)
	if err != nil {
		return nil, err
	}
	for _, progress := range records {
		result[progress.MangaID] = progress
	}
	return result, nil
}

// Upsert implements [Repository].
func (repository *PostgresRepository) Upsert(ctx context.Context, progress *ReadingProgress) error {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%[3]s) DO UPDATE SET
			%[4]s = EXCLUDED.%[4]s,
			%[5]s = EXCLUDED.%[5]s,
			%[6]s = EXCLUDED.%[6]s,
			%[7]s = EXCLUDED.%[7]s`,
		schema.ReadingProgress.Table, postgresColumns, schema.ReadingProgress.MangaID,
		schema.ReadingProgress.ID, schema.ReadingProgress.ChapterNo,
		schema.ReadingProgress.PageNo, schema.ReadingProgress.LastReadAt,
	)

	_, err := repository.db.Exec(ctx, query,
		progress.ID, progress.MangaID, progress.ChapterNo, progress.PageNo, progress.LastReadAt,
	)
	return dberr.Wrap(err, "upsert_progress", ErrProgressNotFound)
}

// List implements [Repository].
func (repository *PostgresRepository) List(ctx context.Context) ([]*ReadingProgress, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		postgresColumns, schema.ReadingProgress.Table, schema.ReadingProgress.Seq)
	return repository.collect(ctx, "list_progress", query)
}

// Ping implements [Repository].
func (repository *PostgresRepository) Ping(ctx context.Context) error {
	return postgres.Ping(ctx, repository.db)
}

func (repository *PostgresRepository) collect(ctx context.Context, action, query string, args ...any) ([]*ReadingProgress, error) {
	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action, ErrProgressNotFound)
	}

	records, err := pgx.CollectRows(rows, scanProgress)
	if err != nil {
		return nil, dberr.Wrap(err, action, ErrProgressNotFound)
	}
	if records == nil {
		records = make([]*ReadingProgress, 0)
	}
	return records, nil
}

func scanProgress(row pgx.CollectableRow) (*ReadingProgress, error) {
	progress := &ReadingProgress{}
	err := row.Scan(&progress.ID, &progress.MangaID, &progress.ChapterNo, &progress.PageNo, &progress.LastReadAt)
	return progress, err
}
