// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/taibuivan/mangaread/internal/platform/database/schema"
	"github.com/taibuivan/mangaread/internal/platform/dberr"
	"github.com/taibuivan/mangaread/internal/platform/sqlite"
)

var (
	sqliteColumns = strings.Join([]string{
		schema.ReadingProgress.ID,
		schema.ReadingProgress.MangaID,
		schema.ReadingProgress.ChapterNo,
		schema.ReadingProgress.PageNo,
		schema.ReadingProgress.LastReadAt,
	}, ", ")

	sqliteCreateTable = fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			%s INTEGER PRIMARY KEY AUTOINCREMENT,
			%s TEXT NOT NULL,
			%s TEXT NOT NULL UNIQUE,
			%s INTEGER NOT NULL,
			%s INTEGER NOT NULL DEFAULT 0,
			%s TEXT NOT NULL
		)`,
		schema.ReadingProgress.Table,
		schema.ReadingProgress.Seq,
		schema.ReadingProgress.ID,
		schema.ReadingProgress.MangaID,
		schema.ReadingProgress.ChapterNo,
		schema.ReadingProgress.PageNo,
		schema.ReadingProgress.LastReadAt,
	)
)

// SQLiteRepository stores progress in an embedded SQLite file.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates the progress table if needed.
func NewSQLiteRepository(ctx context.Context, db *sql.DB) (*SQLiteRepository, error) {
	if _, err := db.ExecContext(ctx, sqliteCreateTable); err != nil {
		return nil, fmt.Errorf("progress: create sqlite table: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// Find implements [Repository].
func (repository *SQLiteRepository) Find(ctx context.Context, mangaID string) (*ReadingProgress, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		sqliteColumns, schema.ReadingProgress.Table, schema.ReadingProgress.MangaID)

	progress := &ReadingProgress{}
	err := repository.db.QueryRowContext(ctx, query, mangaID).Scan(
		&progress.ID, &progress.MangaID, &progress.ChapterNo, &progress.PageNo, &progress.LastReadAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_progress", ErrProgressNotFound)
	}
	return progress, nil
}

// FindMany implements [Repository].
func (repository *SQLiteRepository) FindMany(ctx context.Context, mangaIDs []string) (map[string]*ReadingProgress, error) {
	result := make(map[string]*ReadingProgress)
	if len(mangaIDs) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(mangaIDs)), ",")
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s IN (%s)`,
		sqliteColumns, schema.ReadingProgress.Table, schema.ReadingProgress.MangaID, placeholders)

	args := make([]any, len(mangaIDs))
	for i, mangaID := range mangaIDs {
		args[i] = mangaID
	}

	records, err := repository.query(ctx, "find_many_progress", query, args...)
	if err != nil {
		return nil, err
	}
	for _, progress := range records {
		result[progress.MangaID] = progress
	}
	return result, nil
}

// Upsert implements [Repository]. The row keeps its seq on conflict.
func (repository *SQLiteRepository) Upsert(ctx context.Context, progress *ReadingProgress) error {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (%[3]s) DO UPDATE SET
			%[4]s = excluded.%[4]s,
			%[5]s = excluded.%[5]s,
			%[6]s = excluded.%[6]s,
			%[7]s = excluded.%[7]s`,
		schema.ReadingProgress.Table, sqliteColumns, schema.ReadingProgress.MangaID,
		schema.ReadingProgress.ID, schema.ReadingProgress.ChapterNo,
		schema.ReadingProgress.PageNo, schema.ReadingProgress.LastReadAt,
	)

	_, err := repository.db.ExecContext(ctx, query,
		progress.ID, progress.MangaID, progress.ChapterNo, progress.PageNo, progress.LastReadAt,
	)
	return dberr.Wrap(err, "upsert_progress", ErrProgressNotFound)
}

// List implements [Repository].
func (repository *SQLiteRepository) List(ctx context.Context) ([]*ReadingProgress, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		sqliteColumns, schema.ReadingProgress.Table, schema.ReadingProgress.Seq)
	return repository.query(ctx, "list_progress", query)
}

// Ping implements [Repository].
func (repository *SQLiteRepository) Ping(ctx context.Context) error {
	return sqlite.Ping(ctx, repository.db)
}

func (repository *SQLiteRepository) query(ctx context.Context, action, query string, args ...any) ([]*ReadingProgress, error) {
	rows, err := repository.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action, ErrProgressNotFound)
	}
	defer rows.Close()

	records := make([]*ReadingProgress, 0)
	for rows.Next() {
		progress := &ReadingProgress{}
		if err := rows.Scan(&progress.ID, &progress.MangaID, &progress.ChapterNo, &progress.PageNo, &progress.LastReadAt); err != nil {
			return nil, dberr.Wrap(err, action, ErrProgressNotFound)
		}
		records = append(records, progress)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action, ErrProgressNotFound)
	}
	return records, nil
}
