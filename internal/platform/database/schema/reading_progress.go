// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns shared by the SQL backends and
// the migration files.
package schema

// ReadingProgressTable represents the 'reading_progress' table.
type ReadingProgressTable struct {
	Table      string
	ID         string
	MangaID    string
	ChapterNo  string
	PageNo     string
	LastReadAt string
	Seq        string
}

// ReadingProgress is the schema definition for reading_progress.
//
// manga_id is the primary key: a title has at most one progress row.
// seq records first-insert order and is left untouched by upserts.
var ReadingProgress = ReadingProgressTable{
	Table:      "reading_progress",
	ID:         "id",
	MangaID:    "manga_id",
	ChapterNo:  "chapter_no",
	PageNo:     "page_no",
	LastReadAt: "last_read_at",
	Seq:        "seq",
}
