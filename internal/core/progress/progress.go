// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package progress tracks where a reader stopped in each title.

A title has at most one [ReadingProgress]: saving again overwrites it, and a
new opaque ID is issued on every save. Records are only created by an
explicit save and are never derived from catalogue data.

Storage is pluggable. The in-memory backend is the default and loses every
record on restart; SQLite, PostgreSQL and Redis keep them across restarts.
*/
package progress

// # Field Constants

// JSON field names used in validation details.
const (
	FieldMangaID    = "mangaId"
	FieldMangaIDs   = "mangaIds"
	FieldChapterNo  = "chapterNo"
	FieldPageNo     = "pageNo"
	FieldLastReadAt = "lastReadAt"
)

// MaxBulkIDs caps a single bulk lookup.
const MaxBulkIDs = 1000

// # Core Entities

// ReadingProgress is the last position a reader reached in one title.
// LastReadAt is stored exactly as the client sent it.
type ReadingProgress struct {
	ID         string `json:"id"`
	MangaID    string `json:"mangaId"`
	ChapterNo  int    `json:"chapterNo"`
	PageNo     int    `json:"pageNo"`
	LastReadAt string `json:"lastReadAt"`
}

// SaveInput is the payload of a progress save. Pointers distinguish an
// omitted number from zero.
type SaveInput struct {
	MangaID    string `json:"mangaId"`
	ChapterNo  *int   `json:"chapterNo"`
	PageNo     *int   `json:"pageNo"`
	LastReadAt string `json:"lastReadAt"`
}
