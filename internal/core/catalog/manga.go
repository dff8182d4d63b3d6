// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog owns the read-only manga catalogue.

Scraped records (one JSON file per title) are parsed, normalised into [Manga]
entities and aggregated into [Category] counts once per process. After that
the collections never change, so every read is a plain scan over immutable data.

Core Responsibility:

  - Ingestion: free-text attribute lines become author, genres, status and views.
  - Curation: popular and featured flags derived from views and genres.
  - Discovery: lookup by id, by category, substring search.
*/
package catalog

// # Domain Enums

// Status represents the publication status of a title.
type Status string

const (
	// StatusOngoing indicates the publication is actively updating. It is the default.
	StatusOngoing Status = "ongoing"

	// StatusCompleted indicates no further chapters are expected.
	StatusCompleted Status = "completed"

	// StatusHiatus indicates the publication is paused.
	StatusHiatus Status = "hiatus"
)

// # Thresholds

const (
	// PopularViewThreshold is the view count a title must exceed to be popular.
	PopularViewThreshold = 50_000

	// FeaturedViewThreshold is the view count a title must exceed to be featured.
	FeaturedViewThreshold = 100_000

	// FeaturedLimit caps the featured selection.
	FeaturedLimit = 5

	// PopularLimit caps the popular selection.
	PopularLimit = 12

	// UnknownAuthor is used when no author attribute is present.
	UnknownAuthor = "Unknown Author"
)

// featuredGenres are the genres eligible for the homepage carousel.
var featuredGenres = []string{"Action", "Romance", "Fantasy"}

// # Source Records

// RawRecord is one scraped title exactly as stored on disk.
type RawRecord struct {
	Title      string       `json:"title"`
	URL        string       `json:"url"`
	CoverImage string       `json:"cover_image"`
	Attributes []string     `json:"attributes"`
	Summary    string       `json:"summary"`
	Chapters   []RawChapter `json:"chapters"`
}

// RawChapter is a chapter entry of a [RawRecord].
type RawChapter struct {
	ChapterNo int      `json:"chapter_no"`
	Title     string   `json:"title"`
	URL       string   `json:"url"`
	Images    []string `json:"images"`
	PageCount int      `json:"page_count"`
}

// # Core Entities

// Manga is the normalised, immutable catalogue entry.
//
// ID is the source filename stem. Chapters keep source order, which is not
// guaranteed to be sorted and may contain duplicate chapter numbers.
type Manga struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	CoverImage  string    `json:"coverImage"`
	Attributes  []string  `json:"attributes"`
	Description string    `json:"description"`
	Chapters    []Chapter `json:"chapters"`

	// # Derived Fields
	Author     string   `json:"author"`
	Genre      []string `json:"genre"`
	Status     Status   `json:"status"`
	Views      int64    `json:"views"`
	Rating     float64  `json:"rating"`
	IsPopular  bool     `json:"isPopular"`
	IsFeatured bool     `json:"isFeatured"`
}

// Chapter is a readable chapter. PageCount is carried as scraped and is not
// checked against len(Images).
type Chapter struct {
	ChapterNo int      `json:"chapter_no"`
	Title     string   `json:"title"`
	URL       string   `json:"url"`
	Images    []string `json:"images"`
	PageCount int      `json:"page_count"`
}

// HasGenre reports whether the title carries genre, ignoring case.
func (m *Manga) HasGenre(genre string) bool {
	for _, g := range m.Genre {
		if equalFold(g, genre) {
			return true
		}
	}
	return false
}

// Category is a genre aggregate derived at load time.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	MangaCount  int    `json:"mangaCount"`
}
