// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"

	"github.com/taibuivan/mangaread/internal/platform/apperr"
)

var (
	// ErrDataSourceNotFound reports that the configured data directory does not exist.
	ErrDataSourceNotFound = errors.New("catalog: data source not found")

	// ErrDataSourceUnreadable reports that the data directory exists but cannot be listed.
	ErrDataSourceUnreadable = errors.New("catalog: data source unreadable")

	// ErrNoRecordsLoaded reports that not a single source file could be loaded.
	ErrNoRecordsLoaded = errors.New("catalog: no records loaded")

	// ErrMangaNotFound is returned for unknown manga ids.
	ErrMangaNotFound = apperr.NotFound("Manga")

	// ErrCategoryNotFound is returned for unknown category names.
	ErrCategoryNotFound = apperr.NotFound("Category")
)

// # Catalogue Data Access

// Repository defines the read contract of the catalogue.
//
// Implementations load their data once; every read waits for that load to
// finish and then serves from immutable collections.
type Repository interface {

	/*
		Load populates the catalogue. Only the first call does work; concurrent
		and later callers block until it finishes and receive its result.

		Returns:
		  - error: ErrDataSourceNotFound, ErrDataSourceUnreadable or ErrNoRecordsLoaded
	*/
	Load(context context.Context) error

	/*
		FindByID returns the manga with the given id.

		Returns:
		  - *Manga: The normalised entity
		  - error: ErrMangaNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Manga, error)

	// List returns every manga in load order.
	List(context context.Context) []*Manga

	// ListByCategory returns manga whose genres contain name, ignoring case.
	ListByCategory(context context.Context, name string) []*Manga

	// Search returns manga whose title, author or any genre contains query,
	// ignoring case. An empty query matches everything.
	Search(context context.Context, query string) []*Manga

	// Featured returns at most FeaturedLimit featured manga in load order.
	Featured(context context.Context) []*Manga

	// Popular returns at most PopularLimit popular manga, most viewed first.
	Popular(context context.Context) []*Manga

	// Categories returns every category, largest first.
	Categories(context context.Context) []*Category

	/*
		FindCategory returns the category named name, ignoring case.

		Returns:
		  - error: ErrCategoryNotFound if missing
	*/
	FindCategory(context context.Context, name string) (*Category, error)
}
