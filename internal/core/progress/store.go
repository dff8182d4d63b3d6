// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"context"

	"github.com/taibuivan/mangaread/internal/platform/apperr"
)

// ErrProgressNotFound is returned when a title has no saved progress.
var ErrProgressNotFound = apperr.NotFound("Reading progress")

// # Progress Data Access

// Repository defines the persistence contract for reading progress.
//
// Implementations must be safe for concurrent use. Two upserts for the same
// manga id serialise; the one that completes last wins.
type Repository interface {

	/*
		Find returns the progress saved for mangaID.

		Returns:
		  - error: ErrProgressNotFound if nothing was saved
	*/
	Find(context context.Context, mangaID string) (*ReadingProgress, error)

	// FindMany returns the saved progress for each id that has one. Ids
	// without progress are absent from the map. The map is never nil.
	FindMany(context context.Context, mangaIDs []string) (map[string]*ReadingProgress, error)

	// Upsert stores progress, replacing any record with the same MangaID.
	Upsert(context context.Context, progress *ReadingProgress) error

	// List returns every record in first-save order.
	List(context context.Context) ([]*ReadingProgress, error)

	// Ping reports whether the backend is reachable.
	Ping(context context.Context) error
}
