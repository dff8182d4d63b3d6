// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"context"
	"log/slog"

	"github.com/taibuivan/mangaread/internal/platform/apperr"
	"github.com/taibuivan/mangaread/internal/platform/ctxutil"
	"github.com/taibuivan/mangaread/internal/platform/validate"
	"github.com/taibuivan/mangaread/pkg/pointer"
	"github.com/taibuivan/mangaread/pkg/uuid"
)

// # Service Layer

// Service validates progress writes and delegates storage to a [Repository].
// Whether a chapter exists in the catalogue is not checked here.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
Save stores the reader's position for a title.

Description: Validates the payload, issues a fresh UUIDv7 and replaces any
previous record for the same manga id.

Parameters:
  - context: context.Context
  - input: SaveInput (pageNo defaults to 0)

Returns:
  - *ReadingProgress: The stored record
  - error: VALIDATION_ERROR for a malformed payload, otherwise storage errors
*/
func (service *Service) Save(context context.Context, input SaveInput) (*ReadingProgress, error) {

	// Shape validation
	validator := &validate.Validator{}
	validator.Required(FieldMangaID, input.MangaID).MaxLen(FieldMangaID, input.MangaID, 255)
	validator.Present(FieldChapterNo, input.ChapterNo).NonNegative(FieldChapterNo, input.ChapterNo)
	validator.NonNegative(FieldPageNo, input.PageNo)
	validator.Required(FieldLastReadAt, input.LastReadAt).MaxLen(FieldLastReadAt, input.LastReadAt, 64)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	progress := &ReadingProgress{
		ID:         uuid.New(),
		MangaID:    input.MangaID,
		ChapterNo:  *input.ChapterNo,
		PageNo:     pointer.Fallback(input.PageNo, 0),
		LastReadAt: input.LastReadAt,
	}

	if err := service.repo.Upsert(context, progress); err != nil {
		return nil, err
	}

	ctxutil.LoggerOr(context, service.logger).DebugContext(context, "reading_progress_saved",
		slog.String("manga_id", progress.MangaID),
		slog.Int("chapter_no", progress.ChapterNo),
		slog.Int("page_no", progress.PageNo),
	)

	return progress, nil
}

// Get returns the saved progress for one title.
func (service *Service) Get(context context.Context, mangaID string) (*ReadingProgress, error) {
	return service.repo.Find(context, mangaID)
}

/*
GetBulk resolves progress for many titles at once.

Returns:
  - map[string]*ReadingProgress: Only ids with saved progress; never nil
  - error: VALIDATION_ERROR when more than MaxBulkIDs ids are requested
*/
func (service *Service) GetBulk(context context.Context, mangaIDs []string) (map[string]*ReadingProgress, error) {
	validator := &validate.Validator{}
	if err := validator.MaxItems(FieldMangaIDs, len(mangaIDs), MaxBulkIDs).Err(); err != nil {
		return nil, err
	}

	return service.repo.FindMany(context, mangaIDs)
}

// List returns every saved record.
func (service *Service) List(context context.Context) ([]*ReadingProgress, error) {
	return service.repo.List(context)
}

// Ready reports a 503 [apperr.AppError] when the backend does not answer.
func (service *Service) Ready(context context.Context) error {
	if err := service.repo.Ping(context); err != nil {
		return apperr.ServiceUnavailable("Reading progress storage is unavailable", err)
	}
	return nil
}
