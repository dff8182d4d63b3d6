// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/mangaread/pkg/slice"
)

// sourceExtension selects the record files inside the data directory.
const sourceExtension = ".json"

// FileRepository implements [Repository] over a directory of JSON records,
// one file per title, the filename stem being the manga id.
type FileRepository struct {
	source   fs.FS
	location string
	workers  int
	logger   *slog.Logger

	once    sync.Once
	loadErr error

	// Written once inside once.Do, read-only afterwards.
	manga      []*Manga
	byID       map[string]*Manga
	categories []*Category
}

// NewFileRepository creates a repository reading from source. location is
// only used in logs and errors. workers bounds concurrent file decoding.
func NewFileRepository(source fs.FS, location string, workers int, logger *slog.Logger) *FileRepository {
	if workers < 1 {
		workers = 1
	}
	return &FileRepository{
		source:     source,
		location:   location,
		workers:    workers,
		logger:     logger.With(slog.String("component", "catalog")),
		manga:      []*Manga{},
		byID:       map[string]*Manga{},
		categories: []*Category{},
	}
}

// # Loading

// Load implements [Repository]. The load runs detached from the caller's
// cancellation so that one aborted request cannot poison the catalogue.
func (repository *FileRepository) Load(ctx context.Context) error {
	repository.once.Do(func() {
		repository.loadErr = repository.load(context.WithoutCancel(ctx))
	})
	return repository.loadErr
}

// Err returns the result of the load without triggering one.
// It is nil before the first load.
func (repository *FileRepository) Err() error {
	return repository.loadErr
}

func (repository *FileRepository) load(ctx context.Context) error {
	entries, err := fs.ReadDir(repository.source, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrDataSourceNotFound, repository.location)
		} else {
			err = fmt.Errorf("%w: %s: %v", ErrDataSourceUnreadable, repository.location, err)
		}
		repository.logger.ErrorContext(ctx, "catalog_load_failed",
			slog.String("location", repository.location),
			slog.Any("error", err),
		)
		return err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), sourceExtension) {
			files = append(files, entry.Name())
		}
	}

	// Decode in parallel, keep directory order.
	decoded := make([]*Manga, len(files))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(repository.workers)

	for index, name := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			manga, err := repository.decode(name)
			if err != nil {
				repository.logger.WarnContext(groupCtx, "catalog_file_skipped",
					slog.String("file", name),
					slog.Any("error", err),
				)
				return nil
			}
			decoded[index] = manga
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return fmt.Errorf("catalog: load interrupted: %w", err)
	}

	manga := slice.Filter(decoded, func(m *Manga) bool { return m != nil })
	if len(manga) == 0 {
		err := fmt.Errorf("%w: %d candidate files in %s", ErrNoRecordsLoaded, len(files), repository.location)
		repository.logger.ErrorContext(ctx, "catalog_load_failed",
			slog.String("location", repository.location),
			slog.Any("error", err),
		)
		return err
	}

	repository.manga = manga
	repository.byID = slice.Index(manga, func(m *Manga) string { return m.ID })
	repository.categories = BuildCategories(manga)

	repository.logger.InfoContext(ctx, "catalog_loaded",
		slog.String("location", repository.location),
		slog.Int("manga", len(manga)),
		slog.Int("categories", len(repository.categories)),
		slog.Int("skipped", len(files)-len(manga)),
	)
	return nil
}

// decode reads and normalises one record file.
func (repository *FileRepository) decode(name string) (*Manga, error) {
	content, err := fs.ReadFile(repository.source, name)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var raw RawRecord
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return Normalize(raw, strings.TrimSuffix(path.Base(name), sourceExtension)), nil
}

// # Reads

// FindByID implements [Repository].
func (repository *FileRepository) FindByID(ctx context.Context, id string) (*Manga, error) {
	_ = repository.Load(ctx)

	manga, ok := repository.byID[id]
	if !ok {
		return nil, ErrMangaNotFound
	}
	return manga, nil
}

// List implements [Repository].
func (repository *FileRepository) List(ctx context.Context) []*Manga {
	_ = repository.Load(ctx)
	return slices.Clone(repository.manga)
}

// ListByCategory implements [Repository].
func (repository *FileRepository) ListByCategory(ctx context.Context, name string) []*Manga {
	_ = repository.Load(ctx)
	return slice.Filter(repository.manga, func(m *Manga) bool {
		return m.HasGenre(name)
	})
}

// Search implements [Repository].
func (repository *FileRepository) Search(ctx context.Context, query string) []*Manga {
	_ = repository.Load(ctx)

	needle := strings.ToLower(query)
	contains := func(haystack string) bool {
		return strings.Contains(strings.ToLower(haystack), needle)
	}

	return slice.Filter(repository.manga, func(m *Manga) bool {
		return contains(m.Title) || contains(m.Author) || slices.ContainsFunc(m.Genre, contains)
	})
}

// Featured implements [Repository].
func (repository *FileRepository) Featured(ctx context.Context) []*Manga {
	_ = repository.Load(ctx)

	featured := slice.Filter(repository.manga, func(m *Manga) bool { return m.IsFeatured })
	return featured[:min(len(featured), FeaturedLimit)]
}

// Popular implements [Repository].
func (repository *FileRepository) Popular(ctx context.Context) []*Manga {
	_ = repository.Load(ctx)

	popular := slice.Filter(repository.manga, func(m *Manga) bool { return m.IsPopular })
	slices.SortStableFunc(popular, func(a, b *Manga) int {
		switch {
		case a.Views > b.Views:
			return -1
		case a.Views < b.Views:
			return 1
		}
		return 0
	})
	return popular[:min(len(popular), PopularLimit)]
}

// Categories implements [Repository].
func (repository *FileRepository) Categories(ctx context.Context) []*Category {
	_ = repository.Load(ctx)
	return slices.Clone(repository.categories)
}

// FindCategory implements [Repository].
func (repository *FileRepository) FindCategory(ctx context.Context, name string) (*Category, error) {
	_ = repository.Load(ctx)

	for _, category := range repository.categories {
		if equalFold(category.Name, name) || category.Slug == name {
			return category, nil
		}
	}
	return nil, ErrCategoryNotFound
}
