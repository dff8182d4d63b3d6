// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/mangaread/internal/platform/apperr"
)

// # Service Layer

// Service is the read façade of the catalogue used by the HTTP handler,
// the sitemap and the operator CLI.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] over repo.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListQuery selects which slice of the catalogue [Service.ListManga] returns.
// Search wins over Featured, Featured over Popular.
type ListQuery struct {
	Search   string
	HasQuery bool
	Featured bool
	Popular  bool
}

/*
Load performs the one-time catalogue load.

Description: Failures are logged by the repository and returned here so the
entry point can decide whether to continue serving an empty catalogue.

Parameters:
  - context: context.Context

Returns:
  - error: ErrDataSourceNotFound, ErrDataSourceUnreadable or ErrNoRecordsLoaded
*/
func (service *Service) Load(context context.Context) error {
	return service.repo.Load(context)
}

// Ready reports a 503 [apperr.AppError] while the catalogue is unusable.
func (service *Service) Ready(context context.Context) error {
	if err := service.repo.Load(context); err != nil {
		return apperr.ServiceUnavailable("Catalogue is not loaded", err)
	}
	return nil
}

// # Manga Lookups

// GetManga fetches a single title by its id.
func (service *Service) GetManga(context context.Context, id string) (*Manga, error) {
	return service.repo.FindByID(context, id)
}

/*
ListManga resolves the manga listing endpoint.

Parameters:
  - context: context.Context
  - query: ListQuery (at most one selector applies)

Returns:
  - []*Manga: Never nil
*/
func (service *Service) ListManga(context context.Context, query ListQuery) []*Manga {
	switch {
	case query.HasQuery:
		return service.repo.Search(context, query.Search)
	case query.Featured:
		return service.repo.Featured(context)
	case query.Popular:
		return service.repo.Popular(context)
	}
	return service.repo.List(context)
}

// Search returns titles matching query on title, author or genre.
func (service *Service) Search(context context.Context, query string) []*Manga {
	return service.repo.Search(context, query)
}

// # Categories

// ListCategories returns every category, largest first.
func (service *Service) ListCategories(context context.Context) []*Category {
	return service.repo.Categories(context)
}

// ListByCategory returns the titles of a genre. An unknown genre yields an empty slice.
func (service *Service) ListByCategory(context context.Context, name string) []*Manga {
	return service.repo.ListByCategory(context, name)
}

// GetCategory returns one category by name or slug.
func (service *Service) GetCategory(context context.Context, name string) (*Category, error) {
	return service.repo.FindCategory(context, name)
}
