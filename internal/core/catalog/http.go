// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/mangaread/internal/platform/request"
	"github.com/taibuivan/mangaread/internal/platform/respond"
	"github.com/taibuivan/mangaread/pkg/convert"
	"github.com/taibuivan/mangaread/pkg/slice"
)

// # Handler Implementation

// Handler exposes the catalogue over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalogue [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// MangaRoutes returns the router mounted at /api/manga.
func (handler *Handler) MangaRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listManga)
	router.Get("/{id}", handler.getManga)
	return router
}

// CategoryRoutes returns the router mounted at /api/categories.
func (handler *Handler) CategoryRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listCategories)
	router.Get("/{name}", handler.listByCategory)
	router.Get("/{name}/info", handler.getCategory)
	return router
}

// # Serialization

// mangaView adds the snake_case aliases older clients still read.
type mangaView struct {
	*Manga
	CoverImageAlias string `json:"cover_image"`
	Summary         string `json:"summary"`
}

func toView(manga *Manga) mangaView {
	return mangaView{
		Manga:           manga,
		CoverImageAlias: manga.CoverImage,
		Summary:         manga.Description,
	}
}

func toViews(manga []*Manga) []mangaView {
	return slice.Map(manga, toView)
}

// # Manga Endpoints

/*
GET /api/manga.

Request:
  - search: string (substring over title, author and genres; takes precedence)
  - featured: bool
  - popular: bool

Response:
  - 200: []Manga
*/
func (handler *Handler) listManga(writer http.ResponseWriter, request *http.Request) {
	params := request.URL.Query()

	query := ListQuery{
		Search:   params.Get("search"),
		HasQuery: params.Has("search"),
		Featured: convert.ToBool(params.Get("featured")),
		Popular:  convert.ToBool(params.Get("popular")),
	}

	respond.OK(writer, toViews(handler.service.ListManga(request.Context(), query)))
}

/*
GET /api/manga/{id}.

Response:
  - 200: Manga
  - 404: NOT_FOUND
*/
func (handler *Handler) getManga(writer http.ResponseWriter, request *http.Request) {
	manga, err := handler.service.GetManga(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toView(manga))
}

// # Category Endpoints

// GET /api/categories.
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.ListCategories(request.Context()))
}

// GET /api/categories/{name}. Unknown names yield an empty list, not a 404.
func (handler *Handler) listByCategory(writer http.ResponseWriter, request *http.Request) {
	name := requestutil.Param(request, "name")
	respond.OK(writer, toViews(handler.service.ListByCategory(request.Context(), name)))
}

/*
GET /api/categories/{name}/info.

Response:
  - 200: Category
  - 404: NOT_FOUND
*/
func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	category, err := handler.service.GetCategory(request.Context(), requestutil.Param(request, "name"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}
