// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/mangaread/internal/platform/request"
	"github.com/taibuivan/mangaread/internal/platform/respond"
	"github.com/taibuivan/mangaread/internal/platform/validate"
)

// # Handler Implementation

// Handler exposes reading progress over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new progress [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/reading-progress.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.list)
	router.Post("/", handler.save)
	router.Post("/bulk", handler.bulk)
	router.Get("/{mangaId}", handler.get)
	return router
}

// bulkRequest keeps mangaIds raw so that a non-array value is reported as a
// validation error instead of a generic decoding failure.
type bulkRequest struct {
	MangaIDs json.RawMessage `json:"mangaIds"`
}

// # Progress Endpoints

// GET /api/reading-progress.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	records, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, records)
}

/*
POST /api/reading-progress.

Request:
  - mangaId: string
  - chapterNo: int
  - pageNo: int (optional, default 0)
  - lastReadAt: string

Response:
  - 200: ReadingProgress
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	progress, err := handler.service.Save(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, progress)
}

/*
POST /api/reading-progress/bulk.

Request:
  - mangaIds: []string

Response:
  - 200: map[mangaId]ReadingProgress (ids without progress are omitted)
  - 400: VALIDATION_ERROR when mangaIds is not an array of strings
*/
func (handler *Handler) bulk(writer http.ResponseWriter, request *http.Request) {
	var body bulkRequest
	if err := requestutil.DecodeJSON(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	raw := bytes.TrimSpace(body.MangaIDs)
	var mangaIDs []string
	if len(raw) == 0 || raw[0] != '[' || json.Unmarshal(raw, &mangaIDs) != nil {
		respond.Error(writer, request, validate.FieldErr(FieldMangaIDs, "Must be an array of strings"))
		return
	}

	records, err := handler.service.GetBulk(request.Context(), mangaIDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, records)
}

/*
GET /api/reading-progress/{mangaId}.

Response:
  - 200: ReadingProgress
  - 404: NOT_FOUND
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	progress, err := handler.service.Get(request.Context(), requestutil.Param(request, "mangaId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, progress)
}
