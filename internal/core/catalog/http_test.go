// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangaread/internal/core/catalog"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repository := newRepository(t, fstest.MapFS{
		"hit.json":    recordFile(t, "Hit", "Authors: Ace", "Genres: Action, Romance", "Rank: 150K total views"),
		"steady.json": recordFile(t, "Steady", "Authors: Bee", "Genres: Comedy", "Rank: 70K total views"),
		"niche.json":  recordFile(t, "Niche", "Authors: Cee", "Genres: Comedy", "Rank: 500 total views"),
		"school.json": recordFile(t, "School", "Genres: School Life", "Rank: 900 total views"),
	})
	handler := catalog.NewHandler(catalog.NewService(repository, discardLogger()))

	router := chi.NewRouter()
	router.Mount("/api/manga", handler.MangaRoutes())
	router.Mount("/api/categories", handler.CategoryRoutes())
	return router
}

func get(t *testing.T, router http.Handler, target string) (int, envelope) {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	var body envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func decodeIDs(t *testing.T, raw json.RawMessage) []string {
	t.Helper()

	var items []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &items))

	ids := []string{}
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestHandler_ListManga(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"all", "/api/manga", []string{"hit", "niche", "school", "steady"}},
		{"search", "/api/manga?search=comedy", []string{"niche", "steady"}},
		{"search wins", "/api/manga?search=ace&popular=true", []string{"hit"}},
		{"empty search", "/api/manga?search=", []string{"hit", "niche", "school", "steady"}},
		{"featured", "/api/manga?featured=true", []string{"hit"}},
		{"popular", "/api/manga?popular=true", []string{"hit", "steady"}},
		{"no match", "/api/manga?search=zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, router, tt.target)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, tt.want, decodeIDs(t, body.Data))
		})
	}
}

func TestHandler_NoMatchIsEmptyArray(t *testing.T) {
	_, body := get(t, newTestRouter(t), "/api/manga?search=zzz")
	assert.JSONEq(t, `[]`, string(body.Data))
}

/*
TestHandler_GetManga checks the canonical fields and the legacy aliases.
*/
func TestHandler_GetManga(t *testing.T) {
	router := newTestRouter(t)

	status, body := get(t, router, "/api/manga/hit")
	require.Equal(t, http.StatusOK, status)

	var manga map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &manga))
	assert.Equal(t, "Hit", manga["title"])
	assert.Equal(t, "Ace", manga["author"])
	assert.EqualValues(t, 150_000, manga["views"])
	assert.Equal(t, true, manga["isFeatured"])
	assert.Equal(t, manga["coverImage"], manga["cover_image"])
	assert.Equal(t, manga["description"], manga["summary"])

	status, body = get(t, router, "/api/manga/missing")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "Manga not found", body.Error)
}

func TestHandler_Categories(t *testing.T) {
	router := newTestRouter(t)

	status, body := get(t, router, "/api/categories")
	require.Equal(t, http.StatusOK, status)

	var categories []catalog.Category
	require.NoError(t, json.Unmarshal(body.Data, &categories))
	require.NotEmpty(t, categories)
	assert.Equal(t, "Comedy", categories[0].Name)
	assert.Equal(t, 2, categories[0].MangaCount)
}

func TestHandler_ListByCategory(t *testing.T) {
	router := newTestRouter(t)

	_, lower := get(t, router, "/api/categories/comedy")
	_, upper := get(t, router, "/api/categories/Comedy")
	assert.Equal(t, []string{"niche", "steady"}, decodeIDs(t, lower.Data))
	assert.Equal(t, decodeIDs(t, lower.Data), decodeIDs(t, upper.Data))

	// Escaped names resolve, unknown names are an empty list.
	_, escaped := get(t, router, "/api/categories/School%20Life")
	assert.Equal(t, []string{"school"}, decodeIDs(t, escaped.Data))

	status, unknown := get(t, router, "/api/categories/Horror")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(unknown.Data))
}

func TestHandler_CategoryInfo(t *testing.T) {
	router := newTestRouter(t)

	status, body := get(t, router, "/api/categories/romance/info")
	require.Equal(t, http.StatusOK, status)

	var category catalog.Category
	require.NoError(t, json.Unmarshal(body.Data, &category))
	assert.Equal(t, "Romance", category.Name)
	assert.Equal(t, 1, category.MangaCount)

	status, body = get(t, router, "/api/categories/horror/info")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Category not found", body.Error)
}
