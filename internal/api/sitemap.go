// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/mangaread/internal/core/catalog"
	"github.com/taibuivan/mangaread/internal/platform/ctxutil"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// staticPages are the frontend routes that exist regardless of content.
var staticPages = []sitemapURL{
	{Loc: "/", ChangeFreq: "daily", Priority: "1.0"},
	{Loc: "/categories", ChangeFreq: "weekly", Priority: "0.9"},
	{Loc: "/authors", ChangeFreq: "weekly", Priority: "0.8"},
	{Loc: "/contact", ChangeFreq: "monthly", Priority: "0.7"},
}

// SitemapHandler renders /sitemap.xml from the catalogue.
type SitemapHandler struct {
	catalog *catalog.Service
	baseURL string
	now     func() time.Time
}

// NewSitemapHandler creates the handler. An empty baseURL derives the
// origin from each request.
func NewSitemapHandler(service *catalog.Service, baseURL string) *SitemapHandler {
	return &SitemapHandler{
		catalog: service,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		now:     time.Now,
	}
}

// ServeHTTP handles GET /sitemap.xml.
func (handler *SitemapHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	base := handler.origin(request)
	today := handler.now().UTC().Format(time.DateOnly)

	manga := handler.catalog.ListManga(ctx, catalog.ListQuery{})
	categories := handler.catalog.ListCategories(ctx)

	set := urlSet{Xmlns: sitemapNamespace}
	add := func(path, changeFreq, priority string) {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + path,
			LastMod:    today,
			ChangeFreq: changeFreq,
			Priority:   priority,
		})
	}

	for _, page := range staticPages {
		add(page.Loc, page.ChangeFreq, page.Priority)
	}
	for _, category := range categories {
		add("/categories/"+url.PathEscape(strings.ToLower(category.Name)), "weekly", "0.8")
	}
	for _, entry := range manga {
		mangaPath := "/manga/" + url.PathEscape(entry.ID)
		add(mangaPath, "weekly", "0.9")
		for _, chapter := range entry.Chapters {
			add(mangaPath+"/chapter/"+strconv.Itoa(chapter.ChapterNo), "monthly", "0.7")
		}
	}

	writer.Header().Set("Content-Type", "application/xml; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte(xml.Header))

	encoder := xml.NewEncoder(writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(set); err != nil {
		ctxutil.Logger(ctx).ErrorContext(ctx, "sitemap_encode_failed", slog.Any("error", err))
		return
	}

	ctxutil.Logger(ctx).DebugContext(ctx, "sitemap_generated",
		slog.Int("manga", len(manga)),
		slog.Int("categories", len(categories)),
	)
}

// origin returns the configured base URL or the scheme and host of request.
func (handler *SitemapHandler) origin(request *http.Request) string {
	if handler.baseURL != "" {
		return handler.baseURL
	}

	scheme := "http"
	if request.TLS != nil {
		scheme = "https"
	}
	if forwarded := request.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return scheme + "://" + request.Host
}
