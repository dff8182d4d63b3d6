// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/mangaread/internal/core/catalog"
)

func TestExtractGenres(t *testing.T) {
	tests := []struct {
		name       string
		attributes []string
		want       []string
	}{
		{"demographics stripped", []string{"Genres: Action, Manga, Shounen(B)"}, []string{"Action"}},
		{"order kept", []string{"Genres: Romance, Action, Fantasy"}, []string{"Romance", "Action", "Fantasy"}},
		{"first line wins", []string{"Genres: Drama", "Genres: Horror"}, []string{"Drama"}},
		{"empty tokens dropped", []string{"Genres: A,, B ,"}, []string{"A", "B"}},
		{"duplicates dropped", []string{"Genres: Action, Action"}, []string{"Action"}},
		{"all demographics", []string{"Genres: Manga, Josei(W), Seinen(M), Shoujo(G)"}, []string{}},
		{"absent", []string{"Authors: X"}, []string{}},
		{"nil", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ExtractGenres(tt.attributes))
		})
	}
}

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name       string
		attributes []string
		want       string
	}{
		{"plural prefix", []string{"Authors: Oda Eiichiro"}, "Oda Eiichiro"},
		{"singular prefix", []string{"Author:  Kubo Tite "}, "Kubo Tite"},
		{"first match", []string{"Genres: Action", "Author: A", "Authors: B"}, "A"},
		{"blank value", []string{"Authors:   "}, catalog.UnknownAuthor},
		{"absent", []string{"Rank: 1 total views"}, catalog.UnknownAuthor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ExtractAuthor(tt.attributes))
		})
	}
}

func TestExtractStatus(t *testing.T) {
	tests := []struct {
		name       string
		attributes []string
		want       catalog.Status
	}{
		{"completed", []string{"Original work: Completed"}, catalog.StatusCompleted},
		{"hiatus", []string{"Status - Original work: Hiatus"}, catalog.StatusHiatus},
		{"ongoing", []string{"Original work: Ongoing"}, catalog.StatusOngoing},
		{"unknown value", []string{"Original work: Cancelled"}, catalog.StatusOngoing},
		{"absent", nil, catalog.StatusOngoing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ExtractStatus(tt.attributes))
		})
	}
}

func TestParseViews(t *testing.T) {
	tests := []struct {
		line   string
		want   int64
		wantOK bool
	}{
		{"Rank: 1.2K total views", 1_200, true},
		{"Rank: 2M total views", 2_000_000, true},
		{"Rank: 500 total views", 500, true},
		{"Rank: 150K total views", 150_000, true},
		{"Rank: 1.2345K total views", 1_234, true},
		{"Rank: 7.5M total views", 7_500_000, true},
		{"Rank: 99999999999999999999M total views", 0, false},
		{"Rank: unknown", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			views, ok := catalog.ParseViews([]string{tt.line})
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, views)
		})
	}
}

/*
TestExtractViews_Fallback checks the range and stability of the fallback.
*/
func TestExtractViews_Fallback(t *testing.T) {
	for _, id := range []string{"a", "one-piece", "bleach", "", "x-y-z"} {
		views := catalog.ExtractViews(nil, id)
		assert.GreaterOrEqual(t, views, int64(catalog.FallbackViewsMin))
		assert.Less(t, views, int64(catalog.FallbackViewsMax))
		assert.Equal(t, views, catalog.ExtractViews([]string{"Rank: n/a"}, id))
	}

	assert.EqualValues(t, 1_200, catalog.ExtractViews([]string{"Rank: 1.2K total views"}, "a"))
}
