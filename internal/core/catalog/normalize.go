// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"slices"
	"strings"
)

// Normalize turns a scraped record into a [Manga] with the given id.
//
// It never fails: missing attributes resolve to their documented defaults
// and nil slices become empty ones so the JSON contract never carries null.
func Normalize(raw RawRecord, id string) *Manga {
	genres := ExtractGenres(raw.Attributes)
	views := ExtractViews(raw.Attributes, id)

	chapters := make([]Chapter, 0, len(raw.Chapters))
	for _, chapter := range raw.Chapters {
		chapters = append(chapters, Chapter{
			ChapterNo: chapter.ChapterNo,
			Title:     chapter.Title,
			URL:       chapter.URL,
			Images:    nonNil(chapter.Images),
			PageCount: chapter.PageCount,
		})
	}

	return &Manga{
		ID:          id,
		Title:       raw.Title,
		URL:         raw.URL,
		CoverImage:  raw.CoverImage,
		Attributes:  nonNil(raw.Attributes),
		Description: raw.Summary,
		Chapters:    chapters,
		Author:      ExtractAuthor(raw.Attributes),
		Genre:       genres,
		Status:      ExtractStatus(raw.Attributes),
		Views:       views,
		Rating:      syntheticRating(id),
		IsPopular:   IsPopular(views),
		IsFeatured:  IsFeatured(views, genres),
	}
}

// IsPopular reports whether views exceed [PopularViewThreshold].
func IsPopular(views int64) bool {
	return views > PopularViewThreshold
}

// IsFeatured reports whether views exceed [FeaturedViewThreshold] and the
// genres include Action, Romance or Fantasy. Genre matching is exact.
func IsFeatured(views int64, genres []string) bool {
	if views <= FeaturedViewThreshold {
		return false
	}
	return slices.ContainsFunc(genres, func(genre string) bool {
		return slices.Contains(featuredGenres, genre)
	})
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return slices.Clone(values)
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
