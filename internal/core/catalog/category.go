// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/taibuivan/mangaread/pkg/slug"
)

// categoryDescriptions holds curated blurbs for well-known genres.
var categoryDescriptions = map[string]string{
	"Action":       "High-octane adventures filled with intense battles, martial arts, and epic confrontations.",
	"Romance":      "Heartwarming stories of love, relationships, and emotional journeys.",
	"Fantasy":      "Magical worlds filled with mystical creatures, ancient powers, and epic quests.",
	"Horror":       "Spine-chilling tales that delve into the darkness and supernatural terrors.",
	"Comedy":       "Hilarious stories that bring joy and laughter through clever humor.",
	"Drama":        "Emotionally compelling stories exploring complex human relationships.",
	"Sci-Fi":       "Futuristic tales exploring advanced technology and space exploration.",
	"Mystery":      "Intriguing puzzles and suspenseful investigations.",
	"Supernatural": "Stories involving supernatural elements and otherworldly phenomena.",
	"School Life":  "Stories set in academic environments exploring student life.",
	"Mature":       "Content intended for mature audiences with complex themes.",
	"Smut":         "Adult content with explicit romantic and intimate scenes.",
	"Harem":        "Stories featuring one character surrounded by multiple love interests.",
	"Parody":       "Satirical takes on popular genres, series, or cultural phenomena.",
}

// CategoryDescription returns the curated blurb for genre or a generated one.
func CategoryDescription(genre string) string {
	if description, ok := categoryDescriptions[genre]; ok {
		return description
	}
	return fmt.Sprintf("Explore exciting %s manga with compelling stories and characters.", strings.ToLower(genre))
}

// BuildCategories aggregates genre counts over manga.
//
// IDs are assigned "1", "2", ... in genre first-seen order. The result is
// sorted by MangaCount descending; ties keep first-seen order.
func BuildCategories(manga []*Manga) []*Category {
	categories := make([]*Category, 0)
	byName := make(map[string]*Category)

	for _, entry := range manga {
		for _, genre := range entry.Genre {
			category, ok := byName[genre]
			if !ok {
				category = &Category{
					ID:          strconv.Itoa(len(categories) + 1),
					Name:        genre,
					Slug:        slug.From(genre),
					Description: CategoryDescription(genre),
				}
				byName[genre] = category
				categories = append(categories, category)
			}
			category.MangaCount++
		}
	}

	slices.SortStableFunc(categories, func(a, b *Category) int {
		return b.MangaCount - a.MangaCount
	})
	return categories
}
