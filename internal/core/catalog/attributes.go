// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Attribute line prefixes as they appear in scraped records.
const (
	prefixGenres       = "Genres:"
	prefixAuthors      = "Authors:"
	prefixAuthor       = "Author:"
	prefixRank         = "Rank:"
	markerOriginalWork = "Original work:"
)

// demographicTags are scraped alongside genres but are not genres.
var demographicTags = map[string]struct{}{
	"Manga":      {},
	"Josei(W)":   {},
	"Seinen(M)":  {},
	"Shoujo(G)":  {},
	"Shounen(B)": {},
}

// viewsPattern matches "1.2K total views", "2M total views", "500 total views".
var viewsPattern = regexp.MustCompile(`(\d+)(?:\.(\d+))?([KM]?)\s+total views`)

// firstWithPrefix returns the first attribute starting with one of prefixes,
// along with the matched prefix.
func firstWithPrefix(attributes []string, prefixes ...string) (string, string, bool) {
	for _, attribute := range attributes {
		for _, prefix := range prefixes {
			if strings.HasPrefix(attribute, prefix) {
				return attribute, prefix, true
			}
		}
	}
	return "", "", false
}

// ExtractGenres returns the genres of the first "Genres:" line in source
// order. Demographic tags, empty tokens and repeats are dropped.
func ExtractGenres(attributes []string) []string {
	line, prefix, ok := firstWithPrefix(attributes, prefixGenres)
	if !ok {
		return []string{}
	}

	genres := []string{}
	seen := make(map[string]struct{})
	for _, token := range strings.Split(strings.TrimPrefix(line, prefix), ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if _, excluded := demographicTags[token]; excluded {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		genres = append(genres, token)
	}
	return genres
}

// ExtractAuthor returns the value of the first "Authors:"/"Author:" line,
// or [UnknownAuthor] when absent or blank.
func ExtractAuthor(attributes []string) string {
	line, prefix, ok := firstWithPrefix(attributes, prefixAuthors, prefixAuthor)
	if !ok {
		return UnknownAuthor
	}

	author := strings.TrimSpace(strings.TrimPrefix(line, prefix))
	if author == "" {
		return UnknownAuthor
	}
	return author
}

// ExtractStatus classifies the first line mentioning "Original work:".
func ExtractStatus(attributes []string) Status {
	for _, attribute := range attributes {
		if !strings.Contains(attribute, markerOriginalWork) {
			continue
		}
		switch {
		case strings.Contains(attribute, "Completed"):
			return StatusCompleted
		case strings.Contains(attribute, "Hiatus"):
			return StatusHiatus
		default:
			return StatusOngoing
		}
	}
	return StatusOngoing
}

// ParseViews reads the view count from the first "Rank:" line.
// ok is false when the line is missing or does not match the pattern.
func ParseViews(attributes []string) (views int64, ok bool) {
	line, _, found := firstWithPrefix(attributes, prefixRank)
	if !found {
		return 0, false
	}

	match := viewsPattern.FindStringSubmatch(line)
	if match == nil {
		return 0, false
	}

	return scaleViews(match[1], match[2], match[3])
}

// ExtractViews is [ParseViews] with the deterministic per-id fallback in
// [FallbackViewsMin, FallbackViewsMax).
func ExtractViews(attributes []string, id string) int64 {
	if views, ok := ParseViews(attributes); ok {
		return views
	}
	return fallbackViews(id)
}

// scaleViews computes floor((whole.fraction) * multiplier) in integer
// arithmetic so "1.2K" is exactly 1200.
func scaleViews(whole, fraction, suffix string) (int64, bool) {
	var multiplier int64 = 1
	switch suffix {
	case "K":
		multiplier = 1_000
	case "M":
		multiplier = 1_000_000
	}

	wholeValue, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || wholeValue > math.MaxInt64/multiplier-1 {
		return 0, false
	}
	views := wholeValue * multiplier

	// Digits beyond the multiplier's precision cannot change the floor.
	if len(fraction) > 9 {
		fraction = fraction[:9]
	}
	if fraction != "" {
		fractionValue, err := strconv.ParseInt(fraction, 10, 64)
		if err != nil {
			return 0, false
		}
		scale := int64(1)
		for range len(fraction) {
			scale *= 10
		}
		views += fractionValue * multiplier / scale
	}

	return views, true
}
