// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// Synthetic values are a pure function of the manga id: reloading the same
// data directory always yields the same catalogue.
const (
	// FallbackViewsMin and FallbackViewsMax bound views for titles without a rank line.
	FallbackViewsMin = 1_000
	FallbackViewsMax = 101_000

	// RatingMin and RatingMax bound the placeholder rating, in 0.1 steps.
	RatingMin = 7.0
	RatingMax = 10.0
)

// PCG stream selectors, so views and rating are independent draws.
const (
	streamViews  uint64 = 0x76696577 // "view"
	streamRating uint64 = 0x72617465 // "rate"
)

func seeded(id string, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(xxhash.Sum64String(id), stream))
}

// fallbackViews returns a stable view count in [FallbackViewsMin, FallbackViewsMax).
func fallbackViews(id string) int64 {
	return FallbackViewsMin + seeded(id, streamViews).Int64N(FallbackViewsMax-FallbackViewsMin)
}

// syntheticRating returns a stable rating in [RatingMin, RatingMax) with one decimal.
// It is not derived from any reader signal.
func syntheticRating(id string) float64 {
	tenths := seeded(id, streamRating).IntN(int((RatingMax - RatingMin) * 10))
	return float64(int(RatingMin*10)+tenths) / 10
}
