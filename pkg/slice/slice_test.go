// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangaread/pkg/slice"
)

func TestFilter_NeverNil(t *testing.T) {
	isLong := func(s string) bool { return len(s) > 3 }

	assert.Equal(t, []string{"naruto", "bleach"}, slice.Filter([]string{"naruto", "one", "bleach"}, isLong))

	for _, input := range [][]string{nil, {}, {"a", "b"}} {
		result := slice.Filter(input, isLong)
		require.NotNil(t, result)

		encoded, err := json.Marshal(result)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(encoded))
	}
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{}, slice.Map[string, string](nil, strings.ToUpper))
	assert.Equal(t, []string{"A", "B"}, slice.Map([]string{"a", "b"}, strings.ToUpper))
}

func TestReduce(t *testing.T) {
	total := slice.Reduce([]int{1, 2, 3}, 10, func(acc, v int) int { return acc + v })
	assert.Equal(t, 16, total)
}

func TestIndex_LastWins(t *testing.T) {
	type pair struct{ key, value string }

	index := slice.Index([]pair{{"a", "1"}, {"b", "2"}, {"a", "3"}}, func(p pair) string { return p.key })

	assert.Len(t, index, 2)
	assert.Equal(t, "3", index["a"].value)
}
