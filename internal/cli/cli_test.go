// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mangaread/internal/cli"
	"github.com/taibuivan/mangaread/internal/core/catalog"
)

const soloLeveling = `{
	"title": "Solo Leveling",
	"url": "https://example.com/solo-leveling",
	"coverImage": "https://example.com/solo-leveling.jpg",
	"attributes": ["Authors: Chugong", "Genres: Action, Fantasy", "2.5M total views"],
	"summary": "A hunter levels up alone.",
	"chapters": [
		{"chapter_no": 1, "title": "Chapter 1", "images": ["a.jpg", "b.jpg"], "page_count": 2}
	]
}`

const cafeDays = `{
	"title": "Cafe Days",
	"attributes": ["Genres: Slice of Life"],
	"chapters": []
}`

func dataDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solo-leveling.json"), []byte(soloLeveling), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cafe-days.json"), []byte(cafeDays), 0o644))
	return dir
}

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	command := cli.NewRootCommand()
	command.SetOut(&out)
	command.SetErr(&errOut)
	command.SetArgs(append([]string{"--data-dir", dir, "--no-color"}, args...))

	err := command.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, dataDir(t), "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Solo Leveling")
	assert.Contains(t, out, "Chugong")
	assert.Contains(t, out, "Cafe Days")
	assert.Contains(t, out, catalog.UnknownAuthor)
}

func TestSearch(t *testing.T) {
	dir := dataDir(t)

	out, err := run(t, dir, "search", "slice", "of")
	require.NoError(t, err)
	assert.Contains(t, out, "Cafe Days")
	assert.NotContains(t, out, "Solo Leveling")

	out, err = run(t, dir, "search", "nothing-matches")
	require.NoError(t, err)
	assert.Contains(t, out, "No titles found.")
}

func TestCategories(t *testing.T) {
	dir := dataDir(t)

	out, err := run(t, dir, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "Action")
	assert.Contains(t, out, "slice-of-life")

	out, err = run(t, dir, "category", "fantasy")
	require.NoError(t, err)
	assert.Contains(t, out, "Fantasy")
	assert.Contains(t, out, "Solo Leveling")
	assert.NotContains(t, out, "Cafe Days")

	_, err = run(t, dir, "category", "horror")
	assert.ErrorIs(t, err, catalog.ErrCategoryNotFound)
}

func TestShow(t *testing.T) {
	dir := dataDir(t)

	out, err := run(t, dir, "show", "solo-leveling")
	require.NoError(t, err)
	assert.Contains(t, out, "Solo Leveling")
	assert.Contains(t, out, "Action, Fantasy")
	assert.Contains(t, out, "A hunter levels up alone.")
	assert.Contains(t, out, "Chapter 1")

	out, err = run(t, dir, "show", "cafe-days")
	require.NoError(t, err)
	assert.Contains(t, out, "No chapters.")

	_, err = run(t, dir, "show", "missing")
	assert.ErrorIs(t, err, catalog.ErrMangaNotFound)
}

func TestValidate(t *testing.T) {
	out, err := run(t, dataDir(t), "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalogue OK")
	assert.Regexp(t, `Titles:\s+2`, out)
	assert.Regexp(t, `Chapters:\s+1`, out)

	_, err = run(t, filepath.Join(t.TempDir(), "absent"), "validate")
	assert.ErrorIs(t, err, catalog.ErrDataSourceNotFound)

	empty := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(empty, "broken.json"), []byte("{"), 0o644))
	_, err = run(t, empty, "validate")
	assert.ErrorIs(t, err, catalog.ErrNoRecordsLoaded)
}
