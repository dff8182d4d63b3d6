// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/taibuivan/mangaread/internal/core/catalog"
	"github.com/taibuivan/mangaread/pkg/slice"
)

// Formatter renders catalogue data for a terminal.
type Formatter struct {
	Writer io.Writer

	TitleStyle   *color.Color
	LabelStyle   *color.Color
	MutedStyle   *color.Color
	SuccessStyle *color.Color
}

// NewFormatter creates a formatter writing to w. With colors disabled every
// style prints plain text.
func NewFormatter(w io.Writer, colors bool) *Formatter {
	formatter := &Formatter{
		Writer:       w,
		TitleStyle:   color.New(color.Bold, color.FgCyan),
		LabelStyle:   color.New(color.FgYellow),
		MutedStyle:   color.New(color.FgHiBlack),
		SuccessStyle: color.New(color.FgGreen),
	}
	if !colors {
		for _, style := range []*color.Color{formatter.TitleStyle, formatter.LabelStyle, formatter.MutedStyle, formatter.SuccessStyle} {
			style.DisableColor()
		}
	}
	return formatter
}

// PrintTable prints rows under headers with left-aligned cells.
func (f *Formatter) PrintTable(headers []string, rows [][]string) error {
	table := tablewriter.NewTable(f.Writer)
	table.Configure(func(config *tablewriter.Config) {
		config.Header.Alignment.Global = tw.AlignLeft
		config.Row.Alignment.Global = tw.AlignLeft
	})

	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("table rows: %w", err)
	}
	return table.Render()
}

// PrintMangaTable lists titles one per row. An empty list prints a notice
// instead of an empty table.
func (f *Formatter) PrintMangaTable(manga []*catalog.Manga) error {
	if len(manga) == 0 {
		f.MutedStyle.Fprintln(f.Writer, "No titles found.")
		return nil
	}

	rows := slice.Map(manga, func(entry *catalog.Manga) []string {
		return []string{
			entry.ID,
			entry.Title,
			entry.Author,
			string(entry.Status),
			strconv.Itoa(len(entry.Chapters)),
			strconv.FormatInt(entry.Views, 10),
			strconv.FormatFloat(entry.Rating, 'f', 1, 64),
		}
	})
	return f.PrintTable([]string{"ID", "Title", "Author", "Status", "Chapters", "Views", "Rating"}, rows)
}

// PrintCategoryTable lists categories, largest first as stored.
func (f *Formatter) PrintCategoryTable(categories []*catalog.Category) error {
	if len(categories) == 0 {
		f.MutedStyle.Fprintln(f.Writer, "No categories found.")
		return nil
	}

	rows := slice.Map(categories, func(category *catalog.Category) []string {
		return []string{category.Name, category.Slug, strconv.Itoa(category.MangaCount), category.Description}
	})
	return f.PrintTable([]string{"Name", "Slug", "Titles", "Description"}, rows)
}

// PrintDetail prints one "label: value" line.
func (f *Formatter) PrintDetail(label, value string) {
	fmt.Fprintf(f.Writer, "%s %s\n", f.LabelStyle.Sprintf("%-12s", label+":"), value)
}

// PrintHeading prints a bold section title.
func (f *Formatter) PrintHeading(text string) {
	f.TitleStyle.Fprintln(f.Writer, text)
}
