// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/mangaread/internal/core/catalog"
	"github.com/taibuivan/mangaread/pkg/slice"
)

var (
	catalogAll      = catalog.ListQuery{}
	catalogFeatured = catalog.ListQuery{Featured: true}
	catalogPopular  = catalog.ListQuery{Popular: true}
)

// # Listing Commands

func newListCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every title in load order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.out.PrintMangaTable(state.service.ListManga(cmd.Context(), catalogAll))
		},
	}
}

func newSearchCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find titles by title, author or genre",
		Long:  `Case-insensitive substring search. Words are joined with spaces before matching.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.out.PrintMangaTable(state.service.Search(cmd.Context(), strings.Join(args, " ")))
		},
	}
}

func newFeaturedCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "Show the homepage carousel selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.out.PrintMangaTable(state.service.ListManga(cmd.Context(), catalogFeatured))
		},
	}
}

func newPopularCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "popular",
		Short: "Show popular titles, most viewed first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.out.PrintMangaTable(state.service.ListManga(cmd.Context(), catalogPopular))
		},
	}
}

// # Category Commands

func newCategoriesCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List genres with their title counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.out.PrintCategoryTable(state.service.ListCategories(cmd.Context()))
		},
	}
}

func newCategoryCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "category <name>",
		Short: "Describe one genre and list its titles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := state.service.GetCategory(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("category %q: %w", args[0], err)
			}

			state.out.PrintHeading(category.Name)
			state.out.PrintDetail("Slug", category.Slug)
			state.out.PrintDetail("Titles", strconv.Itoa(category.MangaCount))
			state.out.PrintDetail("About", category.Description)
			fmt.Fprintln(state.out.Writer)

			return state.out.PrintMangaTable(state.service.ListByCategory(cmd.Context(), category.Name))
		},
	}
}

// # Detail Commands

func newShowCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one title and its chapters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manga, err := state.service.GetManga(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("manga %q: %w", args[0], err)
			}

			out := state.out
			out.PrintHeading(manga.Title)
			out.PrintDetail("ID", manga.ID)
			out.PrintDetail("Author", manga.Author)
			out.PrintDetail("Status", string(manga.Status))
			out.PrintDetail("Genres", strings.Join(manga.Genre, ", "))
			out.PrintDetail("Views", strconv.FormatInt(manga.Views, 10))
			out.PrintDetail("Rating", strconv.FormatFloat(manga.Rating, 'f', 1, 64))
			out.PrintDetail("Source", manga.URL)
			if manga.Description != "" {
				fmt.Fprintln(out.Writer)
				out.MutedStyle.Fprintln(out.Writer, manga.Description)
			}
			fmt.Fprintln(out.Writer)

			if len(manga.Chapters) == 0 {
				out.MutedStyle.Fprintln(out.Writer, "No chapters.")
				return nil
			}

			rows := slice.Map(manga.Chapters, func(chapter catalog.Chapter) []string {
				return []string{
					strconv.Itoa(chapter.ChapterNo),
					chapter.Title,
					strconv.Itoa(chapter.PageCount),
					strconv.Itoa(len(chapter.Images)),
				}
			})
			return out.PrintTable([]string{"No", "Title", "Pages", "Images"}, rows)
		},
	}
}

func newValidateCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the catalogue and report what was read",
		Long:  `Exits non-zero when the directory is missing, unreadable or holds no decodable record.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manga := state.service.ListManga(cmd.Context(), catalogAll)
			categories := state.service.ListCategories(cmd.Context())

			chapters := slice.Reduce(manga, 0, func(total int, entry *catalog.Manga) int {
				return total + len(entry.Chapters)
			})

			state.out.SuccessStyle.Fprintf(state.out.Writer, "Catalogue OK: %s\n", state.dataDir)
			state.out.PrintDetail("Titles", strconv.Itoa(len(manga)))
			state.out.PrintDetail("Categories", strconv.Itoa(len(categories)))
			state.out.PrintDetail("Chapters", strconv.Itoa(chapters))
			return nil
		},
	}
}
