// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"movie-manager/internal/movie"

	"github.com/spf13/cobra"
)

var (
	listToWatch bool
	listTable   bool
	addWatched  bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List movies",
	Long: `Lists every movie numbered by its position in the list, which is the
number 'mm delete' expects. With --to-watch only unwatched movies are shown,
numbered among themselves, which is the number 'mm watch' expects.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := movie.OpenLibrary(dataPath)
		if err != nil {
			return err
		}

		var rows []listRow
		if listToWatch {
			for _, e := range lib.ListUnwatched() {
				rows = append(rows, listRow{position: e.Position, movie: e.Movie})
			}
		} else {
			for _, e := range lib.List() {
				rows = append(rows, listRow{position: e.Position, movie: e.Movie})
			}
		}

		out := cmd.OutOrStdout()
		if len(rows) == 0 {
			if listToWatch {
				fmt.Fprintln(out, "No movies in 'To Watch' list.")
			} else {
				fmt.Fprintln(out, "No movies yet.")
			}
			return nil
		}

		if listTable {
			fmt.Fprintln(out, renderMovieTable(rows))
			return nil
		}
		printRows(out, rows)
		return nil
	},
}

type listRow struct {
	position int
	movie    movie.Movie
}

func printRows(out io.Writer, rows []listRow) {
	for _, r := range rows {
		statusColor := toWatchColor
		if r.movie.Watched {
			statusColor = watchedColor
		}
		fmt.Fprintf(out, "%d. %s [%s]\n", r.position, titleColor.Sprint(r.movie.Title), statusColor.Sprint(r.movie.Status()))
	}
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a movie to the 'To Watch' list (or 'Watched' with --watched)",
	Long: `Adds a movie at the end of the list. Words are joined with single spaces,
so quoting the title is optional. Titles cannot contain commas.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLockedLibrary()
		if err != nil {
			return err
		}

		added, err := lib.Add(strings.Join(args, " "), addWatched)
		if err != nil {
			return err
		}
		successColor.Fprintf(cmd.OutOrStdout(), "Added %q to '%s'.\n", added.Title, added.Status())
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch <number>",
	Short: "Mark a movie from the 'To Watch' list as watched",
	Long: `Marks a movie as watched. The number counts only unwatched movies, as
shown by 'mm list --to-watch'.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: toWatchCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndexArg(args[0])
		if err != nil {
			return err
		}
		lib, err := openLockedLibrary()
		if err != nil {
			return err
		}

		marked, err := lib.MarkWatched(index)
		if err != nil {
			return err
		}
		successColor.Fprintf(cmd.OutOrStdout(), "Marked %q as watched.\n", marked.Title)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <number>",
	Aliases: []string{"rm"},
	Short:   "Delete a movie",
	Long: `Deletes a movie. The number is its position in the full list, as shown
by 'mm list'.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: movieCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndexArg(args[0])
		if err != nil {
			return err
		}
		lib, err := openLockedLibrary()
		if err != nil {
			return err
		}

		removed, err := lib.Delete(index)
		if err != nil {
			return err
		}
		successColor.Fprintf(cmd.OutOrStdout(), "Deleted %q.\n", removed.Title)
		return nil
	},
}

func parseIndexArg(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", movie.ErrInvalidInput, arg)
	}
	return index, nil
}

func init() {
	listCmd.Flags().BoolVarP(&listToWatch, "to-watch", "w", false, "only show movies not yet watched")
	listCmd.Flags().BoolVarP(&listTable, "table", "t", false, "render as a table")
	addCmd.Flags().BoolVarP(&addWatched, "watched", "w", false, "add straight to the 'Watched' list")
}
