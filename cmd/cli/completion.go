// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"movie-manager/internal/config"
	"movie-manager/internal/movie"

	"github.com/spf13/cobra"
)

// loadMoviesForCompletion reads the list without locking it. Errors are
// swallowed: completion should offer nothing rather than fail.
func loadMoviesForCompletion() *movie.Library {
	c, err := config.LoadConfig()
	if err != nil {
		return nil
	}
	path, err := resolveDataPath(c)
	if err != nil {
		return nil
	}
	lib, err := movie.OpenLibrary(path)
	if err != nil {
		return nil
	}
	return lib
}

// indexSuggestions formats "N<TAB>title" pairs whose number starts with toComplete.
func indexSuggestions(positions []int, titles []string, toComplete string) []string {
	var suggestions []string
	for i, pos := range positions {
		n := strconv.Itoa(pos)
		if strings.HasPrefix(n, toComplete) {
			suggestions = append(suggestions, fmt.Sprintf("%s\t%s", n, titles[i]))
		}
	}
	return suggestions
}

// movieCompletionFunc completes full-list numbers for delete.
func movieCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	lib := loadMoviesForCompletion()
	if lib == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var positions []int
	var titles []string
	for _, e := range lib.List() {
		positions = append(positions, e.Position)
		titles = append(titles, fmt.Sprintf("%s [%s]", e.Movie.Title, e.Movie.Status()))
	}
	return indexSuggestions(positions, titles, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// toWatchCompletionFunc completes to-watch numbers for watch.
func toWatchCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	lib := loadMoviesForCompletion()
	if lib == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var positions []int
	var titles []string
	for _, e := range lib.ListUnwatched() {
		positions = append(positions, e.Position)
		titles = append(titles, e.Movie.Title)
	}
	return indexSuggestions(positions, titles, toComplete), cobra.ShellCompDirectiveNoFileComp
}
