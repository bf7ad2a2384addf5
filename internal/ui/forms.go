// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"movie-manager/internal/movie"

	"github.com/charmbracelet/bubbles/textinput"
)

func createTitleInput() textinput.Model {
	t := textinput.New()
	t.Placeholder = "Movie title"
	t.Focus()
	t.CharLimit = movie.MaxTitleLen
	t.Width = 60
	t.Validate = func(s string) error {
		if strings.Contains(s, ",") {
			return fmt.Errorf("titles cannot contain commas")
		}
		return nil
	}
	return t
}
