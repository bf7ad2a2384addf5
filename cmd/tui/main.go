// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"fmt"

	"movie-manager/internal/movie"
	"movie-manager/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI runs the full-screen browser over lib until the user quits.
func RunTUI(lib *movie.Library) error {
	m := ui.InitialModel(lib)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}
