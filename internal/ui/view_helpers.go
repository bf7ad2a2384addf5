// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	var body, footer string
	switch m.currentState {
	case stateMovieList:
		body, footer = m.renderMovieListView()
	case stateAddForm:
		body, footer = m.renderAddFormView()
	case stateDeleteConfirm:
		body, footer = m.renderDeleteConfirmView()
	}

	header := titleStyle.Render("Movie Manager")
	if m.toWatchOnly {
		header += dimStyle.Render("  (to watch only)")
	}

	main := mainContentBorderStyle
	if m.width > 0 {
		main = main.Width(m.width - 2)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, main.Render(body), footer)
}

// renderHelp joins key bindings into the footer help line.
func renderHelp(bindings ...key.Binding) string {
	sep := footerSeparatorStyle.Render(" | ")
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+footerDescStyle.Render(": "+h.Desc))
	}
	return strings.Join(parts, sep)
}

func (m *model) renderStatusLine() string {
	switch {
	case m.lastError != nil:
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.lastError))
	case m.statusMessage != "":
		return successStyle.Render(m.statusMessage)
	default:
		return statusStyle.Render(fmt.Sprintf("%d movies", m.lib.Len()))
	}
}

// visibleWindow returns the slice bounds of rows that fit on screen while
// keeping the cursor visible.
func (m *model) visibleWindow(total int) (int, int) {
	if m.height == 0 {
		return 0, total
	}
	// Border takes two lines.
	capacity := m.height - headerHeight - footerHeight - 2
	if capacity < 1 {
		capacity = 1
	}
	if total <= capacity {
		return 0, total
	}
	start := m.cursor - capacity + 1
	if start < 0 {
		start = 0
	}
	return start, start + capacity
}

func (m *model) renderMovieListView() (string, string) {
	body := strings.Builder{}
	rows := m.rows()
	if len(rows) == 0 {
		if m.toWatchOnly {
			body.WriteString(dimStyle.Render("No movies in 'To Watch' list."))
		} else {
			body.WriteString(dimStyle.Render("No movies yet. Press a to add one."))
		}
	}

	start, end := m.visibleWindow(len(rows))
	for i := start; i < end; i++ {
		r := rows[i]
		cursor := "  "
		if m.cursor == i {
			cursor = cursorStyle.Render("> ")
		}
		status := toWatchStyle.Render(r.movie.Status())
		if r.movie.Watched {
			status = watchedStyle.Render(r.movie.Status())
		}
		body.WriteString(fmt.Sprintf("%s%d. %s [%s]", cursor, r.position, movieTitleStyle.Render(r.movie.Title), status))
		if i < end-1 {
			body.WriteString("\n")
		}
	}

	footer := strings.Builder{}
	footer.WriteString(m.renderStatusLine() + "\n")
	help := renderHelp(m.keymap.Up, m.keymap.Down, m.keymap.AddToWatch, m.keymap.AddWatched,
		m.keymap.MarkWatched, m.keymap.Delete, m.keymap.ToggleFilter, m.keymap.Quit)
	footer.WriteString(lipgloss.NewStyle().Width(m.width).Render(help))
	return body.String(), footer.String()
}

func (m *model) renderAddFormView() (string, string) {
	body := strings.Builder{}
	target := "To Watch"
	if m.addWatched {
		target = "Watched"
	}
	body.WriteString(fmt.Sprintf("Add a movie to '%s':\n\n", target))
	body.WriteString(m.titleInput.View())
	if m.titleInput.Err != nil {
		body.WriteString("\n" + errorStyle.Render(m.titleInput.Err.Error()))
	}

	footer := strings.Builder{}
	if m.lastError != nil {
		footer.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.lastError)))
	}
	footer.WriteString("\n")
	footer.WriteString(renderHelp(m.keymap.Enter, m.keymap.Esc))
	return body.String(), footer.String()
}

func (m *model) renderDeleteConfirmView() (string, string) {
	rows := m.rows()
	title := ""
	if m.cursor < len(rows) {
		title = rows[m.cursor].movie.Title
	}
	body := fmt.Sprintf("Delete %s from the list?", movieTitleStyle.Render(fmt.Sprintf("%q", title)))
	footer := "\n" + renderHelp(m.keymap.Yes, m.keymap.No)
	return body, footer
}
