// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"errors"
	"fmt"

	"movie-manager/internal/movie"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) handleMovieListKeys(msg tea.KeyMsg) tea.Cmd {
	rows := m.rows()

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keymap.Home):
		m.cursor = 0
	case key.Matches(msg, m.keymap.End):
		m.cursor = len(rows) - 1
		m.clampCursor()
	case key.Matches(msg, m.keymap.ToggleFilter):
		m.toWatchOnly = !m.toWatchOnly
		m.cursor = 0
	case key.Matches(msg, m.keymap.AddToWatch):
		return m.openAddForm(false)
	case key.Matches(msg, m.keymap.AddWatched):
		return m.openAddForm(true)
	case key.Matches(msg, m.keymap.MarkWatched):
		if len(rows) > 0 {
			m.markWatched(rows[m.cursor])
		}
	case key.Matches(msg, m.keymap.Delete):
		if len(rows) > 0 {
			m.currentState = stateDeleteConfirm
		}
	}
	return nil
}

func (m *model) openAddForm(watched bool) tea.Cmd {
	if m.lib.Full() {
		m.setResult("", fmt.Errorf("%w (%d movies)", movie.ErrCapacityExceeded, movie.MaxMovies))
		return nil
	}
	m.titleInput = createTitleInput()
	m.addWatched = watched
	m.lastError = nil
	m.statusMessage = ""
	m.currentState = stateAddForm
	return textinput.Blink
}

// markWatched converts the selected row to its to-watch number, which is
// what the library expects, and marks it.
func (m *model) markWatched(r row) {
	if r.movie.Watched {
		m.setResult(fmt.Sprintf("%q is already watched.", r.movie.Title), nil)
		return
	}
	for _, e := range m.lib.ListUnwatched() {
		if e.StorePosition != r.storePosition {
			continue
		}
		marked, err := m.lib.MarkWatched(e.Position)
		m.setResult(fmt.Sprintf("Marked %q as watched.", marked.Title), err)
		break
	}
	m.clampCursor()
}

func (m *model) handleAddFormKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Esc):
		m.currentState = stateMovieList
		m.lastError = nil
		return nil
	case key.Matches(msg, m.keymap.Enter):
		added, err := m.lib.Add(m.titleInput.Value(), m.addWatched)
		if err != nil && !errors.Is(err, movie.ErrIO) {
			// Keep the form open so the title can be fixed.
			m.lastError = err
			return nil
		}
		m.currentState = stateMovieList
		m.setResult(fmt.Sprintf("Added %q to '%s'.", added.Title, added.Status()), err)
		if !m.toWatchOnly || !added.Watched {
			m.cursor = len(m.rows()) - 1
		}
		return nil
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return cmd
}

func (m *model) handleDeleteConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Yes):
		rows := m.rows()
		if m.cursor < len(rows) {
			removed, err := m.lib.Delete(rows[m.cursor].storePosition)
			m.setResult(fmt.Sprintf("Deleted %q.", removed.Title), err)
		}
		m.currentState = stateMovieList
		m.clampCursor()
	case key.Matches(msg, m.keymap.No):
		m.currentState = stateMovieList
	}
	return nil
}
