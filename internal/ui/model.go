// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the full-screen movie browser on top of Bubble Tea.
package ui

import (
	"movie-manager/internal/movie"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// row is one visible line of the list. position is the number shown to the
// user; storePosition is where the movie sits in the full list.
type row struct {
	position      int
	storePosition int
	movie         movie.Movie
}

type model struct {
	lib    *movie.Library
	keymap KeyMap

	currentState state
	cursor       int
	toWatchOnly  bool

	titleInput textinput.Model
	addWatched bool

	statusMessage string
	lastError     error

	width  int
	height int
}

// InitialModel returns a browser over lib showing the full list.
func InitialModel(lib *movie.Library) model {
	return model{
		lib:          lib,
		keymap:       DefaultKeyMap,
		currentState: stateMovieList,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.currentState {
		case stateMovieList:
			return m, m.handleMovieListKeys(msg)
		case stateAddForm:
			return m, m.handleAddFormKeys(msg)
		case stateDeleteConfirm:
			return m, m.handleDeleteConfirmKeys(msg)
		}
	}

	// Keep the cursor blinking while the form is open.
	if m.currentState == stateAddForm {
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// rows returns the movies currently visible, honoring the to-watch filter.
func (m *model) rows() []row {
	if m.toWatchOnly {
		entries := m.lib.ListUnwatched()
		rows := make([]row, len(entries))
		for i, e := range entries {
			rows[i] = row{position: e.Position, storePosition: e.StorePosition, movie: e.Movie}
		}
		return rows
	}
	entries := m.lib.List()
	rows := make([]row, len(entries))
	for i, e := range entries {
		rows[i] = row{position: e.Position, storePosition: e.Position, movie: e.Movie}
	}
	return rows
}

func (m *model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// setResult shows msg on success or err on failure in the status line.
func (m *model) setResult(msg string, err error) {
	if err != nil {
		m.lastError = err
		m.statusMessage = ""
		return
	}
	m.lastError = nil
	m.statusMessage = msg
}
