// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the TUI application.
// It maps keys to actions and provides descriptions for the help footer.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	// Navigation keys
	Up   key.Binding // Move cursor up
	Down key.Binding // Move cursor down
	Home key.Binding // Jump to top of list
	End  key.Binding // Jump to bottom of list

	// General UI control
	Quit  key.Binding // Exit the application
	Enter key.Binding // Confirm input
	Esc   key.Binding // Cancel/go back
	Yes   key.Binding // Confirm in prompts
	No    key.Binding // Deny in prompts

	// Movie actions
	AddToWatch   key.Binding // Add a movie to the 'To Watch' list
	AddWatched   key.Binding // Add a movie straight to 'Watched'
	MarkWatched  key.Binding // Mark the selected movie as watched
	Delete       key.Binding // Delete the selected movie
	ToggleFilter key.Binding // Show all movies or only those to watch
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "bottom"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n", "no"),
	),

	AddToWatch: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add to watch"),
	),
	AddWatched: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "add watched"),
	),
	MarkWatched: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "mark watched"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	ToggleFilter: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "to-watch only"),
	),
}
