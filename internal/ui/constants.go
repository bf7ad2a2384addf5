// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents the different views or modes of the TUI.
type state int

const (
	stateMovieList state = iota
	stateAddForm
	stateDeleteConfirm
)

const (
	headerHeight = 1 // Height reserved for the main title header.
	footerHeight = 4 // Status line plus help text.
)
