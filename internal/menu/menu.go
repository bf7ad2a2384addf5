// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package menu implements the numbered console menu and the command
// operations behind each entry.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"movie-manager/internal/display"
	"movie-manager/internal/logger"
	"movie-manager/internal/movie"
)

// Menu runs the read-dispatch loop over a single library.
type Menu struct {
	lib     *movie.Library
	in      *bufio.Reader
	display display.Display
}

// New returns a menu reading choices from in and drawing on d.
func New(lib *movie.Library, in io.Reader, d display.Display) *Menu {
	return &Menu{
		lib:     lib,
		in:      bufio.NewReader(in),
		display: d,
	}
}

func (m *Menu) showMenu() {
	fmt.Fprint(m.display, "\n===== MOVIE MANAGEMENT SYSTEM =====\n")
	fmt.Fprintln(m.display, "1 - Add to 'To Watch'")
	fmt.Fprintln(m.display, "2 - Add to 'Watched'")
	fmt.Fprintln(m.display, "3 - Display all movies")
	fmt.Fprintln(m.display, "4 - Move to 'Watched'")
	fmt.Fprintln(m.display, "5 - Delete movie")
	fmt.Fprintln(m.display, "0 - Exit")
	fmt.Fprintln(m.display, "===================================")
	fmt.Fprint(m.display, "Choose an option: ")
}

// Run shows the menu until the user chooses 0 or input ends. Failures of
// individual operations are reported to the user and never end the loop;
// only an unreadable input stream does.
func (m *Menu) Run() error {
	logger.Info("Menu started", "file", m.lib.Path(), "movies", m.lib.Len())
	for {
		m.display.Clear()
		m.showMenu()

		option, err := m.readNumber()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.display, "\nExiting...")
			return nil
		}
		if err != nil && !errors.Is(err, movie.ErrInvalidInput) {
			return fmt.Errorf("failed to read menu choice: %w", err)
		}
		if err != nil {
			m.invalidOption()
			continue
		}

		switch option {
		case 1:
			err = m.AddMovie(false)
		case 2:
			err = m.AddMovie(true)
		case 3:
			m.DisplayMovies()
		case 4:
			err = m.MoveToWatched()
		case 5:
			err = m.DeleteMovie()
		case 0:
			fmt.Fprintln(m.display, "Exiting...")
			logger.Info("Menu exited", "movies", m.lib.Len())
			return nil
		default:
			m.invalidOption()
		}
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Debug("Operation aborted", "option", option, "error", err)
		}
	}
}

func (m *Menu) invalidOption() {
	m.display.Paint(display.Red, "Invalid option!")
	fmt.Fprint(m.display, " Press Enter...")
	m.waitForEnter()
}
