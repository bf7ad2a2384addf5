// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package menu

import (
	"errors"
	"fmt"
	"io"

	"movie-manager/internal/display"
	"movie-manager/internal/movie"
)

// AddMovie prompts for a title and appends it with the given watched flag.
func (m *Menu) AddMovie(watched bool) error {
	if m.lib.Full() {
		return m.report(fmt.Errorf("%w (%d movies)", movie.ErrCapacityExceeded, movie.MaxMovies))
	}

	m.display.Clear()
	fmt.Fprintf(m.display, "Enter movie title (max %d characters): ", titleLineLimit-1)
	line, err := m.readLine(titleLineLimit, true)
	if errors.Is(err, errLineTooLong) {
		return m.report(fmt.Errorf("%w: title exceeds %d characters", movie.ErrInvalidInput, titleLineLimit-1))
	}
	if err != nil {
		return err
	}

	added, err := m.lib.Add(line, watched)
	if err != nil {
		return m.report(err)
	}
	return m.success(fmt.Sprintf("Movie %q added successfully!", added.Title))
}

// DeleteMovie shows the full list and removes the chosen entry.
func (m *Menu) DeleteMovie() error {
	m.display.Clear()
	if m.lib.Len() == 0 {
		return m.report(errEmptyList)
	}

	m.renderList()
	fmt.Fprintf(m.display, "Enter movie number to delete (1-%d): ", m.lib.Len())
	index, err := m.readNumber()
	if err != nil {
		return m.report(err)
	}

	removed, err := m.lib.Delete(index)
	if err != nil {
		return m.report(err)
	}
	return m.success(fmt.Sprintf("Movie %q deleted successfully!", removed.Title))
}

// MoveToWatched shows only to-watch entries, numbered among themselves, and
// marks the chosen one as watched.
func (m *Menu) MoveToWatched() error {
	m.display.Clear()
	if m.lib.Len() == 0 {
		return m.report(errEmptyList)
	}

	fmt.Fprint(m.display, "\n===== TO WATCH MOVIES =====\n")
	unwatched := m.lib.ListUnwatched()
	for _, e := range unwatched {
		m.renderEntry(e.Position, e.Movie)
	}
	if len(unwatched) == 0 {
		return m.report(errNothingToWatch)
	}

	fmt.Fprintf(m.display, "\nEnter movie number to mark as watched (1-%d): ", len(unwatched))
	index, err := m.readNumber()
	if err != nil {
		return m.report(err)
	}

	marked, err := m.lib.MarkWatched(index)
	if err != nil {
		return m.report(err)
	}
	return m.success(fmt.Sprintf("Movie %q marked as watched successfully!", marked.Title))
}

// DisplayMovies shows every movie with its status. It never writes.
func (m *Menu) DisplayMovies() {
	m.display.Clear()
	m.renderList()
	fmt.Fprint(m.display, "\nPress Enter to return to the menu...")
	m.waitForEnter()
}

func (m *Menu) renderList() {
	fmt.Fprint(m.display, "\n===== MOVIE LIST =====\n")
	entries := m.lib.List()
	if len(entries) == 0 {
		fmt.Fprintln(m.display, "No movies yet.")
	}
	for _, e := range entries {
		m.renderEntry(e.Position, e.Movie)
	}
}

// renderEntry prints "N. Title [Status]" with the title in green and the
// status in yellow (watched) or red (to watch).
func (m *Menu) renderEntry(position int, mv movie.Movie) {
	fmt.Fprintf(m.display, "%d. ", position)
	m.display.Paint(display.Green, mv.Title)
	fmt.Fprint(m.display, " [")
	statusColor := display.Red
	if mv.Watched {
		statusColor = display.Yellow
	}
	m.display.Paint(statusColor, mv.Status())
	fmt.Fprintln(m.display, "]")
}

// notice is an error shown to the user as its bare message, without the
// "Error:" prefix.
type notice struct {
	msg string
	err error
}

func (n *notice) Error() string { return n.msg }
func (n *notice) Unwrap() error { return n.err }

var (
	errEmptyList      = &notice{msg: "Movie list is empty!", err: movie.ErrInvalidIndex}
	errNothingToWatch = &notice{msg: "No movies in 'To Watch' list!", err: movie.ErrInvalidIndex}
)

// report shows err to the user and waits for Enter. End of input is passed
// through silently.
func (m *Menu) report(err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	text := fmt.Sprintf("Error: %v.", err)
	var n *notice
	if errors.As(err, &n) {
		text = n.msg
	}
	m.display.Paint(display.Red, text)
	fmt.Fprint(m.display, "\nPress Enter to return...")
	m.waitForEnter()
	return err
}

func (m *Menu) success(msg string) error {
	m.display.Paint(display.Green, msg)
	fmt.Fprint(m.display, "\nPress Enter to return...")
	m.waitForEnter()
	return nil
}
