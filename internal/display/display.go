// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package display abstracts the terminal: colored text and clearing the
// screen. Callers write plain text through the io.Writer and never branch on
// the platform; Select picks the implementation once at startup.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Color names the few colors the movie list uses.
type Color int

const (
	Default Color = iota
	Green
	Yellow
	Red
)

// Mode controls when colors are used.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// Display is the terminal capability handed to the menu.
type Display interface {
	io.Writer
	// Clear wipes the screen, if the display supports and allows it.
	Clear()
	// Paint writes text in color c and restores the default color.
	Paint(c Color, text string)
}

// ParseMode converts a config value into a Mode. Empty means auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeAlways, ModeNever:
		return m, nil
	default:
		return ModeAuto, fmt.Errorf("invalid color mode %q (use auto, always or never)", s)
	}
}

// Select chooses a display for out. With ModeAuto, colors and clearing are
// only used when out is a terminal.
func Select(out *os.File, mode Mode, clearScreen bool) Display {
	if mode == ModeNever {
		return NewPlain(out)
	}
	fd := out.Fd()
	if isatty.IsCygwinTerminal(fd) {
		return NewANSI(out, clearScreen)
	}
	if isatty.IsTerminal(fd) {
		return newTerminal(out, clearScreen)
	}
	if mode == ModeAlways {
		return NewANSI(out, false)
	}
	return NewPlain(out)
}
