// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package display

import (
	"io"

	"github.com/fatih/color"
)

const ansiClear = "\033[H\033[2J"

// ANSI draws with escape sequences.
type ANSI struct {
	out    io.Writer
	clear  bool
	colors map[Color]*color.Color
}

// NewANSI returns an escape-sequence display writing to out. Clearing is
// skipped when clear is false.
func NewANSI(out io.Writer, clearScreen bool) *ANSI {
	colors := map[Color]*color.Color{
		Green:  color.New(color.FgGreen),
		Yellow: color.New(color.FgYellow),
		Red:    color.New(color.FgRed),
	}
	// The caller already decided colors are wanted; don't let
	// color.NoColor second-guess it.
	for _, c := range colors {
		c.EnableColor()
	}
	return &ANSI{out: out, clear: clearScreen, colors: colors}
}

func (a *ANSI) Write(p []byte) (int, error) {
	return a.out.Write(p)
}

func (a *ANSI) Clear() {
	if a.clear {
		io.WriteString(a.out, ansiClear)
	}
}

func (a *ANSI) Paint(c Color, text string) {
	if col, ok := a.colors[c]; ok {
		col.Fprint(a.out, text)
		return
	}
	io.WriteString(a.out, text)
}
