// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

//go:build windows

package display

import (
	"os"

	"golang.org/x/sys/windows"
)

// newTerminal prefers escape sequences when the console can be switched to
// virtual terminal processing, and falls back to the console API otherwise.
func newTerminal(out *os.File, clearScreen bool) Display {
	h := windows.Handle(out.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err == nil {
		if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 ||
			windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil {
			return NewANSI(out, clearScreen)
		}
	}
	return NewConsole(out, clearScreen)
}
