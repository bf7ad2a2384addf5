// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

//go:build windows

package display

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                       = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleTextAttribute    = kernel32.NewProc("SetConsoleTextAttribute")
	procFillConsoleOutputCharacter = kernel32.NewProc("FillConsoleOutputCharacterW")
	procFillConsoleOutputAttribute = kernel32.NewProc("FillConsoleOutputAttribute")
	procSetConsoleCursorPosition   = kernel32.NewProc("SetConsoleCursorPosition")
)

// Console character attributes (foreground intensity | color bits).
var consoleAttrs = map[Color]uint16{
	Green:  10,
	Yellow: 14,
	Red:    12,
}

const consoleDefaultAttr = 7

// Console draws through the Win32 console API, for consoles that do not
// understand escape sequences.
type Console struct {
	out         *os.File
	handle      windows.Handle
	clear       bool
	defaultAttr uint16
}

func NewConsole(out *os.File, clearScreen bool) *Console {
	c := &Console{
		out:         out,
		handle:      windows.Handle(out.Fd()),
		clear:       clearScreen,
		defaultAttr: consoleDefaultAttr,
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(c.handle, &info); err == nil {
		c.defaultAttr = info.Attributes
	}
	return c
}

func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func (c *Console) Paint(col Color, text string) {
	attr, ok := consoleAttrs[col]
	if !ok {
		c.out.WriteString(text)
		return
	}
	procSetConsoleTextAttribute.Call(uintptr(c.handle), uintptr(attr))
	c.out.WriteString(text)
	procSetConsoleTextAttribute.Call(uintptr(c.handle), uintptr(c.defaultAttr))
}

// Clear blanks the whole screen buffer and homes the cursor.
func (c *Console) Clear() {
	if !c.clear {
		return
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(c.handle, &info); err != nil {
		return
	}
	cells := uint32(info.Size.X) * uint32(info.Size.Y)
	var written uint32
	// COORD{0, 0} packed into a single register argument.
	var origin uintptr
	procFillConsoleOutputCharacter.Call(uintptr(c.handle), uintptr(' '), uintptr(cells), origin, uintptr(unsafe.Pointer(&written)))
	procFillConsoleOutputAttribute.Call(uintptr(c.handle), uintptr(info.Attributes), uintptr(cells), origin, uintptr(unsafe.Pointer(&written)))
	procSetConsoleCursorPosition.Call(uintptr(c.handle), origin)
}
