// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

//go:build !windows

package display

import "os"

func newTerminal(out *os.File, clearScreen bool) Display {
	return NewANSI(out, clearScreen)
}
