// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package display

import "io"

// Plain writes text without color and never clears. It is used for pipes,
// files and tests.
type Plain struct {
	out io.Writer
}

func NewPlain(out io.Writer) *Plain {
	return &Plain{out: out}
}

func (p *Plain) Write(b []byte) (int, error) {
	return p.out.Write(b)
}

func (p *Plain) Clear() {}

func (p *Plain) Paint(_ Color, text string) {
	io.WriteString(p.out, text)
}
