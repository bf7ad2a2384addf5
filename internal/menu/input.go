// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"movie-manager/internal/movie"
)

const (
	// titleLineLimit is the size of the title input buffer in bytes. The
	// newline has to arrive within it, so the longest title that can be
	// typed is one byte shorter.
	titleLineLimit = movie.MaxTitleLen

	// numberLineLimit bounds menu choices and movie numbers.
	numberLineLimit = 16
)

var errLineTooLong = errors.New("input line too long")

// readLine reads one line of at most limit bytes including the newline. A
// longer line is consumed and rejected whole. When needNewline is set, a
// final line cut short by end of input is rejected like an overlong one;
// otherwise it is accepted. io.EOF is only returned when nothing was read.
func (m *Menu) readLine(limit int, needNewline bool) (string, error) {
	buf := make([]byte, 0, limit)
	for len(buf) < limit {
		c, err := m.in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(buf) > 0 {
				if needNewline {
					return "", errLineTooLong
				}
				return strings.TrimSuffix(string(buf), "\r"), nil
			}
			return "", err
		}
		if c == '\n' {
			return strings.TrimSuffix(string(buf), "\r"), nil
		}
		buf = append(buf, c)
	}
	m.discardLine()
	return "", errLineTooLong
}

func (m *Menu) discardLine() {
	for {
		c, err := m.in.ReadByte()
		if err != nil || c == '\n' {
			return
		}
	}
}

// readNumber reads a line holding a single integer. Leading blanks are
// allowed; anything after the digits is not.
func (m *Menu) readNumber() (int, error) {
	line, err := m.readLine(numberLineLimit, false)
	if errors.Is(err, errLineTooLong) {
		return 0, fmt.Errorf("%w: please enter a number", movie.ErrInvalidInput)
	}
	if err != nil {
		return 0, err
	}
	return parseNumber(line)
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimLeft(s, " \t\v\f"))
	if err != nil {
		return 0, fmt.Errorf("%w: please enter a number", movie.ErrInvalidInput)
	}
	return n, nil
}

// waitForEnter blocks until the user presses Enter or input ends.
func (m *Menu) waitForEnter() {
	m.discardLine()
}
