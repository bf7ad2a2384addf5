// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package movie holds the movie list itself: the record type, the bounded
// in-memory store, the line codec used for the data file, and the Library
// that keeps the two in sync.
package movie

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// MaxMovies is the maximum number of records a store will hold.
	MaxMovies = 100

	// MaxTitleLen is the maximum title length in bytes.
	MaxTitleLen = 99
)

// Error taxonomy shared by the store, the codec and the command operations.
var (
	ErrParse            = errors.New("malformed record")
	ErrCapacityExceeded = errors.New("movie list is full")
	ErrInvalidIndex     = errors.New("invalid movie number")
	ErrInvalidInput     = errors.New("invalid input")
	ErrIO               = errors.New("could not save movie list")
)

// Movie is a single entry in the list.
type Movie struct {
	Title   string
	Watched bool
}

// Status returns the label shown next to the title.
func (m Movie) Status() string {
	if m.Watched {
		return "Watched"
	}
	return "To Watch"
}

// NormalizeTitle cleans up a title as typed by the user and checks it can be
// stored and read back unchanged.
func NormalizeTitle(title string) (string, error) {
	title = strings.TrimRight(title, "\r\n")
	title = strings.TrimLeft(title, " \t\v\f")
	title = norm.NFC.String(title)

	switch {
	case title == "":
		return "", fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	case len(title) > MaxTitleLen:
		return "", fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, MaxTitleLen)
	case strings.Contains(title, ","):
		return "", fmt.Errorf("%w: title cannot contain a comma", ErrInvalidInput)
	case strings.ContainsAny(title, "\r\n"):
		return "", fmt.Errorf("%w: title must be a single line", ErrInvalidInput)
	}
	return title, nil
}
