// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package movie

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Entry is a movie annotated with its 1-based position in a listing.
type Entry struct {
	Position int
	Movie    Movie
}

// UnwatchedEntry is a movie from the to-watch subsequence. Position counts
// within the subsequence; StorePosition is where it lives in the full store.
type UnwatchedEntry struct {
	Position      int
	StorePosition int
	Movie         Movie
}

// Store is the ordered, bounded collection of movies. Order is insertion
// order and is never changed by delete or mark operations.
type Store struct {
	movies   []Movie
	capacity int
}

// NewStore returns an empty store holding at most MaxMovies records.
func NewStore() *Store {
	return &Store{capacity: MaxMovies}
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.movies)
}

// Full reports whether another Append would fail.
func (s *Store) Full() bool {
	return len(s.movies) >= s.capacity
}

// Movies returns a copy of the records in store order.
func (s *Store) Movies() []Movie {
	out := make([]Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

// Load reads records from path in file order until EOF or capacity.
// Malformed lines are skipped. A missing file loads nothing.
func (s *Store) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open movie file %s: %w", path, err)
	}
	defer f.Close()

	if err := s.ReadFrom(f); err != nil {
		return fmt.Errorf("failed to read movie file %s: %w", path, err)
	}
	return nil
}

// ReadFrom decodes records line by line from r, skipping lines Decode rejects.
func (s *Store) ReadFrom(r io.Reader) error {
	br := bufio.NewReader(r)
	for !s.Full() {
		line, err := br.ReadString('\n')
		if line != "" {
			if m, decodeErr := Decode(line); decodeErr == nil {
				s.movies = append(s.movies, m)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Append adds m at the end of the store.
func (s *Store) Append(m Movie) error {
	if s.Full() {
		return fmt.Errorf("%w (%d movies)", ErrCapacityExceeded, s.capacity)
	}
	s.movies = append(s.movies, m)
	return nil
}

// DeleteAt removes the record at 1-based position index in the full store.
func (s *Store) DeleteAt(index int) (Movie, error) {
	if index < 1 || index > len(s.movies) {
		return Movie{}, s.indexError(index, len(s.movies))
	}
	removed := s.movies[index-1]
	s.movies = append(s.movies[:index-1], s.movies[index:]...)
	return removed, nil
}

// MarkWatchedAt marks the record at 1-based position index within the
// to-watch subsequence as watched. The record keeps its place in the store.
func (s *Store) MarkWatchedAt(index int) (Movie, error) {
	unwatched := s.ListUnwatched()
	if index < 1 || index > len(unwatched) {
		return Movie{}, s.indexError(index, len(unwatched))
	}
	pos := unwatched[index-1].StorePosition
	s.movies[pos-1].Watched = true
	return s.movies[pos-1], nil
}

// List returns every record numbered by its position in the store.
func (s *Store) List() []Entry {
	entries := make([]Entry, len(s.movies))
	for i, m := range s.movies {
		entries[i] = Entry{Position: i + 1, Movie: m}
	}
	return entries
}

// ListUnwatched returns the to-watch records numbered within the subsequence.
func (s *Store) ListUnwatched() []UnwatchedEntry {
	var entries []UnwatchedEntry
	for i, m := range s.movies {
		if m.Watched {
			continue
		}
		entries = append(entries, UnwatchedEntry{
			Position:      len(entries) + 1,
			StorePosition: i + 1,
			Movie:         m,
		})
	}
	return entries
}

func (s *Store) indexError(index, count int) error {
	if count == 0 {
		return fmt.Errorf("%w: %d (list is empty)", ErrInvalidIndex, index)
	}
	return fmt.Errorf("%w: %d (enter 1-%d)", ErrInvalidIndex, index, count)
}
