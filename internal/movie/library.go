// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package movie

import (
	"errors"
	"fmt"

	"movie-manager/internal/logger"

	"github.com/gofrs/flock"
)

// ErrLocked is returned by Lock when another session holds the data file.
var ErrLocked = errors.New("movie list is in use by another session")

// Library ties a Store to its data file. Every successful mutation is written
// through to disk before the method returns.
type Library struct {
	store *Store
	path  string
}

// OpenLibrary loads the data file at path into a new store.
func OpenLibrary(path string) (*Library, error) {
	store := NewStore()
	if err := store.Load(path); err != nil {
		logger.Error("Failed to load movie file", "path", path, "error", err)
		return nil, err
	}
	logger.Debug("Loaded movie file", "path", path, "count", store.Len())
	return &Library{store: store, path: path}, nil
}

// Path returns the backing data file.
func (l *Library) Path() string {
	return l.path
}

// Len returns the number of movies.
func (l *Library) Len() int {
	return l.store.Len()
}

// Full reports whether the list is at capacity.
func (l *Library) Full() bool {
	return l.store.Full()
}

// Movies returns a copy of all records in order.
func (l *Library) Movies() []Movie {
	return l.store.Movies()
}

// List returns all movies numbered by store position.
func (l *Library) List() []Entry {
	return l.store.List()
}

// ListUnwatched returns the to-watch movies numbered within that subsequence.
func (l *Library) ListUnwatched() []UnwatchedEntry {
	return l.store.ListUnwatched()
}

// Add validates title and appends it. A save failure is returned wrapped in
// ErrIO, but the movie stays in the list.
func (l *Library) Add(title string, watched bool) (Movie, error) {
	if l.store.Full() {
		return Movie{}, fmt.Errorf("%w (%d movies)", ErrCapacityExceeded, MaxMovies)
	}
	title, err := NormalizeTitle(title)
	if err != nil {
		return Movie{}, err
	}
	m := Movie{Title: title, Watched: watched}
	if err := l.store.Append(m); err != nil {
		return Movie{}, err
	}
	logger.Info("Movie added", "title", m.Title, "watched", m.Watched)
	return m, l.save()
}

// Delete removes the movie at 1-based store position index.
func (l *Library) Delete(index int) (Movie, error) {
	m, err := l.store.DeleteAt(index)
	if err != nil {
		return Movie{}, err
	}
	logger.Info("Movie deleted", "title", m.Title, "position", index)
	return m, l.save()
}

// MarkWatched marks the movie at 1-based position index among to-watch movies.
func (l *Library) MarkWatched(index int) (Movie, error) {
	m, err := l.store.MarkWatchedAt(index)
	if err != nil {
		return Movie{}, err
	}
	logger.Info("Movie marked as watched", "title", m.Title, "to_watch_position", index)
	return m, l.save()
}

func (l *Library) save() error {
	if err := SaveAll(l.store.movies, l.path); err != nil {
		logger.Error("Failed to save movie file", "path", l.path, "error", err)
		return err
	}
	return nil
}

// Lock takes an exclusive advisory lock next to the data file so two
// sessions cannot overwrite each other's changes. The returned function
// releases it.
func Lock(path string) (func() error, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return lock.Unlock, nil
}
