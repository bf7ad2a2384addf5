// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package movie

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWith(t *testing.T, movies ...Movie) *Store {
	t.Helper()
	s := NewStore()
	for _, m := range movies {
		require.NoError(t, s.Append(m))
	}
	return s
}

func TestStore_LoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.txt")
	require.NoError(t, os.WriteFile(path, []byte("Matrix,0\nBadLineNoComma\nUp,1\n"), 0644))

	s := NewStore()
	require.NoError(t, s.Load(path))

	want := []Movie{{Title: "Matrix"}, {Title: "Up", Watched: true}}
	if diff := cmp.Diff(want, s.Movies()); diff != "" {
		t.Errorf("loaded movies mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_LoadMissingFileIsEmpty(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Load(filepath.Join(t.TempDir(), "nope.txt")))
	assert.Equal(t, 0, s.Len())
}

func TestStore_LoadStopsAtCapacity(t *testing.T) {
	var b strings.Builder
	for i := 0; i < MaxMovies+20; i++ {
		fmt.Fprintf(&b, "Movie %d,%d\n", i, i%2)
	}
	s := NewStore()
	require.NoError(t, s.ReadFrom(strings.NewReader(b.String())))

	assert.Equal(t, MaxMovies, s.Len())
	assert.Equal(t, "Movie 99", s.Movies()[MaxMovies-1].Title)
}

func TestStore_LoadDirectoryFails(t *testing.T) {
	s := NewStore()
	assert.Error(t, s.Load(t.TempDir()))
}

func TestStore_AppendCapacity(t *testing.T) {
	s := NewStore()
	for i := 0; i < MaxMovies; i++ {
		require.NoError(t, s.Append(Movie{Title: fmt.Sprintf("m%d", i)}))
	}
	assert.True(t, s.Full())

	err := s.Append(Movie{Title: "one too many"})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, MaxMovies, s.Len())
}

func TestStore_DeleteAtShiftsLaterEntries(t *testing.T) {
	s := storeWith(t, Movie{Title: "A"}, Movie{Title: "B", Watched: true}, Movie{Title: "C"}, Movie{Title: "D"})

	removed, err := s.DeleteAt(2)
	require.NoError(t, err)
	assert.Equal(t, Movie{Title: "B", Watched: true}, removed)

	want := []Entry{
		{Position: 1, Movie: Movie{Title: "A"}},
		{Position: 2, Movie: Movie{Title: "C"}},
		{Position: 3, Movie: Movie{Title: "D"}},
	}
	if diff := cmp.Diff(want, s.List()); diff != "" {
		t.Errorf("list mismatch after delete (-want +got):\n%s", diff)
	}
}

func TestStore_DeleteAtBounds(t *testing.T) {
	s := storeWith(t, Movie{Title: "A"}, Movie{Title: "B"})
	for _, index := range []int{-1, 0, 3, 100} {
		_, err := s.DeleteAt(index)
		assert.ErrorIs(t, err, ErrInvalidIndex, "index %d", index)
	}
	assert.Equal(t, 2, s.Len())

	removed, err := s.DeleteAt(2)
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Title)
	removed, err = s.DeleteAt(1)
	require.NoError(t, err)
	assert.Equal(t, "A", removed.Title)
	assert.Equal(t, 0, s.Len())
}

func TestStore_DeleteAtEmpty(t *testing.T) {
	_, err := NewStore().DeleteAt(1)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestStore_MarkWatchedAtUsesToWatchNumbering(t *testing.T) {
	s := storeWith(t, Movie{Title: "Matrix"}, Movie{Title: "Up"}, Movie{Title: "Her", Watched: true})

	marked, err := s.MarkWatchedAt(2)
	require.NoError(t, err)
	assert.Equal(t, Movie{Title: "Up", Watched: true}, marked)

	want := []Movie{
		{Title: "Matrix"},
		{Title: "Up", Watched: true},
		{Title: "Her", Watched: true},
	}
	if diff := cmp.Diff(want, s.Movies()); diff != "" {
		t.Errorf("store mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_MarkWatchedAtSkipsWatchedEntries(t *testing.T) {
	s := storeWith(t,
		Movie{Title: "A", Watched: true},
		Movie{Title: "B"},
		Movie{Title: "C", Watched: true},
		Movie{Title: "D"},
	)

	// The second to-watch movie is D, at store position 4.
	marked, err := s.MarkWatchedAt(2)
	require.NoError(t, err)
	assert.Equal(t, "D", marked.Title)
	assert.False(t, s.Movies()[1].Watched)

	_, err = s.MarkWatchedAt(2)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestStore_MarkWatchedAtBounds(t *testing.T) {
	s := storeWith(t, Movie{Title: "A", Watched: true})
	_, err := s.MarkWatchedAt(1)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = s.MarkWatchedAt(0)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestStore_ListUnwatched(t *testing.T) {
	s := storeWith(t, Movie{Title: "Matrix"}, Movie{Title: "Her", Watched: true}, Movie{Title: "Up"})

	want := []UnwatchedEntry{
		{Position: 1, StorePosition: 1, Movie: Movie{Title: "Matrix"}},
		{Position: 2, StorePosition: 3, Movie: Movie{Title: "Up"}},
	}
	if diff := cmp.Diff(want, s.ListUnwatched()); diff != "" {
		t.Errorf("unwatched mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_MoviesReturnsCopy(t *testing.T) {
	s := storeWith(t, Movie{Title: "A"})
	movies := s.Movies()
	movies[0].Title = "changed"
	assert.Equal(t, "A", s.Movies()[0].Title)
}

func TestStore_SizeStaysWithinBounds(t *testing.T) {
	s := NewStore()
	ops := []func(){
		func() { _ = s.Append(Movie{Title: "x"}) },
		func() { _, _ = s.DeleteAt(1) },
		func() { _, _ = s.MarkWatchedAt(1) },
		func() { _, _ = s.DeleteAt(s.Len()) },
	}
	for i := 0; i < 1000; i++ {
		// Weighted towards appends so the store reaches capacity.
		op := ops[0]
		if i%7 == 0 {
			op = ops[1+(i/7)%3]
		}
		op()
		require.GreaterOrEqual(t, s.Len(), 0)
		require.LessOrEqual(t, s.Len(), MaxMovies)
	}
}
