// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"movie-manager/internal/config"
	"movie-manager/internal/movie"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv points config and log directories at a temp dir and returns a
// data file path inside it, seeded with contents unless empty.
func setupEnv(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	path := filepath.Join(dir, "movies.txt")
	if contents != "" {
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	}
	return path
}

// execute runs the root command once with fresh flag values.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	dataFileFlag = ""
	listToWatch = false
	listTable = false
	addWatched = false
	cfg = config.Config{}
	dataPath = ""

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	releaseLock()
	return out.String(), err
}

func readData(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestList(t *testing.T) {
	path := setupEnv(t, "Matrix,0\nUp,1\nHer,0\n")

	out, err := execute(t, "", "list", "--file", path)
	require.NoError(t, err)
	want := "1. Matrix [To Watch]\n2. Up [Watched]\n3. Her [To Watch]\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("list output mismatch (-want +got):\n%s", diff)
	}
}

func TestList_ToWatchNumbersSubsequence(t *testing.T) {
	path := setupEnv(t, "Matrix,1\nUp,0\nHer,0\n")

	out, err := execute(t, "", "ls", "-f", path, "--to-watch")
	require.NoError(t, err)
	assert.Equal(t, "1. Up [To Watch]\n2. Her [To Watch]\n", out)
}

func TestList_Empty(t *testing.T) {
	path := setupEnv(t, "")

	out, err := execute(t, "", "list", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "No movies yet.\n", out)

	out, err = execute(t, "", "list", "-f", path, "-w")
	require.NoError(t, err)
	assert.Equal(t, "No movies in 'To Watch' list.\n", out)
}

func TestList_Table(t *testing.T) {
	path := setupEnv(t, "Matrix,0\nUp,1\n")

	out, err := execute(t, "", "list", "-f", path, "--table")
	require.NoError(t, err)
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Matrix")
	assert.Contains(t, out, "Watched")
}

func TestAdd(t *testing.T) {
	path := setupEnv(t, "")

	out, err := execute(t, "", "add", "-f", path, "The", "Matrix")
	require.NoError(t, err)
	assert.Equal(t, "Added \"The Matrix\" to 'To Watch'.\n", out)

	_, err = execute(t, "", "add", "-f", path, "--watched", "Her")
	require.NoError(t, err)
	assert.Equal(t, "The Matrix,0\nHer,1\n", readData(t, path))
}

func TestAdd_RejectsComma(t *testing.T) {
	path := setupEnv(t, "")

	_, err := execute(t, "", "add", "-f", path, "Hello, World")
	assert.ErrorIs(t, err, movie.ErrInvalidInput)
	assert.NoFileExists(t, path)
}

func TestAdd_RequiresTitle(t *testing.T) {
	path := setupEnv(t, "")

	_, err := execute(t, "", "add", "-f", path)
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	path := setupEnv(t, "Matrix,0\nUp,1\nHer,0\n")

	out, err := execute(t, "", "watch", "-f", path, "2")
	require.NoError(t, err)
	assert.Equal(t, "Marked \"Her\" as watched.\n", out)
	assert.Equal(t, "Matrix,0\nUp,1\nHer,1\n", readData(t, path))
}

func TestWatch_Errors(t *testing.T) {
	path := setupEnv(t, "Matrix,1\n")

	_, err := execute(t, "", "watch", "-f", path, "1")
	assert.ErrorIs(t, err, movie.ErrInvalidIndex)

	_, err = execute(t, "", "watch", "-f", path, "abc")
	assert.ErrorIs(t, err, movie.ErrInvalidInput)
	assert.Equal(t, "Matrix,1\n", readData(t, path))
}

func TestDelete(t *testing.T) {
	path := setupEnv(t, "Matrix,0\nUp,1\nHer,0\n")

	out, err := execute(t, "", "rm", "-f", path, "2")
	require.NoError(t, err)
	assert.Equal(t, "Deleted \"Up\".\n", out)
	assert.Equal(t, "Matrix,0\nHer,0\n", readData(t, path))

	_, err = execute(t, "", "delete", "-f", path, "3")
	assert.ErrorIs(t, err, movie.ErrInvalidIndex)
}

func TestDelete_LockedByAnotherSession(t *testing.T) {
	path := setupEnv(t, "Matrix,0\n")

	unlock, err := movie.Lock(path)
	require.NoError(t, err)
	defer func() { _ = unlock() }()

	_, err = execute(t, "", "delete", "-f", path, "1")
	assert.ErrorIs(t, err, movie.ErrLocked)
	assert.Equal(t, "Matrix,0\n", readData(t, path))
}

func TestRoot_RunsMenu(t *testing.T) {
	path := setupEnv(t, "")

	out, err := execute(t, "1\nMatrix\n\n3\n\n0\n", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "===== MOVIE MANAGEMENT SYSTEM =====")
	assert.Contains(t, out, "1. Matrix [To Watch]")
	assert.Contains(t, out, "Exiting...")
	assert.Equal(t, "Matrix,0\n", readData(t, path))
}

func TestRoot_EOFExitsCleanly(t *testing.T) {
	path := setupEnv(t, "")

	out, err := execute(t, "", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exiting...")
}

func TestRoot_DataFileInMissingDirectory(t *testing.T) {
	setupEnv(t, "")
	path := filepath.Join(t.TempDir(), "nodir", "movies.txt")

	out, err := execute(t, "3\n\n1\nMatrix\n\n0\n", "-f", path)

	require.NoError(t, err)
	assert.Contains(t, out, "No movies yet.")
	assert.Contains(t, out, "Error: could not save movie list")
	assert.Contains(t, out, "Exiting...")
	assert.NoFileExists(t, path)
}

func TestRoot_UnreadableDataFileAborts(t *testing.T) {
	setupEnv(t, "")

	// A directory cannot be loaded as a movie list.
	_, err := execute(t, "0\n", "-f", t.TempDir())
	assert.Error(t, err)
}

func TestConfig_SetAndGet(t *testing.T) {
	setupEnv(t, "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := execute(t, "", "config", "set-data-file", "~/films.txt")
	require.NoError(t, err)
	_, err = execute(t, "", "config", "set-color", "never")
	require.NoError(t, err)
	_, err = execute(t, "", "config", "set-clear", "false")
	require.NoError(t, err)
	_, err = execute(t, "", "config", "set-log-level", "DEBUG")
	require.NoError(t, err)

	loaded, err := config.LoadConfig()
	require.NoError(t, err)
	want := config.Config{DataFile: "~/films.txt", Color: "never", NoClear: true, LogLevel: "debug"}
	if diff := cmp.Diff(want, loaded); diff != "" {
		t.Errorf("saved config mismatch (-want +got):\n%s", diff)
	}

	out, err := execute(t, "", "config", "get")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(home, "films.txt")+" (from config)")
	assert.Contains(t, out, "Color:       never")
	assert.Contains(t, out, "Clear:       false")
	assert.Contains(t, out, "Log level:   debug")

	_, err = execute(t, "", "add", "Heat")
	require.NoError(t, err)
	assert.Equal(t, "Heat,0\n", readData(t, filepath.Join(home, "films.txt")))

	_, err = execute(t, "", "config", "set-data-file", "")
	require.NoError(t, err)
	loaded, err = config.LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, loaded.DataFile)
}

func TestConfig_RejectsBadValues(t *testing.T) {
	setupEnv(t, "")

	_, err := execute(t, "", "config", "set-data-file", "relative.txt")
	assert.Error(t, err)
	_, err = execute(t, "", "config", "set-color", "sometimes")
	assert.Error(t, err)
	_, err = execute(t, "", "config", "set-clear", "maybe")
	assert.Error(t, err)
	_, err = execute(t, "", "config", "set-log-level", "loud")
	assert.Error(t, err)
}

func TestCompletion(t *testing.T) {
	path := setupEnv(t, "Matrix,1\nUp,0\nHer,0\n")
	dataFileFlag = path
	t.Cleanup(func() { dataFileFlag = "" })

	got, directive := movieCompletionFunc(&cobra.Command{}, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Equal(t, []string{"1\tMatrix [Watched]", "2\tUp [To Watch]", "3\tHer [To Watch]"}, got)

	got, _ = toWatchCompletionFunc(&cobra.Command{}, nil, "2")
	assert.Equal(t, []string{"2\tHer"}, got)

	got, _ = toWatchCompletionFunc(&cobra.Command{}, []string{"1"}, "")
	assert.Empty(t, got)
}

func TestIndexSuggestions_Prefix(t *testing.T) {
	positions := []int{1, 2, 10, 11}
	titles := []string{"a", "b", "c", "d"}

	assert.Equal(t, []string{"1\ta", "10\tc", "11\td"}, indexSuggestions(positions, titles, "1"))
	assert.Nil(t, indexSuggestions(positions, titles, "3"))
}
