// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package movie

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Encode renders m as a data-file line: "<title>,<0|1>\n".
func Encode(m Movie) string {
	flag := "0"
	if m.Watched {
		flag = "1"
	}
	return m.Title + "," + flag + "\n"
}

// Decode parses one data-file line. Leading whitespace is ignored, the title
// runs up to the first comma and everything after it must be the 0 or 1 flag.
func Decode(line string) (Movie, error) {
	line = strings.TrimRight(line, "\r\n")
	line = strings.TrimLeft(line, " \t\n\v\f\r")

	comma := strings.IndexByte(line, ',')
	if comma <= 0 {
		return Movie{}, fmt.Errorf("%w: %q has no title", ErrParse, line)
	}
	title := line[:comma]
	if len(title) > MaxTitleLen {
		return Movie{}, fmt.Errorf("%w: title longer than %d characters", ErrParse, MaxTitleLen)
	}

	switch strings.TrimSpace(line[comma+1:]) {
	case "0":
		return Movie{Title: title, Watched: false}, nil
	case "1":
		return Movie{Title: title, Watched: true}, nil
	default:
		return Movie{}, fmt.Errorf("%w: %q has no 0/1 watched flag", ErrParse, line)
	}
}

// EncodeAll writes one encoded line per movie, in order.
func EncodeAll(w io.Writer, movies []Movie) error {
	for _, m := range movies {
		if _, err := io.WriteString(w, Encode(m)); err != nil {
			return err
		}
	}
	return nil
}

// SaveAll replaces the file at path with the encoded movies. Any failure is
// reported as ErrIO; the caller's in-memory records are not touched.
func SaveAll(movies []Movie, path string) error {
	var buf bytes.Buffer
	if err := EncodeAll(&buf, movies); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := writeFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
