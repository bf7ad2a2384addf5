// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

//go:build windows

package movie

import (
	"fmt"
	"os"
)

// writeFile truncates and rewrites path. Renaming over an open file is not
// reliable on Windows, so there is no atomic replace here.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
