// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

//go:build !windows

package movie

import (
	"fmt"

	"github.com/google/renameio/v2"
)

// writeFile replaces path atomically: the data goes to a temp file in the
// same directory, is fsynced, then renamed over the old file.
func writeFile(path string, data []byte) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("create pending file for %s: %w", path, err)
	}
	defer pendingFile.Cleanup()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
