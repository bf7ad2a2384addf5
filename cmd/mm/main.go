// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package main

import "movie-manager/cmd/cli"

func main() {
	// With no arguments the CLI opens the interactive menu.
	cli.RunCLI()
}
