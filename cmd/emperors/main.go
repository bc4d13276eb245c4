// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command emperors is the terminal front end for the Roman emperors dataset.
//
// Without a subcommand it prints the walkthrough report and then opens the
// interactive year lookup. Diagnostics go to stderr so stdout stays the report.
package main

import (
	"os"
)

func main() {
	root := newRootCommand(os.Stdin, os.Stdout, os.Stderr)

	// Cobra already printed the error and usage
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
