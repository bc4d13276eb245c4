// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(dataPathEnv, "")

	var stdout, stderr bytes.Buffer
	root := newRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

/*
TestRoot_WalkthroughThenLookup runs the default command end to end.
*/
func TestRoot_WalkthroughThenLookup(t *testing.T) {
	stdout, _, err := run(t, "-27\nexit\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "=== ROMAN EMPERORS DATABASE ===\n"))
	assert.Contains(t, stdout, "=== EMPERORS BY ZODIAC SIGN ===")
	assert.Contains(t, stdout, "In the year -27 BCE, the ruling emperor(s) were:")
}

/*
TestShow prints a profile and fails for unknown names.
*/
func TestShow(t *testing.T) {
	stdout, _, err := run(t, "", "show", "marcus", "aurelius")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Name: Marcus Aurelius\n")
	assert.Contains(t, stdout, "Successor: Commodus\n")

	_, stderr, err := run(t, "", "show", "romulus")
	require.Error(t, err)
	assert.Contains(t, stderr, `no emperor matches "romulus"`)
}

/*
TestYear covers CE, BCE and malformed years.
*/
func TestYear(t *testing.T) {
	stdout, _, err := run(t, "", "year", "117")
	require.NoError(t, err)
	assert.Contains(t, stdout, "In the year 117 CE")
	assert.Contains(t, stdout, "Name: Trajan\n")
	assert.Contains(t, stdout, "Name: Hadrian\n")

	stdout, _, err = run(t, "", "year", "--", "-100")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No emperor in our database ruled in the year -100 BCE.")

	_, _, err = run(t, "", "year", "MMXXVI")
	require.Error(t, err)
}

/*
TestDataFlag loads a dataset from disk and reports load failures.
*/
func TestDataFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emperors.yaml")
	document := "emperors:\n  - name: \"Romulus Augustulus\"\n    birth: 461\n    death: 511\n    reign_start: 475\n    reign_end: 476\n    dynasty: \"Valentinianic\"\n"
	require.NoError(t, os.WriteFile(path, []byte(document), 0o600))

	stdout, _, err := run(t, "", "--data", path, "walkthrough")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Total emperors in database: 1\n")
	assert.Contains(t, stdout, "Augustus is not in this dataset.")

	_, stderr, err := run(t, "", "--data", filepath.Join(t.TempDir(), "missing.yaml"), "walkthrough")
	require.Error(t, err)
	assert.Contains(t, stderr, "dataset_load_failed")
}
