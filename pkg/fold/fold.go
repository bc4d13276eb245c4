// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package fold provides case-insensitive text matching built on Unicode case folding.

It is used by the lookup queries that accept free-text fragments (names, wives,
causes of death) so that "POPPAEA", "poppaea" and "Poppaea" behave identically.
*/
package fold

import (
	"strings"

	"golang.org/x/text/cases"
)

// String returns the case-folded form of s.
//
// A new [cases.Caser] is created per call because casers keep internal state
// and are not safe for concurrent use.
func String(s string) string {
	return cases.Fold().String(s)
}

// Contains reports whether fragment occurs in text, ignoring case.
//
// An empty fragment matches every text, mirroring [strings.Contains].
func Contains(text, fragment string) bool {
	return strings.Contains(String(text), String(fragment))
}
