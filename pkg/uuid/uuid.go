// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides the identifier schemes used across the platform.

Two flavours are exposed:

  - Time-ordered: Version 7 values for correlation ids (request tracing).
  - Name-based: Version 5 values derived from stable record attributes, so the
    same seed record always receives the same id across process restarts.
*/
package uuid

import (
	"strings"

	"github.com/google/uuid"
)

// Namespace scopes every name-based id generated by this package.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://imperium.yomira.app/"))

// # Generators

// New generates a new UUIDv7 string.
//
// It falls back to a random UUIDv4 if the time-ordered generator fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}

	return id.String()
}

// FromName derives a deterministic UUIDv5 string from the given parts.
//
// Parts are joined with "|" before hashing, so ("a", "b") and ("a|b") collide
// by construction; callers pass fixed-arity tuples.
func FromName(parts ...string) string {
	return uuid.NewSHA1(Namespace, []byte(strings.Join(parts, "|"))).String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
