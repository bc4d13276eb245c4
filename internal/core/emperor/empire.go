// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package emperor

import (
	"slices"

	"github.com/taibuivan/imperium/pkg/fold"
	"github.com/taibuivan/imperium/pkg/slice"
)

// # Collection

// Empire is the ordered collection of [Emperor] records.
//
// Insertion order is the canonical chronological order and is never re-sorted.
// The dynasty index always equals the set of non-empty Dynasty values across
// all added records.
//
// # Concurrency
//
// Empire is single-writer during seeding and read-only afterwards. Once the
// seeding function returns it can be shared between goroutines without locking.
type Empire struct {
	emperors  []*Emperor
	dynasties map[string]struct{}
	byID      map[string]*Emperor
}

// NewEmpire constructs an empty [Empire].
func NewEmpire() *Empire {
	return &Empire{
		dynasties: make(map[string]struct{}),
		byID:      make(map[string]*Emperor),
	}
}

// Add appends a record and indexes its dynasty label.
//
// Duplicates are accepted; the collection never rejects a record.
func (empire *Empire) Add(record *Emperor) {
	empire.emperors = append(empire.emperors, record)

	if record.Dynasty != "" {
		empire.dynasties[record.Dynasty] = struct{}{}
	}

	// First record wins on id collisions, matching the lookup-by-name rule
	if _, exists := empire.byID[record.ID()]; !exists {
		empire.byID[record.ID()] = record
	}
}

// Emperors returns the records in insertion order.
//
// The returned slice is a copy; reordering it does not affect the collection.
func (empire *Empire) Emperors() []*Emperor {
	return slices.Clone(empire.emperors)
}

// Len returns the number of records.
func (empire *Empire) Len() int {
	return len(empire.emperors)
}

// Dynasties returns the distinct dynasty labels in lexical order.
func (empire *Empire) Dynasties() []string {
	labels := make([]string, 0, len(empire.dynasties))
	for label := range empire.dynasties {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

// HasDynasty reports whether any record carries the given label.
func (empire *Empire) HasDynasty(label string) bool {
	_, ok := empire.dynasties[label]
	return ok
}

// # Lookups

// FindByID returns the record with the given [Emperor.ID], or nil.
func (empire *Empire) FindByID(id string) *Emperor {
	return empire.byID[id]
}

// FindByName returns the first record whose name contains fragment, ignoring case.
//
// It is not a unique-key lookup: ambiguous fragments return only the first hit.
// Nil means no record matched.
func (empire *Empire) FindByName(fragment string) *Emperor {
	for _, record := range empire.emperors {
		if fold.Contains(record.Name, fragment) {
			return record
		}
	}
	return nil
}

// FindByYear returns every record whose reign covers year (bounds inclusive).
func (empire *Empire) FindByYear(year int) []*Emperor {
	return slice.Filter(empire.emperors, func(record *Emperor) bool {
		return record.ReignStart <= year && year <= record.ReignEnd
	})
}

// ByDynasty returns the records whose dynasty equals label exactly.
func (empire *Empire) ByDynasty(label string) []*Emperor {
	return slice.Filter(empire.emperors, func(record *Emperor) bool {
		return record.Dynasty == label
	})
}

// ByPeriod returns the records whose reign overlaps [start, end].
//
// A reign only needs to touch the window; it is excluded when it ends before
// start or begins after end.
func (empire *Empire) ByPeriod(start, end int) []*Emperor {
	return slice.Filter(empire.emperors, func(record *Emperor) bool {
		return !(record.ReignEnd < start || record.ReignStart > end)
	})
}

// ByZodiac returns the records whose zodiac sign equals sign exactly.
func (empire *Empire) ByZodiac(sign string) []*Emperor {
	return slice.Filter(empire.emperors, func(record *Emperor) bool {
		return record.Zodiac == sign
	})
}

// FindByWife returns the records with at least one wife entry containing fragment, ignoring case.
//
// Each record appears at most once.
func (empire *Empire) FindByWife(fragment string) []*Emperor {
	return slice.Filter(empire.emperors, func(record *Emperor) bool {
		return slices.ContainsFunc(record.Wives, func(wife string) bool {
			return fold.Contains(wife, fragment)
		})
	})
}

// ByCauseOfDeath returns the records whose cause of death contains fragment, ignoring case.
//
// Records with an unknown cause never match.
func (empire *Empire) ByCauseOfDeath(fragment string) []*Emperor {
	return slice.Filter(empire.emperors, func(record *Emperor) bool {
		return record.CauseOfDeath != "" && fold.Contains(record.CauseOfDeath, fragment)
	})
}

// # Zodiac Grouping

// ZodiacSigns returns the distinct non-empty zodiac signs in lexical order.
func (empire *Empire) ZodiacSigns() []string {
	var signs []string
	for _, record := range empire.emperors {
		if record.Zodiac != "" && !slices.Contains(signs, record.Zodiac) {
			signs = append(signs, record.Zodiac)
		}
	}
	slices.Sort(signs)
	return signs
}

// SignGroup pairs a zodiac sign with its records in insertion order.
type SignGroup struct {
	Sign     string
	Emperors []*Emperor
}

// ByZodiacGrouped returns one [SignGroup] per sign, ordered by sign.
func (empire *Empire) ByZodiacGrouped() []SignGroup {
	return slice.Map(empire.ZodiacSigns(), func(sign string) SignGroup {
		return SignGroup{Sign: sign, Emperors: empire.ByZodiac(sign)}
	})
}

// # Rankings

// TopLongestReigns returns the n records with the longest reigns.
//
// All Top* queries sort a copy stably, so ties keep insertion order. They return
// the whole sorted collection when n exceeds its size and nothing when n <= 0.
func (empire *Empire) TopLongestReigns(n int) []*Emperor {
	return slice.TopBy(empire.emperors, n, slice.Descending, (*Emperor).ReignDuration)
}

// TopShortestReigns returns the n records with the shortest reigns.
func (empire *Empire) TopShortestReigns(n int) []*Emperor {
	return slice.TopBy(empire.emperors, n, slice.Ascending, (*Emperor).ReignDuration)
}

// TopOldestAtDeath returns the n records with the greatest age at death.
func (empire *Empire) TopOldestAtDeath(n int) []*Emperor {
	return slice.TopBy(empire.emperors, n, slice.Descending, (*Emperor).AgeAtDeath)
}

// TopYoungestAtAccession returns the n records with the lowest age at accession.
func (empire *Empire) TopYoungestAtAccession(n int) []*Emperor {
	return slice.TopBy(empire.emperors, n, slice.Ascending, (*Emperor).AgeAtAccession)
}

// TopMostAchievements returns the n records with the most notable achievements.
func (empire *Empire) TopMostAchievements(n int) []*Emperor {
	return slice.TopBy(empire.emperors, n, slice.Descending, func(record *Emperor) int {
		return len(record.NotableAchievements)
	})
}
