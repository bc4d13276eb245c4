// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package emperor defines the reference dataset of Roman emperors and its query surface.

It owns the record model, the ordered collection that indexes dynasties, the seed
loader that builds the collection from the embedded dataset, and the service and
HTTP layers that expose the queries.

Core Responsibility:

  - Records: [Emperor] holds biographical and reign data plus derived ages.
  - Collection: [Empire] keeps records in chronological insertion order and
    answers lookup, filter and ranking queries without mutating that order.
  - Seeding: [NewRomanEmpire] and [LoadYAML] build a fully wired collection.

Years use astronomical numbering: negative values are BCE, there is no gap at
year zero, and all arithmetic is plain subtraction.
*/
package emperor

import (
	"strconv"
	"strings"

	"github.com/taibuivan/imperium/pkg/uuid"
)

// # Field Identifiers

// Field names for validation details and query parameters in the emperor domain.
const (
	FieldName       = "name"
	FieldDeath      = "death"
	FieldReignStart = "reign_start"
	FieldReignEnd   = "reign_end"
	FieldYear       = "year"
	FieldStart      = "start"
	FieldEnd        = "end"
	FieldCount      = "n"
	FieldQuery      = "q"
	FieldMetric     = "metric"
)

// # Record Model

// Emperor is one emperor's biographical and reign record.
//
// Records are built once during seeding and treated as read-only afterwards.
// Optional text fields use the empty string for "absent"; list fields are
// empty (never nil after loading) when there is nothing to show.
type Emperor struct {
	Name       string `json:"name" yaml:"name"`
	Birth      int    `json:"birth" yaml:"birth"`
	Death      int    `json:"death" yaml:"death"`
	ReignStart int    `json:"reign_start" yaml:"reign_start"`
	ReignEnd   int    `json:"reign_end" yaml:"reign_end"`

	Dynasty             string   `json:"dynasty,omitempty" yaml:"dynasty"`
	NotableAchievements []string `json:"notable_achievements" yaml:"notable_achievements"`
	CauseOfDeath        string   `json:"cause_of_death,omitempty" yaml:"cause_of_death"`

	// Predecessor is freeform text. Disputed transitions are written as
	// "A/B" and are never resolved to a record.
	Predecessor string `json:"predecessor,omitempty" yaml:"predecessor"`

	// Successor is a non-owning link into the same [Empire], set by the
	// second seeding pass.
	Successor *Emperor `json:"-" yaml:"-"`

	Wives  []string `json:"wives" yaml:"wives"`
	Zodiac string   `json:"zodiac,omitempty" yaml:"zodiac"`
}

// # Derived Values

// ReignDuration returns the length of the reign in years. Single-year reigns yield zero.
func (e *Emperor) ReignDuration() int {
	return e.ReignEnd - e.ReignStart
}

// AgeAtDeath returns the emperor's age in years at death.
func (e *Emperor) AgeAtDeath() int {
	return e.Death - e.Birth
}

// AgeAtAccession returns the emperor's age in years when the reign began.
func (e *Emperor) AgeAtAccession() int {
	return e.ReignStart - e.Birth
}

// ID returns a stable identifier derived from the name and the first reign year.
func (e *Emperor) ID() string {
	return uuid.FromName(e.Name, strconv.Itoa(e.ReignStart))
}

// SuccessorName returns the successor's name, or "" when there is none.
func (e *Emperor) SuccessorName() string {
	if e.Successor == nil {
		return ""
	}
	return e.Successor.Name
}

// # Rendering

/*
Render produces the canonical multi-line profile of the emperor.

Layout (fixed order):

	Name: <name>
	Lived: <birth> CE - <death> CE (Age: <age> years)
	Reign: <start> CE - <end> CE (<duration> years)
	Dynasty: <dynasty or None>
	Zodiac Sign: <sign or Unknown>
	Wives/Consorts:          (only when wives are known)
	  - <wife>
	Notable Achievements:    (only when achievements are listed)
	  - <achievement>
	Cause of Death: <cause>  (only when known)

The output has no trailing newline and is identical across calls.
*/
func (e *Emperor) Render() string {
	var builder strings.Builder

	builder.WriteString("Name: " + e.Name)
	builder.WriteString("\nLived: " + strconv.Itoa(e.Birth) + " CE - " + strconv.Itoa(e.Death) +
		" CE (Age: " + strconv.Itoa(e.AgeAtDeath()) + " years)")
	builder.WriteString("\nReign: " + strconv.Itoa(e.ReignStart) + " CE - " + strconv.Itoa(e.ReignEnd) +
		" CE (" + strconv.Itoa(e.ReignDuration()) + " years)")
	builder.WriteString("\nDynasty: " + orDefault(e.Dynasty, "None"))
	builder.WriteString("\nZodiac Sign: " + orDefault(e.Zodiac, "Unknown"))

	writeSection(&builder, "Wives/Consorts:", e.Wives)
	writeSection(&builder, "Notable Achievements:", e.NotableAchievements)

	if e.CauseOfDeath != "" {
		builder.WriteString("\nCause of Death: " + e.CauseOfDeath)
	}

	return builder.String()
}

// String implements [fmt.Stringer] using [Emperor.Render].
func (e *Emperor) String() string {
	return e.Render()
}

// writeSection appends a titled bullet list, or nothing when items is empty.
func writeSection(builder *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}

	builder.WriteString("\n" + title)
	for _, item := range items {
		builder.WriteString("\n  - " + item)
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
