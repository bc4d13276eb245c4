// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli renders the emperor dataset for a terminal.

It holds the presentation layer only: a fixed walkthrough report and the
interactive year lookup loop. Both are written against [io.Reader] and
[io.Writer] so the cobra commands and the tests drive them the same way.
*/
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/taibuivan/imperium/internal/core/emperor"
	"github.com/taibuivan/imperium/pkg/slice"
)

// # Walkthrough Settings

const (
	// topCount is the size of every ranking shown in the walkthrough.
	topCount = 3

	showcaseDynasty = "Julio-Claudian"
	showcaseName    = "Augustus"

	firstCenturyStart = 1
	firstCenturyEnd   = 100
)

// printer remembers the first write error so report code can stay linear.
type printer struct {
	writer io.Writer
	err    error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.writer, format+"\n", args...)
}

func (p *printer) text(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.writer, s)
}

// section starts a titled block.
func (p *printer) section(title string) {
	p.line("=== %s ===", title)
}

// gap closes a block with two blank lines.
func (p *printer) gap() {
	p.line("\n")
}

/*
Walkthrough writes the fixed overview report of empire to w.

Sections, in order: dataset header, longest reigns, the Julio-Claudian
dynasty, emperors of the 1st century CE, the full Augustus profile,
assassinations, youngest at accession, most achievements and the zodiac
grouping.

Returns:
  - error: The first write error, if any
*/
func Walkthrough(w io.Writer, empire *emperor.Empire) error {
	p := &printer{writer: w}

	p.section("ROMAN EMPERORS DATABASE")
	p.line("Total emperors in database: %d", empire.Len())
	p.line("Dynasties: %s", strings.Join(empire.Dynasties(), ", "))
	p.gap()

	p.section("LONGEST REIGNING EMPERORS")
	for _, record := range empire.TopLongestReigns(topCount) {
		p.line("%s: %d years", record.Name, record.ReignDuration())
	}
	p.gap()

	p.section(strings.ToUpper(showcaseDynasty) + " DYNASTY")
	for _, record := range empire.ByDynasty(showcaseDynasty) {
		p.line("%s", record.Name)
	}
	p.gap()

	p.section("EMPERORS WHO RULED DURING THE 1ST CENTURY CE")
	for _, record := range empire.ByPeriod(firstCenturyStart, firstCenturyEnd) {
		p.line("%s: %d - %d CE", record.Name, record.ReignStart, record.ReignEnd)
	}
	p.gap()

	p.section("DETAILED INFORMATION ABOUT " + strings.ToUpper(showcaseName))
	if augustus := empire.FindByName(showcaseName); augustus != nil {
		p.line("%s", augustus.Render())
	} else {
		p.line("%s is not in this dataset.", showcaseName)
	}
	p.gap()

	p.section("EMPERORS WHO DIED BY ASSASSINATION")
	for _, record := range empire.ByCauseOfDeath("assassinated") {
		p.line("%s: %s", record.Name, record.CauseOfDeath)
	}
	p.gap()

	p.section("YOUNGEST EMPERORS AT ACCESSION")
	for _, record := range empire.TopYoungestAtAccession(topCount) {
		p.line("%s: %d years old", record.Name, record.AgeAtAccession())
	}
	p.gap()

	p.section("EMPERORS WITH MOST ACHIEVEMENTS")
	for _, record := range empire.TopMostAchievements(topCount) {
		p.line("%s: %d notable achievements", record.Name, len(record.NotableAchievements))
	}
	p.gap()

	p.section("EMPERORS BY ZODIAC SIGN")
	for _, group := range empire.ByZodiacGrouped() {
		p.line("%s: %s", group.Sign, strings.Join(names(group.Emperors), ", "))
	}
	p.gap()

	return p.err
}

// Profile writes the full profile of the first record whose name contains fragment.
//
// It reports whether a record matched.
func Profile(w io.Writer, empire *emperor.Empire, fragment string) (bool, error) {
	record := empire.FindByName(fragment)
	if record == nil {
		return false, nil
	}

	p := &printer{writer: w}
	p.line("%s", record.Render())
	if successor := record.SuccessorName(); successor != "" {
		p.line("Successor: %s", successor)
	}
	return true, p.err
}

func names(records []*emperor.Emperor) []string {
	return slice.Map(records, func(record *emperor.Emperor) string { return record.Name })
}
