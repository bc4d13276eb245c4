// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/taibuivan/imperium/internal/core/emperor"
)

// # Year Lookup

const (
	yearPrompt   = "Enter a year to find who was emperor (e.g., 14, -27, or 'exit' to quit): "
	invalidYear  = "Please enter a valid year (integer) or 'exit' to quit."
	exitSentinel = "exit"
)

// Era returns the suffix used when printing year: "CE" from year zero on, "BCE" before.
func Era(year int) string {
	if year < 0 {
		return "BCE"
	}
	return "CE"
}

// ReportYear writes the records that reigned in year, or a no-match message.
//
// The year is printed as given, so BCE years keep their minus sign.
func ReportYear(w io.Writer, empire *emperor.Empire, year int) error {
	p := &printer{writer: w}

	rulers := empire.FindByYear(year)
	if len(rulers) == 0 {
		p.line("\nNo emperor in our database ruled in the year %d %s.", year, Era(year))
		return p.err
	}

	p.line("\nIn the year %d %s, the ruling emperor(s) were:", year, Era(year))
	for _, record := range rulers {
		p.line("\n%s", record.Render())
	}
	return p.err
}

/*
YearLoop prompts for years on out and answers each one from empire.

Description: Input is read line by line. "exit" (any case, surrounding
spaces ignored) or the end of input stops the loop. Lines that are not
integers print a hint and the loop continues. Every answer is followed
by a blank line.

Returns:
  - error: A read or write failure; nil on exit or end of input
*/
func YearLoop(in io.Reader, out io.Writer, empire *emperor.Empire) error {
	scanner := bufio.NewScanner(in)
	p := &printer{writer: out}

	for {
		p.text(yearPrompt)
		if p.err != nil {
			return p.err
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, exitSentinel) {
			return nil
		}

		year, err := strconv.Atoi(input)
		if err != nil {
			p.line(invalidYear)
		} else if err := ReportYear(out, empire, year); err != nil {
			return err
		}

		p.line("")
		if p.err != nil {
			return p.err
		}
	}
}
