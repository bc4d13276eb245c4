// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package emperor

import (
	"github.com/taibuivan/imperium/internal/platform/apperr"
	"github.com/taibuivan/imperium/internal/platform/validate"
	"github.com/taibuivan/imperium/pkg/pagination"
	"github.com/taibuivan/imperium/pkg/slice"
	"github.com/taibuivan/imperium/pkg/slug"
	"github.com/taibuivan/imperium/pkg/uuid"
)

// # Query Limits

const (
	// MaxFragmentLength bounds free-text search fragments.
	MaxFragmentLength = 200

	// MaxRankingSize is the largest n accepted by ranking queries.
	MaxRankingSize = 100

	// DefaultRankingSize is used when a ranking request omits n.
	DefaultRankingSize = 1
)

// # Ranking Metrics

// Metric names a ranking exposed by [Service.Ranking].
type Metric string

const (
	MetricLongestReign        Metric = "longest-reign"
	MetricShortestReign       Metric = "shortest-reign"
	MetricOldestAtDeath       Metric = "oldest-at-death"
	MetricYoungestAtAccession Metric = "youngest-at-accession"
	MetricMostAchievements    Metric = "most-achievements"
)

// Metrics lists every supported [Metric] in display order.
var Metrics = []Metric{
	MetricLongestReign,
	MetricShortestReign,
	MetricOldestAtDeath,
	MetricYoungestAtAccession,
	MetricMostAchievements,
}

// # Read Models

// DynastySummary describes one dynasty label and its member count.
type DynastySummary struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// Summary is the dataset overview shown at the top of the walkthrough.
type Summary struct {
	Total     int      `json:"total"`
	Dynasties []string `json:"dynasties"`
}

// # Service Layer

// Service validates query input and maps empty single-record lookups to errors.
//
// The underlying [Empire] never fails; this layer is where "no match" becomes
// apperr.NotFound for callers that ask for exactly one record.
type Service struct {
	empire *Empire
}

// NewService constructs a new emperor [Service].
func NewService(empire *Empire) *Service {
	return &Service{empire: empire}
}

// Summary returns the record count and the sorted dynasty labels.
func (service *Service) Summary() Summary {
	return Summary{Total: service.empire.Len(), Dynasties: service.empire.Dynasties()}
}

/*
List returns one page of records in chronological order.

Returns:
  - []*Emperor: The requested page (possibly empty)
  - int: Total record count for pagination
*/
func (service *Service) List(params pagination.Params) ([]*Emperor, int) {
	all := service.empire.Emperors()
	return pagination.Window(all, params), len(all)
}

/*
Get retrieves a record by its stable identifier.

Returns:
  - *Emperor: The matching record
  - error: apperr.ValidationError for malformed ids, apperr.NotFound if missing
*/
func (service *Service) Get(id string) (*Emperor, error) {
	if !uuid.Valid(id) {
		return nil, validate.RequiredError("id", "Must be a valid UUID")
	}

	record := service.empire.FindByID(id)
	if record == nil {
		return nil, apperr.NotFound("Emperor")
	}

	return record, nil
}

/*
Search returns the first record whose name contains the fragment.

Returns:
  - *Emperor: First match in chronological order
  - error: apperr.ValidationError for empty fragments, apperr.NotFound if nothing matched
*/
func (service *Service) Search(fragment string) (*Emperor, error) {
	if err := validateFragment(FieldName, fragment); err != nil {
		return nil, err
	}

	record := service.empire.FindByName(fragment)
	if record == nil {
		return nil, apperr.NotFound("Emperor")
	}

	return record, nil
}

// ByYear returns the records that reigned during year.
func (service *Service) ByYear(year int) []*Emperor {
	return service.empire.FindByYear(year)
}

// ByPeriod returns the records whose reign overlaps [start, end].
func (service *Service) ByPeriod(start, end int) ([]*Emperor, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldEnd, end < start, "Must not precede start")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.empire.ByPeriod(start, end), nil
}

// ByWife returns the records married to someone matching the fragment.
func (service *Service) ByWife(fragment string) ([]*Emperor, error) {
	if err := validateFragment(FieldName, fragment); err != nil {
		return nil, err
	}
	return service.empire.FindByWife(fragment), nil
}

// ByCauseOfDeath returns the records whose cause of death matches the fragment.
func (service *Service) ByCauseOfDeath(fragment string) ([]*Emperor, error) {
	if err := validateFragment(FieldQuery, fragment); err != nil {
		return nil, err
	}
	return service.empire.ByCauseOfDeath(fragment), nil
}

// ByZodiac returns the records born under sign.
func (service *Service) ByZodiac(sign string) []*Emperor {
	return service.empire.ByZodiac(sign)
}

// ZodiacGroups returns the records grouped by sign.
func (service *Service) ZodiacGroups() []SignGroup {
	return service.empire.ByZodiacGrouped()
}

// # Dynasty Methods

// Dynasties returns every dynasty label with its slug and member count.
func (service *Service) Dynasties() []DynastySummary {
	return slice.Map(service.empire.Dynasties(), func(label string) DynastySummary {
		return DynastySummary{
			Name:  label,
			Slug:  slug.From(label),
			Count: len(service.empire.ByDynasty(label)),
		}
	})
}

/*
ByDynastySlug resolves a URL slug to a dynasty label and returns its members.

Returns:
  - string: The resolved dynasty label
  - []*Emperor: Members in chronological order
  - error: apperr.NotFound if no dynasty slugifies to the given value
*/
func (service *Service) ByDynastySlug(dynastySlug string) (string, []*Emperor, error) {
	for _, label := range service.empire.Dynasties() {
		if slug.Matches(label, dynastySlug) {
			return label, service.empire.ByDynasty(label), nil
		}
	}
	return "", nil, apperr.NotFound("Dynasty")
}

// # Ranking Methods

/*
Ranking returns the top n records for the given metric.

Parameters:
  - metric: Metric
  - n: int (0..MaxRankingSize)

Returns:
  - []*Emperor: Stable-sorted, truncated records
  - error: apperr.ValidationError for unknown metrics or out-of-range n
*/
func (service *Service) Ranking(metric Metric, n int) ([]*Emperor, error) {
	allowed := slice.Map(Metrics, func(m Metric) string { return string(m) })

	validator := &validate.Validator{}
	validator.
		OneOf(FieldMetric, string(metric), allowed...).
		Range(FieldCount, n, 0, MaxRankingSize)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	switch metric {
	case MetricLongestReign:
		return service.empire.TopLongestReigns(n), nil
	case MetricShortestReign:
		return service.empire.TopShortestReigns(n), nil
	case MetricOldestAtDeath:
		return service.empire.TopOldestAtDeath(n), nil
	case MetricYoungestAtAccession:
		return service.empire.TopYoungestAtAccession(n), nil
	default:
		return service.empire.TopMostAchievements(n), nil
	}
}

// validateFragment requires a non-blank, bounded search fragment.
func validateFragment(field, fragment string) error {
	validator := &validate.Validator{}
	return validator.
		Required(field, fragment).
		MaxLen(field, fragment, MaxFragmentLength).
		Err()
}
