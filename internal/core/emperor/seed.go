// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package emperor

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/imperium/internal/platform/validate"
)

// # Seed Dataset

//go:embed data/emperors.yaml
var romanEmperorsYAML []byte

// seedDocument is the top-level shape of a dataset file.
type seedDocument struct {
	Emperors []*Emperor `yaml:"emperors"`
}

// # Loading

// NewRomanEmpire builds the collection from the embedded dataset of Roman emperors.
func NewRomanEmpire() (*Empire, error) {
	return LoadYAML(bytes.NewReader(romanEmperorsYAML))
}

// LoadFile builds a collection from a YAML dataset on disk.
func LoadFile(path string) (*Empire, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: open dataset: %w", err)
	}
	defer file.Close()

	return LoadYAML(file)
}

/*
LoadYAML decodes a dataset and returns a fully wired [Empire].

Description: Seeding runs in two phases. Every record is decoded, validated and
added in file order first; a second pass then links each record's Successor to
the next record. The final record has no successor.

Parameters:
  - reader: io.Reader (YAML document with a top-level "emperors" list)

Returns:
  - *Empire: The populated collection
  - error: Decoding failures or apperr.ValidationError for invalid records
*/
func LoadYAML(reader io.Reader) (*Empire, error) {
	var document seedDocument

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	if err := decoder.Decode(&document); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("seed: dataset is empty")
		}
		return nil, fmt.Errorf("seed: decode dataset: %w", err)
	}

	if err := validateRecords(document.Emperors); err != nil {
		return nil, err
	}

	// Phase 1: own every record in the collection
	empire := NewEmpire()
	for _, record := range document.Emperors {
		normalize(record)
		empire.Add(record)
	}

	// Phase 2: non-owning successor links, by position
	linkSuccessors(empire.emperors)

	return empire, nil
}

// linkSuccessors points every record at the one that follows it.
func linkSuccessors(records []*Emperor) {
	for i := 0; i+1 < len(records); i++ {
		records[i].Successor = records[i+1]
	}
}

// normalize replaces absent lists with empty ones so iteration is uniform.
func normalize(record *Emperor) {
	if record.NotableAchievements == nil {
		record.NotableAchievements = []string{}
	}
	if record.Wives == nil {
		record.Wives = []string{}
	}
}

// # Validation

// validateRecords checks the chronological invariants of every record.
func validateRecords(records []*Emperor) error {
	validator := &validate.Validator{}

	for index, record := range records {
		if record == nil {
			validator.Custom(field(index, ""), true, "Record must not be empty")
			continue
		}

		validator.
			Required(field(index, FieldName), record.Name).
			Custom(field(index, FieldDeath), record.Birth > record.Death,
				"Death must not precede birth").
			Custom(field(index, FieldReignEnd), record.ReignStart > record.ReignEnd,
				"Reign must not end before it starts").
			Custom(field(index, FieldReignStart), record.Birth > record.ReignStart,
				"Reign must not start before birth")
	}

	return validator.Err()
}

func field(index int, name string) string {
	if name == "" {
		return fmt.Sprintf("emperors[%d]", index)
	}
	return fmt.Sprintf("emperors[%d].%s", index, name)
}
