// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package emperor_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/imperium/internal/core/emperor"
	"github.com/taibuivan/imperium/internal/platform/apperr"
)

/*
TestNewRomanEmpire_Successors checks that every record links to the next one.
*/
func TestNewRomanEmpire_Successors(t *testing.T) {
	records := seeded(t).Emperors()
	require.Len(t, records, 21)

	for i := 0; i+1 < len(records); i++ {
		assert.Same(t, records[i+1], records[i].Successor, "successor of %s", records[i].Name)
	}

	assert.Nil(t, records[len(records)-1].Successor)
	assert.Equal(t, "Tiberius", records[0].SuccessorName())
}

/*
TestNewRomanEmpire_Fields spot-checks optional fields and normalized lists.
*/
func TestNewRomanEmpire_Fields(t *testing.T) {
	empire := seeded(t)

	augustus := empire.FindByName("Augustus")
	require.NotNil(t, augustus)
	assert.Empty(t, augustus.Predecessor)

	// Disputed transitions stay as freeform text
	severus := empire.FindByName("Septimius")
	require.NotNil(t, severus)
	assert.Equal(t, "Pertinax/Didius Julianus", severus.Predecessor)

	nerva := empire.FindByName("Nerva")
	require.NotNil(t, nerva)
	assert.NotNil(t, nerva.Wives)
	assert.Empty(t, nerva.Wives)
}

/*
TestLoadYAML_Minimal builds a small collection from an inline document.
*/
func TestLoadYAML_Minimal(t *testing.T) {
	document := `
emperors:
  - name: "Pertinax"
    birth: 126
    death: 193
    reign_start: 193
    reign_end: 193
  - name: "Didius Julianus"
    birth: 133
    death: 193
    reign_start: 193
    reign_end: 193
    dynasty: ""
`
	empire, err := emperor.LoadYAML(strings.NewReader(document))
	require.NoError(t, err)

	records := empire.Emperors()
	require.Len(t, records, 2)
	assert.Same(t, records[1], records[0].Successor)
	assert.Nil(t, records[1].Successor)
	assert.Empty(t, empire.Dynasties())
	assert.NotNil(t, records[0].NotableAchievements)
}

/*
TestLoadYAML_Failures covers malformed, empty and invalid datasets.
*/
func TestLoadYAML_Failures(t *testing.T) {
	tests := []struct {
		name       string
		document   string
		wantField  string
		wantErrMsg string
	}{
		{
			name:       "empty_document",
			document:   "",
			wantErrMsg: "dataset is empty",
		},
		{
			name:       "unknown_field",
			document:   "emperors:\n  - name: \"Nero\"\n    fiddle: true\n",
			wantErrMsg: "decode dataset",
		},
		{
			name:      "missing_name",
			document:  "emperors:\n  - birth: 10\n    death: 20\n    reign_start: 15\n    reign_end: 16\n",
			wantField: "emperors[0].name",
		},
		{
			name:      "death_before_birth",
			document:  "emperors:\n  - name: \"A\"\n    birth: 10\n    death: 5\n    reign_start: 10\n    reign_end: 10\n",
			wantField: "emperors[0].death",
		},
		{
			name:      "inverted_reign",
			document:  "emperors:\n  - name: \"A\"\n    birth: 0\n    death: 50\n    reign_start: 30\n    reign_end: 20\n",
			wantField: "emperors[0].reign_end",
		},
		{
			name:      "reign_before_birth",
			document:  "emperors:\n  - name: \"A\"\n    birth: 10\n    death: 50\n    reign_start: 5\n    reign_end: 20\n",
			wantField: "emperors[0].reign_start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			empire, err := emperor.LoadYAML(strings.NewReader(tt.document))
			require.Error(t, err)
			assert.Nil(t, empire)

			if tt.wantErrMsg != "" {
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
			require.NotEmpty(t, appError.Details)
			assert.Equal(t, tt.wantField, appError.Details[0].Field)
		})
	}
}

/*
TestLoadFile reads a dataset from disk and reports missing files.
*/
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emperors.yaml")
	document := "emperors:\n  - name: \"Gordian I\"\n    birth: 159\n    death: 238\n    reign_start: 238\n    reign_end: 238\n"
	require.NoError(t, os.WriteFile(path, []byte(document), 0o600))

	empire, err := emperor.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, empire.Len())

	_, err = emperor.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open dataset")
}
