// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/imperium/pkg/fold"
)

/*
TestContains checks case-insensitive substring matching.
*/
func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fragment string
		want     bool
	}{
		{"same_case", "Poppaea Sabina", "Poppaea", true},
		{"lower_fragment", "Poppaea Sabina", "poppaea", true},
		{"upper_fragment", "Augustus (Octavian)", "OCTAVIAN", true},
		{"middle_of_word", "Marcus Aurelius", "aurel", true},
		{"missing", "Nero", "caligula", false},
		{"empty_fragment", "Nero", "", true},
		{"empty_text", "", "nero", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fold.Contains(tt.text, tt.fragment))
		})
	}
}
