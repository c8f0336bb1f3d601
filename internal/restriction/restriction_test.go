// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package restriction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantMarkers []string
		wantClean   string
	}{
		{"empty", "", []string{}, ""},
		{"no marker", "Berlin Portrait", []string{}, "Berlin Portrait"},
		{
			"single marker",
			"Muenchen PUBLICATIONxINxGERxONLY",
			[]string{"PUBLICATIONxINxGERxONLY"},
			"Muenchen",
		},
		{
			"marker in middle",
			"before NOxMODELxRELEASE after",
			[]string{"NOxMODELxRELEASE"},
			"before after",
		},
		{
			"duplicate markers preserved",
			"NOxMODELxRELEASE text NOxMODELxRELEASE",
			[]string{"NOxMODELxRELEASE", "NOxMODELxRELEASE"},
			"text",
		},
		{
			"collapses internal whitespace",
			"a   b\tc\nd",
			[]string{},
			"a b c d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.in)
			assert.Equal(t, tt.wantMarkers, got.Markers)
			assert.Equal(t, tt.wantClean, got.CleanText)
		})
	}
}

func TestExtractCoversNonMarkerContent(t *testing.T) {
	// Every non-whitespace character of x not inside a marker must appear in
	// either a marker or the clean text.
	inputs := []string{
		"Berlin Portrait PUBLICATIONxINxGERxONLY with NOxMODELxRELEASE tail",
		"no markers here at all",
	}
	for _, in := range inputs {
		got := Extract(in)
		reassembled := got.CleanText
		for _, m := range got.Markers {
			reassembled += m
		}
		for _, r := range in {
			if r == ' ' || r == '\t' || r == '\n' {
				continue
			}
			assert.Contains(t, reassembled, string(r))
		}
	}
}
