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

// Package restriction separates embedded restriction markers (e.g.
// "PUBLICATIONxINxGERxONLY") from free text before tokenization can corrupt
// them. Extraction must run before normalization: markers are defined on
// uppercase ASCII and normalization lowercases everything.
package restriction

import (
	"regexp"
	"strings"
)

// markerPattern matches one or more uppercase ASCII letters followed by at
// least one repetition of (literal "x" + one or more uppercase ASCII
// letters), e.g. PUBLICATIONxINxGERxONLY, NOxMODELxRELEASE.
var markerPattern = regexp.MustCompile(`[A-Z]+(?:x[A-Z]+)+`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Extracted holds the result of separating markers from free text.
type Extracted struct {
	Markers   []string
	CleanText string
}

// Extract scans text for restriction markers in left-to-right order
// (duplicates preserved), replaces each match with a single space, collapses
// whitespace runs to one space, and trims the result. Empty input yields an
// empty result.
func Extract(text string) Extracted {
	if text == "" {
		return Extracted{Markers: []string{}, CleanText: ""}
	}

	matches := markerPattern.FindAllString(text, -1)
	if matches == nil {
		matches = []string{}
	}

	cleaned := markerPattern.ReplaceAllString(text, " ")
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	return Extracted{Markers: matches, CleanText: cleaned}
}
