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

// Package normalize folds German orthography to an ASCII-compatible,
// lowercase form shared by indexing and query processing.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// umlautFolder applies the four ordered umlaut/eszett replacements. Order
// matters only in the sense that none of the replacement outputs contain
// characters the other patterns match, so a single pass suffices.
var umlautFolder = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

var lowerGerman = cases.Lower(language.German)

// Text lowercases s using German casing rules and folds umlauts/eszett to
// their ASCII-compatible digraphs. It is deterministic, total, and
// idempotent: Text(Text(x)) == Text(x) for all x.
func Text(s string) string {
	return umlautFolder.Replace(lowerGerman.String(s))
}
