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

// Package tokenize produces the token stream shared by indexing and query
// processing. It is the one place normalization runs in the indexing path;
// callers must pass raw (pre-normalized) text.
package tokenize

import (
	"strings"

	"mediasearch/internal/normalize"
)

// splitters is the punctuation/whitespace class token boundaries are cut
// on. Hyphens are deliberately excluded here; they're handled per-word in
// step 3 of the pipeline.
const splitters = " \t\n\r\f\v,.;:!?\"'()[]{}"

// Tokens normalizes text, splits it into words, applies the hyphenation
// dual-emission rule, and drops stopwords. Empty or all-stopword input
// yields an empty (non-nil) slice.
func Tokens(text string) []string {
	if text == "" {
		return []string{}
	}

	normalized := normalize.Text(text)
	words := strings.FieldsFunc(normalized, isSplitter)

	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, expandWord(w)...)
	}

	filtered := make([]string, 0, len(out))
	for _, tok := range out {
		if isStopword(tok) {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}

func isSplitter(r rune) bool {
	return strings.ContainsRune(splitters, r)
}

// expandWord applies the hyphenation rule to a single whitespace-delimited
// word: if it contains a hyphen, split on '-' and keep parts of length >= 2.
// With 2+ such parts, emit the whole hyphenated word (if length >= 2) and
// every part. With fewer than 2, emit the hyphen-stripped word if its
// length >= 2. Words without a hyphen are emitted as-is when length >= 2.
func expandWord(w string) []string {
	if !strings.Contains(w, "-") {
		if len(w) >= 2 {
			return []string{w}
		}
		return nil
	}

	parts := strings.Split(w, "-")
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) >= 2 {
			kept = append(kept, p)
		}
	}

	if len(kept) >= 2 {
		var out []string
		if len(w) >= 2 {
			out = append(out, w)
		}
		out = append(out, kept...)
		return out
	}

	stripped := strings.ReplaceAll(w, "-", "")
	if len(stripped) >= 2 {
		return []string{stripped}
	}
	return nil
}

// ExcludeCredit drops an additional term (see stopwords.go) reserved for
// the credit field only, where it would otherwise saturate every
// document's posting list.
func ExcludeCredit(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, excluded := creditExclusions[t]; excluded {
			continue
		}
		out = append(out, t)
	}
	return out
}
