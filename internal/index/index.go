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

// Package index implements the per-field inverted index: term -> postings,
// per-field corpus statistics, and a sorted vocabulary for prefix lookup.
// The index is built by a single writer (AddDocument* then Finalize) and is
// read-only, safe for concurrent readers, once Finalize returns.
package index

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"mediasearch/internal/normalize"
	"mediasearch/internal/record"
	"mediasearch/internal/tokenize"
)

// Index is the multi-field inverted index over a fixed corpus.
type Index struct {
	fields [numFields]*fieldIndex
	docs   []record.Processed

	credits      map[string]struct{}
	restrictions map[string]struct{}

	finalized bool

	// BuildID is a correlation id stamped at Finalize, for log/diagnostic
	// correlation only — it is never consulted by scoring or filtering.
	BuildID string
}

// New constructs an empty index, ready for a build-time sequence of
// AddDocument calls in ascending id order starting at 0.
func New() *Index {
	idx := &Index{
		credits:      make(map[string]struct{}),
		restrictions: make(map[string]struct{}),
	}
	for _, f := range Fields() {
		idx.fields[f] = newFieldIndex()
	}
	return idx
}

// AddDocument stores rec at slot id and indexes its three fields. id must
// equal len(docs) at call time (ascending from 0); this is the build-time
// contract, not defensively re-checked at query time.
func (idx *Index) AddDocument(id int, rec record.Processed) {
	idx.docs = append(idx.docs, rec)

	descTokens := tokenize.Tokens(rec.CleanDesc)
	idx.fields[Desc].indexTokens(id, descTokens)

	creditTokens := tokenize.ExcludeCredit(tokenize.Tokens(rec.Credit))
	idx.fields[Credit].indexTokens(id, creditTokens)

	idTokens := tokenize.Tokens(rec.ID)
	idx.fields[IDField].indexTokens(id, idTokens)

	if rec.Credit != "" {
		idx.credits[rec.Credit] = struct{}{}
	}
	for _, m := range rec.Markers {
		idx.restrictions[m] = struct{}{}
	}
}

// Finalize computes each field's average document length and builds its
// sorted vocabulary. It must be called exactly once, after the last
// AddDocument call; the index is immutable afterward.
func (idx *Index) Finalize() error {
	for _, f := range Fields() {
		fi := idx.fields[f]
		fi.finalizeStats()
		if err := fi.buildVocab(); err != nil {
			return fmt.Errorf("finalizing field %s: %w", f, err)
		}
	}
	idx.BuildID = uuid.New().String()
	idx.finalized = true
	return nil
}

// Finalized reports whether Finalize has run.
func (idx *Index) Finalized() bool { return idx.finalized }

// Size returns the number of documents in the corpus.
func (idx *Index) Size() int { return len(idx.docs) }

// GetPostings normalizes term and returns its postings for field, or an
// empty (non-nil) slice when the term is unknown.
func (idx *Index) GetPostings(term string, field Field) []Posting {
	key := normalize.Text(term)
	postings := idx.fields[field].postings[key]
	if postings == nil {
		return []Posting{}
	}
	return postings
}

// DocFrequency returns the number of distinct documents containing term in
// field — the value GetPostings' length always equals.
func (idx *Index) DocFrequency(term string, field Field) int {
	return len(idx.GetPostings(term, field))
}

// TotalDocs returns the number of documents that contributed a docLengths
// entry to field (equal to the corpus size once fully built).
func (idx *Index) TotalDocs(field Field) int {
	return idx.fields[field].totalDocs
}

// DocLength returns the token count of field in document id.
func (idx *Index) DocLength(field Field, id int) int {
	return idx.fields[field].docLengths[id]
}

// AvgDocLength returns field's average tokens-per-document, 0 if the field
// has no documents.
func (idx *Index) AvgDocLength(field Field) float64 {
	return idx.fields[field].avgDocLength
}

// GetPrefixTerms returns, in ascending order, up to limit distinct terms of
// field that start with prefix. An empty vocabulary or empty prefix yields
// an empty (non-nil) slice.
func (idx *Index) GetPrefixTerms(prefix string, field Field, limit int) []string {
	terms := idx.fields[field].prefixTerms(prefix, limit)
	if terms == nil {
		return []string{}
	}
	return terms
}

// GetDocument returns the processed record stored at id.
func (idx *Index) GetDocument(id int) (record.Processed, bool) {
	if id < 0 || id >= len(idx.docs) {
		return record.Processed{}, false
	}
	return idx.docs[id], true
}

// GetAllDocuments returns every stored record, in document-id order.
func (idx *Index) GetAllDocuments() []record.Processed {
	out := make([]record.Processed, len(idx.docs))
	copy(out, idx.docs)
	return out
}

// GetCredits returns every distinct raw credit value seen, sorted.
func (idx *Index) GetCredits() []string {
	return sortedKeys(idx.credits)
}

// GetRestrictions returns every distinct restriction marker seen, sorted.
// The "none" filter sentinel is a filter-layer convention and never enters
// this set.
func (idx *Index) GetRestrictions() []string {
	return sortedKeys(idx.restrictions)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
