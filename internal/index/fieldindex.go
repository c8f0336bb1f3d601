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

package index

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/blevesearch/vellum"
)

// fieldIndex is the per-field subset of the inverted index: term -> postings,
// per-document token counts, and corpus statistics. The sorted vocabulary
// used for prefix lookup is built once, in finalize, as a vellum FST over
// the field's distinct terms — an ordered term dictionary with native
// prefix/range iteration, rather than a hand-rolled sorted slice.
type fieldIndex struct {
	postings     map[string][]Posting
	docLengths   map[int]int
	totalDocs    int
	avgDocLength float64

	vocab     *vellum.FST
	vocabData []byte // retained so a finalized index can be gob-persisted
}

func newFieldIndex() *fieldIndex {
	return &fieldIndex{
		postings:   make(map[string][]Posting),
		docLengths: make(map[int]int),
	}
}

// indexTokens counts per-term frequencies in tokens, appends a posting for
// each distinct term, and records the document's token count for this
// field. It must run once per (field, document), even when tokens is empty,
// so every document contributes exactly one docLengths entry.
func (fi *fieldIndex) indexTokens(docID int, tokens []string) {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	for term, freq := range counts {
		fi.postings[term] = append(fi.postings[term], Posting{DocID: docID, Freq: freq})
	}
	fi.docLengths[docID] = len(tokens)
	fi.totalDocs++
}

func (fi *fieldIndex) finalizeStats() {
	if fi.totalDocs == 0 {
		fi.avgDocLength = 0
		return
	}
	var total int
	for _, l := range fi.docLengths {
		total += l
	}
	fi.avgDocLength = float64(total) / float64(fi.totalDocs)
}

// buildVocab constructs the FST over the field's distinct terms, sorted in
// ascending code-point (byte) order, as vellum.Builder.Insert requires.
func (fi *fieldIndex) buildVocab() error {
	terms := make([]string, 0, len(fi.postings))
	for term := range fi.postings {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return fmt.Errorf("creating vocabulary builder: %w", err)
	}
	for _, term := range terms {
		if err := builder.Insert([]byte(term), uint64(len(fi.postings[term]))); err != nil {
			return fmt.Errorf("inserting term %q into vocabulary: %w", term, err)
		}
	}
	if err := builder.Close(); err != nil {
		return fmt.Errorf("closing vocabulary builder: %w", err)
	}

	data := buf.Bytes()
	fst, err := vellum.Load(data)
	if err != nil {
		return fmt.Errorf("loading vocabulary FST: %w", err)
	}
	fi.vocab = fst
	fi.vocabData = data
	return nil
}

// prefixTerms collects, in ascending order, up to limit distinct terms that
// start with prefix. An empty vocabulary or empty prefix yields nil.
func (fi *fieldIndex) prefixTerms(prefix string, limit int) []string {
	if fi.vocab == nil || prefix == "" || limit <= 0 {
		return nil
	}

	start := []byte(prefix)
	end := prefixUpperBound(start)

	itr, err := fi.vocab.Iterator(start, end)
	if err == vellum.ErrIteratorDone {
		return nil
	}
	if err != nil {
		return nil
	}

	var out []string
	for err == nil {
		key, _ := itr.Current()
		term := string(key)
		if len(term) < len(prefix) || term[:len(prefix)] != prefix {
			break
		}
		out = append(out, term)
		if len(out) >= limit {
			break
		}
		err = itr.Next()
	}
	return out
}

// prefixUpperBound returns the smallest byte string strictly greater than
// every string having prefix as a prefix, or nil when prefix has no upper
// bound (e.g. it is composed entirely of 0xff bytes).
func prefixUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
