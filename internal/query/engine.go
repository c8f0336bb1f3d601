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

// Package query implements the search pipeline: tokenize the query,
// accumulate per-field weighted BM25 scores across exact and
// prefix-expanded matches, then sort with deterministic tie-breaking.
// Filtering and pagination are a separate, later stage (internal/filter)
// and the HTTP layer, respectively.
package query

import (
	"sort"

	"mediasearch/internal/index"
	"mediasearch/internal/scoring"
	"mediasearch/internal/tokenize"
)

// Engine runs searches against a single finalized Index, sharing one IDF
// cache across every call for the life of the index.
type Engine struct {
	idx      *index.Index
	idfCache *scoring.IDFCache
}

// NewEngine constructs an Engine over a finalized index.
func NewEngine(idx *index.Index) *Engine {
	return &Engine{
		idx:      idx,
		idfCache: scoring.NewIDFCache(scoring.DefaultIDFCacheSize),
	}
}

type accumulator struct {
	score   float64
	matched map[string]struct{}
}

// Search tokenizes queryString and runs the full scoring pipeline. An empty
// token stream triggers browse mode: every document is returned with score
// 0, in document-id order.
func (e *Engine) Search(queryString string, cfg Config) []Result {
	tokens := tokenize.Tokens(queryString)
	if len(tokens) == 0 {
		return e.browse()
	}

	acc := make(map[int]*accumulator)
	fields := index.Fields()

	for _, term := range tokens {
		for _, field := range fields {
			e.scoreExact(acc, field, term, cfg)
		}
		if len(term) >= cfg.MinPrefixLength {
			for _, field := range fields {
				e.scorePrefixExpansion(acc, field, term, cfg)
			}
		}
	}

	return e.materialize(acc)
}

func (e *Engine) scoreExact(acc map[int]*accumulator, field index.Field, term string, cfg Config) {
	postings := e.idx.GetPostings(term, field)
	if len(postings) == 0 {
		return
	}
	idf := e.idf(field, term)
	weight := fieldWeight(field, cfg)
	avg := e.idx.AvgDocLength(field)
	params := scoring.Params{K1: cfg.K1, B: cfg.B}

	for _, p := range postings {
		docLen := e.idx.DocLength(field, p.DocID)
		ts := scoring.TermScore(p.Freq, docLen, avg, idf, params) * weight
		e.add(acc, p.DocID, ts, term)
	}
}

func (e *Engine) scorePrefixExpansion(acc map[int]*accumulator, field index.Field, term string, cfg Config) {
	expansions := e.idx.GetPrefixTerms(term, field, cfg.MaxPrefixExpansion)
	if len(expansions) == 0 {
		return
	}
	weight := fieldWeight(field, cfg)
	avg := e.idx.AvgDocLength(field)
	params := scoring.Params{K1: cfg.K1, B: cfg.B}

	for _, expanded := range expansions {
		if expanded == term {
			continue
		}
		postings := e.idx.GetPostings(expanded, field)
		if len(postings) == 0 {
			continue
		}
		idf := e.idf(field, expanded)
		for _, p := range postings {
			docLen := e.idx.DocLength(field, p.DocID)
			ts := scoring.TermScore(p.Freq, docLen, avg, idf, params) * weight * cfg.PrefixPenalty
			e.add(acc, p.DocID, ts, expanded)
		}
	}
}

func (e *Engine) idf(field index.Field, term string) float64 {
	return e.idfCache.Get(int(field), term, func() float64 {
		return scoring.IDF(e.idx.DocFrequency(term, field), e.idx.TotalDocs(field))
	})
}

func (e *Engine) add(acc map[int]*accumulator, docID int, score float64, matchedTerm string) {
	a, ok := acc[docID]
	if !ok {
		a = &accumulator{matched: make(map[string]struct{})}
		acc[docID] = a
	}
	a.score += score
	a.matched[matchedTerm] = struct{}{}
}

func fieldWeight(field index.Field, cfg Config) float64 {
	switch field {
	case index.Desc:
		return cfg.DescWeight
	case index.Credit:
		return cfg.CreditWeight
	case index.IDField:
		return cfg.IDWeight
	default:
		return 1.0
	}
}

// browse returns every document with score 0 in document-id order.
func (e *Engine) browse() []Result {
	docs := e.idx.GetAllDocuments()
	out := make([]Result, len(docs))
	for i, d := range docs {
		out[i] = Result{ID: i, Record: d, Score: 0, MatchedTerms: []string{}}
	}
	return out
}

// materialize turns the accumulator into a deterministically ordered result
// slice: documents are first laid out in ascending id order (a stable,
// reproducible base order independent of Go's randomized map iteration),
// then stable-sorted by score descending, with isoDate descending as the
// tie-breaker.
func (e *Engine) materialize(acc map[int]*accumulator) []Result {
	ids := make([]int, 0, len(acc))
	for id := range acc {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	results := make([]Result, 0, len(ids))
	for _, id := range ids {
		a := acc[id]
		doc, _ := e.idx.GetDocument(id)
		matched := make([]string, 0, len(a.matched))
		for t := range a.matched {
			matched = append(matched, t)
		}
		sort.Strings(matched)
		results = append(results, Result{ID: id, Record: doc, Score: a.score, MatchedTerms: matched})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Record.ISODate > results[j].Record.ISODate
	})

	return results
}
