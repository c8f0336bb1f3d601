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

// Package filter applies the post-ranking filter and sort-override stage:
// credit/date-range/restriction filtering (AND across categories, OR within
// restrictions), then an optional sort override that replaces the BM25
// tie-broken order with a lexicographic isoDate sort.
package filter

import (
	"sort"

	"mediasearch/internal/query"
)

// noneSentinel opts a caller into "records with no restriction markers at
// all." It is a filter-layer-only convention: it is never stored in the
// index's restriction set and never reaches internal/index.
const noneSentinel = "none"

// Filters holds the optional, independently-applied filter criteria. A zero
// value field means "no constraint in that category."
type Filters struct {
	Credit       string
	DateFrom     string
	DateTo       string
	Restrictions []string
}

// Apply filters results (AND across the four categories below), then
// applies a sort override. sortOrder is "asc", "desc", or "" (no explicit
// request). When the original query was empty and no explicit sort was
// requested, the layer defaults to "desc"; otherwise an empty sortOrder
// preserves the BM25 tie-broken order coming in.
func Apply(results []query.Result, f Filters, sortOrder string, queryWasEmpty bool) []query.Result {
	filtered := make([]query.Result, 0, len(results))
	for _, r := range results {
		if !matchesCredit(r, f) {
			continue
		}
		if !matchesDateRange(r, f) {
			continue
		}
		if !matchesRestrictions(r, f) {
			continue
		}
		filtered = append(filtered, r)
	}

	effectiveSort := sortOrder
	if effectiveSort == "" && queryWasEmpty {
		effectiveSort = "desc"
	}

	switch effectiveSort {
	case "asc":
		sortByISODate(filtered, true)
	case "desc":
		sortByISODate(filtered, false)
	}

	return filtered
}

func matchesCredit(r query.Result, f Filters) bool {
	if f.Credit == "" {
		return true
	}
	return r.Record.Credit == f.Credit
}

func matchesDateRange(r query.Result, f Filters) bool {
	if f.DateFrom != "" {
		if r.Record.ISODate == "" || r.Record.ISODate < f.DateFrom {
			return false
		}
	}
	if f.DateTo != "" {
		if r.Record.ISODate == "" || r.Record.ISODate > f.DateTo {
			return false
		}
	}
	return true
}

func matchesRestrictions(r query.Result, f Filters) bool {
	if len(f.Restrictions) == 0 {
		return true
	}
	for _, sel := range f.Restrictions {
		if sel == noneSentinel {
			if len(r.Record.Markers) == 0 {
				return true
			}
			continue
		}
		if containsMarker(r.Record.Markers, sel) {
			return true
		}
	}
	return false
}

func containsMarker(markers []string, target string) bool {
	for _, m := range markers {
		if m == target {
			return true
		}
	}
	return false
}

func sortByISODate(results []query.Result, ascending bool) {
	sort.SliceStable(results, func(i, j int) bool {
		if ascending {
			return results[i].Record.ISODate < results[j].Record.ISODate
		}
		return results[i].Record.ISODate > results[j].Record.ISODate
	})
}
