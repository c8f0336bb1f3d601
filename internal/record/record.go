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

// Package record defines the raw and processed media-item record shapes and
// the preprocessing step that turns one into the other.
package record

import (
	"mediasearch/internal/dateparse"
	"mediasearch/internal/normalize"
	"mediasearch/internal/restriction"
)

// Raw is a media-item record as received, before any preprocessing.
type Raw struct {
	ID     string
	Desc   string
	Credit string
	Date   string
	Width  int
	Height int
}

// Processed extends Raw with the fields the indexer and filters need: a
// canonicalized ISO date (falling back to the raw string when unparseable),
// the restriction markers extracted from Desc, the marker-free description
// (not yet normalized — tokenize.Tokens does that exactly once), and the
// normalized credit.
type Processed struct {
	Raw

	ISODate          string
	Markers          []string
	CleanDesc        string
	NormalizedCredit string
}

// Preprocess runs the restriction extractor on Desc, the date parser on
// Date, and attaches a normalized copy of Credit, preserving all raw fields
// for display.
func Preprocess(r Raw) Processed {
	extracted := restriction.Extract(r.Desc)

	iso, ok := dateparse.Parse(r.Date)
	if !ok {
		iso = r.Date
	}

	return Processed{
		Raw:              r,
		ISODate:          iso,
		Markers:          extracted.Markers,
		CleanDesc:        extracted.CleanText,
		NormalizedCredit: normalize.Text(r.Credit),
	}
}
