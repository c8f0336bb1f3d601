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

// Package corpus loads the external, demonstration corpus format (a JSON
// array of raw media-item records) and builds a finalized index from it.
// This is the only place in the module that talks JSON; everything
// downstream works with record.Raw/record.Processed.
package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"mediasearch/internal/index"
	"mediasearch/internal/record"
)

// RawRecord mirrors record.Raw field-for-field for JSON decoding, keeping the
// wire format's naming independent of the internal struct's Go names.
type RawRecord struct {
	ID     string `json:"id"`
	Desc   string `json:"desc"`
	Credit string `json:"credit"`
	Date   string `json:"date"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (r RawRecord) toRaw() record.Raw {
	return record.Raw{
		ID:     r.ID,
		Desc:   r.Desc,
		Credit: r.Credit,
		Date:   r.Date,
		Width:  r.Width,
		Height: r.Height,
	}
}

// Load decodes a JSON array of RawRecord from r and builds a finalized
// index over it, in array order starting at document id 0.
func Load(r io.Reader) (*index.Index, error) {
	log.Printf("loading corpus")

	var raws []RawRecord
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, fmt.Errorf("decoding corpus: %w", err)
	}

	idx := index.New()
	for i, rr := range raws {
		idx.AddDocument(i, record.Preprocess(rr.toRaw()))
	}
	if err := idx.Finalize(); err != nil {
		return nil, fmt.Errorf("finalizing index: %w", err)
	}

	log.Printf("loaded corpus: %d documents, build id %s", idx.Size(), idx.BuildID)
	return idx, nil
}
