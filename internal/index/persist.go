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
	"encoding/gob"
	"fmt"
	"io"

	"github.com/blevesearch/vellum"

	"mediasearch/internal/record"
)

// persistedField is the gob-friendly projection of a fieldIndex. The vellum
// FST is kept only as its serialized byte form (VocabData) and rebuilt with
// vellum.Load on LoadIndex.
type persistedField struct {
	Postings     map[string][]Posting
	DocLengths   map[int]int
	TotalDocs    int
	AvgDocLength float64
	VocabData    []byte
}

// persistedIndex is the gob-friendly projection of a finalized Index.
type persistedIndex struct {
	Fields       [numFields]persistedField
	Docs         []record.Processed
	Credits      map[string]struct{}
	Restrictions map[string]struct{}
	BuildID      string
}

// SaveIndex gob-encodes a finalized index to w. It returns an error if idx
// has not been finalized.
func SaveIndex(w io.Writer, idx *Index) error {
	if !idx.finalized {
		return fmt.Errorf("cannot save an index that has not been finalized")
	}

	p := persistedIndex{
		Docs:         idx.docs,
		Credits:      idx.credits,
		Restrictions: idx.restrictions,
		BuildID:      idx.BuildID,
	}
	for _, f := range Fields() {
		fi := idx.fields[f]
		p.Fields[f] = persistedField{
			Postings:     fi.postings,
			DocLengths:   fi.docLengths,
			TotalDocs:    fi.totalDocs,
			AvgDocLength: fi.avgDocLength,
			VocabData:    fi.vocabData,
		}
	}

	if err := gob.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	return nil
}

// LoadIndex decodes a finalized index previously written by SaveIndex.
func LoadIndex(r io.Reader) (*Index, error) {
	var p persistedIndex
	if err := gob.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}

	idx := &Index{
		docs:         p.Docs,
		credits:      p.Credits,
		restrictions: p.Restrictions,
		BuildID:      p.BuildID,
		finalized:    true,
	}
	if idx.credits == nil {
		idx.credits = make(map[string]struct{})
	}
	if idx.restrictions == nil {
		idx.restrictions = make(map[string]struct{})
	}

	for _, f := range Fields() {
		pf := p.Fields[f]
		fi := &fieldIndex{
			postings:     pf.Postings,
			docLengths:   pf.DocLengths,
			totalDocs:    pf.TotalDocs,
			avgDocLength: pf.AvgDocLength,
			vocabData:    pf.VocabData,
		}
		if fi.postings == nil {
			fi.postings = make(map[string][]Posting)
		}
		if fi.docLengths == nil {
			fi.docLengths = make(map[int]int)
		}
		if len(pf.VocabData) > 0 {
			fst, err := vellum.Load(pf.VocabData)
			if err != nil {
				return nil, fmt.Errorf("loading vocabulary for field %s: %w", f, err)
			}
			fi.vocab = fst
		}
		idx.fields[f] = fi
	}

	return idx, nil
}
