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

package main

import (
	"fmt"
	"os"
	"strings"

	"mediasearch/internal/index"
	"mediasearch/internal/query"
)

const maxPrintedResults = 10

// RunQuery loads a gob-persisted index from indexPath and runs queryString
// against it with the default search configuration, printing the top
// results to stdout.
func RunQuery(indexPath, queryString string) error {
	in, err := os.Open(indexPath)
	if err != nil {
		return fmt.Errorf("opening index %s: %w", indexPath, err)
	}
	defer in.Close()

	idx, err := index.LoadIndex(in)
	if err != nil {
		return fmt.Errorf("loading index %s: %w", indexPath, err)
	}

	engine := query.NewEngine(idx)
	results := engine.Search(queryString, query.DefaultConfig())

	fmt.Printf("Query: %q (%d documents in corpus)\n", queryString, idx.Size())
	fmt.Println("---------------------------------------------------")
	fmt.Printf("% -5s | % -10s | % -12s | %s\n", "Rank", "Score", "Date", "Desc")
	fmt.Println("---------------------------------------------------")

	limit := len(results)
	if limit > maxPrintedResults {
		limit = maxPrintedResults
	}
	for i := 0; i < limit; i++ {
		r := results[i]
		desc := r.Record.CleanDesc
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		fmt.Printf("% -5d | % -10.4f | % -12s | %s\n", i+1, r.Score, r.Record.ISODate, strings.ReplaceAll(desc, "\n", " "))
	}
	return nil
}
