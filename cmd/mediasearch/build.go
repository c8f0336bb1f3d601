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
	"log"
	"os"

	"mediasearch/internal/corpus"
	"mediasearch/internal/index"
)

// BuildIndex reads a JSON corpus from corpusPath, builds a finalized index,
// and writes it as a gob to indexPath.
func BuildIndex(corpusPath, indexPath string) error {
	in, err := os.Open(corpusPath)
	if err != nil {
		return fmt.Errorf("opening corpus %s: %w", corpusPath, err)
	}
	defer in.Close()

	idx, err := corpus.Load(in)
	if err != nil {
		return fmt.Errorf("loading corpus %s: %w", corpusPath, err)
	}

	out, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", indexPath, err)
	}
	defer out.Close()

	if err := index.SaveIndex(out, idx); err != nil {
		return fmt.Errorf("saving index to %s: %w", indexPath, err)
	}

	log.Printf("indexed %d documents from %s (build id %s)", idx.Size(), corpusPath, idx.BuildID)
	log.Printf("index written to %s", indexPath)
	return nil
}
