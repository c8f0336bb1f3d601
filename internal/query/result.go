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

package query

import "mediasearch/internal/record"

// Result is a single ranked hit: the document id, its resolved record, its
// accumulated BM25 score, and the distinct terms (exact or prefix-expanded)
// that contributed to it.
type Result struct {
	ID           int
	Record       record.Processed
	Score        float64
	MatchedTerms []string
}
