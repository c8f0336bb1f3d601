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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediasearch/internal/record"
)

func sampleCorpus() []record.Raw {
	return []record.Raw{
		{ID: "a1", Desc: "Berlin Portrait", Credit: "IMAGO / Muller", Date: "2024-03-14"},
		{ID: "a2", Desc: "Muenchen PUBLICATIONxINxGERxONLY", Credit: "IMAGO / Schmidt", Date: "2024-01-01"},
		{ID: "a3", Desc: "Baden-Württemberg Landschaft", Credit: "IMAGO / Muller", Date: "14.03.2024"},
	}
}

func buildIndex(t *testing.T, raws []record.Raw) *Index {
	t.Helper()
	idx := New()
	for i, r := range raws {
		idx.AddDocument(i, record.Preprocess(r))
	}
	require.NoError(t, idx.Finalize())
	return idx
}

func TestAvgDocLengthEqualsMean(t *testing.T) {
	idx := buildIndex(t, sampleCorpus())
	for _, f := range Fields() {
		var total, n int
		for i := 0; i < idx.Size(); i++ {
			total += idx.DocLength(f, i)
			n++
		}
		want := float64(total) / float64(n)
		assert.InDelta(t, want, idx.AvgDocLength(f), 1e-9)
	}
}

func TestEveryDocumentHasDocLengthEntry(t *testing.T) {
	idx := buildIndex(t, sampleCorpus())
	for _, f := range Fields() {
		assert.Equal(t, idx.Size(), idx.TotalDocs(f))
	}
}

func TestDocFrequencyMatchesDistinctPostingDocs(t *testing.T) {
	idx := buildIndex(t, sampleCorpus())
	postings := idx.GetPostings("muller", Credit)
	seen := map[int]struct{}{}
	for _, p := range postings {
		seen[p.DocID] = struct{}{}
	}
	assert.Equal(t, len(seen), idx.DocFrequency("muller", Credit))
}

func TestGetPostingsNormalizesTerm(t *testing.T) {
	idx := buildIndex(t, sampleCorpus())
	lower := idx.GetPostings("muller", Credit)
	mixedCase := idx.GetPostings("MULLER", Credit)
	assert.Equal(t, lower, mixedCase)
	assert.NotEmpty(t, lower)
}

func TestGetPostingsUnknownTermReturnsEmpty(t *testing.T) {
	idx := buildIndex(t, sampleCorpus())
	got := idx.GetPostings("nonexistent", Desc)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetPrefixTermsOrderedAndLimited(t *testing.T) {
	idx := buildIndex(t, sampleCorpus())
	got := idx.GetPrefixTerms("ber", Desc, 10)
	assert.Contains(t, got, "berlin")
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1] < got[i], "expected ascending order")
	}

	limited := idx.GetPrefixTerms("ba", Desc, 1)
	assert.LessOrEqual(t, len(limited), 1)
}

func TestGetPrefixTermsEmptyPrefixOrEmptyVocab(t *testing.T) {
	idx := buildIndex(t, sampleCorpus())
	assert.Empty(t, idx.GetPrefixTerms("", Desc, 10))

	empty := New()
	require.NoError(t, empty.Finalize())
	assert.Empty(t, empty.GetPrefixTerms("anything", Desc, 10))
}

func TestMarkersExcludedFromDescTokensAndIndex(t *testing.T) {
	idx := buildIndex(t, sampleCorpus())
	assert.Empty(t, idx.GetPostings("publication", Desc))
	assert.Contains(t, idx.GetRestrictions(), "PUBLICATIONxINxGERxONLY")
}

func TestCreditExclusionTermNeverIndexed(t *testing.T) {
	idx := buildIndex(t, sampleCorpus())
	assert.Empty(t, idx.GetPostings("imago", Credit))
}

func TestHyphenatedCompoundIndexesWholeAndParts(t *testing.T) {
	idx := buildIndex(t, sampleCorpus())
	for _, term := range []string{"baden-wuerttemberg", "baden", "wuerttemberg"} {
		assert.NotEmpty(t, idx.GetPostings(term, Desc), "expected postings for %q", term)
	}
}

func TestGetCreditsAndRestrictionsSorted(t *testing.T) {
	idx := buildIndex(t, sampleCorpus())
	credits := idx.GetCredits()
	assert.True(t, isSortedAscending(credits))
	restrictions := idx.GetRestrictions()
	assert.Equal(t, []string{"PUBLICATIONxINxGERxONLY"}, restrictions)
}

func isSortedAscending(ss []string) bool {
	for i := 1; i < len(ss); i++ {
		if ss[i-1] > ss[i] {
			return false
		}
	}
	return true
}

func TestReFinalizeIsIdempotentWithNoFurtherAdds(t *testing.T) {
	idx := buildIndex(t, sampleCorpus())
	before := idx.AvgDocLength(Desc)
	require.NoError(t, idx.Finalize())
	after := idx.AvgDocLength(Desc)
	assert.Equal(t, before, after)
}

func TestSaveAndLoadIndexRoundTrip(t *testing.T) {
	idx := buildIndex(t, sampleCorpus())

	var buf bytes.Buffer
	require.NoError(t, SaveIndex(&buf, idx))

	loaded, err := LoadIndex(&buf)
	require.NoError(t, err)

	assert.Equal(t, idx.Size(), loaded.Size())
	assert.Equal(t, idx.GetCredits(), loaded.GetCredits())
	assert.Equal(t, idx.GetRestrictions(), loaded.GetRestrictions())
	assert.Equal(t, idx.GetPostings("berlin", Desc), loaded.GetPostings("berlin", Desc))
	assert.Equal(t, idx.GetPrefixTerms("ber", Desc, 10), loaded.GetPrefixTerms("ber", Desc, 10))
}

func TestSaveIndexRejectsUnfinalized(t *testing.T) {
	idx := New()
	var buf bytes.Buffer
	err := SaveIndex(&buf, idx)
	assert.Error(t, err)
}
