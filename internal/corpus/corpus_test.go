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

package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediasearch/internal/index"
)

const sampleJSON = `[
	{"id": "img-1", "desc": "Berlin Skyline bei Nacht", "credit": "IMAGO / Mueller", "date": "14.03.2024", "width": 1920, "height": 1080},
	{"id": "img-2", "desc": "Muenchen Oktoberfest Feier", "credit": "IMAGO / Schmidt", "date": "01.01.2024", "width": 1280, "height": 720}
]`

func TestLoadBuildsFinalizedIndex(t *testing.T) {
	idx, err := Load(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	assert.True(t, idx.Finalized())
	assert.Equal(t, 2, idx.Size())
}

func TestLoadPreservesDocumentOrder(t *testing.T) {
	idx, err := Load(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	doc0, ok := idx.GetDocument(0)
	require.True(t, ok)
	assert.Equal(t, "img-1", doc0.ID)

	doc1, ok := idx.GetDocument(1)
	require.True(t, ok)
	assert.Equal(t, "img-2", doc1.ID)
}

func TestLoadParsesDatesToISO(t *testing.T) {
	idx, err := Load(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	doc0, _ := idx.GetDocument(0)
	assert.Equal(t, "2024-03-14", doc0.ISODate)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`{not valid json`))
	require.Error(t, err)
}

func TestLoadEmptyArrayProducesEmptyFinalizedIndex(t *testing.T) {
	idx, err := Load(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.True(t, idx.Finalized())
	assert.Equal(t, 0, idx.Size())
	assert.Equal(t, 0.0, idx.AvgDocLength(index.Desc))
}
