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

// Config holds every search-time knob, all overridable per query. The zero
// value is not valid configuration — use DefaultConfig and override fields
// as needed.
type Config struct {
	K1 float64
	B  float64

	DescWeight   float64
	CreditWeight float64
	IDWeight     float64

	MinPrefixLength    int
	MaxPrefixExpansion int
	PrefixPenalty      float64
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() Config {
	return Config{
		K1: 1.2,
		B:  0.75,

		DescWeight:   3.0,
		CreditWeight: 1.5,
		IDWeight:     1.0,

		MinPrefixLength:    3,
		MaxPrefixExpansion: 50,
		PrefixPenalty:      0.8,
	}
}
