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

package tokenize

// stopwords holds 80 German function words, lowercase and umlaut-folded,
// dropped from every token stream regardless of field.
var stopwords = map[string]struct{}{
	// articles
	"der": {}, "die": {}, "das": {}, "den": {}, "dem": {}, "des": {},
	"ein": {}, "eine": {}, "einer": {}, "einem": {}, "einen": {}, "eines": {},
	// prepositions
	"in": {}, "im": {}, "an": {}, "am": {}, "auf": {}, "aus": {}, "bei": {},
	"mit": {}, "nach": {}, "von": {}, "vor": {}, "zu": {}, "zum": {}, "zur": {},
	"durch": {}, "fuer": {}, "gegen": {}, "ohne": {}, "um": {}, "unter": {}, "ueber": {},
	// conjunctions
	"und": {}, "oder": {}, "aber": {}, "denn": {}, "weil": {}, "wenn": {},
	"als": {}, "ob": {}, "dass": {},
	// pronouns and auxiliaries
	"ist": {}, "sind": {}, "war": {}, "waren": {}, "wird": {}, "werden": {},
	"hat": {}, "haben": {}, "hatte": {}, "hatten": {}, "kann": {}, "koennen": {},
	"muss": {}, "muessen": {}, "soll": {}, "sollen": {}, "will": {}, "wollen": {},
	"ich": {}, "du": {}, "er": {}, "sie": {}, "es": {}, "wir": {}, "ihr": {},
	// discourse particles
	"nicht": {}, "auch": {}, "nur": {}, "noch": {}, "schon": {}, "sehr": {},
	"so": {}, "wie": {}, "was": {}, "wer": {}, "hier": {}, "dort": {}, "dann": {},
}

// creditExclusions holds additional terms dropped only from the credit
// field, to avoid saturating every document's credit posting list with a
// near-universal agency name.
var creditExclusions = map[string]struct{}{
	"imago": {},
}

func isStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
