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

// Package dateparse canonicalizes the three date string shapes the corpus
// may contain into ISO (YYYY-MM-DD) form. It performs no calendar
// validation: an impossible date such as 31.02.2024 is accepted and emitted
// as 2024-02-31, matching observed source behavior.
package dateparse

import (
	"fmt"
	"regexp"
)

var (
	dotted   = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	slashed  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Parse tries, in order, DD.MM.YYYY, DD/MM/YYYY, then YYYY-MM-DD
// passthrough. It returns (iso, true) on success or ("", false) when s
// matches none of the three shapes.
func Parse(s string) (string, bool) {
	if m := dotted.FindStringSubmatch(s); m != nil {
		return pad(m[3], m[2], m[1]), true
	}
	if m := slashed.FindStringSubmatch(s); m != nil {
		return pad(m[3], m[2], m[1]), true
	}
	if isoShape.MatchString(s) {
		return s, true
	}
	return "", false
}

func pad(year, month, day string) string {
	return fmt.Sprintf("%s-%s-%s", year, zeroPad(month), zeroPad(day))
}

func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
