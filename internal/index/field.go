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

// Field is the closed enumeration of searchable fields. There are no
// user-defined fields; dispatch is always through this type, never a
// string.
type Field int

const (
	Desc Field = iota
	Credit
	IDField

	numFields
)

func (f Field) String() string {
	switch f {
	case Desc:
		return "desc"
	case Credit:
		return "credit"
	case IDField:
		return "id-field"
	default:
		return "unknown"
	}
}

// Fields lists the three indexed fields in a fixed, stable order.
func Fields() []Field {
	return []Field{Desc, Credit, IDField}
}
