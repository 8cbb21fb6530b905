// Copyright 2025 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package htmldown

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"hello", "hello"},
		{"", ""},
		{"a*b", `a\*b`},
		{"_x_", `\_x\_`},
		{"[link]", `\[link\]`},
		{`a\b`, `a\\b`},
		{"back`tick", "back\\`tick"},

		// Characters that only open block syntax are escaped at the
		// start of the text.
		{"- item", `\- item`},
		{"x - y", "x - y"},
		{"+ item", `\+ item`},
		{"+item", "+item"},
		{"> quote", `\> quote`},
		{"# heading", `\# heading`},
		{"## heading", `\## heading`},
		{"#hash", "#hash"},
		{"####### seven", "####### seven"},
		{"= title", `\= title`},
		{"~~~", `\~~~`},
		{"~~strike", "~~strike"},
		{"1. item", `\1. item`},
		{"12. item", `\12. item`},
		{"12 items", "12 items"},
		{"  - indented", `  \- indented`},
		{"   ", "   "},
	}
	for _, test := range tests {
		if got := Escape(test.text); got != test.want {
			t.Errorf("Escape(%q) = %q; want %q", test.text, got, test.want)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", ""},
		{"a b", "a b"},
		{"a  b", "a b"},
		{"a\n\t b", "a b"},
		{"  a", " a"},
		{"a\n", "a "},
		{"\n \t", " "},
		{"a b", "a b"},
	}
	for _, test := range tests {
		if got := collapseWhitespace(test.s); got != test.want {
			t.Errorf("collapseWhitespace(%q) = %q; want %q", test.s, got, test.want)
		}
	}
}
