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

import (
	"strings"
	"unicode"

	"go4.org/bytereplacer"
)

// markdownEscaper handles the characters that are Markdown syntax
// at any position. Characters that are only syntax at the start of a
// line are handled by escapeLineStart.
var markdownEscaper = bytereplacer.New(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	"`", "\\`",
)

// Escape returns text with Markdown syntax characters backslash-escaped
// so the text round-trips as literal content.
// Backslashes, asterisks, underscores, brackets, and backticks are
// escaped anywhere; characters that only start block syntax
// (list markers, quote markers, heading markers, setext underlines,
// tilde fences) are escaped at the start of the text only.
func Escape(text string) string {
	return escapeLineStart(string(markdownEscaper.Replace([]byte(text))))
}

// collapseWhitespace folds every run of Unicode whitespace into a
// single space. Preformatted content must never pass through here.
func collapseWhitespace(s string) string {
	sb := new(strings.Builder)
	sb.Grow(len(s))
	prevSpace := false
	for _, c := range s {
		if unicode.IsSpace(c) {
			if !prevSpace {
				sb.WriteByte(' ')
				prevSpace = true
			}
		} else {
			prevSpace = false
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

func escapeLineStart(s string) string {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	if trimmed == "" {
		return s
	}

	needsEscape := false
	switch c := trimmed[0]; {
	case c == '-' || c == '>' || c == '=':
		needsEscape = true
	case c == '+':
		needsEscape = len(trimmed) > 1 && trimmed[1] == ' '
	case c == '#':
		// 1-6 number signs followed by a space read as a heading.
		n := countLeading(trimmed, '#')
		needsEscape = n <= 6 && len(trimmed) > n && trimmed[n] == ' '
	case c == '~':
		// Three or more tildes read as a fence.
		needsEscape = countLeading(trimmed, '~') >= 3
	case '0' <= c && c <= '9':
		// A digit run followed by a dot reads as an ordered list item.
		n := 0
		for n < len(trimmed) && '0' <= trimmed[n] && trimmed[n] <= '9' {
			n++
		}
		needsEscape = n < len(trimmed) && trimmed[n] == '.'
	}
	if !needsEscape {
		return s
	}
	i := len(s) - len(trimmed)
	return s[:i] + `\` + s[i:]
}

func countLeading(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}
