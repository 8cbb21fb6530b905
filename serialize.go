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
	"io"
	"strconv"
	"strings"
)

// Serialize renders a block to Markdown.
// It is pure: equal blocks and equal options yield identical text.
// Blank nested blocks are omitted;
// runs of three or more newlines collapse to a blank line;
// the result carries no leading or trailing newlines.
func Serialize(b Block, opts *Options) string {
	out := serializeBlock(b, opts, 0)
	out = collapseNewlines(out)
	return strings.Trim(out, "\n")
}

// Render writes the serialization of b to w.
func Render(w io.Writer, b Block, opts *Options) error {
	if _, err := io.WriteString(w, Serialize(b, opts)); err != nil {
		return err
	}
	return nil
}

func serializeBlock(b Block, opts *Options, depth int) string {
	switch b := b.(type) {
	case *Document:
		return serializeBlocks(b.Children, opts, depth)
	case *Heading:
		return serializeHeading(b.Level, b.Content, opts)
	case *Paragraph:
		text := serializeInlines(b.Content, opts)
		if strings.TrimSpace(text) == "" {
			return ""
		}
		return text + "\n\n"
	case *BlockQuote:
		return serializeBlockQuote(b.Children, opts, depth)
	case *List:
		return serializeList(b.Ordered, b.Start, b.Items, opts, depth)
	case *CodeBlock:
		return serializeCodeBlock(b.Language, b.Code, b.Fenced, opts)
	case *ThematicBreak:
		return opts.horizontalRule() + "\n\n"
	case *Table:
		return serializeTable(b.Headers, b.Rows, opts)
	case *HTMLBlock:
		return b.HTML + "\n\n"
	default:
		return ""
	}
}

func serializeBlocks(blocks []Block, opts *Options, depth int) string {
	sb := new(strings.Builder)
	for _, b := range blocks {
		if !b.Blank() {
			sb.WriteString(serializeBlock(b, opts, depth))
		}
	}
	return sb.String()
}

func serializeHeading(level int, content []Inline, opts *Options) string {
	text := serializeInlines(content, opts)
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if opts.headingStyle() == Setext && level <= 2 {
		underline := "="
		if level != 1 {
			underline = "-"
		}
		return text + "\n" + strings.Repeat(underline, len(text)) + "\n\n"
	}
	return strings.Repeat("#", level) + " " + text + "\n\n"
}

func serializeBlockQuote(children []Block, opts *Options, depth int) string {
	content := serializeBlocks(children, opts, depth)
	sb := new(strings.Builder)
	for i, line := range splitLines(strings.TrimRight(content, " \t\r\n")) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if line == "" {
			sb.WriteByte('>')
		} else {
			sb.WriteString("> ")
			sb.WriteString(line)
		}
	}
	sb.WriteString("\n\n")
	return sb.String()
}

func serializeList(ordered bool, start int, items []*ListItem, opts *Options, depth int) string {
	sb := new(strings.Builder)
	indent := strings.Repeat("    ", depth)

	for i, item := range items {
		var prefix string
		if ordered {
			prefix = strconv.Itoa(start+i) + ".  "
		} else {
			prefix = string(opts.bulletListMarker()) + "   "
		}

		content := strings.TrimSpace(serializeListItem(item, opts, depth+1))
		lines := splitLines(content)
		if len(lines) == 0 {
			continue
		}
		sb.WriteString(indent)
		sb.WriteString(prefix)
		sb.WriteString(lines[0])
		sb.WriteByte('\n')
		// Continuation lines align under the first content column.
		for _, line := range lines[1:] {
			sb.WriteString(indent)
			sb.WriteString(strings.Repeat(" ", len(prefix)))
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}

	sb.WriteByte('\n')
	return sb.String()
}

func serializeListItem(item *ListItem, opts *Options, depth int) string {
	sb := new(strings.Builder)
	for i, b := range item.Content {
		switch b := b.(type) {
		case *Paragraph:
			sb.WriteString(serializeInlines(b.Content, opts))
			if i < len(item.Content)-1 {
				sb.WriteString("\n\n")
			}
		case *List:
			// A nested list starts on its own line under the item.
			sb.WriteByte('\n')
			sb.WriteString(serializeBlock(b, opts, depth))
		default:
			sb.WriteString(serializeBlock(b, opts, depth))
		}
	}
	return sb.String()
}

func serializeCodeBlock(language, code string, fenced bool, opts *Options) string {
	if fenced || opts.codeBlockStyle() == Fenced {
		fence := opts.fence()
		return fence + language + "\n" + code + "\n" + fence + "\n\n"
	}
	sb := new(strings.Builder)
	for i, line := range splitLines(code) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("    ")
		sb.WriteString(line)
	}
	sb.WriteString("\n\n")
	return sb.String()
}

func serializeTable(headers [][]Inline, rows [][][]Inline, opts *Options) string {
	if len(headers) == 0 {
		return ""
	}

	// Column widths fit the widest of header and cells,
	// with a minimum of 3 so the separator row is well formed.
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = inlinesTextLen(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], inlinesTextLen(cell))
			}
		}
	}
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	sb := new(strings.Builder)

	sb.WriteByte('|')
	for i, header := range headers {
		writeTableCell(sb, serializeInlines(header, opts), widths[i])
	}
	sb.WriteByte('\n')

	sb.WriteByte('|')
	for _, width := range widths {
		sb.WriteByte(' ')
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}
	sb.WriteByte('\n')

	for _, row := range rows {
		sb.WriteByte('|')
		for i, cell := range row {
			width := 3
			if i < len(widths) {
				width = widths[i]
			}
			writeTableCell(sb, serializeInlines(cell, opts), width)
		}
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	return sb.String()
}

func writeTableCell(sb *strings.Builder, text string, width int) {
	sb.WriteByte(' ')
	sb.WriteString(text)
	if n := width - len(text); n > 0 {
		sb.WriteString(strings.Repeat(" ", n))
	}
	sb.WriteString(" |")
}

func serializeInlines(inlines []Inline, opts *Options) string {
	sb := new(strings.Builder)
	for _, inline := range inlines {
		sb.WriteString(serializeInline(inline, opts))
	}
	return sb.String()
}

func serializeInline(inline Inline, opts *Options) string {
	switch inline := inline.(type) {
	case *Text:
		return inline.Text
	case *Strong:
		inner := serializeInlines(inline.Content, opts)
		if strings.TrimSpace(inner) == "" {
			return ""
		}
		delim := opts.strongDelimiter()
		return delim + inner + delim
	case *Emphasis:
		inner := serializeInlines(inline.Content, opts)
		if strings.TrimSpace(inner) == "" {
			return ""
		}
		delim := string(opts.emDelimiter())
		return delim + inner + delim
	case *Code:
		return serializeCodeSpan(inline.Text)
	case *Link:
		text := serializeInlines(inline.Content, opts)
		if inline.Title != "" {
			return "[" + text + "](" + inline.URL + " \"" + inline.Title + "\")"
		}
		return "[" + text + "](" + inline.URL + ")"
	case *Image:
		if inline.Title != "" {
			return "![" + inline.Alt + "](" + inline.URL + " \"" + inline.Title + "\")"
		}
		return "![" + inline.Alt + "](" + inline.URL + ")"
	case *LineBreak:
		return "  \n"
	case *HTMLInline:
		return inline.HTML
	default:
		return ""
	}
}

// serializeCodeSpan wraps code in a backtick run one longer than the
// longest run inside it, padding with a space when the content starts
// or ends with a backtick or space.
func serializeCodeSpan(code string) string {
	if code == "" {
		return ""
	}
	delim := strings.Repeat("`", maxBacktickRun(code)+1)
	pad := ""
	if strings.HasPrefix(code, "`") || strings.HasSuffix(code, "`") ||
		strings.HasPrefix(code, " ") || strings.HasSuffix(code, " ") {
		pad = " "
	}
	return delim + pad + code + pad + delim
}

func maxBacktickRun(s string) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return longest
}

// splitLines splits on newlines without yielding a final empty line,
// so "a\n" is one line and "" is none.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func collapseNewlines(s string) string {
	sb := new(strings.Builder)
	sb.Grow(len(s))
	newlines := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			newlines++
			if newlines <= 2 {
				sb.WriteByte('\n')
			}
		} else {
			newlines = 0
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
