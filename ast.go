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

import "strings"

// A Block is a structural element in a Markdown document.
// The set of block types is closed:
// [*Document], [*Heading], [*Paragraph], [*BlockQuote], [*List],
// [*CodeBlock], [*ThematicBreak], [*Table], and [*HTMLBlock].
type Block interface {
	// Blank reports whether the block would serialize to
	// nothing but whitespace.
	Blank() bool

	block()
}

// An Inline is a span of content within a block.
// The set of inline types is closed:
// [*Text], [*Strong], [*Emphasis], [*Code], [*Link], [*Image],
// [*LineBreak], and [*HTMLInline].
type Inline interface {
	// Blank reports whether the inline would serialize to
	// nothing but whitespace.
	Blank() bool

	// textLen estimates the rendered width in bytes.
	// Table column layout depends on it.
	textLen() int

	inline()
}

// Document is a sequence of blocks.
// Converters flatten a single-child Document to its child,
// so a converted Document always has zero or several children.
type Document struct {
	Children []Block
}

// Heading is a section heading with a level in the range 1-6.
type Heading struct {
	Level   int
	Content []Inline
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Content []Inline
}

// BlockQuote is a quoted sequence of blocks.
type BlockQuote struct {
	Children []Block
}

// List is an ordered or unordered list.
// Start is the first ordinal of an ordered list.
type List struct {
	Ordered bool
	Start   int
	Items   []*ListItem
}

// ListItem is a single item of a [List].
// Its content is a sequence of blocks;
// an item holding bare inline content wraps it in a [Paragraph].
type ListItem struct {
	Content []Block
}

// listItemFromInlines wraps inline content in a paragraph-only item.
func listItemFromInlines(content []Inline) *ListItem {
	return &ListItem{Content: []Block{&Paragraph{Content: content}}}
}

// CodeBlock is a preformatted code block.
// Fenced records that the source demanded a fence
// (for example a language-tagged code element)
// regardless of the configured code block style.
type CodeBlock struct {
	Language string
	Code     string
	Fenced   bool
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{}

// Table is a pipe table.
// Headers is the single header row.
// Rows may be ragged: a row may carry more cells than there are headers.
type Table struct {
	Headers [][]Inline
	Rows    [][][]Inline
}

// HTMLBlock is raw HTML passed through at block level.
type HTMLBlock struct {
	HTML string
}

// Text is literal text.
// Converters store it already escaped;
// the serializer copies it verbatim.
type Text struct {
	Text string
}

// Strong is strongly emphasized content.
type Strong struct {
	Content []Inline
}

// Emphasis is emphasized content.
type Emphasis struct {
	Content []Inline
}

// Code is an inline code span. The text is verbatim.
type Code struct {
	Text string
}

// Link is a hyperlink. Title is empty when the source had no title.
type Link struct {
	Content []Inline
	URL     string
	Title   string
}

// Image is an inline image.
type Image struct {
	Alt   string
	URL   string
	Title string
}

// LineBreak is a hard line break.
type LineBreak struct{}

// HTMLInline is raw HTML passed through at inline level.
type HTMLInline struct {
	HTML string
}

func (*Document) block()      {}
func (*Heading) block()       {}
func (*Paragraph) block()     {}
func (*BlockQuote) block()    {}
func (*List) block()          {}
func (*CodeBlock) block()     {}
func (*ThematicBreak) block() {}
func (*Table) block()         {}
func (*HTMLBlock) block()     {}

func (*Text) inline()       {}
func (*Strong) inline()     {}
func (*Emphasis) inline()   {}
func (*Code) inline()       {}
func (*Link) inline()       {}
func (*Image) inline()      {}
func (*LineBreak) inline()  {}
func (*HTMLInline) inline() {}

func (d *Document) Blank() bool { return blocksBlank(d.Children) }

func (h *Heading) Blank() bool { return inlinesBlank(h.Content) }

func (p *Paragraph) Blank() bool { return inlinesBlank(p.Content) }

func (q *BlockQuote) Blank() bool { return blocksBlank(q.Children) }

func (l *List) Blank() bool {
	for _, item := range l.Items {
		if !item.Blank() {
			return false
		}
	}
	return true
}

// Blank reports whether every block of the item is blank.
func (li *ListItem) Blank() bool { return blocksBlank(li.Content) }

func (cb *CodeBlock) Blank() bool { return strings.TrimSpace(cb.Code) == "" }

// Blank always reports false: a rule renders even without content.
func (*ThematicBreak) Blank() bool { return false }

func (t *Table) Blank() bool {
	for _, cell := range t.Headers {
		if !inlinesBlank(cell) {
			return false
		}
	}
	for _, row := range t.Rows {
		for _, cell := range row {
			if !inlinesBlank(cell) {
				return false
			}
		}
	}
	return true
}

func (hb *HTMLBlock) Blank() bool { return strings.TrimSpace(hb.HTML) == "" }

func (t *Text) Blank() bool { return strings.TrimSpace(t.Text) == "" }

func (s *Strong) Blank() bool { return inlinesBlank(s.Content) }

func (e *Emphasis) Blank() bool { return inlinesBlank(e.Content) }

// Blank reports whether the span is empty.
// Whitespace-only code is content, not blankness.
func (c *Code) Blank() bool { return c.Text == "" }

func (l *Link) Blank() bool { return inlinesBlank(l.Content) }

// Blank always reports false: an image renders even with an empty alt.
func (*Image) Blank() bool { return false }

// Blank always reports false: a break renders as a line ending.
func (*LineBreak) Blank() bool { return false }

func (hi *HTMLInline) Blank() bool { return strings.TrimSpace(hi.HTML) == "" }

func blocksBlank(blocks []Block) bool {
	for _, b := range blocks {
		if !b.Blank() {
			return false
		}
	}
	return true
}

func inlinesBlank(inlines []Inline) bool {
	for _, inline := range inlines {
		if !inline.Blank() {
			return false
		}
	}
	return true
}

func (t *Text) textLen() int { return len(t.Text) }

func (s *Strong) textLen() int { return inlinesTextLen(s.Content) + 4 }

func (e *Emphasis) textLen() int { return inlinesTextLen(e.Content) + 4 }

func (c *Code) textLen() int { return len(c.Text) + 2 }

func (l *Link) textLen() int { return inlinesTextLen(l.Content) + 4 }

func (i *Image) textLen() int { return len(i.Alt) + 5 }

func (*LineBreak) textLen() int { return 0 }

func (hi *HTMLInline) textLen() int { return len(hi.HTML) }

func inlinesTextLen(inlines []Inline) int {
	n := 0
	for _, inline := range inlines {
		n += inline.textLen()
	}
	return n
}

// inlineText flattens inline content to plain text.
// Emphasis and links keep their inner text,
// images contribute their alt text,
// and breaks become newlines.
func inlineText(inlines []Inline) string {
	sb := new(strings.Builder)
	for _, inline := range inlines {
		switch inline := inline.(type) {
		case *Text:
			sb.WriteString(inline.Text)
		case *Strong:
			sb.WriteString(inlineText(inline.Content))
		case *Emphasis:
			sb.WriteString(inlineText(inline.Content))
		case *Code:
			sb.WriteString(inline.Text)
		case *Link:
			sb.WriteString(inlineText(inline.Content))
		case *Image:
			sb.WriteString(inline.Alt)
		case *LineBreak:
			sb.WriteString("\n")
		case *HTMLInline:
			sb.WriteString(inline.HTML)
		}
	}
	return sb.String()
}

// flatten unwraps single-child documents.
func flatten(b Block) Block {
	for {
		doc, ok := b.(*Document)
		if !ok || len(doc.Children) != 1 {
			return b
		}
		b = doc.Children[0]
	}
}
