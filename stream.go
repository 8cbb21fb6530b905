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
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// A Stream converts a sequence of tag and text events into a Block
// without materializing the input document.
// Feed it with [Stream.OpenTag], [Stream.Text], and [Stream.CloseTag]
// in document order, then call [Stream.Finish].
//
// A Stream tolerates unbalanced input: stray close tags are ignored,
// and Finish folds whatever is still open into a best-effort result.
// A Stream is not safe for concurrent use and is spent after Finish.
type Stream struct {
	opts  *Options
	stack []*streamContext
}

// streamContext accumulates the content of one open element.
// The bottom of the stack is a synthetic root that is never popped.
type streamContext struct {
	tag    string
	a      atom.Atom
	class  tagClass
	elided bool
	attrs  streamAttrs

	inlines []Inline
	blocks  []Block

	items      []*ListItem
	cells      [][]Inline
	headerCell bool
	headers    [][]Inline
	rows       [][][]Inline

	// pre bookkeeping, filled by a closing code child
	sawCode  bool
	codeLang string
}

type streamAttrs struct {
	href  string
	src   string
	alt   string
	title string
	class string
	start string
}

// NewStream returns a Stream that builds blocks for the given options.
// A nil opts means all defaults.
func NewStream(opts *Options) *Stream {
	return &Stream{
		opts:  opts,
		stack: []*streamContext{{class: classContainer}},
	}
}

func (s *Stream) top() *streamContext {
	return s.stack[len(s.stack)-1]
}

// OpenTag records the start of an element.
// Void elements apply immediately and never open a context:
// br adds a line break, hr a thematic break,
// and img an image when it has a source.
func (s *Stream) OpenTag(name string, attrs []html.Attribute) {
	name = strings.ToLower(name)
	a := atom.Lookup([]byte(name))
	top := s.top()

	if voidElements[a] {
		if top.elided {
			return
		}
		switch a {
		case atom.Br:
			top.inlines = append(top.inlines, &LineBreak{})
		case atom.Hr:
			addBlock(top, &ThematicBreak{})
		case atom.Img:
			if src := attrValue(attrs, "src"); src != "" {
				top.inlines = append(top.inlines, &Image{
					Alt:   attrValue(attrs, "alt"),
					URL:   src,
					Title: attrValue(attrs, "title"),
				})
			}
		}
		return
	}

	class := classifyTag(a)
	s.stack = append(s.stack, &streamContext{
		tag:    name,
		a:      a,
		class:  class,
		elided: top.elided || class == classElide,
		attrs: streamAttrs{
			href:  attrValue(attrs, "href"),
			src:   attrValue(attrs, "src"),
			alt:   attrValue(attrs, "alt"),
			title: attrValue(attrs, "title"),
			class: attrValue(attrs, "class"),
			start: attrValue(attrs, "start"),
		},
	})
}

// Text records character data.
// Inside preformatted or code content it is kept verbatim;
// elsewhere it is whitespace-collapsed and escaped.
// Text inside elided elements is dropped.
func (s *Stream) Text(text string) {
	top := s.top()
	if top.elided || text == "" {
		return
	}
	if s.inPreformatted() {
		top.inlines = append(top.inlines, &Text{Text: text})
		return
	}
	collapsed := collapseWhitespace(text)
	if collapsed == "" {
		return
	}
	top.inlines = append(top.inlines, &Text{Text: Escape(collapsed)})
}

// CloseTag records the end of an element.
// It finalizes the named context and every context opened after it;
// a close with no matching open is ignored.
func (s *Stream) CloseTag(name string) {
	name = strings.ToLower(name)
	match := -1
	for i := len(s.stack) - 1; i >= 1; i-- {
		if s.stack[i].tag == name {
			match = i
			break
		}
	}
	if match < 0 {
		return
	}
	for len(s.stack) > match {
		s.pop()
	}
}

// Finish finalizes everything still open and returns the document.
// Exactly one accumulated block is returned bare;
// several are wrapped in a Document;
// leftover inline content becomes a trailing paragraph.
func (s *Stream) Finish() Block {
	for len(s.stack) > 1 {
		s.pop()
	}
	root := s.stack[0]
	flushInlines(root)
	switch len(root.blocks) {
	case 0:
		return &Document{}
	case 1:
		return flatten(root.blocks[0])
	default:
		return flatten(&Document{Children: root.blocks})
	}
}

func (s *Stream) pop() {
	ctx := s.top()
	s.stack = s.stack[:len(s.stack)-1]
	if !ctx.elided {
		finalizeInto(ctx, s.top(), s.opts)
	}
}

// inPreformatted reports whether an open pre or code element is on
// the stack.
func (s *Stream) inPreformatted() bool {
	for i := len(s.stack) - 1; i >= 1; i-- {
		if a := s.stack[i].a; a == atom.Pre || a == atom.Code {
			return true
		}
	}
	return false
}

// finalizeInto turns a closed context into content of its parent,
// dispatching on the same classification as the tree converter.
func finalizeInto(ctx, parent *streamContext, opts *Options) {
	switch ctx.class {
	case classParagraph:
		if !inlinesBlank(ctx.inlines) {
			addBlock(parent, &Paragraph{Content: ctx.inlines})
		}

	case classHeading:
		if !inlinesBlank(ctx.inlines) {
			addBlock(parent, &Heading{Level: headingLevel(ctx.a), Content: ctx.inlines})
		}

	case classBlockQuote:
		flushInlines(ctx)
		if len(ctx.blocks) > 0 {
			addBlock(parent, &BlockQuote{Children: ctx.blocks})
		}

	case classList:
		if len(ctx.items) == 0 {
			return
		}
		ordered := ctx.a == atom.Ol
		start := 1
		if ordered {
			start = parseStartValue(ctx.attrs.start)
		}
		addBlock(parent, &List{Ordered: ordered, Start: start, Items: ctx.items})

	case classListItem:
		var item *ListItem
		if len(ctx.blocks) == 0 {
			item = listItemFromInlines(ctx.inlines)
		} else {
			flushInlines(ctx)
			item = &ListItem{Content: ctx.blocks}
		}
		if parent.class == classList {
			parent.items = append(parent.items, item)
			return
		}
		// A list item without a list: its content flows up.
		for _, b := range item.Content {
			addBlock(parent, b)
		}

	case classCodeBlock:
		code := inlineText(ctx.inlines)
		fenced := ctx.sawCode && opts.codeBlockStyle() == Fenced
		addBlock(parent, &CodeBlock{Language: ctx.codeLang, Code: code, Fenced: fenced})

	case classTableCell:
		if parent.class == classTableRow {
			parent.cells = append(parent.cells, ctx.inlines)
			if ctx.a == atom.Th {
				parent.headerCell = true
			}
			return
		}
		if !inlinesBlank(ctx.inlines) {
			addBlock(parent, &Paragraph{Content: ctx.inlines})
		}

	case classTableRow:
		switch parent.class {
		case classTableSection:
			if len(ctx.cells) == 0 {
				return
			}
			switch parent.a {
			case atom.Thead:
				if len(parent.headers) == 0 {
					parent.headers = ctx.cells
				}
			case atom.Tbody:
				parent.rows = append(parent.rows, ctx.cells)
			}
		case classTable:
			if len(ctx.cells) == 0 {
				return
			}
			if ctx.headerCell && len(parent.headers) == 0 {
				parent.headers = ctx.cells
			} else {
				parent.rows = append(parent.rows, ctx.cells)
			}
		default:
			// A row without a table: cells degrade to paragraphs.
			for _, cell := range ctx.cells {
				if !inlinesBlank(cell) {
					addBlock(parent, &Paragraph{Content: cell})
				}
			}
			finalizeContainer(ctx, parent)
		}

	case classTableSection:
		if parent.class == classTable {
			switch ctx.a {
			case atom.Thead:
				if len(parent.headers) == 0 && len(ctx.headers) > 0 {
					parent.headers = ctx.headers
				}
			case atom.Tbody:
				parent.rows = append(parent.rows, ctx.rows...)
			}
			return
		}
		// A section without a table: cells degrade to paragraphs.
		cells := ctx.headers
		for _, row := range ctx.rows {
			cells = append(cells, row...)
		}
		for _, cell := range cells {
			if !inlinesBlank(cell) {
				addBlock(parent, &Paragraph{Content: cell})
			}
		}
		finalizeContainer(ctx, parent)

	case classTable:
		headers, rows := ctx.headers, ctx.rows
		if len(headers) == 0 && len(rows) == 0 {
			return
		}
		if len(headers) == 0 {
			headers, rows = rows[0], rows[1:]
		}
		addBlock(parent, &Table{Headers: headers, Rows: rows})

	case classInline:
		finalizeInline(ctx, parent)

	default:
		finalizeContainer(ctx, parent)
	}
}

func finalizeInline(ctx, parent *streamContext) {
	switch inlineKindOf(ctx.a) {
	case inlineStrong:
		if !inlinesBlank(ctx.inlines) {
			parent.inlines = append(parent.inlines, &Strong{Content: ctx.inlines})
		}

	case inlineEmphasis:
		if !inlinesBlank(ctx.inlines) {
			parent.inlines = append(parent.inlines, &Emphasis{Content: ctx.inlines})
		}

	case inlineCode:
		text := inlineText(ctx.inlines)
		if parent.a == atom.Pre {
			parent.sawCode = true
			if parent.codeLang == "" {
				parent.codeLang = languageFromClass(ctx.attrs.class)
			}
			parent.inlines = append(parent.inlines, &Code{Text: text})
			return
		}
		if text != "" {
			parent.inlines = append(parent.inlines, &Code{Text: text})
		}

	case inlineLink:
		href, title := ctx.attrs.href, ctx.attrs.title
		if href == "" && title == "" {
			if len(ctx.inlines) == 1 {
				parent.inlines = append(parent.inlines, ctx.inlines[0])
			}
			return
		}
		parent.inlines = append(parent.inlines, &Link{Content: ctx.inlines, URL: href, Title: title})

	default:
		// Inline containers pass a lone child through,
		// vanish when empty, and flatten to text otherwise.
		switch len(ctx.inlines) {
		case 0:
		case 1:
			parent.inlines = append(parent.inlines, ctx.inlines[0])
		default:
			parent.inlines = append(parent.inlines, &Text{Text: inlineText(ctx.inlines)})
		}
	}
}

// finalizeContainer contributes accumulated blocks transparently,
// with trailing inline content flushed into a final paragraph.
func finalizeContainer(ctx, parent *streamContext) {
	flushInlines(ctx)
	switch len(ctx.blocks) {
	case 0:
	case 1:
		addBlock(parent, ctx.blocks[0])
	default:
		addBlock(parent, &Document{Children: ctx.blocks})
	}
}

// addBlock appends a finished block to a context.
// Contexts that hold blocks flush pending inline content first so
// document order is kept.
// Inline-level and paragraph-like contexts flatten the block to text,
// matching how the tree converter reads blocks nested under inlines.
// Structural contexts (lists, tables, rows) take no loose blocks.
func addBlock(ctx *streamContext, b Block) {
	switch ctx.class {
	case classContainer, classBlockQuote, classListItem, classUnknown:
		flushInlines(ctx)
		ctx.blocks = append(ctx.blocks, b)
	case classParagraph, classHeading, classInline, classCodeBlock, classTableCell:
		if text := blockText(b); text != "" {
			ctx.inlines = append(ctx.inlines, &Text{Text: text})
		}
	}
}

// flushInlines converts pending non-blank inline content into a
// paragraph block. Blank leftovers are dropped.
func flushInlines(ctx *streamContext) {
	if !inlinesBlank(ctx.inlines) {
		ctx.blocks = append(ctx.blocks, &Paragraph{Content: ctx.inlines})
	}
	ctx.inlines = nil
}

// blockText flattens a block to plain text for inline absorption.
func blockText(b Block) string {
	switch b := b.(type) {
	case *Document:
		return blocksText(b.Children)
	case *Heading:
		return inlineText(b.Content)
	case *Paragraph:
		return inlineText(b.Content)
	case *BlockQuote:
		return blocksText(b.Children)
	case *List:
		sb := new(strings.Builder)
		for _, item := range b.Items {
			sb.WriteString(blocksText(item.Content))
		}
		return sb.String()
	case *CodeBlock:
		return b.Code
	case *Table:
		sb := new(strings.Builder)
		for _, cell := range b.Headers {
			sb.WriteString(inlineText(cell))
		}
		for _, row := range b.Rows {
			for _, cell := range row {
				sb.WriteString(inlineText(cell))
			}
		}
		return sb.String()
	case *HTMLBlock:
		return b.HTML
	default:
		return ""
	}
}

func blocksText(blocks []Block) string {
	sb := new(strings.Builder)
	for _, b := range blocks {
		sb.WriteString(blockText(b))
	}
	return sb.String()
}

func attrValue(attrs []html.Attribute, name string) string {
	for _, a := range attrs {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

// parseStartValue reads an ordered list start attribute.
// Non-negative integers are accepted; anything else means 1.
func parseStartValue(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 1
	}
	return v
}
