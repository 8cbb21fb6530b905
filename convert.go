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

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromNode converts a materialized HTML node into a Block.
// Elements convert according to their tag;
// documents and fragments convert their children.
// A nil or empty node converts to an empty Document.
func FromNode(n *html.Node, opts *Options) Block {
	if n == nil {
		return &Document{}
	}
	if n.Type == html.ElementNode {
		if b := convertElement(n, opts); b != nil {
			return flatten(b)
		}
		return &Document{}
	}
	return flatten(&Document{Children: convertChildren(n, opts)})
}

// convertElement converts an element met at block level.
// A nil result means the element contributes nothing.
func convertElement(n *html.Node, opts *Options) Block {
	a := nodeAtom(n)
	switch classifyTag(a) {
	case classParagraph:
		inlines := collectInlines(n, opts)
		if inlinesBlank(inlines) {
			return nil
		}
		return &Paragraph{Content: inlines}

	case classHeading:
		inlines := collectInlines(n, opts)
		if inlinesBlank(inlines) {
			return nil
		}
		return &Heading{Level: headingLevel(a), Content: inlines}

	case classBlockQuote:
		children := convertChildren(n, opts)
		if len(children) == 0 {
			return nil
		}
		return &BlockQuote{Children: children}

	case classList:
		items := collectListItems(n, opts)
		if len(items) == 0 {
			return nil
		}
		ordered := a == atom.Ol
		start := 1
		if ordered {
			start = parseStart(n)
		}
		return &List{Ordered: ordered, Start: start, Items: items}

	case classCodeBlock:
		return convertPre(n, opts)

	case classRule:
		return &ThematicBreak{}

	case classTable:
		return convertTable(n, opts)

	case classContainer:
		children := convertChildren(n, opts)
		switch len(children) {
		case 0:
			return nil
		case 1:
			return children[0]
		default:
			return &Document{Children: children}
		}

	case classInline:
		if inline := convertInlineElement(n, opts); inline != nil {
			return &Paragraph{Content: []Inline{inline}}
		}
		return nil

	case classElide:
		return nil

	default:
		// Unknown elements contribute their block children;
		// failing that, their inline children; failing that, nothing.
		children := convertChildren(n, opts)
		switch len(children) {
		case 0:
			inlines := collectInlines(n, opts)
			if inlinesBlank(inlines) {
				return nil
			}
			return &Paragraph{Content: inlines}
		case 1:
			return children[0]
		default:
			return &Document{Children: children}
		}
	}
}

// convertChildren converts child nodes at block level.
// Non-blank text children become paragraphs of their own.
func convertChildren(n *html.Node, opts *Options) []Block {
	var blocks []Block
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) == "" {
				continue
			}
			text := Escape(collapseWhitespace(c.Data))
			blocks = append(blocks, &Paragraph{Content: []Inline{&Text{Text: text}}})
		case html.ElementNode:
			if b := convertElement(c, opts); b != nil {
				blocks = append(blocks, b)
			}
		}
	}
	return blocks
}

func convertPre(n *html.Node, opts *Options) Block {
	if code := codeChild(n); code != nil {
		class, _ := nodeAttr(code, "class")
		return &CodeBlock{
			Language: languageFromClass(class),
			Code:     rawText(code),
			Fenced:   opts.codeBlockStyle() == Fenced,
		}
	}
	return &CodeBlock{Code: rawText(n)}
}

// codeChild finds the first code element child of a pre element.
func codeChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && nodeAtom(c) == atom.Code {
			return c
		}
	}
	return nil
}

// languageFromClass extracts the info string from a
// highlight.js-style "language-*" class token.
func languageFromClass(class string) string {
	for _, token := range strings.Fields(class) {
		if lang, ok := strings.CutPrefix(token, "language-"); ok {
			return lang
		}
	}
	return ""
}

// collectListItems collects the direct li children of a list.
// Anything else inside the list is dropped.
func collectListItems(n *html.Node, opts *Options) []*ListItem {
	var items []*ListItem
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || nodeAtom(c) != atom.Li {
			continue
		}
		blocks := convertChildren(c, opts)
		if len(blocks) == 0 {
			items = append(items, listItemFromInlines(collectInlines(c, opts)))
		} else {
			items = append(items, &ListItem{Content: blocks})
		}
	}
	return items
}

// convertTable collects header and data rows.
// The first thead row wins as the header row;
// bare tr rows holding a th are promoted while no header is set;
// a headerless table promotes its first data row.
func convertTable(n *html.Node, opts *Options) Block {
	var headers [][]Inline
	var rows [][][]Inline

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch nodeAtom(c) {
		case atom.Thead:
			if len(headers) > 0 {
				continue
			}
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && nodeAtom(tr) == atom.Tr {
					headers, _ = collectRow(tr, opts)
					break
				}
			}
		case atom.Tbody:
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && nodeAtom(tr) == atom.Tr {
					if row, _ := collectRow(tr, opts); len(row) > 0 {
						rows = append(rows, row)
					}
				}
			}
		case atom.Tr:
			row, hasHeaderCell := collectRow(c, opts)
			if len(row) == 0 {
				continue
			}
			if hasHeaderCell && len(headers) == 0 {
				headers = row
			} else {
				rows = append(rows, row)
			}
		}
	}

	if len(headers) == 0 && len(rows) == 0 {
		return nil
	}
	if len(headers) == 0 {
		headers, rows = rows[0], rows[1:]
	}
	return &Table{Headers: headers, Rows: rows}
}

func collectRow(tr *html.Node, opts *Options) (row [][]Inline, hasHeaderCell bool) {
	for cell := tr.FirstChild; cell != nil; cell = cell.NextSibling {
		if cell.Type != html.ElementNode {
			continue
		}
		switch nodeAtom(cell) {
		case atom.Th:
			hasHeaderCell = true
			row = append(row, collectInlines(cell, opts))
		case atom.Td:
			row = append(row, collectInlines(cell, opts))
		}
	}
	return row, hasHeaderCell
}

// collectInlines converts child nodes at inline level.
// Whitespace-only text keeps a single space for word separation.
func collectInlines(n *html.Node, opts *Options) []Inline {
	var inlines []Inline
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			collapsed := collapseWhitespace(c.Data)
			if collapsed != "" {
				inlines = append(inlines, &Text{Text: Escape(collapsed)})
			}
		case html.ElementNode:
			if inline := convertInlineElement(c, opts); inline != nil {
				inlines = append(inlines, inline)
			}
		}
	}
	return inlines
}

// convertInlineElement converts an element met at inline level.
// A nil result means the element contributes nothing.
func convertInlineElement(n *html.Node, opts *Options) Inline {
	a := nodeAtom(n)
	switch inlineKindOf(a) {
	case inlineStrong:
		inner := collectInlines(n, opts)
		if inlinesBlank(inner) {
			return nil
		}
		return &Strong{Content: inner}

	case inlineEmphasis:
		inner := collectInlines(n, opts)
		if inlinesBlank(inner) {
			return nil
		}
		return &Emphasis{Content: inner}

	case inlineCode:
		text := rawText(n)
		if text == "" {
			return nil
		}
		return &Code{Text: text}

	case inlineLink:
		href, _ := nodeAttr(n, "href")
		title, _ := nodeAttr(n, "title")
		content := collectInlines(n, opts)
		if href == "" && title == "" {
			// Not a link: pass a lone child through, else vanish.
			if len(content) == 1 {
				return content[0]
			}
			return nil
		}
		return &Link{Content: content, URL: href, Title: title}

	case inlineImage:
		src, _ := nodeAttr(n, "src")
		if src == "" {
			return nil
		}
		alt, _ := nodeAttr(n, "alt")
		title, _ := nodeAttr(n, "title")
		return &Image{Alt: alt, URL: src, Title: title}

	case inlineBreak:
		return &LineBreak{}

	case inlineFlatten:
		// A block construct nested at inline level flattens to text.
		text := rawText(n)
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return &Text{Text: Escape(collapseWhitespace(text))}

	case inlineElide:
		return nil

	default:
		// Inline containers pass a lone child through,
		// vanish when empty, and flatten to text otherwise.
		inner := collectInlines(n, opts)
		switch len(inner) {
		case 0:
			return nil
		case 1:
			return inner[0]
		default:
			return &Text{Text: inlineText(inner)}
		}
	}
}

func parseStart(n *html.Node) int {
	s, _ := nodeAttr(n, "start")
	return parseStartValue(s)
}

// nodeAtom resolves the tag atom, looking the name up for nodes
// built without one.
func nodeAtom(n *html.Node) atom.Atom {
	if n.DataAtom != 0 {
		return n.DataAtom
	}
	return atom.Lookup([]byte(strings.ToLower(n.Data)))
}

// nodeAttr finds an attribute by case-insensitive name.
func nodeAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// rawText is the concatenated text content of all descendants,
// with no collapsing or escaping.
func rawText(n *html.Node) string {
	sb := new(strings.Builder)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				sb.WriteString(c.Data)
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(n)
	return sb.String()
}
