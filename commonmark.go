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

// commonmarkRules is the built-in rule list, in match order.
// The replacements render the same Markdown the serializer emits for
// the corresponding document model nodes.
func commonmarkRules() []Rule {
	return []Rule{
		{Tag("p"), paragraphReplacement},
		{Tag("br"), func(*html.Node, string, *Options) string { return "  \n" }},
		{Tags("h1", "h2", "h3", "h4", "h5", "h6"), headingReplacement},
		{Tag("blockquote"), blockQuoteReplacement},
		{Tags("ul", "ol"), listReplacement},
		{Tag("li"), listItemReplacement},
		{preFilter(Indented), indentedCodeReplacement},
		{preFilter(Fenced), fencedCodeReplacement},
		{Tag("hr"), func(n *html.Node, content string, opts *Options) string {
			return "\n\n" + opts.horizontalRule() + "\n\n"
		}},
		{linkFilter(Inlined), linkReplacement},
		// Reference link support needs definition collection;
		// referenced links render inline until then.
		{linkFilter(Referenced), linkReplacement},
		{Tags("em", "i"), emphasisReplacement},
		{Tags("strong", "b"), strongReplacement},
		{codeSpanFilter, codeSpanReplacement},
		{Tag("img"), imageReplacement},
	}
}

func paragraphReplacement(n *html.Node, content string, opts *Options) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	return "\n\n" + content + "\n\n"
}

func headingReplacement(n *html.Node, content string, opts *Options) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	level := headingLevel(nodeAtom(n))
	if opts.headingStyle() == Setext && level <= 2 {
		underline := "="
		if level != 1 {
			underline = "-"
		}
		return "\n\n" + content + "\n" + strings.Repeat(underline, len(content)) + "\n\n"
	}
	return "\n\n" + strings.Repeat("#", level) + " " + content + "\n\n"
}

func blockQuoteReplacement(n *html.Node, content string, opts *Options) string {
	content = strings.TrimSpace(collapseNewlines(content))
	if content == "" {
		return ""
	}
	sb := new(strings.Builder)
	sb.WriteString("\n\n")
	for i, line := range splitLines(content) {
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

func listReplacement(n *html.Node, content string, opts *Options) string {
	content = strings.Trim(content, "\n")
	if content == "" {
		return ""
	}
	// A list nested in a list item stays attached to the item.
	if n.Parent != nil && nodeAtom(n.Parent) == atom.Li {
		return "\n" + content
	}
	return "\n\n" + content + "\n\n"
}

func listItemReplacement(n *html.Node, content string, opts *Options) string {
	prefix := listItemPrefix(n, opts)
	content = strings.TrimSpace(collapseNewlines(content))
	// Continuation lines align under the first content column.
	content = strings.ReplaceAll(content, "\n", "\n"+strings.Repeat(" ", len(prefix)))
	return prefix + content + "\n"
}

// listItemPrefix numbers an item from its list's start attribute and
// its position among the li siblings before it.
func listItemPrefix(n *html.Node, opts *Options) string {
	if n.Parent != nil && nodeAtom(n.Parent) == atom.Ol {
		pos := parseStart(n.Parent)
		for sib := n.PrevSibling; sib != nil; sib = sib.PrevSibling {
			if sib.Type == html.ElementNode && nodeAtom(sib) == atom.Li {
				pos++
			}
		}
		return strconv.Itoa(pos) + ".  "
	}
	return string(opts.bulletListMarker()) + "   "
}

// preFilter matches a pre element holding a code child when the
// configured code block style is the given one.
func preFilter(style CodeBlockStyle) Filter {
	return func(tag string, n *html.Node, opts *Options) bool {
		return tag == "pre" && codeChild(n) != nil && opts.codeBlockStyle() == style
	}
}

func indentedCodeReplacement(n *html.Node, content string, opts *Options) string {
	code := rawText(codeChild(n))
	sb := new(strings.Builder)
	sb.WriteString("\n\n")
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

func fencedCodeReplacement(n *html.Node, content string, opts *Options) string {
	code := codeChild(n)
	class, _ := nodeAttr(code, "class")
	fence := opts.fence()
	body := strings.TrimRight(rawText(code), "\n")
	return "\n\n" + fence + languageFromClass(class) + "\n" + body + "\n" + fence + "\n\n"
}

// linkFilter matches an anchor carrying an href attribute under the
// given link style.
func linkFilter(style LinkStyle) Filter {
	return func(tag string, n *html.Node, opts *Options) bool {
		if tag != "a" {
			return false
		}
		if _, ok := nodeAttr(n, "href"); !ok {
			return false
		}
		return opts.linkStyle() == style
	}
}

func linkReplacement(n *html.Node, content string, opts *Options) string {
	href, _ := nodeAttr(n, "href")
	href = strings.TrimSpace(href)
	title, _ := nodeAttr(n, "title")
	if href == "" && title == "" {
		return content
	}
	if title != "" {
		return "[" + content + "](" + href + " \"" + title + "\")"
	}
	return "[" + content + "](" + href + ")"
}

func emphasisReplacement(n *html.Node, content string, opts *Options) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	delim := string(opts.emDelimiter())
	return delim + content + delim
}

func strongReplacement(n *html.Node, content string, opts *Options) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	delim := opts.strongDelimiter()
	return delim + content + delim
}

// codeSpanFilter matches code elements outside pre;
// code under pre belongs to the code block rules.
func codeSpanFilter(tag string, n *html.Node, opts *Options) bool {
	return tag == "code" && (n.Parent == nil || nodeAtom(n.Parent) != atom.Pre)
}

func codeSpanReplacement(n *html.Node, content string, opts *Options) string {
	return serializeCodeSpan(rawText(n))
}

func imageReplacement(n *html.Node, content string, opts *Options) string {
	src, _ := nodeAttr(n, "src")
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	alt, _ := nodeAttr(n, "alt")
	title, _ := nodeAttr(n, "title")
	if title != "" {
		return "![" + alt + "](" + src + " \"" + title + "\")"
	}
	return "![" + alt + "](" + src + ")"
}
