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
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// A Filter decides whether a rule applies to an element.
// The tag name is lowercase.
type Filter func(tag string, n *html.Node, opts *Options) bool

// Tag returns a Filter matching a single tag name.
func Tag(name string) Filter {
	name = strings.ToLower(name)
	return func(tag string, n *html.Node, opts *Options) bool {
		return tag == name
	}
}

// Tags returns a Filter matching any of the given tag names.
func Tags(names ...string) Filter {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = true
	}
	return func(tag string, n *html.Node, opts *Options) bool {
		return set[tag]
	}
}

// A Replacement produces the Markdown text of an element from its
// already-converted child content.
type Replacement func(n *html.Node, content string, opts *Options) string

// A Rule pairs a Filter with the Replacement applied to matching
// elements.
type Rule struct {
	Filter      Filter
	Replacement Replacement
}

// Rules converts elements to text by per-element replacement dispatch
// instead of the document model.
// Custom rules are checked in insertion order before the built-in
// CommonMark rules; a matching rule wins over keep and remove filters.
// An element matching no rule and a keep filter passes through as raw
// HTML; an element matching no rule and a remove filter vanishes;
// anything else contributes its converted child content unchanged.
type Rules struct {
	keys    []string
	custom  map[string]Rule
	builtin []Rule
	keep    []Filter
	remove  []Filter
}

// NewRules returns a rule set holding the built-in CommonMark rules
// and no custom rules or filters.
func NewRules() *Rules {
	return &Rules{
		custom:  make(map[string]Rule),
		builtin: commonmarkRules(),
	}
}

// Add registers a custom rule under a key and returns rs.
// Re-adding a key replaces the rule but keeps its position.
func (rs *Rules) Add(key string, r Rule) *Rules {
	if _, ok := rs.custom[key]; !ok {
		rs.keys = append(rs.keys, key)
	}
	rs.custom[key] = r
	return rs
}

// Keep registers filters whose elements pass through as raw HTML
// and returns rs.
func (rs *Rules) Keep(filters ...Filter) *Rules {
	rs.keep = append(rs.keep, filters...)
	return rs
}

// Remove registers filters whose elements vanish entirely
// and returns rs.
func (rs *Rules) Remove(filters ...Filter) *Rules {
	rs.remove = append(rs.remove, filters...)
	return rs
}

// Use applies plugins to rs and returns rs.
// A plugin is any function registering rules or filters.
func (rs *Rules) Use(plugins ...func(*Rules)) *Rules {
	for _, plugin := range plugins {
		plugin(rs)
	}
	return rs
}

// Convert renders a node to Markdown by rule dispatch.
// Documents and fragments convert their children.
func (rs *Rules) Convert(n *html.Node, opts *Options) string {
	var out string
	if n != nil && n.Type == html.ElementNode {
		out = rs.convertElement(n, opts)
	} else if n != nil {
		out = rs.convertChildren(n, opts)
	}
	return strings.Trim(collapseNewlines(out), "\n")
}

// ConvertString parses s as a full HTML5 document and converts it by
// rule dispatch.
func (rs *Rules) ConvertString(s string, opts *Options) (string, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	return rs.Convert(doc, opts), nil
}

func (rs *Rules) convertChildren(n *html.Node, opts *Options) string {
	sb := new(strings.Builder)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(Escape(collapseWhitespace(c.Data)))
		case html.ElementNode:
			sb.WriteString(rs.convertElement(c, opts))
		}
	}
	return sb.String()
}

func (rs *Rules) convertElement(n *html.Node, opts *Options) string {
	tag := strings.ToLower(n.Data)

	if r, ok := rs.match(tag, n, opts); ok {
		return r.Replacement(n, rs.convertChildren(n, opts), opts)
	}
	if matchAny(rs.keep, tag, n, opts) {
		return keepReplacement(n)
	}
	if matchAny(rs.remove, tag, n, opts) {
		return ""
	}
	if classifyTag(nodeAtom(n)) == classElide {
		return ""
	}
	return rs.convertChildren(n, opts)
}

// match finds the first applicable rule,
// custom rules in insertion order before built-ins.
func (rs *Rules) match(tag string, n *html.Node, opts *Options) (Rule, bool) {
	for _, key := range rs.keys {
		if r := rs.custom[key]; r.Filter(tag, n, opts) {
			return r, true
		}
	}
	for _, r := range rs.builtin {
		if r.Filter(tag, n, opts) {
			return r, true
		}
	}
	return Rule{}, false
}

func matchAny(filters []Filter, tag string, n *html.Node, opts *Options) bool {
	for _, f := range filters {
		if f(tag, n, opts) {
			return true
		}
	}
	return false
}

// keepReplacement renders a kept element back to its original HTML.
// Block-level elements get blank-line separation so surrounding
// Markdown stays well formed.
func keepReplacement(n *html.Node) string {
	sb := new(strings.Builder)
	html.Render(sb, n)
	if isBlockElement(n.Data) {
		return "\n\n" + sb.String() + "\n\n"
	}
	return sb.String()
}
