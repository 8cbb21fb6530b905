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

// Package htmldown converts HTML documents into [Markdown] text.
//
// Two converters build the same document model:
// [FromNode] walks a materialized [golang.org/x/net/html] tree,
// and [Stream] consumes tag and text events without materializing
// anything. [Serialize] renders the model deterministically.
// [Rules] offers per-element replacement dispatch instead of the
// document model for turndown-style customization.
//
// [Markdown]: https://daringfireball.net/projects/markdown/
package htmldown

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ConvertNode converts a materialized HTML node to Markdown.
func ConvertNode(n *html.Node, opts *Options) string {
	return Serialize(FromNode(n, opts), opts)
}

// ConvertString parses s as a full HTML5 document and converts it
// to Markdown through the tree converter.
func ConvertString(s string, opts *Options) (string, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	return ConvertNode(doc, opts), nil
}

// ConvertReader tokenizes r and converts it to Markdown through the
// streaming converter without materializing a document tree.
// An error can only come from reading r.
func ConvertReader(r io.Reader, opts *Options) (string, error) {
	s := NewStream(opts)
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return "", fmt.Errorf("tokenize html: %w", err)
			}
			return Serialize(s.Finish(), opts), nil
		case html.TextToken:
			s.Text(string(z.Text()))
		case html.StartTagToken:
			t := z.Token()
			s.OpenTag(t.Data, t.Attr)
		case html.SelfClosingTagToken:
			t := z.Token()
			s.OpenTag(t.Data, t.Attr)
			s.CloseTag(t.Data)
		case html.EndTagToken:
			name, _ := z.TagName()
			s.CloseTag(string(name))
		}
	}
}
