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
	"testing"

	"golang.org/x/net/html"
)

// event is a compact test encoding:
// "+tag" opens, "-tag" closes, anything else is text.
type event string

func playEvents(events []event, attrs map[int][]html.Attribute, opts *Options) Block {
	s := NewStream(opts)
	for i, e := range events {
		switch {
		case strings.HasPrefix(string(e), "+"):
			s.OpenTag(string(e[1:]), attrs[i])
		case strings.HasPrefix(string(e), "-"):
			s.CloseTag(string(e[1:]))
		default:
			s.Text(string(e))
		}
	}
	return s.Finish()
}

func TestStream(t *testing.T) {
	tests := []struct {
		name   string
		events []event
		attrs  map[int][]html.Attribute
		opts   *Options
		want   string
	}{
		{
			name:   "Paragraph",
			events: []event{"+p", "Hello World", "-p"},
			want:   "Hello World",
		},
		{
			name:   "DocumentOrder",
			events: []event{"+h1", "Title", "-h1", "+p", "Body", "-p"},
			want:   "Title\n=====\n\nBody",
		},
		{
			name:   "TextBeforeBlockKeepsOrder",
			events: []event{"intro", "+p", "body", "-p"},
			want:   "intro\n\nbody",
		},
		{
			name:   "TrailingTextBecomesParagraph",
			events: []event{"+p", "body", "-p", "tail"},
			want:   "body\n\ntail",
		},
		{
			name:   "BareTextOnly",
			events: []event{"just text"},
			want:   "just text",
		},
		{
			name:   "NestedInlines",
			events: []event{"+p", "+strong", "bold ", "+em", "both", "-em", "-strong", "-p"},
			want:   "**bold _both_**",
		},
		{
			name:   "LinkAttributes",
			events: []event{"+p", "+a", "Example", "-a", "-p"},
			attrs: map[int][]html.Attribute{
				1: {{Key: "href", Val: "https://example.com"}},
			},
			want: "[Example](https://example.com)",
		},
		{
			name:   "AnchorWithoutTargetDegrades",
			events: []event{"+p", "+a", "just text", "-a", "-p"},
			want:   "just text",
		},
		{
			name:   "VoidElements",
			events: []event{"+p", "one", "+br", "two", "-p", "+hr", "+p", "three", "-p"},
			want:   "one  \ntwo\n\n* * *\n\nthree",
		},
		{
			name:   "Image",
			events: []event{"+p", "+img", "-p"},
			attrs: map[int][]html.Attribute{
				1: {{Key: "src", Val: "logo.png"}, {Key: "alt", Val: "Logo"}},
			},
			want: "![Logo](logo.png)",
		},
		{
			name:   "ImageWithoutSourceIgnored",
			events: []event{"+p", "kept", "+img", "-p"},
			attrs: map[int][]html.Attribute{
				2: {{Key: "alt", Val: "gone"}},
			},
			want: "kept",
		},
		{
			name:   "OrderedListStart",
			events: []event{"+ol", "+li", "Third", "-li", "+li", "Fourth", "-li", "-ol"},
			attrs: map[int][]html.Attribute{
				0: {{Key: "start", Val: "3"}},
			},
			want: "3.  Third\n4.  Fourth",
		},
		{
			name:   "ItemWithoutListFlowsUp",
			events: []event{"+li", "loose", "-li"},
			want:   "loose",
		},
		{
			name:   "PreCodeVerbatim",
			events: []event{"+pre", "+code", "x := 1\n  y := 2", "-code", "-pre"},
			want:   "    x := 1\n      y := 2",
		},
		{
			name:   "CodeSpanKeepsMarkup",
			events: []event{"+p", "+code", "a*b", "-code", "-p"},
			want:   "`a*b`",
		},
		{
			name:   "FencedCodeWithLanguage",
			events: []event{"+pre", "+code", "x := 1", "-code", "-pre"},
			attrs: map[int][]html.Attribute{
				1: {{Key: "class", Val: "language-go"}},
			},
			opts: &Options{CodeBlockStyle: Fenced},
			want: "```go\nx := 1\n```",
		},
		{
			name: "BlockQuote",
			events: []event{
				"+blockquote", "+p", "a", "-p", "+p", "b", "-p", "-blockquote",
			},
			want: "> a\n>\n> b",
		},
		{
			name: "Table",
			events: []event{
				"+table",
				"+thead", "+tr", "+th", "Name", "-th", "+th", "Age", "-th", "-tr", "-thead",
				"+tbody", "+tr", "+td", "Alice", "-td", "+td", "30", "-td", "-tr", "-tbody",
				"-table",
			},
			want: "| Name  | Age |\n| ----- | --- |\n| Alice | 30  |",
		},
		{
			name: "TableHeaderPromotion",
			events: []event{
				"+table",
				"+tr", "+th", "H", "-th", "-tr",
				"+tr", "+td", "1", "-td", "-tr",
				"-table",
			},
			want: "| H   |\n| --- |\n| 1   |",
		},
		{
			name: "TfootDropped",
			events: []event{
				"+table",
				"+tr", "+th", "H", "-th", "-tr",
				"+tfoot", "+tr", "+td", "total", "-td", "-tr", "-tfoot",
				"-table",
			},
			want: "| H   |\n| --- |",
		},
		{
			name:   "EmptyTableSuppressed",
			events: []event{"+table", "-table"},
			want:   "",
		},
		{
			name:   "ScriptElided",
			events: []event{"+p", "Shown", "-p", "+script", "var x = 1;", "-script"},
			want:   "Shown",
		},
		{
			name:   "NestedElisionSwallowsEverything",
			events: []event{"+template", "+p", "hidden", "-p", "-template"},
			want:   "",
		},
		{
			name:   "StrayCloseIgnored",
			events: []event{"-div", "+p", "fine", "-p", "-span"},
			want:   "fine",
		},
		{
			name:   "CloseSkipsOpenContexts",
			events: []event{"+blockquote", "+p", "q", "-blockquote"},
			want:   "> q",
		},
		{
			name:   "UnbalancedFinish",
			events: []event{"+div", "+p", "partial"},
			want:   "partial",
		},
		{
			name:   "Empty",
			events: nil,
			want:   "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Serialize(playEvents(test.events, test.attrs, test.opts), test.opts)
			if got != test.want {
				t.Errorf("serialized stream = %q; want %q", got, test.want)
			}
		})
	}
}

func TestStreamWhitespaceCollapse(t *testing.T) {
	s := NewStream(nil)
	s.OpenTag("p", nil)
	s.Text("a \n\t b")
	s.Text("   ")
	s.Text("c")
	s.CloseTag("p")
	if got, want := Serialize(s.Finish(), nil), "a b c"; got != want {
		t.Errorf("serialized stream = %q; want %q", got, want)
	}
}

func TestStreamInterleavedTextAndBlocks(t *testing.T) {
	s := NewStream(nil)
	s.OpenTag("div", nil)
	s.Text("before")
	s.OpenTag("p", nil)
	s.Text("middle")
	s.CloseTag("p")
	s.Text("after")
	s.CloseTag("div")
	if got, want := Serialize(s.Finish(), nil), "before\n\nmiddle\n\nafter"; got != want {
		t.Errorf("serialized stream = %q; want %q", got, want)
	}
}
