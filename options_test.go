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
	"encoding"
	"fmt"
	"testing"
)

func TestOptionEnumNames(t *testing.T) {
	tests := []struct {
		value fmt.Stringer
		want  string
	}{
		{Setext, "setext"},
		{ATX, "atx"},
		{HeadingStyle(99), "HeadingStyle(99)"},
		{Indented, "indented"},
		{Fenced, "fenced"},
		{Inlined, "inlined"},
		{Referenced, "referenced"},
		{Full, "full"},
		{Collapsed, "collapsed"},
		{Shortcut, "shortcut"},
	}
	for _, test := range tests {
		if got := test.value.String(); got != test.want {
			t.Errorf("%T.String() = %q; want %q", test.value, got, test.want)
		}
	}
}

func TestOptionEnumUnmarshalText(t *testing.T) {
	roundtrip := []struct {
		dst  encoding.TextUnmarshaler
		text string
		want fmt.Stringer
	}{
		{new(HeadingStyle), "atx", ATX},
		{new(HeadingStyle), "setext", Setext},
		{new(CodeBlockStyle), "fenced", Fenced},
		{new(LinkStyle), "referenced", Referenced},
		{new(LinkReferenceStyle), "shortcut", Shortcut},
	}
	for _, test := range roundtrip {
		if err := test.dst.UnmarshalText([]byte(test.text)); err != nil {
			t.Errorf("%T.UnmarshalText(%q): %v", test.dst, test.text, err)
			continue
		}
		if got := test.dst.(fmt.Stringer).String(); got != test.want.String() {
			t.Errorf("%T.UnmarshalText(%q) stored %q; want %q", test.dst, test.text, got, test.want)
		}
	}

	bad := []encoding.TextUnmarshaler{
		new(HeadingStyle),
		new(CodeBlockStyle),
		new(LinkStyle),
		new(LinkReferenceStyle),
	}
	for _, dst := range bad {
		if err := dst.UnmarshalText([]byte("bogus")); err == nil {
			t.Errorf("%T.UnmarshalText(%q) did not return an error", dst, "bogus")
		}
	}
}

func TestOptionDefaults(t *testing.T) {
	var o *Options
	if got, want := o.headingStyle(), Setext; got != want {
		t.Errorf("nil headingStyle() = %v; want %v", got, want)
	}
	if got, want := o.horizontalRule(), "* * *"; got != want {
		t.Errorf("nil horizontalRule() = %q; want %q", got, want)
	}
	if got, want := o.bulletListMarker(), '*'; got != want {
		t.Errorf("nil bulletListMarker() = %q; want %q", got, want)
	}
	if got, want := o.codeBlockStyle(), Indented; got != want {
		t.Errorf("nil codeBlockStyle() = %v; want %v", got, want)
	}
	if got, want := o.fence(), "```"; got != want {
		t.Errorf("nil fence() = %q; want %q", got, want)
	}
	if got, want := o.emDelimiter(), '_'; got != want {
		t.Errorf("nil emDelimiter() = %q; want %q", got, want)
	}
	if got, want := o.strongDelimiter(), "**"; got != want {
		t.Errorf("nil strongDelimiter() = %q; want %q", got, want)
	}
	if got, want := o.linkStyle(), Inlined; got != want {
		t.Errorf("nil linkStyle() = %v; want %v", got, want)
	}

	// The zero value resolves identically to nil.
	zero := new(Options)
	if got, want := zero.horizontalRule(), o.horizontalRule(); got != want {
		t.Errorf("zero horizontalRule() = %q; want %q", got, want)
	}
	if got, want := zero.strongDelimiter(), o.strongDelimiter(); got != want {
		t.Errorf("zero strongDelimiter() = %q; want %q", got, want)
	}
}
