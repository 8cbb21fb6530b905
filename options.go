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

import "fmt"

// Options control the Markdown dialect the serializer emits.
// The zero value of every field is its default,
// so a nil *Options means all defaults.
type Options struct {
	// HeadingStyle selects Setext or ATX headings.
	// Setext applies to levels 1 and 2 only;
	// deeper headings are always ATX.
	HeadingStyle HeadingStyle
	// HorizontalRule is the thematic break text.
	// Empty means "* * *".
	HorizontalRule string
	// BulletListMarker is the unordered list marker.
	// Zero means '*'.
	BulletListMarker rune
	// CodeBlockStyle selects indented or fenced code blocks.
	CodeBlockStyle CodeBlockStyle
	// Fence is the code fence text. Empty means "```".
	Fence string
	// EmDelimiter wraps emphasis. Zero means '_'.
	EmDelimiter rune
	// StrongDelimiter wraps strong emphasis. Empty means "**".
	StrongDelimiter string
	// LinkStyle selects inlined or referenced links.
	LinkStyle LinkStyle
	// LinkReferenceStyle is accepted for interface compatibility
	// and stored, but does not change output:
	// referenced links render inlined.
	LinkReferenceStyle LinkReferenceStyle
}

// HeadingStyle is the rendering style of a [Heading].
type HeadingStyle int

const (
	// Setext renders level 1 and 2 headings with underlines.
	Setext HeadingStyle = iota
	// ATX renders headings with leading number signs.
	ATX
)

// String returns the style's configuration name.
func (s HeadingStyle) String() string {
	switch s {
	case Setext:
		return "setext"
	case ATX:
		return "atx"
	default:
		return fmt.Sprintf("HeadingStyle(%d)", int(s))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler]
// and accepts the names reported by String.
func (s *HeadingStyle) UnmarshalText(text []byte) error {
	switch string(text) {
	case "setext":
		*s = Setext
	case "atx":
		*s = ATX
	default:
		return fmt.Errorf("unknown heading style %q", text)
	}
	return nil
}

// CodeBlockStyle is the rendering style of a [CodeBlock].
type CodeBlockStyle int

const (
	// Indented renders code blocks indented by four spaces.
	Indented CodeBlockStyle = iota
	// Fenced renders code blocks wrapped in fences.
	Fenced
)

// String returns the style's configuration name.
func (s CodeBlockStyle) String() string {
	switch s {
	case Indented:
		return "indented"
	case Fenced:
		return "fenced"
	default:
		return fmt.Sprintf("CodeBlockStyle(%d)", int(s))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler]
// and accepts the names reported by String.
func (s *CodeBlockStyle) UnmarshalText(text []byte) error {
	switch string(text) {
	case "indented":
		*s = Indented
	case "fenced":
		*s = Fenced
	default:
		return fmt.Errorf("unknown code block style %q", text)
	}
	return nil
}

// LinkStyle is the rendering style of a [Link].
type LinkStyle int

const (
	// Inlined renders the destination next to the link text.
	Inlined LinkStyle = iota
	// Referenced is accepted for interface compatibility
	// and renders the same as Inlined.
	Referenced
)

// String returns the style's configuration name.
func (s LinkStyle) String() string {
	switch s {
	case Inlined:
		return "inlined"
	case Referenced:
		return "referenced"
	default:
		return fmt.Sprintf("LinkStyle(%d)", int(s))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler]
// and accepts the names reported by String.
func (s *LinkStyle) UnmarshalText(text []byte) error {
	switch string(text) {
	case "inlined":
		*s = Inlined
	case "referenced":
		*s = Referenced
	default:
		return fmt.Errorf("unknown link style %q", text)
	}
	return nil
}

// LinkReferenceStyle is the shape of link reference definitions.
// It exists for interface compatibility; see [Options.LinkReferenceStyle].
type LinkReferenceStyle int

const (
	Full LinkReferenceStyle = iota
	Collapsed
	Shortcut
)

// String returns the style's configuration name.
func (s LinkReferenceStyle) String() string {
	switch s {
	case Full:
		return "full"
	case Collapsed:
		return "collapsed"
	case Shortcut:
		return "shortcut"
	default:
		return fmt.Sprintf("LinkReferenceStyle(%d)", int(s))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler]
// and accepts the names reported by String.
func (s *LinkReferenceStyle) UnmarshalText(text []byte) error {
	switch string(text) {
	case "full":
		*s = Full
	case "collapsed":
		*s = Collapsed
	case "shortcut":
		*s = Shortcut
	default:
		return fmt.Errorf("unknown link reference style %q", text)
	}
	return nil
}

// The getters below resolve defaults.
// Calling them on a nil receiver yields the default dialect.

func (o *Options) headingStyle() HeadingStyle {
	if o == nil {
		return Setext
	}
	return o.HeadingStyle
}

func (o *Options) horizontalRule() string {
	if o == nil || o.HorizontalRule == "" {
		return "* * *"
	}
	return o.HorizontalRule
}

func (o *Options) bulletListMarker() rune {
	if o == nil || o.BulletListMarker == 0 {
		return '*'
	}
	return o.BulletListMarker
}

func (o *Options) codeBlockStyle() CodeBlockStyle {
	if o == nil {
		return Indented
	}
	return o.CodeBlockStyle
}

func (o *Options) fence() string {
	if o == nil || o.Fence == "" {
		return "```"
	}
	return o.Fence
}

func (o *Options) emDelimiter() rune {
	if o == nil || o.EmDelimiter == 0 {
		return '_'
	}
	return o.EmDelimiter
}

func (o *Options) strongDelimiter() string {
	if o == nil || o.StrongDelimiter == "" {
		return "**"
	}
	return o.StrongDelimiter
}

func (o *Options) linkStyle() LinkStyle {
	if o == nil {
		return Inlined
	}
	return o.LinkStyle
}
