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

	"golang.org/x/net/html/atom"
)

// tagClass is how an element behaves at block level.
// Both converters dispatch on the same table,
// so they cannot disagree on what a tag means.
type tagClass uint8

const (
	// classUnknown elements try their block children,
	// then their inline children, then vanish.
	classUnknown tagClass = iota

	classParagraph
	classHeading
	classBlockQuote
	classList
	classListItem
	classCodeBlock
	classRule
	classTable
	classTableSection
	classTableRow
	classTableCell

	// classContainer elements contribute their children transparently.
	classContainer

	// classInline elements at block level wrap in a paragraph.
	classInline

	// classElide elements vanish along with their content.
	classElide
)

var tagClasses = map[atom.Atom]tagClass{
	atom.P:  classParagraph,
	atom.H1: classHeading,
	atom.H2: classHeading,
	atom.H3: classHeading,
	atom.H4: classHeading,
	atom.H5: classHeading,
	atom.H6: classHeading,

	atom.Blockquote: classBlockQuote,
	atom.Ul:         classList,
	atom.Ol:         classList,
	atom.Li:         classListItem,
	atom.Pre:        classCodeBlock,
	atom.Hr:         classRule,

	atom.Table: classTable,
	atom.Thead: classTableSection,
	atom.Tbody: classTableSection,
	atom.Tfoot: classTableSection,
	atom.Tr:    classTableRow,
	atom.Th:    classTableCell,
	atom.Td:    classTableCell,

	atom.Div:        classContainer,
	atom.Section:    classContainer,
	atom.Article:    classContainer,
	atom.Main:       classContainer,
	atom.Aside:      classContainer,
	atom.Header:     classContainer,
	atom.Footer:     classContainer,
	atom.Nav:        classContainer,
	atom.Figure:     classContainer,
	atom.Figcaption: classContainer,
	atom.Address:    classContainer,
	atom.Form:       classContainer,
	atom.Fieldset:   classContainer,
	// The document envelope resolves transparently so that fully
	// parsed pages convert the same as fragments.
	atom.Html: classContainer,
	atom.Head: classContainer,
	atom.Body: classContainer,

	atom.A:      classInline,
	atom.Strong: classInline,
	atom.B:      classInline,
	atom.Em:     classInline,
	atom.I:      classInline,
	atom.Code:   classInline,
	atom.Span:   classInline,
	atom.Img:    classInline,
	atom.Br:     classInline,

	atom.Script:   classElide,
	atom.Style:    classElide,
	atom.Noscript: classElide,
	atom.Template: classElide,
}

func classifyTag(a atom.Atom) tagClass {
	return tagClasses[a]
}

// inlineKind is how an element behaves at inline level.
type inlineKind uint8

const (
	// inlineOther elements collapse to their single child,
	// vanish when empty, and flatten to text otherwise.
	inlineOther inlineKind = iota

	inlineStrong
	inlineEmphasis
	inlineCode
	inlineLink
	inlineImage
	inlineBreak

	// inlineFlatten marks block constructs met at inline level;
	// they flatten to their text content.
	inlineFlatten

	inlineElide
)

var inlineKinds = map[atom.Atom]inlineKind{
	atom.Strong: inlineStrong,
	atom.B:      inlineStrong,
	atom.Em:     inlineEmphasis,
	atom.I:      inlineEmphasis,
	atom.Code:   inlineCode,
	atom.A:      inlineLink,
	atom.Img:    inlineImage,
	atom.Br:     inlineBreak,

	atom.P:   inlineFlatten,
	atom.Div: inlineFlatten,
	atom.H1:  inlineFlatten,
	atom.H2:  inlineFlatten,
	atom.H3:  inlineFlatten,
	atom.H4:  inlineFlatten,
	atom.H5:  inlineFlatten,
	atom.H6:  inlineFlatten,

	atom.Script:   inlineElide,
	atom.Style:    inlineElide,
	atom.Noscript: inlineElide,
	atom.Template: inlineElide,
}

func inlineKindOf(a atom.Atom) inlineKind {
	return inlineKinds[a]
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	default:
		return 0
	}
}

// voidElements never hold content.
// The streaming converter must not wait for their close tags.
var voidElements = map[atom.Atom]bool{
	atom.Area:    true,
	atom.Base:    true,
	atom.Br:      true,
	atom.Col:     true,
	atom.Command: true,
	atom.Embed:   true,
	atom.Hr:      true,
	atom.Img:     true,
	atom.Input:   true,
	atom.Keygen:  true,
	atom.Link:    true,
	atom.Meta:    true,
	atom.Param:   true,
	atom.Source:  true,
	atom.Track:   true,
	atom.Wbr:     true,
}

// blockElements is the display-block tag set used by the rule engine
// to decide whether kept raw HTML needs blank-line separation.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "audio": true,
	"blockquote": true, "body": true, "canvas": true, "center": true,
	"dd": true, "dir": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "frameset": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hgroup": true,
	"hr": true, "html": true, "isindex": true, "li": true, "main": true,
	"menu": true, "nav": true, "noframes": true, "noscript": true,
	"ol": true, "output": true, "p": true, "pre": true, "section": true,
	"table": true, "tbody": true, "td": true, "tfoot": true, "th": true,
	"thead": true, "tr": true, "ul": true,
}

func isBlockElement(name string) bool {
	return blockElements[strings.ToLower(name)]
}
