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

// htmldown converts an HTML document into Markdown text.
//
// Input comes from a file argument or standard input and is
// transcoded to UTF-8 before conversion. By default the document is
// parsed into a tree and converted through the document model; the
// --stream flag switches to the event-driven converter, and --keep or
// --remove switch to rule dispatch.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"zombiezen.com/go/htmldown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type converterFlags struct {
	headingStyle string
	hr           string
	bullet       string
	codeStyle    string
	fence        string
	em           string
	strong       string
	linkStyle    string
	linkRefStyle string

	configPath string
	selector   string
	stream     bool
	keepTags   []string
	removeTags []string
	output     string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	f := new(converterFlags)
	cmd := &cobra.Command{
		Use:           "htmldown [flags] [FILE]",
		Short:         "Convert HTML to Markdown",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			initLogging(f.verbose)
			if err := run(cmd, f, args); err != nil {
				slog.Error("conversion failed", "error", err)
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.headingStyle, "heading-style", "", "heading style (setext or atx)")
	flags.StringVar(&f.hr, "hr", "", "thematic break text")
	flags.StringVar(&f.bullet, "bullet", "", "bullet list marker character")
	flags.StringVar(&f.codeStyle, "code-style", "", "code block style (indented or fenced)")
	flags.StringVar(&f.fence, "fence", "", "code fence text")
	flags.StringVar(&f.em, "em", "", "emphasis delimiter character")
	flags.StringVar(&f.strong, "strong", "", "strong emphasis delimiter")
	flags.StringVar(&f.linkStyle, "link-style", "", "link style (inlined or referenced)")
	flags.StringVar(&f.linkRefStyle, "link-reference-style", "", "link reference style (full, collapsed, or shortcut)")
	flags.StringVar(&f.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&f.selector, "selector", "", "convert only the first subtree matching a CSS selector")
	flags.BoolVar(&f.stream, "stream", false, "convert through the streaming tokenizer")
	flags.StringArrayVar(&f.keepTags, "keep", nil, "tags to pass through as raw HTML (switches to rule dispatch)")
	flags.StringArrayVar(&f.removeTags, "remove", nil, "tags to drop entirely (switches to rule dispatch)")
	flags.StringVarP(&f.output, "output", "o", "", "output file (defaults to standard output)")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	cmd.MarkFlagsMutuallyExclusive("stream", "selector")
	cmd.MarkFlagsMutuallyExclusive("stream", "keep")
	cmd.MarkFlagsMutuallyExclusive("stream", "remove")

	return cmd
}

func initLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func run(cmd *cobra.Command, f *converterFlags, args []string) error {
	opts, err := f.options(cmd)
	if err != nil {
		return err
	}

	in := os.Stdin
	name := "stdin"
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in, name = file, args[0]
	}
	slog.Debug("reading input", "source", name)

	// Sniff the charset and transcode to UTF-8 before parsing.
	r, err := charset.NewReader(in, "")
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	out, err := f.convert(r, opts)
	if err != nil {
		return fmt.Errorf("convert %s: %w", name, err)
	}
	if out != "" {
		out += "\n"
	}

	if f.output != "" {
		return os.WriteFile(f.output, []byte(out), 0o666)
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

func (f *converterFlags) convert(r io.Reader, opts *htmldown.Options) (string, error) {
	if f.stream {
		slog.Debug("using streaming converter")
		return htmldown.ConvertReader(r, opts)
	}

	root, err := f.parseRoot(r)
	if err != nil {
		return "", err
	}
	if root == nil {
		return "", nil
	}

	if len(f.keepTags) > 0 || len(f.removeTags) > 0 {
		slog.Debug("using rule dispatch",
			"keep", f.keepTags, "remove", f.removeTags)
		rules := htmldown.NewRules()
		if len(f.keepTags) > 0 {
			rules.Keep(htmldown.Tags(f.keepTags...))
		}
		if len(f.removeTags) > 0 {
			rules.Remove(htmldown.Tags(f.removeTags...))
		}
		return rules.Convert(root, opts), nil
	}

	return htmldown.ConvertNode(root, opts), nil
}

// parseRoot parses the document and resolves the --selector flag.
// A nil root means the selector matched nothing.
func (f *converterFlags) parseRoot(r io.Reader) (*html.Node, error) {
	if f.selector == "" {
		doc, err := html.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("parse html: %w", err)
		}
		return doc, nil
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	sel := doc.Find(f.selector)
	if len(sel.Nodes) == 0 {
		slog.Warn("selector matched nothing", "selector", f.selector)
		return nil, nil
	}
	slog.Debug("selector matched", "selector", f.selector, "count", len(sel.Nodes))
	return sel.Nodes[0], nil
}
