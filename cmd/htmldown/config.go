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

package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"zombiezen.com/go/htmldown"
)

// fileConfig is the YAML shape of --config.
// Empty fields keep their defaults;
// enum fields take the same names as the command-line flags.
type fileConfig struct {
	HeadingStyle       string `yaml:"heading_style"`
	HorizontalRule     string `yaml:"hr"`
	BulletListMarker   string `yaml:"bullet_list_marker"`
	CodeBlockStyle     string `yaml:"code_block_style"`
	Fence              string `yaml:"fence"`
	EmDelimiter        string `yaml:"em_delimiter"`
	StrongDelimiter    string `yaml:"strong_delimiter"`
	LinkStyle          string `yaml:"link_style"`
	LinkReferenceStyle string `yaml:"link_reference_style"`
}

// options resolves the conversion options,
// file values first and changed flags on top.
func (f *converterFlags) options(cmd *cobra.Command) (*htmldown.Options, error) {
	opts := new(htmldown.Options)

	if f.configPath != "" {
		data, err := os.ReadFile(f.configPath)
		if err != nil {
			return nil, err
		}
		var c fileConfig
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("load config %s: %w", f.configPath, err)
		}
		if err := c.apply(opts); err != nil {
			return nil, fmt.Errorf("load config %s: %w", f.configPath, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("heading-style") {
		if err := opts.HeadingStyle.UnmarshalText([]byte(f.headingStyle)); err != nil {
			return nil, err
		}
	}
	if flags.Changed("hr") {
		opts.HorizontalRule = f.hr
	}
	if flags.Changed("bullet") {
		r, err := singleRune("bullet", f.bullet)
		if err != nil {
			return nil, err
		}
		opts.BulletListMarker = r
	}
	if flags.Changed("code-style") {
		if err := opts.CodeBlockStyle.UnmarshalText([]byte(f.codeStyle)); err != nil {
			return nil, err
		}
	}
	if flags.Changed("fence") {
		opts.Fence = f.fence
	}
	if flags.Changed("em") {
		r, err := singleRune("em", f.em)
		if err != nil {
			return nil, err
		}
		opts.EmDelimiter = r
	}
	if flags.Changed("strong") {
		opts.StrongDelimiter = f.strong
	}
	if flags.Changed("link-style") {
		if err := opts.LinkStyle.UnmarshalText([]byte(f.linkStyle)); err != nil {
			return nil, err
		}
	}
	if flags.Changed("link-reference-style") {
		if err := opts.LinkReferenceStyle.UnmarshalText([]byte(f.linkRefStyle)); err != nil {
			return nil, err
		}
	}

	return opts, nil
}

// apply copies the non-empty file values onto opts.
func (c *fileConfig) apply(opts *htmldown.Options) error {
	if c.HeadingStyle != "" {
		if err := opts.HeadingStyle.UnmarshalText([]byte(c.HeadingStyle)); err != nil {
			return err
		}
	}
	opts.HorizontalRule = c.HorizontalRule
	if c.BulletListMarker != "" {
		r, err := singleRune("bullet_list_marker", c.BulletListMarker)
		if err != nil {
			return err
		}
		opts.BulletListMarker = r
	}
	if c.CodeBlockStyle != "" {
		if err := opts.CodeBlockStyle.UnmarshalText([]byte(c.CodeBlockStyle)); err != nil {
			return err
		}
	}
	opts.Fence = c.Fence
	if c.EmDelimiter != "" {
		r, err := singleRune("em_delimiter", c.EmDelimiter)
		if err != nil {
			return err
		}
		opts.EmDelimiter = r
	}
	opts.StrongDelimiter = c.StrongDelimiter
	if c.LinkStyle != "" {
		if err := opts.LinkStyle.UnmarshalText([]byte(c.LinkStyle)); err != nil {
			return err
		}
	}
	if c.LinkReferenceStyle != "" {
		if err := opts.LinkReferenceStyle.UnmarshalText([]byte(c.LinkReferenceStyle)); err != nil {
			return err
		}
	}
	return nil
}

func singleRune(name, value string) (rune, error) {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError || size != len(value) {
		return 0, fmt.Errorf("%s: want a single character, got %q", name, value)
	}
	return r, nil
}
