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
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(tb testing.TB, yaml string) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o666); err != nil {
		tb.Fatal(err)
	}
	return path
}

func TestConfigFile(t *testing.T) {
	config := writeConfig(t, `
heading_style: atx
bullet_list_marker: "-"
hr: "---"
`)
	in := writeInput(t, "<h1>Title</h1><ul><li>a</li></ul><hr>")
	got, err := execute("--config", config, in)
	if err != nil {
		t.Fatal(err)
	}
	if want := "# Title\n\n-   a\n\n---\n"; got != want {
		t.Errorf("output = %q; want %q", got, want)
	}
}

func TestFlagOverridesConfig(t *testing.T) {
	config := writeConfig(t, "heading_style: atx\n")
	in := writeInput(t, "<h1>Title</h1>")
	got, err := execute("--config", config, "--heading-style", "setext", in)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Title\n=====\n"; got != want {
		t.Errorf("output = %q; want %q", got, want)
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"BadYAML", ":\nnot yaml: [\n"},
		{"BadEnum", "heading_style: bogus\n"},
		{"BadMarker", `bullet_list_marker: "ab"` + "\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := writeConfig(t, test.yaml)
			in := writeInput(t, "<p>x</p>")
			if _, err := execute("--config", config, in); err == nil {
				t.Error("Execute did not return an error")
			}
		})
	}
}

func TestConfigFileMissing(t *testing.T) {
	in := writeInput(t, "<p>x</p>")
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := execute("--config", missing, in); err == nil {
		t.Error("Execute did not return an error")
	}
}

func TestSingleRune(t *testing.T) {
	ok := []struct {
		value string
		want  rune
	}{
		{"-", '-'},
		{"*", '*'},
		{"•", '•'},
	}
	for _, test := range ok {
		got, err := singleRune("marker", test.value)
		if err != nil {
			t.Errorf("singleRune(%q): %v", test.value, err)
			continue
		}
		if got != test.want {
			t.Errorf("singleRune(%q) = %q; want %q", test.value, got, test.want)
		}
	}

	for _, value := range []string{"", "ab", "--"} {
		if _, err := singleRune("marker", value); err == nil {
			t.Errorf("singleRune(%q) did not return an error", value)
		}
	}
}
