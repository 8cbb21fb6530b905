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
	"errors"
	"strings"
	"testing"

	"zombiezen.com/go/htmldown/internal/sample"
)

// TestFixtures runs the shared fixtures through both converters.
// The tree and streaming paths must agree on every fixture.
func TestFixtures(t *testing.T) {
	fixtures, err := sample.Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range fixtures {
		t.Run(f.Name, func(t *testing.T) {
			fromTree, err := ConvertString(f.HTML, nil)
			if err != nil {
				t.Fatal(err)
			}
			if fromTree != f.Markdown {
				t.Errorf("ConvertString(%q) = %q; want %q", f.HTML, fromTree, f.Markdown)
			}

			fromStream, err := ConvertReader(strings.NewReader(f.HTML), nil)
			if err != nil {
				t.Fatal(err)
			}
			if fromStream != f.Markdown {
				t.Errorf("ConvertReader(%q) = %q; want %q", f.HTML, fromStream, f.Markdown)
			}
		})
	}
}

type failReader struct{ err error }

func (r failReader) Read([]byte) (int, error) { return 0, r.err }

func TestConvertReaderError(t *testing.T) {
	readErr := errors.New("boom")
	if _, err := ConvertReader(failReader{err: readErr}, nil); !errors.Is(err, readErr) {
		t.Errorf("ConvertReader(...) error = %v; want %v", err, readErr)
	}
}

func TestConvertNodeNil(t *testing.T) {
	if got := ConvertNode(nil, nil); got != "" {
		t.Errorf("ConvertNode(nil) = %q; want %q", got, "")
	}
}
