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

// Package sample provides HTML to Markdown conversion fixtures
// shared by the test suites.
package sample

import (
	_ "embed"
	"encoding/json"
)

// Fixture is a single conversion example.
// Markdown is the expected output under default options.
type Fixture struct {
	Name     string
	HTML     string
	Markdown string
}

//go:embed fixtures.json
var fixtureData []byte

// Load returns the embedded conversion fixtures.
func Load() ([]Fixture, error) {
	var fixtures []Fixture
	if err := json.Unmarshal(fixtureData, &fixtures); err != nil {
		return nil, err
	}
	return fixtures, nil
}
