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

package htmldown_test

import (
	"fmt"

	"zombiezen.com/go/htmldown"
)

func ExampleConvertString() {
	md, err := htmldown.ConvertString(
		"<h1>Title</h1><p>Hello <strong>World</strong>!</p>", nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(md)
	// Output:
	// Title
	// =====
	//
	// Hello **World**!
}

func ExampleNewStream() {
	s := htmldown.NewStream(nil)
	s.OpenTag("p", nil)
	s.Text("Streaming ")
	s.OpenTag("em", nil)
	s.Text("works")
	s.CloseTag("em")
	s.CloseTag("p")
	fmt.Println(htmldown.Serialize(s.Finish(), nil))
	// Output:
	// Streaming _works_
}

func ExampleRules() {
	rules := htmldown.NewRules().Remove(htmldown.Tag("aside"))
	md, err := rules.ConvertString("<p>Important</p><aside>Ad</aside>", nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(md)
	// Output:
	// Important
}
