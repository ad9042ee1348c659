// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package bintree_test

import (
	"fmt"

	"github.com/ajwerner/bintree"
)

func ExampleTable() {
	t := bintree.New()
	t.Insert(5, "a")
	t.Insert(3, "b")
	t.Insert(8, "c")
	t.Insert(1, "d")
	fmt.Println(t.Get(3))
	fmt.Println(t.Get(4))
	fmt.Println(t.Remove(5), t.Len(), t.Height())
	for e := range t.All(bintree.InOrder) {
		fmt.Println(e.ID, e.Information)
	}

	// Output:
	// {3 b} true
	// {-1 } false
	// true 3 3
	// 1 d
	// 3 b
	// 8 c
}

func ExampleWithDuplicates() {
	t := bintree.New(bintree.WithDuplicates(bintree.ReplaceDuplicates))
	t.Insert(1, "old")
	t.Insert(1, "new")
	fmt.Println(t.Len(), t.Contains(1))
	fmt.Println(t.Get(1))

	// Output:
	// 1 true
	// {1 new} true
}
