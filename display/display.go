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

// Package display renders the state of a bintree.Table for people.
package display

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ajwerner/bintree"
	"github.com/xlab/treeprint"
)

// Summary is a snapshot of a Table's statistics and traversals.
type Summary struct {
	Empty      bool
	Height     int
	Count      int
	Traversals [3][]bintree.Entry // indexed by bintree.Order
}

// Describe takes a Summary of t.
func Describe(t *bintree.Table) Summary {
	s := Summary{
		Empty:  t.IsEmpty(),
		Height: t.Height(),
		Count:  t.Len(),
	}
	for _, o := range bintree.Orders {
		s.Traversals[o] = slices.Collect(t.All(o))
	}
	return s
}

const rule = "=============================================="

// Write prints s to w, one entry per line under each traversal heading.
func Write(w io.Writer, s Summary) error {
	var b strings.Builder
	fmt.Fprintln(&b, "DISPLAY TREE", rule)
	if s.Empty {
		fmt.Fprintln(&b, "Tree is empty")
	} else {
		fmt.Fprintln(&b, "Tree is NOT empty")
	}
	fmt.Fprintln(&b, "Height", s.Height)
	fmt.Fprintln(&b, "Node count:", s.Count)
	for _, o := range bintree.Orders {
		fmt.Fprintf(&b, "%s traversal\n", heading(o))
		WriteEntries(&b, s.Traversals[o])
	}
	fmt.Fprintln(&b, rule)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteEntries prints each entry as its id and information separated by a
// space.
func WriteEntries(w io.Writer, entries []bintree.Entry) {
	for _, e := range entries {
		fmt.Fprintln(w, e.ID, e.Information)
	}
}

func heading(o bintree.Order) string {
	switch o {
	case bintree.PreOrder:
		return "Pre-Order"
	case bintree.InOrder:
		return "In-Order"
	case bintree.PostOrder:
		return "Post-Order"
	}
	return o.String()
}

// Shape draws the structure of t with each child tagged L or R.
func Shape(t *bintree.Table) string {
	root := t.RootNode()
	if root.IsEmpty() {
		return "(empty)\n"
	}
	tree := treeprint.NewWithRoot(label(root.Entry()))
	addChildren(tree, root)
	return tree.String()
}

func addChildren(tree treeprint.Tree, n bintree.Node) {
	for _, c := range []struct {
		side  string
		child bintree.Node
	}{{"L", n.Left()}, {"R", n.Right()}} {
		if c.child.IsEmpty() {
			continue
		}
		if c.child.IsLeaf() {
			tree.AddMetaNode(c.side, label(c.child.Entry()))
			continue
		}
		addChildren(tree.AddMetaBranch(c.side, label(c.child.Entry())), c.child)
	}
}

func label(e bintree.Entry) string {
	return fmt.Sprintf("%d %s", e.ID, e.Information)
}
