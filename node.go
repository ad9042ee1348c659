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

package bintree

// node exclusively owns its children. Every id in left is less than
// entry.ID and every id in right is greater than or equal to it.
type node struct {
	entry       Entry
	left, right *node
}

// insert returns the root of the subtree after placing nn into it.
func insert(n, nn *node) *node {
	if n == nil {
		return nn
	}
	if nn.entry.ID < n.entry.ID {
		n.left = insert(n.left, nn)
	} else {
		n.right = insert(n.right, nn)
	}
	return n
}

// remove returns the root of the subtree after deleting the shallowest node
// with the given id, and whether such a node existed.
func remove(n *node, id int) (_ *node, removed bool) {
	if n == nil {
		return nil, false
	}
	switch {
	case id < n.entry.ID:
		n.left, removed = remove(n.left, id)
		return n, removed
	case id > n.entry.ID:
		n.right, removed = remove(n.right, id)
		return n, removed
	}
	switch {
	case n.left == nil:
		r := n.right
		putNode(n)
		return r, true
	case n.right == nil:
		l := n.left
		putNode(n)
		return l, true
	default:
		var succ Entry
		n.right, succ = removeMin(n.right)
		n.entry = succ
		return n, true
	}
}

// removeMin detaches the leftmost node of the subtree rooted at n, which
// must not be nil, and returns the new subtree root along with the entry it
// held.
func removeMin(n *node) (*node, Entry) {
	if n.left == nil {
		r, e := n.right, n.entry
		putNode(n)
		return r, e
	}
	var e Entry
	n.left, e = removeMin(n.left)
	return n, e
}

// find returns the shallowest node holding id.
func find(n *node, id int) *node {
	for n != nil {
		switch {
		case id < n.entry.ID:
			n = n.left
		case id > n.entry.ID:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Node is a read-only view of a position in a Table, exposed for code which
// needs the shape of the tree rather than its contents. A Node is
// invalidated by any modification of its Table.
type Node struct {
	n *node
}

// RootNode returns a view of the root. It is empty if the Table is.
func (t *Table) RootNode() Node {
	return Node{n: t.root}
}

// IsEmpty returns true if there is no node at this position.
func (n Node) IsEmpty() bool { return n.n == nil }

// IsLeaf returns true if the node has no children. It is illegal to call
// on an empty Node.
func (n Node) IsLeaf() bool { return n.n.left == nil && n.n.right == nil }

// Entry returns the entry held at this position. It is illegal to call on
// an empty Node.
func (n Node) Entry() Entry { return n.n.entry }

// Left returns the left child, which may be empty.
func (n Node) Left() Node { return Node{n: n.n.left} }

// Right returns the right child, which may be empty.
func (n Node) Right() Node { return Node{n: n.n.right} }
