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

import (
	"errors"
	"fmt"
	"strings"
)

// Order is the order in which an Iterator visits the entries of a Table.
type Order int

const (
	// PreOrder visits a node, then its left subtree, then its right subtree.
	PreOrder Order = iota
	// InOrder visits the left subtree, the node, then the right subtree,
	// yielding entries by ascending id.
	InOrder
	// PostOrder visits both subtrees before the node.
	PostOrder
)

// Orders lists every Order in the sequence the summary reports them.
var Orders = []Order{PreOrder, InOrder, PostOrder}

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ErrUnknownOrder is returned by ParseOrder.
var ErrUnknownOrder = errors.New("unknown traversal order")

// ParseOrder accepts the names produced by Order.String, with or without
// the hyphen, in any case.
func ParseOrder(s string) (Order, error) {
	switch strings.ReplaceAll(strings.ToLower(s), "-", "") {
	case "preorder", "pre":
		return PreOrder, nil
	case "inorder", "in":
		return InOrder, nil
	case "postorder", "post":
		return PostOrder, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Iterator walks a Table in a fixed Order. It keeps the ancestors of the
// current node on an explicit stack rather than recursing. The Table must
// not be modified while an Iterator over it is in use.
type Iterator struct {
	t     *Table
	order Order
	cur   *node
	s     iterStack
}

// MakeIter returns an unpositioned Iterator; call First before use.
func (t *Table) MakeIter(order Order) Iterator {
	return Iterator{t: t, order: order}
}

func (it *Iterator) reset() {
	it.cur = it.t.root
	it.s.reset()
}

func (it *Iterator) descend(n *node) {
	it.s.push(it.cur)
	it.cur = n
}

// First positions the Iterator at the first entry in its Order. The
// Iterator is invalid afterwards if the Table is empty.
func (it *Iterator) First() {
	it.reset()
	if it.cur == nil {
		return
	}
	switch it.order {
	case InOrder:
		it.leftmost()
	case PostOrder:
		it.firstPost()
	}
}

// leftmost descends left as far as possible from the current node.
func (it *Iterator) leftmost() {
	for it.cur.left != nil {
		it.descend(it.cur.left)
	}
}

// firstPost descends to the first node visited post-order in the subtree
// rooted at the current node.
func (it *Iterator) firstPost() {
	for {
		switch {
		case it.cur.left != nil:
			it.descend(it.cur.left)
		case it.cur.right != nil:
			it.descend(it.cur.right)
		default:
			return
		}
	}
}

// Next advances the Iterator. It is illegal to call Next on an invalid
// Iterator.
func (it *Iterator) Next() {
	switch it.order {
	case PreOrder:
		it.nextPre()
	case InOrder:
		it.nextIn()
	case PostOrder:
		it.nextPost()
	default:
		it.cur = nil
	}
}

func (it *Iterator) nextPre() {
	if it.cur.left != nil {
		it.descend(it.cur.left)
		return
	}
	if it.cur.right != nil {
		it.descend(it.cur.right)
		return
	}
	child := it.cur
	for it.s.len() > 0 {
		p := it.s.peek()
		if p.left == child && p.right != nil {
			it.cur = p.right
			return
		}
		child = it.s.pop()
	}
	it.cur = nil
}

func (it *Iterator) nextIn() {
	if it.cur.right != nil {
		it.descend(it.cur.right)
		it.leftmost()
		return
	}
	child := it.cur
	for it.s.len() > 0 {
		p := it.s.pop()
		if p.left == child {
			it.cur = p
			return
		}
		child = p
	}
	it.cur = nil
}

func (it *Iterator) nextPost() {
	if it.s.len() == 0 {
		it.cur = nil
		return
	}
	p := it.s.peek()
	if p.left == it.cur && p.right != nil {
		it.cur = p.right
		it.firstPost()
		return
	}
	it.cur = it.s.pop()
}

// Valid returns whether the Iterator is positioned at an entry.
func (it *Iterator) Valid() bool {
	return it.cur != nil
}

// Cur returns a copy of the entry at the current position. It is illegal
// to call Cur if the Iterator is not valid.
func (it *Iterator) Cur() Entry {
	return it.cur.entry
}
