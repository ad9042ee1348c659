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

// Package bintree implements an unbalanced binary search tree mapping
// integer ids to string payloads.
package bintree

import "iter"

// Entry is the unit stored in and returned from a Table.
type Entry struct {
	ID          int
	Information string
}

// NotFound is the Entry returned alongside false by lookups which miss.
// Callers should check the boolean; an Entry may legitimately have ID -1.
var NotFound = Entry{ID: -1}

// Table is an ordered map from id to information backed by an unbalanced
// binary search tree. Its height is bounded only by its length.
//
// The zero value is an empty Table with the default options. A Table is not
// safe for concurrent use; callers sharing one between goroutines must
// serialize every call.
type Table struct {
	root  *node
	count int
	cfg   config
}

// New returns an empty Table configured by opts.
func New(opts ...Option) *Table {
	return &Table{cfg: makeConfig(opts)}
}

// IsEmpty returns true if the Table holds no entries.
func (t *Table) IsEmpty() bool {
	return t.root == nil
}

// Len returns the number of entries, counting duplicates.
func (t *Table) Len() int {
	return t.count
}

// Root returns the entry at the root of the tree.
func (t *Table) Root() (Entry, bool) {
	if t.root == nil {
		return NotFound, false
	}
	return t.root.entry, true
}

// Insert adds an entry. The result is false only when the id is present and
// the Table was configured with RejectDuplicates.
func (t *Table) Insert(id int, information string) bool {
	if t.cfg.duplicates != AllowDuplicates || t.cfg.logger != nil {
		if n := find(t.root, id); n != nil {
			t.cfg.logDuplicate(id)
			switch t.cfg.duplicates {
			case RejectDuplicates:
				return false
			case ReplaceDuplicates:
				n.entry.Information = information
				return true
			}
		}
	}
	t.root = insert(t.root, getNode(Entry{ID: id, Information: information}))
	t.count++
	return true
}

// Remove deletes the entry with the given id and reports whether one was
// present. When duplicates exist, the one closest to the root goes first.
func (t *Table) Remove(id int) bool {
	var removed bool
	t.root, removed = remove(t.root, id)
	if removed {
		t.count--
	}
	return removed
}

// Get returns the entry with the given id.
func (t *Table) Get(id int) (Entry, bool) {
	if n := find(t.root, id); n != nil {
		return n.entry, true
	}
	return NotFound, false
}

// Contains returns true if an entry with the given id is present.
func (t *Table) Contains(id int) bool {
	_, ok := t.Get(id)
	return ok
}

// Height returns the number of nodes on the longest root-to-leaf path. It
// walks the whole tree.
func (t *Table) Height() int {
	return height(t.root)
}

// All returns a sequence over the entries in the given Order. Each call to
// the sequence starts a fresh traversal.
func (t *Table) All(order Order) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		it := t.MakeIter(order)
		for it.First(); it.Valid(); it.Next() {
			if !yield(it.Cur()) {
				return
			}
		}
	}
}

// Clear removes every entry. Clearing an empty Table does nothing.
func (t *Table) Clear() {
	putSubtree(t.root)
	t.root = nil
	t.count = 0
}
