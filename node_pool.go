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

import "sync"

var nodePool = sync.Pool{
	New: func() interface{} {
		return new(node)
	},
}

func getNode(e Entry) *node {
	n := nodePool.Get().(*node)
	n.entry = e
	return n
}

// putNode zeroes n and hands it back to the pool. The caller must hold the
// only reference to n.
func putNode(n *node) {
	*n = node{}
	nodePool.Put(n)
}

// putSubtree releases every node rooted at n, children before parents.
func putSubtree(n *node) {
	if n == nil {
		return
	}
	putSubtree(n.left)
	putSubtree(n.right)
	putNode(n)
}
