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

// iterStack holds the ancestors of an Iterator's current node, nearest
// ancestor on top.
type iterStack struct {
	a    iterStackArr
	aLen int16 // -1 when using s
	s    []*node
}

const iterStackDepth = 16

// Used to avoid allocations for stacks below a certain size.
type iterStackArr [iterStackDepth]*node

func (is *iterStack) push(n *node) {
	if is.aLen == -1 {
		is.s = append(is.s, n)
	} else if int(is.aLen) == len(is.a) {
		is.s = make([]*node, int(is.aLen)+1, 2*int(is.aLen))
		copy(is.s, is.a[:])
		is.s[int(is.aLen)] = n
		is.aLen = -1
	} else {
		is.a[is.aLen] = n
		is.aLen++
	}
}

func (is *iterStack) pop() *node {
	if is.aLen == -1 {
		n := is.s[len(is.s)-1]
		is.s[len(is.s)-1] = nil
		is.s = is.s[:len(is.s)-1]
		return n
	}
	is.aLen--
	n := is.a[is.aLen]
	is.a[is.aLen] = nil
	return n
}

func (is *iterStack) peek() *node {
	if is.aLen == -1 {
		return is.s[len(is.s)-1]
	}
	return is.a[is.aLen-1]
}

func (is *iterStack) len() int {
	if is.aLen == -1 {
		return len(is.s)
	}
	return int(is.aLen)
}

func (is *iterStack) reset() {
	for is.len() > 0 {
		is.pop()
	}
}
