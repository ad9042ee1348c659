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

package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ajwerner/bintree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenario() *bintree.Table {
	t := bintree.New()
	t.Insert(5, "a")
	t.Insert(3, "b")
	t.Insert(8, "c")
	t.Insert(1, "d")
	return t
}

func TestDescribe(t *testing.T) {
	s := Describe(scenario())
	assert.False(t, s.Empty)
	assert.Equal(t, 3, s.Height)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, []bintree.Entry{{ID: 1, Information: "d"}, {ID: 3, Information: "b"},
		{ID: 5, Information: "a"}, {ID: 8, Information: "c"}}, s.Traversals[bintree.InOrder])
	assert.Len(t, s.Traversals[bintree.PreOrder], 4)
	assert.Len(t, s.Traversals[bintree.PostOrder], 4)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Describe(scenario())))
	exp := strings.Join([]string{
		"DISPLAY TREE " + rule,
		"Tree is NOT empty",
		"Height 3",
		"Node count: 4",
		"Pre-Order traversal",
		"5 a", "3 b", "1 d", "8 c",
		"In-Order traversal",
		"1 d", "3 b", "5 a", "8 c",
		"Post-Order traversal",
		"1 d", "3 b", "8 c", "5 a",
		rule,
		"",
	}, "\n")
	assert.Equal(t, exp, buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Describe(bintree.New())))
	exp := strings.Join([]string{
		"DISPLAY TREE " + rule,
		"Tree is empty",
		"Height 0",
		"Node count: 0",
		"Pre-Order traversal",
		"In-Order traversal",
		"Post-Order traversal",
		rule,
		"",
	}, "\n")
	assert.Equal(t, exp, buf.String())
}

func TestShape(t *testing.T) {
	assert.Equal(t, "(empty)\n", Shape(bintree.New()))

	out := Shape(scenario())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "5 a", lines[0])
	assert.Contains(t, lines[1], "[L]")
	assert.Contains(t, lines[1], "3 b")
	assert.Contains(t, lines[2], "[L]")
	assert.Contains(t, lines[2], "1 d")
	assert.Contains(t, lines[3], "[R]")
	assert.Contains(t, lines[3], "8 c")
}
