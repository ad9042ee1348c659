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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ajwerner/bintree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLines(t *testing.T, tab *bintree.Table, lines ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newSession(tab, &out).execAll(strings.NewReader(strings.Join(lines, "\n")))
	return out.String(), err
}

func TestSession(t *testing.T) {
	out, err := runLines(t, bintree.New(),
		"# scenario",
		"add 5 a",
		"add 3 b",
		"add 8 c",
		"",
		"add 1 two words",
		"root",
		"count",
		"height",
		"get 1",
		"remove 5",
		"contains 5",
		"get 5",
		"traverse in-order",
		"clear",
		"empty",
		"root",
	)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"add 5: true",
		"add 3: true",
		"add 8: true",
		"add 1: true",
		"root: 5 a",
		"count: 4",
		"height: 3",
		"get 1: 1 two words",
		"remove 5: true",
		"contains 5: false",
		"get 5: not found",
		"in-order:",
		"1 two words",
		"3 b",
		"8 c",
		"cleared",
		"empty: true",
		"root: empty",
		"",
	}, "\n"), out)
}

func TestSessionRejectDuplicates(t *testing.T) {
	out, err := runLines(t, bintree.New(bintree.WithDuplicates(bintree.RejectDuplicates)),
		"add 1 a", "add 1 b", "count")
	require.NoError(t, err)
	assert.Equal(t, "add 1: true\nadd 1: false\ncount: 1\n", out)
}

func TestSessionDump(t *testing.T) {
	out, err := runLines(t, bintree.New(), "add 2 x", "dump", "shape")
	require.NoError(t, err)
	assert.Contains(t, out, "Tree is NOT empty")
	assert.Contains(t, out, "Node count: 1")
	assert.True(t, strings.HasSuffix(out, "2 x\n"))
}

func TestSessionErrors(t *testing.T) {
	for _, tc := range []struct {
		line string
		msg  string
	}{
		{"add x a", "line 2: invalid id"},
		{"remove", "line 2: invalid id"},
		{"traverse sideways", "line 2: unknown traversal order"},
		{"frobnicate 1", `line 2: unknown command "frobnicate"`},
	} {
		t.Run(tc.line, func(t *testing.T) {
			_, err := runLines(t, bintree.New(), "add 1 a", tc.line)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParseDuplicatePolicy(t *testing.T) {
	p, err := parseDuplicatePolicy("Reject")
	require.NoError(t, err)
	assert.Equal(t, bintree.RejectDuplicates, p)
	_, err = parseDuplicatePolicy("merge")
	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newApp(&out).Run([]string{"bintree", "demo"}))
	assert.Contains(t, out.String(), "remove 5: true")
	assert.Contains(t, out.String(), "Node count: 3")
}

func TestFake(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newApp(&out).Run([]string{
		"bintree", "fake", "--count", "20", "--seed", "7", "--duplicates", "reject",
	}))
	assert.Contains(t, out.String(), "Tree is NOT empty")

	err := newApp(&out).Run([]string{"bintree", "fake", "--duplicates", "merge"})
	assert.Error(t, err)
}
