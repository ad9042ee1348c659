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
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/ajwerner/bintree"
	"github.com/ajwerner/bintree/display"
)

// session executes script lines against a table. Blank lines and lines
// starting with # are skipped.
type session struct {
	t   *bintree.Table
	out io.Writer
}

func newSession(t *bintree.Table, out io.Writer) *session {
	return &session{t: t, out: out}
}

func (s *session) execAll(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		if err := s.exec(sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return sc.Err()
}

func (s *session) exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	slog.Debug("exec", "cmd", cmd, "args", rest)
	switch cmd {
	case "add", "insert":
		idStr, info, _ := strings.Cut(rest, " ")
		id, err := parseID(idStr)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "add %d: %t\n", id, s.t.Insert(id, info))
	case "remove", "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "remove %d: %t\n", id, s.t.Remove(id))
	case "get", "find":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if e, ok := s.t.Get(id); ok {
			fmt.Fprintf(s.out, "get %d: %d %s\n", id, e.ID, e.Information)
		} else {
			fmt.Fprintf(s.out, "get %d: not found\n", id)
		}
	case "contains":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "contains %d: %t\n", id, s.t.Contains(id))
	case "root":
		if e, ok := s.t.Root(); ok {
			fmt.Fprintf(s.out, "root: %d %s\n", e.ID, e.Information)
		} else {
			fmt.Fprintln(s.out, "root: empty")
		}
	case "height":
		fmt.Fprintf(s.out, "height: %d\n", s.t.Height())
	case "count", "len":
		fmt.Fprintf(s.out, "count: %d\n", s.t.Len())
	case "empty":
		fmt.Fprintf(s.out, "empty: %t\n", s.t.IsEmpty())
	case "clear":
		s.t.Clear()
		fmt.Fprintln(s.out, "cleared")
	case "dump":
		return display.Write(s.out, display.Describe(s.t))
	case "shape":
		fmt.Fprint(s.out, display.Shape(s.t))
	case "traverse":
		o, err := bintree.ParseOrder(rest)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s:\n", o)
		display.WriteEntries(s.out, slices.Collect(s.t.All(o)))
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid id: %w", err)
	}
	return id, nil
}
