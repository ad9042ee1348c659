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
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/ajwerner/bintree"
	"github.com/ajwerner/bintree/display"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var tableFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "duplicates",
		Usage:   "what to do when inserting an id which is present: allow, reject or replace",
		Value:   "allow",
		EnvVars: []string{"BINTREE_DUPLICATES"},
	},
}

func newApp(out io.Writer) *cli.App {

	app := &cli.App{
		Name:    "bintree",
		Usage:   "exercise an unbalanced binary search tree from the command line",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "warn",
				EnvVars: []string{"BINTREE_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, os.Stderr)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdDemo,
		cmdRun,
		cmdFake,
	}
	app.Writer = out
	return app
}

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "build a small tree, remove its root and show the tree before and after",
	Action: runDemo,
}

var cmdRun = &cli.Command{
	Name:      "run",
	Usage:     "execute a script of table operations, one per line",
	ArgsUsage: `<script-file | ->`,
	Flags:     tableFlags,
	Action:    runScript,
}

var cmdFake = &cli.Command{
	Name:  "fake",
	Usage: "fill a tree with random entries and show it",
	Flags: append([]cli.Flag{
		&cli.IntFlag{
			Name:  "count",
			Usage: "number of entries to insert",
			Value: 10,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed; 0 picks one",
		},
		&cli.IntFlag{
			Name:  "max-id",
			Usage: "ids are drawn from [0, max-id]",
			Value: 99,
		},
	}, tableFlags...),
	Action: runFake,
}

func runDemo(cctx *cli.Context) error {
	t := bintree.New()
	for _, e := range []struct {
		id   int
		info string
	}{{5, "a"}, {3, "b"}, {8, "c"}, {1, "d"}} {
		t.Insert(e.id, e.info)
	}
	out := cctx.App.Writer
	if err := display.Write(out, display.Describe(t)); err != nil {
		return err
	}
	fmt.Fprint(out, display.Shape(t))
	fmt.Fprintln(out, "remove 5:", t.Remove(5))
	if err := display.Write(out, display.Describe(t)); err != nil {
		return err
	}
	fmt.Fprint(out, display.Shape(t))
	return nil
}

func runScript(cctx *cli.Context) error {
	p := cctx.Args().First()
	if p == "" {
		return fmt.Errorf("need to provide script path as an argument")
	}
	in := os.Stdin
	if p != "-" {
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	t, err := tableFromFlags(cctx)
	if err != nil {
		return err
	}
	return newSession(t, cctx.App.Writer).execAll(in)
}

func runFake(cctx *cli.Context) error {
	t, err := tableFromFlags(cctx)
	if err != nil {
		return err
	}
	faker := gofakeit.New(cctx.Int64("seed"))
	maxID := cctx.Int("max-id")
	for i := 0; i < cctx.Int("count"); i++ {
		id := faker.Number(0, maxID)
		info := faker.Word()
		ok := t.Insert(id, info)
		slog.Debug("insert", "id", id, "information", info, "ok", ok)
	}
	out := cctx.App.Writer
	if err := display.Write(out, display.Describe(t)); err != nil {
		return err
	}
	fmt.Fprint(out, display.Shape(t))
	return nil
}
