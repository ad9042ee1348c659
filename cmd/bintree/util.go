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
	"strings"

	"github.com/ajwerner/bintree"
	"github.com/urfave/cli/v2"
)

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

func parseDuplicatePolicy(s string) (bintree.DuplicatePolicy, error) {
	for _, p := range []bintree.DuplicatePolicy{
		bintree.AllowDuplicates, bintree.RejectDuplicates, bintree.ReplaceDuplicates,
	} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown duplicate policy %q", s)
}

func tableFromFlags(cctx *cli.Context) (*bintree.Table, error) {
	p, err := parseDuplicatePolicy(cctx.String("duplicates"))
	if err != nil {
		return nil, err
	}
	return bintree.New(
		bintree.WithDuplicates(p),
		bintree.WithLogger(slog.Default()),
	), nil
}
