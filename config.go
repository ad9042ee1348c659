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

import "log/slog"

// DuplicatePolicy determines what Insert does with an id which is already
// present in the Table.
type DuplicatePolicy int

const (

	// AllowDuplicates stores the new entry in the right subtree of its
	// existing twin. Get, Contains and Remove only ever reach the
	// shallowest entry with a given id until it is removed.
	AllowDuplicates DuplicatePolicy = iota

	// RejectDuplicates leaves the Table untouched and makes Insert return
	// false.
	RejectDuplicates

	// ReplaceDuplicates overwrites the information of the existing entry.
	ReplaceDuplicates
)

func (p DuplicatePolicy) String() string {
	switch p {
	case AllowDuplicates:
		return "allow"
	case RejectDuplicates:
		return "reject"
	case ReplaceDuplicates:
		return "replace"
	default:
		return "unknown"
	}
}

// Option configures a Table at construction.
type Option func(*config)

// WithDuplicates sets the DuplicatePolicy. The default is AllowDuplicates.
func WithDuplicates(p DuplicatePolicy) Option {
	return func(c *config) { c.duplicates = p }
}

// WithLogger makes the Table report duplicate ids to the logger. Allowed
// duplicates are logged at warn, rejected and replaced ones at debug.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

type config struct {
	duplicates DuplicatePolicy
	logger     *slog.Logger
}

func makeConfig(opts []Option) (c config) {
	for _, o := range opts {
		o(&c)
	}
	return c
}

func (c *config) logDuplicate(id int) {
	if c.logger == nil {
		return
	}
	switch c.duplicates {
	case AllowDuplicates:
		c.logger.Warn("storing duplicate id", "id", id)
	default:
		c.logger.Debug("duplicate id", "id", id, "policy", c.duplicates.String())
	}
}
