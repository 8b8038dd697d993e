// SPDX-License-Identifier: MIT
// Package: kinetic/letters
//
// options.go - functional options for generators and registries.
//
// Contract:
//   - Option constructors validate and panic on meaningless input.
//     Generation itself never panics.
//   - Defaults: fresh private Cache, zap.NewNop logger, ValidatePattern,
//     diamond grid, staff prop, concurrency 4, built-in Type-1 tables.

package letters

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/motion"
)

const defaultConcurrency = 4

// Option customizes a Generator or Registry.
type Option func(*options)

type options struct {
	cache       *Cache
	logger      *zap.Logger
	validator   Validator
	mode        grid.Mode
	prop        motion.PropType
	concurrency int
	tables      Tables
}

func newOptions(opts ...Option) options {
	o := options{
		logger:      zap.NewNop(),
		validator:   ValidatePattern,
		mode:        grid.Diamond,
		prop:        motion.Staff,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cache == nil {
		o.cache = NewCache()
	}

	return o
}

// WithCache injects the memo. A Cache may back several generators; entries
// stay private to the generator that computed them. Clear it to invalidate.
// Panics on nil.
func WithCache(c *Cache) Option {
	if c == nil {
		panic("letters: WithCache(nil)")
	}
	return func(o *options) {
		o.cache = c
	}
}

// WithLogger sets the logger. Panics on nil; use zap.NewNop to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("letters: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithValidator replaces ValidatePattern. Panics on nil.
func WithValidator(v Validator) Option {
	if v == nil {
		panic("letters: WithValidator(nil)")
	}
	return func(o *options) {
		o.validator = v
	}
}

// WithGridMode selects the grid patterns are drawn on. Panics on an unknown mode.
func WithGridMode(m grid.Mode) Option {
	if !m.Valid() {
		panic("letters: WithGridMode(" + string(m) + ")")
	}
	return func(o *options) {
		o.mode = m
	}
}

// WithPropType sets the prop recorded on every motion. Panics on an unknown prop.
func WithPropType(p motion.PropType) Option {
	if !p.Valid() {
		panic("letters: WithPropType(" + string(p) + ")")
	}
	return func(o *options) {
		o.prop = p
	}
}

// WithConcurrency bounds GenerateAll. Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("letters: WithConcurrency(n<1)")
	}
	return func(o *options) {
		o.concurrency = n
	}
}

// WithTables replaces the built-in Type-1 tables of a Registry. The tables
// are copied; they are validated when the registry is built. Panics on nil.
func WithTables(t Tables) Option {
	if t == nil {
		panic("letters: WithTables(nil)")
	}
	cp := t.Clone()
	return func(o *options) {
		o.tables = cp
	}
}
