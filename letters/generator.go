// SPDX-License-Identifier: MIT
// Package: kinetic/letters
//
// generator.go - one Type-1 generator per position system.
//
// Contract:
//   - A Generator is parameterised by Config; there is no per-system type.
//   - Generate enumerates motion pairs × rotation pairs in table order,
//     builds each combination, validates it and memoizes the result.
//   - The first failing combination aborts the letter with ErrInvalidPattern
//     naming the letter. Nothing is cached for a failed letter.
//   - Safe for concurrent use; the Config is copied at construction.
//
// Complexity:
//   - Miss: O(m·r) builds for m motion pairs and r rotation pairs.
//   - Hit: O(m·r) to copy the cached result.

package letters

import (
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

const (
	methodNewGenerator = "NewGenerator"
	methodGenerate     = "Generate"
)

// Config describes one generator.
type Config struct {
	// Table holds the letters this generator serves.
	Table map[Letter]LetterConfig
	// PositionSystem drives family checks and direction overrides.
	PositionSystem PositionSystem
	// PositionSystemName selects the timing/direction entry. Empty means
	// string(PositionSystem).
	PositionSystemName string
	// PatternBuilder constructs a combination. Nil means BuildPattern.
	PatternBuilder PatternBuilder
}

// generatorSeq hands out cache identities.
var generatorSeq atomic.Uint64

// Generator enumerates the pictographs of the letters in its table.
type Generator struct {
	id   uint64
	cfg  Config
	opts options
}

// NewGenerator validates cfg and returns a generator. Table defects return
// ErrBadTable; an unknown system or system name returns
// ErrUnknownPositionSystem.
func NewGenerator(cfg Config, opts ...Option) (*Generator, error) {
	return newGenerator(cfg, newOptions(opts...))
}

func newGenerator(cfg Config, o options) (*Generator, error) {
	if _, _, ok := cfg.PositionSystem.Families(); !ok {
		return nil, fmt.Errorf("%s: system %q: %w", methodNewGenerator, string(cfg.PositionSystem), ErrUnknownPositionSystem)
	}
	if cfg.PositionSystemName == "" {
		cfg.PositionSystemName = string(cfg.PositionSystem)
	}
	if _, ok := systemTimings[cfg.PositionSystemName]; !ok {
		return nil, fmt.Errorf("%s: name %q: %w", methodNewGenerator, cfg.PositionSystemName, ErrUnknownPositionSystem)
	}
	if cfg.PatternBuilder == nil {
		cfg.PatternBuilder = BuildPattern
	}

	table := make(map[Letter]LetterConfig, len(cfg.Table))
	for _, l := range sortedLetters(cfg.Table) {
		lc := cfg.Table[l]
		if err := lc.validate(cfg.PositionSystem); err != nil {
			return nil, fmt.Errorf("%s: %s letter %q: %w", methodNewGenerator, cfg.PositionSystem, l, err)
		}
		table[l] = lc.clone()
	}
	cfg.Table = table

	return &Generator{id: generatorSeq.Add(1), cfg: cfg, opts: o}, nil
}

// PositionSystem returns the system the generator serves.
func (g *Generator) PositionSystem() PositionSystem {
	return g.cfg.PositionSystem
}

// SupportedLetters returns the generator's letters, sorted.
func (g *Generator) SupportedLetters() []Letter {
	return sortedLetters(g.cfg.Table)
}

// SupportsLetter reports whether letter is in the generator's table.
func (g *Generator) SupportsLetter(letter Letter) bool {
	_, ok := g.cfg.Table[letter]
	return ok
}

// Generate returns every pictograph of letter. Results are memoized in the
// generator's Cache and returned as copies.
func (g *Generator) Generate(letter Letter) ([]Pictograph, error) {
	lc, ok := g.cfg.Table[letter]
	if !ok {
		return nil, fmt.Errorf("%s: letter %q in %s: %w", methodGenerate, letter, g.cfg.PositionSystem, ErrUnsupportedLetter)
	}

	key := cacheKey{
		generator: g.id,
		system:    g.cfg.PositionSystem,
		letter:    letter,
		mode:      g.opts.mode,
		prop:      g.opts.prop,
	}
	ps, hit, err := g.opts.cache.getOrCompute(key, func() ([]Pictograph, error) {
		return g.generate(letter, lc)
	})
	if err != nil {
		return nil, err
	}
	g.opts.logger.Debug("letter generated",
		zap.String("letter", string(letter)),
		zap.String("system", string(g.cfg.PositionSystem)),
		zap.String("mode", string(g.opts.mode)),
		zap.Bool("cacheHit", hit),
		zap.Int("patterns", len(ps)),
	)

	return ps, nil
}

// generate builds and validates every combination of lc.
func (g *Generator) generate(letter Letter, lc LetterConfig) ([]Pictograph, error) {
	timing, direction, err := resolveTiming(g.cfg.PositionSystemName, g.cfg.PositionSystem, letter)
	if err != nil {
		return nil, fmt.Errorf("%s: letter %q: %w", methodGenerate, letter, err)
	}

	out := make([]Pictograph, 0, lc.Combinations())
	for _, mp := range lc.MotionPairs {
		for _, rp := range lc.RotationPairs {
			in := PatternInput{
				Letter:         letter,
				PositionSystem: g.cfg.PositionSystem,
				Start:          lc.Start,
				GridMode:       g.opts.mode,
				Motions:        mp,
				Rotations:      rp,
				Timing:         timing,
				Direction:      direction,
				PropType:       g.opts.prop,
			}
			p, err := g.cfg.PatternBuilder(in)
			if err == nil {
				err = g.opts.validator(p, in)
			}
			if err != nil {
				g.opts.logger.Warn("letter pattern rejected",
					zap.String("letter", string(letter)),
					zap.String("system", string(g.cfg.PositionSystem)),
					zap.String("motions", string(mp.Blue)+"/"+string(mp.Red)),
					zap.String("rotations", string(rp.Blue)+"/"+string(rp.Red)),
					zap.Error(err),
				)
				if !errors.Is(err, ErrInvalidPattern) {
					err = fmt.Errorf("%w: %w", ErrInvalidPattern, err)
				}

				return nil, fmt.Errorf("%s: letter %q: %w", methodGenerate, letter, err)
			}
			out = append(out, p)
		}
	}

	return out, nil
}
