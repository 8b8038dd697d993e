package letters

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	methodNewRegistry = "NewType1Registry"
	methodGenerateAll = "GenerateAll"
)

// Registry dispatches letters to the generator of their position system.
// All generators of a registry share its options, including the Cache.
type Registry struct {
	tables     Tables
	generators map[Letter]*Generator
	opts       options
}

// NewType1Registry builds one generator per position system from the
// built-in tables, or from WithTables. Table defects return ErrBadTable.
func NewType1Registry(opts ...Option) (*Registry, error) {
	o := newOptions(opts...)
	tables := o.tables
	if tables == nil {
		tables = DefaultType1Tables()
	}
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewRegistry, err)
	}

	r := &Registry{tables: tables, generators: make(map[Letter]*Generator), opts: o}
	for _, sys := range sortedSystems(tables) {
		g, err := newGenerator(Config{Table: tables[sys], PositionSystem: sys}, o)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodNewRegistry, err)
		}
		for _, l := range g.SupportedLetters() {
			r.generators[l] = g
		}
	}

	return r, nil
}

// Tables returns a copy of the registry's tables.
func (r *Registry) Tables() Tables {
	return r.tables.Clone()
}

// Generator returns the generator serving letter.
func (r *Registry) Generator(letter Letter) (*Generator, bool) {
	g, ok := r.generators[letter]
	return g, ok
}

// SupportedLetters returns every registered letter, sorted.
func (r *Registry) SupportedLetters() []Letter {
	out := make([]Letter, 0, len(r.generators))
	for l := range r.generators {
		out = append(out, l)
	}
	slices.Sort(out)

	return out
}

// SupportsLetter reports whether letter is registered.
func (r *Registry) SupportsLetter(letter Letter) bool {
	_, ok := r.generators[letter]
	return ok
}

// Generate dispatches letter to its generator.
func (r *Registry) Generate(letter Letter) ([]Pictograph, error) {
	g, ok := r.generators[letter]
	if !ok {
		return nil, fmt.Errorf("%s: letter %q: %w", methodGenerate, letter, ErrUnsupportedLetter)
	}

	return g.Generate(letter)
}

// GenerateAll generates letters concurrently, at most WithConcurrency at a
// time. With no letters it generates every supported letter.
//
// Failures are scoped to their letter: the returned map holds every letter
// that succeeded and the error joins one error per failed letter, in letter
// order. Letters not yet started when ctx is cancelled fail with ctx.Err().
func (r *Registry) GenerateAll(ctx context.Context, letters ...Letter) (map[Letter][]Pictograph, error) {
	if len(letters) == 0 {
		letters = r.SupportedLetters()
	}

	var (
		mu      sync.Mutex
		results = make(map[Letter][]Pictograph, len(letters))
		failed  = make(map[Letter]error)
	)
	var eg errgroup.Group
	eg.SetLimit(r.opts.concurrency)
	for _, l := range letters {
		l := l
		eg.Go(func() error {
			var (
				ps  []Pictograph
				err = ctx.Err()
			)
			if err == nil {
				ps, err = r.Generate(l)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed[l] = err
				return nil
			}
			results[l] = ps

			return nil
		})
	}
	_ = eg.Wait()

	errs := make([]error, 0, len(failed))
	for _, l := range sortedLetters(failed) {
		errs = append(errs, fmt.Errorf("%s: letter %q: %w", methodGenerateAll, l, failed[l]))
	}
	r.opts.logger.Debug("batch generated",
		zap.Int("letters", len(letters)),
		zap.Int("succeeded", len(results)),
		zap.Int("failed", len(failed)),
	)

	return results, errors.Join(errs...)
}
