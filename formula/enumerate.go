package formula

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/chemkit/formenum/logger"
	"github.com/chemkit/formenum/smt"
)

const (
	// DefaultWindow is the number of integer targets explored on each side
	// of the rounded observed mass. With many atoms the per-atom rounding
	// errors compound, so the window absorbs up to one Dalton of drift.
	DefaultWindow = 1
	// DefaultTolerance is the maximum distance, in Daltons, between a
	// candidate's exact monoisotopic mass and the observed mass.
	DefaultTolerance = 0.01
)

// An Enumerator finds every chemical formula over a given element set whose
// monoisotopic mass matches an observed mass.
type Enumerator struct {
	window    int
	tolerance float64
	parallel  bool
}

// An Option configures an Enumerator.
type Option func(*Enumerator)

// WithWindow sets how many integer targets are explored on each side of the
// rounded observed mass. Zero restricts the search to the rounded mass alone.
func WithWindow(w int) Option {
	return func(e *Enumerator) {
		if w >= 0 {
			e.window = w
		}
	}
}

// WithTolerance sets the exact-mass filter tolerance in Daltons.
func WithTolerance(da float64) Option {
	return func(e *Enumerator) {
		if da >= 0 {
			e.tolerance = da
		}
	}
}

// WithParallel enables solving the window's integer targets concurrently.
// Each target gets its own backend context, so sessions never share state.
func WithParallel(parallel bool) Option {
	return func(e *Enumerator) { e.parallel = parallel }
}

// NewEnumerator returns an Enumerator with the default window and tolerance.
func NewEnumerator(opts ...Option) *Enumerator {
	e := &Enumerator{window: DefaultWindow, tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enumerate returns every formula over the given atoms whose exact
// monoisotopic mass lies within the enumerator's tolerance of the observed
// mass. Candidates are first gathered per integer target across the window,
// then filtered against the unrounded atomic masses.
func (e *Enumerator) Enumerate(mass float64, atoms []Atom) ([]Formula, error) {
	candidates, err := e.IntegerCandidates(mass, atoms)
	if err != nil {
		return nil, err
	}
	res := make([]Formula, 0, len(candidates))
	for _, f := range candidates {
		exact, err := ExactMass(f, atoms)
		if err != nil {
			return nil, err
		}
		if math.Abs(exact-mass) <= e.tolerance {
			res = append(res, f)
		}
	}
	log := logger.Logger()
	log.Info().
		Float64("mass", mass).
		Int("candidates", len(candidates)).
		Int("matches", len(res)).
		Msg("filtered candidates by exact mass")
	return res, nil
}

// EnumerateIon enumerates formulas for an observed m/z of the given adduct,
// converting it to the neutral monoisotopic mass first.
func (e *Enumerator) EnumerateIon(mz float64, ion Ion, atoms []Atom) ([]Formula, error) {
	return e.Enumerate(NeutralMass(mz, ion), atoms)
}

// IntegerCandidates returns the union, over the window of integer targets
// around the rounded observed mass, of every formula whose integer mass
// equals the target. No exact-mass filtering is applied; the result is the
// raw integer approximation.
func (e *Enumerator) IntegerCandidates(mass float64, atoms []Atom) ([]Formula, error) {
	center := int(math.Round(mass))
	if center < 0 {
		return nil, fmt.Errorf("observed mass %g is negative", mass)
	}
	var targets []int
	for t := center - e.window; t <= center+e.window; t++ {
		if t >= 0 {
			targets = append(targets, t)
		}
	}

	perTarget := make([][]Formula, len(targets))
	if e.parallel {
		var g errgroup.Group
		for i, t := range targets {
			i, t := i, t
			g.Go(func() error {
				fs, err := enumerateTarget(t, atoms)
				if err != nil {
					return err
				}
				perTarget[i] = fs
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, t := range targets {
			fs, err := enumerateTarget(t, atoms)
			if err != nil {
				return nil, err
			}
			perTarget[i] = fs
		}
	}

	seen := make(map[string]struct{})
	var res []Formula
	for _, fs := range perTarget {
		for _, f := range fs {
			key := f.String()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			res = append(res, f)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].String() < res[j].String() })
	log := logger.Logger()
	log.Debug().
		Float64("mass", mass).
		Ints("targets", targets).
		Int("candidates", len(res)).
		Msg("enumerated integer candidates")
	return res, nil
}

// enumerateTarget solves one integer target in a dedicated backend context.
func enumerateTarget(target int, atoms []Atom) ([]Formula, error) {
	cs, err := BoundedSystem(target, atoms)
	if err != nil {
		return nil, err
	}
	ctx := smt.NewContext()
	defer ctx.Close()
	sess := smt.NewSession(ctx, cs)
	defer sess.Close()
	models, err := sess.FindAll()
	if err != nil {
		return nil, fmt.Errorf("target %d: %w", target, err)
	}
	fs := make([]Formula, 0, len(models))
	for _, m := range models {
		f := fromAssignment(m)
		if len(f) == 0 {
			// Target 0 admits the all-zero assignment, which is no molecule.
			continue
		}
		fs = append(fs, f)
	}
	return fs, nil
}
