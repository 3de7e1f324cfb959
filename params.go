package lshamp

import (
	"fmt"
	"math"
)

// Scheme is a way of composing r*b independent LSH rows into one test.
type Scheme int

const (
	// OrAnd ORs b bands, each the AND of r rows: 1 - (1 - p^r)^b.
	OrAnd Scheme = iota
	// AndOr ANDs b groups, each the OR of r rows: (1 - (1-p)^r)^b.
	AndOr
)

// String returns the scheme name used when printing results.
func (s Scheme) String() string {
	switch s {
	case OrAnd:
		return "OR-AND"
	case AndOr:
		return "AND-OR"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// Amplify returns the collision probability of the composed test when a
// single row collides with probability p.
func (s Scheme) Amplify(p float64, r, b int) float64 {
	switch s {
	case AndOr:
		return math.Pow(1-math.Pow(1-p, float64(r)), float64(b))
	default:
		return 1 - math.Pow(1-math.Pow(p, float64(r)), float64(b))
	}
}

// Threshold approximates the base similarity at which the composed test's
// S-curve is steepest. For OR-AND this is (1/b)^(1/r); AND-OR is its dual.
func (s Scheme) Threshold(r, b int) float64 {
	t := math.Pow(1/float64(b), 1/float64(r))
	if s == AndOr {
		return 1 - t
	}
	return t
}

// Sensitivity describes the base LSH family: PNear is the probability that a
// similar pair collides in one row, PFar that a dissimilar pair does.
type Sensitivity struct {
	PNear float64
	PFar  float64
}

// DefaultSensitivity is a (0.8, 0.4)-sensitive base family.
var DefaultSensitivity = Sensitivity{PNear: 0.8, PFar: 0.4}

// Rates are the amplified rates of a composed test.
type Rates struct {
	TPR float64
	FPR float64
	FNR float64
}

// RatesForScheme returns the amplified rates of scheme with r rows and b bands.
func RatesForScheme(s Sensitivity, scheme Scheme, r, b int) Rates {
	return ratesFor(s, scheme.Amplify, r, b)
}

func ratesFor(s Sensitivity, amplify func(p float64, r, b int) float64, r, b int) Rates {
	tpr := amplify(s.PNear, r, b)
	return Rates{
		TPR: tpr,
		FPR: amplify(s.PFar, r, b),
		FNR: 1 - tpr,
	}
}

// Bound is an optional strict upper limit on a rate.
type Bound struct {
	Value float64
	Set   bool
}

// Below returns a Bound satisfied by rates strictly less than v.
func Below(v float64) Bound {
	return Bound{Value: v, Set: true}
}

// admits reports whether rate satisfies b. An unset bound admits everything.
func (b Bound) admits(rate float64) bool {
	return !b.Set || rate < b.Value
}

// SearchConfig bounds the parameter grid and constrains the amplified rates.
type SearchConfig struct {
	Sensitivity Sensitivity
	MaxRows     int
	MaxBands    int
	MaxFPR      Bound
	MaxFNR      Bound
}

// DefaultSearchConfig searches r in [1,40] and b in [1,60] over
// DefaultSensitivity with no rate constraints.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Sensitivity: DefaultSensitivity,
		MaxRows:     40,
		MaxBands:    60,
	}
}

// Validate checks that every probability in the config lies in [0, 1].
func (c SearchConfig) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"p_near", c.Sensitivity.PNear},
		{"p_far", c.Sensitivity.PFar},
	}
	for _, chk := range checks {
		if math.IsNaN(chk.v) || chk.v < 0 || chk.v > 1 {
			return fmt.Errorf("%w: %s=%v is not a probability", ErrInvalidArgument, chk.name, chk.v)
		}
	}
	if c.MaxFPR.Set && math.IsNaN(c.MaxFPR.Value) {
		return fmt.Errorf("%w: max FPR is NaN", ErrInvalidArgument)
	}
	if c.MaxFNR.Set && math.IsNaN(c.MaxFNR.Value) {
		return fmt.Errorf("%w: max FNR is NaN", ErrInvalidArgument)
	}
	return nil
}

// Result is the cheapest (rows, bands) pair found by FindParams.
type Result struct {
	Rows      int
	Bands     int
	TPR       float64
	FPR       float64
	FNR       float64
	Threshold float64
}

// Cost returns the total number of rows the composed test evaluates.
func (r *Result) Cost() int {
	return r.Rows * r.Bands
}

// FindParams enumerates every r in [1, MaxRows] and b in [1, MaxBands] and
// returns the pair whose amplified rates satisfy the config's bounds with the
// smallest r*b, breaking ties by fewer bands and then fewer rows.
//
// A nil Result with a nil error means no pair in the grid qualifies.
func FindParams(cfg SearchConfig, scheme Scheme) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := findParams(cfg, scheme.Amplify)
	if res != nil {
		res.Threshold = scheme.Threshold(res.Rows, res.Bands)
	}
	return res, nil
}

func findParams(cfg SearchConfig, amplify func(p float64, r, b int) float64) *Result {
	var best *Result
	for r := 1; r <= cfg.MaxRows; r++ {
		for b := 1; b <= cfg.MaxBands; b++ {
			rates := ratesFor(cfg.Sensitivity, amplify, r, b)
			if !cfg.MaxFPR.admits(rates.FPR) || !cfg.MaxFNR.admits(rates.FNR) {
				continue
			}

			if best == nil || less(r, b, best.Rows, best.Bands) {
				best = &Result{
					Rows:  r,
					Bands: b,
					TPR:   rates.TPR,
					FPR:   rates.FPR,
					FNR:   rates.FNR,
				}
			}
		}
	}
	return best
}

// less orders (r, b) pairs by the key (r*b, b, r).
func less(r1, b1, r2, b2 int) bool {
	if c1, c2 := r1*b1, r2*b2; c1 != c2 {
		return c1 < c2
	}
	if b1 != b2 {
		return b1 < b2
	}
	return r1 < r2
}
