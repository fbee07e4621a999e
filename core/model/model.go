// Package model scores candidate pairs with a linear-in-features logistic
// classifier. Fitting happens elsewhere; this package only consumes
// coefficients.
package model

import (
	"errors"
	"fmt"

	"loopcall-core/pairs"
)

// Model is the immutable scoring configuration: an ordered feature-name
// list, a matching coefficient list, and an intercept. Supplied either by
// Default() or from a user-trained fit.
type Model struct {
	Intercept    float64   `json:"intercept"`
	Features     []string  `json:"features"`
	Coefficients []float64 `json:"coefficients"`
}

// MissingFeatureError is the fatal configuration error raised when a model
// references a feature the pipeline does not compute.
type MissingFeatureError struct {
	Feature string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("model references unknown feature %q", e.Feature)
}

// ErrUndefinedCorrelation marks a pair whose correlation feature is the
// undefined sentinel. Recoverable per pair; callers decide whether to drop
// the pair, never to silently read 0.
var ErrUndefinedCorrelation = errors.New("model: correlation undefined for pair")

// accessor pulls one feature value off a pair. ok=false means the feature
// is undefined for this particular pair (only correlation can be).
type accessor func(pairs.Pair) (float64, bool)

// featureRegistry names every feature the pipeline computes. Orientation is
// dummy-coded against the convergent baseline.
var featureRegistry = map[string]accessor{
	"cor": func(p pairs.Pair) (float64, bool) { return p.Correlation, p.CorrOK },
	"dist": func(p pairs.Pair) (float64, bool) {
		return float64(p.Distance), true
	},
	"scoreMin":                 func(p pairs.Pair) (float64, bool) { return p.ScoreMin, true },
	"orientation=same-forward": orientationDummy(pairs.SameForward),
	"orientation=same-reverse": orientationDummy(pairs.SameReverse),
	"orientation=divergent":    orientationDummy(pairs.Divergent),
}

func orientationDummy(o pairs.Orientation) accessor {
	return func(p pairs.Pair) (float64, bool) {
		if p.Orientation == o {
			return 1, true
		}
		return 0, true
	}
}

type term struct {
	name string
	coef float64
	get  accessor
}

// Scorer is a Model resolved once against the feature registry. Resolution
// validates every feature name up front so scoring itself cannot hit a
// configuration error per pair.
type Scorer struct {
	intercept float64
	terms     []term
}

// New resolves and validates a model.
func New(m Model) (*Scorer, error) {
	if len(m.Features) != len(m.Coefficients) {
		return nil, fmt.Errorf("model: %d features but %d coefficients",
			len(m.Features), len(m.Coefficients))
	}
	s := &Scorer{intercept: m.Intercept, terms: make([]term, 0, len(m.Features))}
	for i, name := range m.Features {
		get, ok := featureRegistry[name]
		if !ok {
			return nil, &MissingFeatureError{Feature: name}
		}
		s.terms = append(s.terms, term{name: name, coef: m.Coefficients[i], get: get})
	}
	return s, nil
}
