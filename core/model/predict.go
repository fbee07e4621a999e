package model

import (
	"errors"
	"math"

	"loopcall-core/pairs"
)

// Logistic maps a linear predictor to a probability.
func Logistic(z float64) float64 { return 1 / (1 + math.Exp(-z)) }

// Score computes the interaction probability for one pair. It returns
// ErrUndefinedCorrelation when the model uses the cor feature and the pair's
// correlation is the undefined sentinel.
func (s *Scorer) Score(p pairs.Pair) (float64, error) {
	z := s.intercept
	for _, t := range s.terms {
		v, ok := t.get(p)
		if !ok {
			return 0, ErrUndefinedCorrelation
		}
		z += t.coef * v
	}
	return Logistic(z), nil
}

// Predict scores every pair and applies the optional cutoff. Cutoff
// semantics are an absolute probability threshold: pairs with probability >=
// *cutoff are kept, so a pair landing exactly on the cutoff survives. A nil
// cutoff disables filtering and returns every scored pair in input order.
//
// Pairs with an undefined correlation are dropped and counted in skipped;
// they are never scored as if their correlation were zero.
func (s *Scorer) Predict(ps []pairs.Pair, cutoff *float64) (kept []pairs.Pair, skipped int, err error) {
	for _, p := range ps {
		prob, serr := s.Score(p)
		if errors.Is(serr, ErrUndefinedCorrelation) {
			skipped++
			continue
		}
		if serr != nil {
			return nil, skipped, serr
		}
		p.Prob = prob
		p.Scored = true
		if cutoff != nil && prob < *cutoff {
			continue
		}
		kept = append(kept, p)
	}
	return kept, skipped, nil
}
