package signal

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch indicates vectors of unequal length, which the aligner's
// fixed per-run width rules out; hitting it is a programming error upstream.
var ErrLengthMismatch = errors.New("signal: correlation vectors differ in length")

// Pearson computes the Pearson correlation of two aligned signal vectors.
// ok is false when either vector has zero variance (constant, including
// all-zero): the correlation is undefined there, and the sentinel keeps an
// undefined value distinguishable from a true 0.0. No NaN ever escapes.
func Pearson(x, y []float64) (r float64, ok bool, err error) {
	if len(x) != len(y) {
		return 0, false, ErrLengthMismatch
	}
	if len(x) < 2 {
		return 0, false, nil
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return 0, false, nil
	}
	r = stat.Correlation(x, y, nil)
	// guard against floating drift outside [-1, 1]
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r, true, nil
}
