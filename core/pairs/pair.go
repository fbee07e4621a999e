// Package pairs enumerates and annotates candidate motif pairs.
package pairs

import "loopcall-core/motif"

// Orientation is the categorical combination of the two anchors' strands.
// Convergent is the regression baseline level.
type Orientation string

const (
	Convergent  Orientation = "convergent"   // +,-
	Divergent   Orientation = "divergent"    // -,+
	SameForward Orientation = "same-forward" // +,+
	SameReverse Orientation = "same-reverse" // -,-
)

// Label values attached by the loop labeler. Empty means unlabeled.
const (
	LabelLoop   = "loop"
	LabelNoLoop = "no-loop"
)

// Pair is a candidate looping interaction between two motifs on the same
// chromosome with Anchor1.Start < Anchor2.Start. Stages fill their fields
// and return the enriched value; a filled field is never rewritten.
type Pair struct {
	Chrom   string
	Anchor1 motif.Motif
	Anchor2 motif.Motif

	// FeatureAnnotator
	Distance    int
	Orientation Orientation
	ScoreMin    float64

	// SignalAligner / CorrelationEngine
	Signal1     []float64
	Signal2     []float64
	Correlation float64
	CorrOK      bool // false: correlation undefined (zero-variance signal)

	// LoopLabeler (training only)
	Label string

	// LoopPredictor
	Prob   float64
	Scored bool
}

// OrientationOf maps the two anchor strands to their category.
func OrientationOf(strand1, strand2 byte) Orientation {
	switch {
	case strand1 == motif.Plus && strand2 == motif.Plus:
		return SameForward
	case strand1 == motif.Minus && strand2 == motif.Minus:
		return SameReverse
	case strand1 == motif.Plus && strand2 == motif.Minus:
		return Convergent
	default:
		return Divergent
	}
}
