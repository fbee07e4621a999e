// Package motif holds the oriented motif site model and the per-chromosome
// sorted index the pair generator walks.
package motif

import "fmt"

// Strand symbols accepted on input.
const (
	Plus  = '+'
	Minus = '-'
)

// Motif is an oriented motif site: a half-open, 0-based interval with a
// match-confidence score (−log10 p-value, non-negative). Values are
// immutable once loaded.
type Motif struct {
	Chrom  string
	Start  int
	End    int
	Strand byte
	Score  float64
}

// Center returns the midpoint coordinate of the site.
func (m Motif) Center() int { return (m.Start + m.End) / 2 }

// InvalidMotifError reports a malformed motif record. Malformed records are
// rejected at load, never coerced.
type InvalidMotifError struct {
	Motif  Motif
	Reason string
}

func (e *InvalidMotifError) Error() string {
	return fmt.Sprintf("invalid motif %s:%d-%d: %s", e.Motif.Chrom, e.Motif.Start, e.Motif.End, e.Reason)
}

// Validate checks the record invariants: start < end, a recognized strand,
// and a non-negative score.
func (m Motif) Validate() error {
	switch {
	case m.Chrom == "":
		return &InvalidMotifError{Motif: m, Reason: "empty chromosome"}
	case m.Start < 0:
		return &InvalidMotifError{Motif: m, Reason: "negative start"}
	case m.Start >= m.End:
		return &InvalidMotifError{Motif: m, Reason: "start >= end"}
	case m.Strand != Plus && m.Strand != Minus:
		return &InvalidMotifError{Motif: m, Reason: fmt.Sprintf("unrecognized strand %q", string(m.Strand))}
	case m.Score < 0:
		return &InvalidMotifError{Motif: m, Reason: "negative score"}
	}
	return nil
}
