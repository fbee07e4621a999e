// Package signal extracts orientation-normalized signal vectors around motif
// anchors and correlates them.
package signal

import "fmt"

// TrackReader serves per-bin signal values for arbitrary genomic intervals.
// Implementations are external (coverage tracks, precomputed bin files); the
// aligner only relies on this contract.
type TrackReader interface {
	// Values returns exactly (to-from)/Binsize() values covering [from, to),
	// or a SignalUnavailableError when the track has no coverage there.
	// Binned implementations snap bounds that fall inside a bin to the
	// nearest bin boundary, keeping the served window centered on the
	// request within half a bin.
	Values(chrom string, from, to int) ([]float64, error)
	// Binsize is the width in base pairs represented by one value.
	Binsize() int
}

// SignalUnavailableError reports that the track cannot serve an interval.
// It is recoverable at pair granularity: callers may skip the affected pair
// without touching unrelated pairs.
type SignalUnavailableError struct {
	Chrom  string
	From   int
	To     int
	Reason string
}

func (e *SignalUnavailableError) Error() string {
	return fmt.Sprintf("signal unavailable for %s:%d-%d: %s", e.Chrom, e.From, e.To, e.Reason)
}
