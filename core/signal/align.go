package signal

import (
	"errors"

	"loopcall-core/motif"
)

// ErrNonPositiveWidth rejects a missing or non-positive window width.
var ErrNonPositiveWidth = errors.New("signal: window width must be positive")

// Aligner extracts a fixed-length signal vector around a motif center.
// Width is the number of values per vector; the genomic window spans
// Width*Binsize base pairs centered on the motif midpoint.
//
// Orientation normalization: vectors from minus-strand motifs are reversed,
// so index 0 is always upstream in the motif's own direction and vectors
// from + and - motifs compare positionally.
type Aligner struct {
	Track    TrackReader
	Width    int
	ZeroFill bool // serve zeros instead of failing on missing coverage
}

// Align returns the orientation-normalized signal vector for one motif.
func (a Aligner) Align(m motif.Motif) ([]float64, error) {
	if a.Width <= 0 {
		return nil, ErrNonPositiveWidth
	}
	bs := a.Track.Binsize()
	span := a.Width * bs
	from := m.Center() - span/2
	to := from + span

	v, err := a.Track.Values(m.Chrom, from, to)
	if err != nil {
		var unavailable *SignalUnavailableError
		if a.ZeroFill && errors.As(err, &unavailable) {
			v = make([]float64, a.Width)
		} else {
			return nil, err
		}
	}
	if len(v) != a.Width {
		return nil, &SignalUnavailableError{
			Chrom: m.Chrom, From: from, To: to,
			Reason: "track returned short window",
		}
	}
	out := make([]float64, a.Width)
	copy(out, v)
	if m.Strand == motif.Minus {
		reverse(out)
	}
	return out, nil
}

func reverse(v []float64) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
