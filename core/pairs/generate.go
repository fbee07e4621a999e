package pairs

import (
	"errors"

	"loopcall-core/motif"
)

// ErrNonPositiveMaxDist rejects a missing or non-positive distance bound.
var ErrNonPositiveMaxDist = errors.New("pairs: maxDist must be positive")

// Generate enumerates every candidate pair whose anchors sit on the same
// chromosome within maxDist base pairs (inclusive), grouped by chromosome in
// the index's canonical order, then by anchor1 start ascending, then anchor2
// start ascending. Each valid pair is emitted exactly once; self-pairs and
// cross-chromosome pairs never are.
func Generate(idx *motif.Index, maxDist int) ([]Pair, error) {
	if maxDist <= 0 {
		return nil, ErrNonPositiveMaxDist
	}
	var out []Pair
	for _, chrom := range idx.Chroms() {
		out = append(out, GenerateChrom(chrom, idx.Motifs(chrom), maxDist)...)
	}
	return out, nil
}

// GenerateChrom runs the sliding window over one chromosome's sorted motifs.
// For motif i the forward pointer j advances while start[j]-start[i] stays
// within maxDist, so the scan is O(n + emitted) with no full pairwise pass.
func GenerateChrom(chrom string, ms []motif.Motif, maxDist int) []Pair {
	var out []Pair
	for i := 0; i < len(ms); i++ {
		for j := i + 1; j < len(ms) && ms[j].Start-ms[i].Start <= maxDist; j++ {
			// Equal starts violate the anchor1.Start < anchor2.Start contract.
			if ms[j].Start == ms[i].Start {
				continue
			}
			out = append(out, Pair{Chrom: chrom, Anchor1: ms[i], Anchor2: ms[j]})
		}
	}
	return out
}
