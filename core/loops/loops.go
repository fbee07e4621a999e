// Package loops matches candidate pairs against experimentally observed
// loops to produce training labels.
package loops

import (
	"fmt"
	"sort"

	"loopcall-core/pairs"
)

// Loop is one experimentally observed interaction: two anchor regions in the
// same coordinate model as motifs. Read-only reference data.
type Loop struct {
	Chrom1 string
	Start1 int
	End1   int
	Chrom2 string
	Start2 int
	End2   int
}

// Labeler labels candidate pairs against a known-loop set. Experimental
// anchor calls are imprecise, so each known anchor is expanded by a
// tolerance window (typically one resolution bin) before overlap testing.
type Labeler struct {
	tol     int
	byChrom map[string][]Loop // intra-chromosomal, left anchor first, sorted by Start1
	maxSpan map[string]int    // widest Start1..max(End1,End2) span per chromosome
}

// NewLabeler indexes the loop set. Tolerance must be non-negative.
// Inter-chromosomal loops are kept out of the index: candidate pairs are
// intra-chromosomal by construction and can never match them.
func NewLabeler(ls []Loop, tolerance int) (*Labeler, error) {
	if tolerance < 0 {
		return nil, fmt.Errorf("loops: tolerance must be >= 0, got %d", tolerance)
	}
	byChrom := make(map[string][]Loop)
	for _, l := range ls {
		if l.Chrom1 != l.Chrom2 {
			continue
		}
		if l.Start1 > l.Start2 {
			l.Start1, l.Start2 = l.Start2, l.Start1
			l.End1, l.End2 = l.End2, l.End1
		}
		byChrom[l.Chrom1] = append(byChrom[l.Chrom1], l)
	}
	maxSpan := make(map[string]int, len(byChrom))
	for c, list := range byChrom {
		sort.Slice(list, func(i, j int) bool {
			if list[i].Start1 != list[j].Start1 {
				return list[i].Start1 < list[j].Start1
			}
			return list[i].Start2 < list[j].Start2
		})
		span := 0
		for _, l := range list {
			hi := l.End1
			if l.End2 > hi {
				hi = l.End2
			}
			if s := hi - l.Start1; s > span {
				span = s
			}
		}
		maxSpan[c] = span
	}
	return &Labeler{tol: tolerance, byChrom: byChrom, maxSpan: maxSpan}, nil
}

// Label returns the pair with its Label field set: "loop" when both anchors
// overlap the two anchor regions of at least one known loop (anchor
// correspondence order-insensitive), otherwise "no-loop".
func (lb *Labeler) Label(p pairs.Pair) pairs.Pair {
	p.Label = pairs.LabelNoLoop
	if lb.matches(p) {
		p.Label = pairs.LabelLoop
	}
	return p
}

func (lb *Labeler) matches(p pairs.Pair) bool {
	list := lb.byChrom[p.Chrom]
	if len(list) == 0 {
		return false
	}
	// Candidate loops have Start1 within [a1.Start - tol - maxSpan, a2.End + tol];
	// anything outside cannot reach either anchor.
	lo := p.Anchor1.Start - lb.tol - lb.maxSpan[p.Chrom]
	hi := p.Anchor2.End + lb.tol
	first := sort.Search(len(list), func(i int) bool { return list[i].Start1 >= lo })
	for i := first; i < len(list) && list[i].Start1 <= hi; i++ {
		l := list[i]
		if lb.anchorsMatch(p, l.Start1, l.End1, l.Start2, l.End2) ||
			lb.anchorsMatch(p, l.Start2, l.End2, l.Start1, l.End1) {
			return true
		}
	}
	return false
}

func (lb *Labeler) anchorsMatch(p pairs.Pair, s1, e1, s2, e2 int) bool {
	return overlaps(p.Anchor1.Start, p.Anchor1.End, s1-lb.tol, e1+lb.tol) &&
		overlaps(p.Anchor2.Start, p.Anchor2.End, s2-lb.tol, e2+lb.tol)
}

// half-open interval overlap
func overlaps(aFrom, aTo, bFrom, bTo int) bool {
	return aFrom < bTo && bFrom < aTo
}
