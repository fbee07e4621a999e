package pairs

// Annotate fills the distance, strand-orientation, and motif-score features
// of a generated pair. Pure function of the two anchors; no I/O.
func Annotate(p Pair) Pair {
	p.Distance = p.Anchor2.Start - p.Anchor1.Start
	p.Orientation = OrientationOf(p.Anchor1.Strand, p.Anchor2.Strand)
	p.ScoreMin = p.Anchor1.Score
	if p.Anchor2.Score < p.ScoreMin {
		p.ScoreMin = p.Anchor2.Score
	}
	return p
}
