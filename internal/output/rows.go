// Package output shapes scored pairs into the records writers emit.
package output

import (
	"strconv"

	"loopcall/pkg/api"

	"loopcall-core/pairs"
)

// TSVHeader is the canonical header row for the tsv output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "chrom\tstart1\tend1\tstrand1\tscore1\tstart2\tend2\tstrand2\tscore2\tdistance\torientation\tscore_min\tcor\tlabel\tprobability"

// NA marks a column with no value: an unlabeled pair, an unscored pair, or
// the undefined-correlation sentinel.
const NA = "NA"

// Row is a display-ready record: optional columns are already rendered so
// every writer (tsv, csv, bedpe) prints identical values.
type Row struct {
	Chrom       string  `dataframe:"chrom"`
	Start1      int     `dataframe:"start1"`
	End1        int     `dataframe:"end1"`
	Strand1     string  `dataframe:"strand1"`
	Score1      float64 `dataframe:"score1"`
	Start2      int     `dataframe:"start2"`
	End2        int     `dataframe:"end2"`
	Strand2     string  `dataframe:"strand2"`
	Score2      float64 `dataframe:"score2"`
	Distance    int     `dataframe:"distance"`
	Orientation string  `dataframe:"orientation"`
	ScoreMin    float64 `dataframe:"score_min"`
	Cor         string  `dataframe:"cor"`
	Label       string  `dataframe:"label"`
	Probability string  `dataframe:"probability"`
}

// FromPair renders one pair.
func FromPair(p pairs.Pair) Row {
	r := Row{
		Chrom:       p.Chrom,
		Start1:      p.Anchor1.Start,
		End1:        p.Anchor1.End,
		Strand1:     string(p.Anchor1.Strand),
		Score1:      p.Anchor1.Score,
		Start2:      p.Anchor2.Start,
		End2:        p.Anchor2.End,
		Strand2:     string(p.Anchor2.Strand),
		Score2:      p.Anchor2.Score,
		Distance:    p.Distance,
		Orientation: string(p.Orientation),
		ScoreMin:    p.ScoreMin,
		Cor:         NA,
		Label:       NA,
		Probability: NA,
	}
	if p.CorrOK {
		r.Cor = formatFloat(p.Correlation)
	}
	if p.Label != "" {
		r.Label = p.Label
	}
	if p.Scored {
		r.Probability = formatFloat(p.Prob)
	}
	return r
}

// ToAPIPair maps a pair onto the stable JSONL schema.
func ToAPIPair(p pairs.Pair) api.PairV1 {
	return api.PairV1{
		Chrom:       p.Chrom,
		Start1:      p.Anchor1.Start,
		End1:        p.Anchor1.End,
		Strand1:     string(p.Anchor1.Strand),
		Score1:      p.Anchor1.Score,
		Start2:      p.Anchor2.Start,
		End2:        p.Anchor2.End,
		Strand2:     string(p.Anchor2.Strand),
		Score2:      p.Anchor2.Score,
		Distance:    p.Distance,
		Orientation: string(p.Orientation),
		ScoreMin:    p.ScoreMin,
		Cor:         p.Correlation,
		CorDefined:  p.CorrOK,
		Label:       p.Label,
		Probability: p.Prob,
		Scored:      p.Scored,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
