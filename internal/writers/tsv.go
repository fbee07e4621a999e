package writers

import (
	"fmt"
	"io"

	"loopcall/internal/output"

	"loopcall-core/pairs"
)

func init() {
	Register("tsv", WriteTSV)
	Register("bedpe", WriteBEDPE)
}

// WriteTSV writes the canonical tab-delimited table.
func WriteTSV(w io.Writer, ps []pairs.Pair, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, output.TSVHeader); err != nil {
			return err
		}
	}
	for _, p := range ps {
		r := output.FromPair(p)
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%g\t%d\t%d\t%s\t%g\t%d\t%s\t%g\t%s\t%s\t%s\n",
			r.Chrom, r.Start1, r.End1, r.Strand1, r.Score1,
			r.Start2, r.End2, r.Strand2, r.Score2,
			r.Distance, r.Orientation, r.ScoreMin,
			r.Cor, r.Label, r.Probability,
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteBEDPE writes one BEDPE record per pair: both anchors, the predicted
// probability as the score column, and the anchor strands. BEDPE carries no
// header.
func WriteBEDPE(w io.Writer, ps []pairs.Pair, _ bool) error {
	for _, p := range ps {
		r := output.FromPair(p)
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\t%d\t.\t%s\t%s\t%s\n",
			r.Chrom, r.Start1, r.End1,
			r.Chrom, r.Start2, r.End2,
			r.Probability, r.Strand1, r.Strand2,
		); err != nil {
			return err
		}
	}
	return nil
}
