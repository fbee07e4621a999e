// Package tracks adapts gonetics coverage tracks to the core TrackReader
// contract. Two backends are bundled: binned coverage built from BAM reads,
// and a bedGraph-style TSV of precomputed per-bin values.
package tracks

import (
	"fmt"

	gn "github.com/pbenner/gonetics"

	"loopcall-core/signal"
)

// Bins serves per-bin values from an in-memory gonetics SimpleTrack.
type Bins struct {
	tr gn.SimpleTrack
}

// New wraps an existing track.
func New(tr gn.SimpleTrack) Bins { return Bins{tr: tr} }

// Binsize implements signal.TrackReader.
func (b Bins) Binsize() int { return b.tr.BinSize }

// Values implements signal.TrackReader. Interval bounds are aligned to the
// nearest bin boundary, so the served window stays centered on the request.
// The requested interval must lie fully inside the track; anything else is
// a SignalUnavailableError, the zero-fill decision belongs to the caller.
func (b Bins) Values(chrom string, from, to int) ([]float64, error) {
	seq, ok := b.tr.Data[chrom]
	if !ok {
		return nil, &signal.SignalUnavailableError{Chrom: chrom, From: from, To: to, Reason: "chromosome not in track"}
	}
	if from < 0 {
		return nil, &signal.SignalUnavailableError{Chrom: chrom, From: from, To: to, Reason: "window before chromosome start"}
	}
	bs := b.tr.BinSize
	n := (to - from) / bs
	fromBin := (from + bs/2) / bs
	if fromBin+n > len(seq) {
		return nil, &signal.SignalUnavailableError{Chrom: chrom, From: from, To: to, Reason: "window past end of track"}
	}
	return seq[fromBin : fromBin+n], nil
}

// FromBam builds a binned coverage track from paired-end reads. The genome
// comes from the chromsizes file when given, otherwise from the BAM header.
// extsize > 0 extends reads to that fragment length (requires stranded
// reads, like the macs2 extsize parameter).
func FromBam(path, chromSizes string, binsize, extsize int) (Bins, error) {
	reads := gn.GRanges{}
	if err := reads.ImportBamPairedEnd(path, gn.BamReaderOptions{ReadName: false, ReadCigar: false, ReadSequence: false}); err != nil {
		return Bins{}, fmt.Errorf("reading %s: %w", path, err)
	}

	genome := gn.Genome{}
	if chromSizes != "" {
		if err := genome.Import(chromSizes); err != nil {
			return Bins{}, fmt.Errorf("reading %s: %w", chromSizes, err)
		}
	} else {
		g, err := gn.BamImportGenome(path)
		if err != nil {
			return Bins{}, fmt.Errorf("no genome in %s header: %w", path, err)
		}
		genome = g
	}

	tr := gn.AllocSimpleTrack("coverage", genome, binsize)
	gn.GenericMutableTrack{MutableTrack: tr}.AddReads(reads.AsReadChannel(), extsize, "overlap")
	return Bins{tr: tr}, nil
}
