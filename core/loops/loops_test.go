package loops

import (
	"testing"

	"loopcall-core/motif"
	"loopcall-core/pairs"
)

func pairAt(chrom string, s1, s2 int) pairs.Pair {
	return pairs.Pair{
		Chrom:   chrom,
		Anchor1: motif.Motif{Chrom: chrom, Start: s1, End: s1 + 19, Strand: motif.Plus, Score: 1},
		Anchor2: motif.Motif{Chrom: chrom, Start: s2, End: s2 + 19, Strand: motif.Minus, Score: 1},
	}
}

func TestLabelBothAnchorsMatch(t *testing.T) {
	lb, err := NewLabeler([]Loop{
		{Chrom1: "chr1", Start1: 90, End1: 150, Chrom2: "chr1", Start2: 880, End2: 950},
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := lb.Label(pairAt("chr1", 100, 900)); got.Label != pairs.LabelLoop {
		t.Errorf("Label = %q, want loop", got.Label)
	}
	// only one anchor inside a known anchor region
	if got := lb.Label(pairAt("chr1", 100, 5000)); got.Label != pairs.LabelNoLoop {
		t.Errorf("Label = %q, want no-loop", got.Label)
	}
}

func TestLabelOrderInsensitiveCorrespondence(t *testing.T) {
	// known loop recorded right-anchor-first
	lb, err := NewLabeler([]Loop{
		{Chrom1: "chr1", Start1: 880, End1: 950, Chrom2: "chr1", Start2: 90, End2: 150},
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := lb.Label(pairAt("chr1", 100, 900)); got.Label != pairs.LabelLoop {
		t.Errorf("Label = %q, want loop for reversed known-loop anchors", got.Label)
	}
}

func TestLabelToleranceBoundary(t *testing.T) {
	loop := Loop{Chrom1: "chr1", Start1: 200, End1: 220, Chrom2: "chr1", Start2: 900, End2: 920}

	// anchor1 [100,119) sits 81 bp short of the known anchor start
	strict, err := NewLabeler([]Loop{loop}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := strict.Label(pairAt("chr1", 100, 900)); got.Label != pairs.LabelNoLoop {
		t.Errorf("tol=0: Label = %q, want no-loop", got.Label)
	}

	// tol=82 expands [200,220) to [118,302): overlaps [100,119)
	loose, err := NewLabeler([]Loop{loop}, 82)
	if err != nil {
		t.Fatal(err)
	}
	if got := loose.Label(pairAt("chr1", 100, 900)); got.Label != pairs.LabelLoop {
		t.Errorf("tol=82: Label = %q, want loop", got.Label)
	}

	// tol=81 expands to [119,301): half-open, still no overlap with [100,119)
	edge, err := NewLabeler([]Loop{loop}, 81)
	if err != nil {
		t.Fatal(err)
	}
	if got := edge.Label(pairAt("chr1", 100, 900)); got.Label != pairs.LabelNoLoop {
		t.Errorf("tol=81: Label = %q, want no-loop", got.Label)
	}
}

func TestLabelIgnoresOtherChromosomesAndInterChromosomalLoops(t *testing.T) {
	lb, err := NewLabeler([]Loop{
		{Chrom1: "chr2", Start1: 90, End1: 150, Chrom2: "chr2", Start2: 880, End2: 950},
		{Chrom1: "chr1", Start1: 90, End1: 150, Chrom2: "chr3", Start2: 880, End2: 950},
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := lb.Label(pairAt("chr1", 100, 900)); got.Label != pairs.LabelNoLoop {
		t.Errorf("Label = %q, want no-loop", got.Label)
	}
}

func TestNewLabelerRejectsNegativeTolerance(t *testing.T) {
	if _, err := NewLabeler(nil, -1); err == nil {
		t.Fatal("want error for negative tolerance")
	}
}
