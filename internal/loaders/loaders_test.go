package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"loopcall-core/motif"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestMotifsLoadsBED6(t *testing.T) {
	p := writeFile(t, "motifs.bed", strings.Join([]string{
		"# CTCF motif calls",
		"chr1\t100\t119\tMA0139.1\t5.0\t+",
		"chr1\t900\t919\tMA0139.1\t3.0\t-",
		"chr2\t50\t69\tMA0139.1\t1.5\t+",
		"",
	}, "\n"))
	idx, err := Motifs(p)
	if err != nil {
		t.Fatalf("Motifs: %v", err)
	}
	if idx.Len() != 3 {
		t.Fatalf("want 3 motifs, got %d", idx.Len())
	}
	m := idx.At("chr1", 1)
	if m.Start != 900 || m.Strand != motif.Minus || m.Score != 3 {
		t.Errorf("unexpected motif: %+v", m)
	}
}

func TestMotifsRejectsMalformed(t *testing.T) {
	cases := []struct {
		name, line string
	}{
		{"short line", "chr1\t100\t119\t+"},
		{"bad start", "chr1\tx\t119\tm\t5\t+"},
		{"bad score", "chr1\t100\t119\tm\thigh\t+"},
		{"start>=end", "chr1\t119\t100\tm\t5\t+"},
		{"bad strand", "chr1\t100\t119\tm\t5\t."},
		{"negative score", "chr1\t100\t119\tm\t-2\t+"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := writeFile(t, "bad.bed", tc.line+"\n")
			if _, err := Motifs(p); err == nil {
				t.Fatal("expected load error")
			}
		})
	}
}

func TestMotifsInvalidRecordIsInvalidMotifError(t *testing.T) {
	p := writeFile(t, "bad.bed", "chr1\t119\t100\tm\t5\t+\n")
	_, err := Motifs(p)
	var ime *motif.InvalidMotifError
	if !errors.As(err, &ime) {
		t.Fatalf("want InvalidMotifError, got %v", err)
	}
}

func TestKnownLoopsLoadsBEDPE(t *testing.T) {
	p := writeFile(t, "loops.bedpe", strings.Join([]string{
		"chr1\t90\t150\tchr1\t880\t950\tloop1\t17.2",
		"chr1\t2000\t2100\tchr2\t500\t600",
	}, "\n")+"\n")
	got, err := KnownLoops(p)
	if err != nil {
		t.Fatalf("KnownLoops: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 loops, got %d", len(got))
	}
	if got[0].Start2 != 880 || got[1].Chrom2 != "chr2" {
		t.Errorf("unexpected loops: %+v", got)
	}
}

func TestKnownLoopsRejectsBadAnchor(t *testing.T) {
	p := writeFile(t, "loops.bedpe", "chr1\t150\t90\tchr1\t880\t950\n")
	if _, err := KnownLoops(p); err == nil {
		t.Fatal("expected error for start >= end")
	}
}

func TestScoringModelJSON(t *testing.T) {
	p := writeFile(t, "model.json",
		`{"intercept": -1.5, "features": ["cor", "dist"], "coefficients": [4.0, -2e-06]}`)
	m, err := ScoringModel(p)
	if err != nil {
		t.Fatalf("ScoringModel: %v", err)
	}
	if m.Intercept != -1.5 || len(m.Features) != 2 || m.Coefficients[1] != -2e-06 {
		t.Errorf("unexpected model: %+v", m)
	}
}

func TestScoringModelRejectsEmpty(t *testing.T) {
	p := writeFile(t, "model.json", `{"intercept": 0}`)
	if _, err := ScoringModel(p); err == nil {
		t.Fatal("expected error for model without features")
	}
}
