package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

// Full pass over the three-motif scenario: only the (100,900) pair is within
// range, convergent, distance 800, min score 3.
func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	bed := writeFile(t, dir, "motifs.bed", strings.Join([]string{
		"chr1\t100\t119\tCTCF\t5\t+",
		"chr1\t900\t919\tCTCF\t3\t-",
		"chr1\t50000\t50019\tCTCF\t1\t+",
	}, "\n")+"\n")
	track := writeFile(t, dir, "signal.tsv", strings.Join([]string{
		"chr1\t0\t50\t1",
		"chr1\t50\t100\t5",
		"chr1\t100\t150\t2",
		"chr1\t150\t200\t0",
		"chr1\t800\t850\t2",
		"chr1\t850\t900\t6",
		"chr1\t900\t950\t3",
		"chr1\t950\t1000\t1",
	}, "\n")+"\n")

	var out, errBuf bytes.Buffer
	code := Run([]string{
		"-m", bed, "-t", track,
		"--max-dist", "2000", "--window", "4", "--binsize", "50",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errBuf.String())
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header + 1 pair, got %d lines:\n%s", len(lines), out.String())
	}
	f := strings.Split(lines[1], "\t")
	if f[0] != "chr1" || f[1] != "100" || f[5] != "900" {
		t.Errorf("wrong pair: %v", f)
	}
	if f[9] != "800" || f[10] != "convergent" || f[11] != "3" {
		t.Errorf("wrong features: %v", f)
	}
	if f[14] == "NA" {
		t.Errorf("pair should be scored: %v", f)
	}
}

func TestRunCutoffFilters(t *testing.T) {
	dir := t.TempDir()
	bed := writeFile(t, dir, "motifs.bed", strings.Join([]string{
		"chr1\t100\t119\tCTCF\t5\t+",
		"chr1\t900\t919\tCTCF\t3\t-",
	}, "\n")+"\n")
	track := writeFile(t, dir, "signal.tsv", strings.Join([]string{
		"chr1\t0\t50\t1",
		"chr1\t50\t100\t5",
		"chr1\t100\t150\t2",
		"chr1\t150\t200\t0",
		"chr1\t800\t850\t2",
		"chr1\t850\t900\t6",
		"chr1\t900\t950\t3",
		"chr1\t950\t1000\t1",
	}, "\n")+"\n")

	var out, errBuf bytes.Buffer
	code := Run([]string{
		"-m", bed, "-t", track,
		"--max-dist", "2000", "--window", "4", "--binsize", "50",
		"--cutoff", "1", "--no-header",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errBuf.String())
	}
	// probability can never reach 1 exactly, so everything is filtered
	if strings.TrimSpace(out.String()) != "" {
		t.Errorf("expected empty output at cutoff 1, got %q", out.String())
	}
}

func TestRunStrictNoMatchExitCode(t *testing.T) {
	dir := t.TempDir()
	bed := writeFile(t, dir, "motifs.bed", strings.Join([]string{
		"chr1\t100\t119\tCTCF\t5\t+",
		"chr1\t900\t919\tCTCF\t3\t-",
	}, "\n")+"\n")
	track := writeFile(t, dir, "signal.tsv", strings.Join([]string{
		"chr1\t0\t50\t1",
		"chr1\t50\t100\t5",
		"chr1\t100\t150\t2",
		"chr1\t150\t200\t0",
		"chr1\t800\t850\t2",
		"chr1\t850\t900\t6",
		"chr1\t900\t950\t3",
		"chr1\t950\t1000\t1",
	}, "\n")+"\n")

	args := []string{
		"-m", bed, "-t", track,
		"--max-dist", "2000", "--window", "4", "--binsize", "50",
		"--cutoff", "1", "--no-header",
	}

	var out, errBuf bytes.Buffer
	code := Run(append(args, "--strict-no-match"), &out, &errBuf)
	if code != 1 {
		t.Fatalf("want exit 1 for empty result under --strict-no-match, got %d (stderr: %s)", code, errBuf.String())
	}
	if strings.TrimSpace(out.String()) != "" {
		t.Errorf("expected empty output, got %q", out.String())
	}

	// same empty result without the flag keeps exit 0
	out.Reset()
	errBuf.Reset()
	if code := Run(args, &out, &errBuf); code != 0 {
		t.Fatalf("want exit 0 without --strict-no-match, got %d", code)
	}
}

func TestRunVersion(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"--version"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.HasPrefix(out.String(), "loopcall version ") {
		t.Errorf("unexpected version output %q", out.String())
	}
}

func TestRunUsageErrorExitCode(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"--track", "x.tsv"}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("want exit 2 for missing --motifs, got %d", code)
	}
	if errBuf.Len() == 0 {
		t.Error("expected usage message on stderr")
	}
}

func TestRunLabelsAgainstKnownLoops(t *testing.T) {
	dir := t.TempDir()
	bed := writeFile(t, dir, "motifs.bed", strings.Join([]string{
		"chr1\t100\t119\tCTCF\t5\t+",
		"chr1\t900\t919\tCTCF\t3\t-",
	}, "\n")+"\n")
	track := writeFile(t, dir, "signal.tsv", strings.Join([]string{
		"chr1\t0\t50\t1",
		"chr1\t50\t100\t5",
		"chr1\t100\t150\t2",
		"chr1\t150\t200\t0",
		"chr1\t800\t850\t2",
		"chr1\t850\t900\t6",
		"chr1\t900\t950\t3",
		"chr1\t950\t1000\t1",
	}, "\n")+"\n")
	loops := writeFile(t, dir, "loops.bedpe", "chr1\t50\t150\tchr1\t850\t950\n")

	var out, errBuf bytes.Buffer
	code := Run([]string{
		"-m", bed, "-t", track, "-k", loops,
		"--max-dist", "2000", "--window", "4", "--binsize", "50",
		"--tolerance", "0", "--no-header",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errBuf.String())
	}
	f := strings.Split(strings.TrimRight(out.String(), "\n"), "\t")
	if f[13] != "loop" {
		t.Errorf("label column = %q, want loop (row %v)", f[13], f)
	}
}
