// Package loaders reads the external reference inputs: motif sites,
// known loops, and custom scoring models.
package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"loopcall-core/motif"
)

// Motifs loads BED6 records (chrom start end name score strand) into
// validated motifs. The name column is ignored; score is the motif match
// −log10 p-value. Comment and track lines are skipped.
func Motifs(path string) (*motif.Index, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var ms []motif.Motif
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || strings.HasPrefix(line, "track ") {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 6 {
			return nil, fmt.Errorf("%s:%d: need 6 BED fields, got %d", path, ln, len(f))
		}
		start, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad start: %v", path, ln, err)
		}
		end, err := strconv.Atoi(f[2])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad end: %v", path, ln, err)
		}
		score, err := strconv.ParseFloat(f[4], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad score: %v", path, ln, err)
		}
		if len(f[5]) != 1 {
			return nil, fmt.Errorf("%s:%d: bad strand %q", path, ln, f[5])
		}
		ms = append(ms, motif.Motif{
			Chrom:  f[0],
			Start:  start,
			End:    end,
			Strand: f[5][0],
			Score:  score,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	idx, err := motif.NewIndex(ms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return idx, nil
}
