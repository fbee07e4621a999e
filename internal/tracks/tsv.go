package tracks

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	gn "github.com/pbenner/gonetics"
)

// FromTSV loads a bedGraph-style file (chrom start end value, tab or space
// separated) into a track with the given bin size. Interval bounds must be
// multiples of binsize; unlisted bins stay zero.
func FromTSV(path string, binsize int) (Bins, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Bins{}, err
	}
	defer func() { _ = fh.Close() }()

	data := make(map[string][]float64)
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || strings.HasPrefix(line, "track ") {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 4 {
			return Bins{}, fmt.Errorf("%s:%d: need 4 fields, got %d", path, ln, len(f))
		}
		start, err := strconv.Atoi(f[1])
		if err != nil {
			return Bins{}, fmt.Errorf("%s:%d: bad start: %v", path, ln, err)
		}
		end, err := strconv.Atoi(f[2])
		if err != nil {
			return Bins{}, fmt.Errorf("%s:%d: bad end: %v", path, ln, err)
		}
		value, err := strconv.ParseFloat(f[3], 64)
		if err != nil {
			return Bins{}, fmt.Errorf("%s:%d: bad value: %v", path, ln, err)
		}
		if start < 0 || start >= end || start%binsize != 0 || end%binsize != 0 {
			return Bins{}, fmt.Errorf("%s:%d: interval %d-%d not aligned to binsize %d", path, ln, start, end, binsize)
		}
		seq := data[f[0]]
		hi := end / binsize
		for len(seq) < hi {
			seq = append(seq, 0)
		}
		for i := start / binsize; i < hi; i++ {
			seq[i] = value
		}
		data[f[0]] = seq
	}
	if err := sc.Err(); err != nil {
		return Bins{}, err
	}

	seqnames := make([]string, 0, len(data))
	for c := range data {
		seqnames = append(seqnames, c)
	}
	sort.Strings(seqnames)
	sequences := make([][]float64, len(seqnames))
	lengths := make([]int, len(seqnames))
	for i, c := range seqnames {
		sequences[i] = data[c]
		lengths[i] = len(data[c]) * binsize
	}
	tr, err := gn.NewSimpleTrack(path, sequences, gn.NewGenome(seqnames, lengths), binsize)
	if err != nil {
		return Bins{}, fmt.Errorf("%s: %w", path, err)
	}
	return New(tr), nil
}
