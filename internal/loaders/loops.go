package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"loopcall-core/loops"
)

// KnownLoops loads BEDPE records (chrom1 start1 end1 chrom2 start2 end2,
// extra columns ignored) as the experimental reference loop set.
func KnownLoops(path string) ([]loops.Loop, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var out []loops.Loop
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 6 {
			return nil, fmt.Errorf("%s:%d: need 6 BEDPE fields, got %d", path, ln, len(f))
		}
		coords := make([]int, 4)
		for i, col := range []int{1, 2, 4, 5} {
			v, err := strconv.Atoi(f[col])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad coordinate in column %d: %v", path, ln, col+1, err)
			}
			coords[i] = v
		}
		l := loops.Loop{
			Chrom1: f[0], Start1: coords[0], End1: coords[1],
			Chrom2: f[3], Start2: coords[2], End2: coords[3],
		}
		if l.Start1 >= l.End1 || l.Start2 >= l.End2 {
			return nil, fmt.Errorf("%s:%d: anchor start >= end", path, ln)
		}
		out = append(out, l)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
