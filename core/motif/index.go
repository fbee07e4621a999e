package motif

import "sort"

// Index is a read-only per-chromosome collection of motif sites, each
// chromosome sorted ascending by start (ties by end, then input order).
type Index struct {
	chroms  []string
	byChrom map[string][]Motif
}

// NewIndex validates every motif and builds the sorted index. The first
// malformed record aborts with an InvalidMotifError.
func NewIndex(ms []Motif) (*Index, error) {
	byChrom := make(map[string][]Motif)
	for _, m := range ms {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		byChrom[m.Chrom] = append(byChrom[m.Chrom], m)
	}
	chroms := make([]string, 0, len(byChrom))
	for c, list := range byChrom {
		chroms = append(chroms, c)
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Start != list[j].Start {
				return list[i].Start < list[j].Start
			}
			return list[i].End < list[j].End
		})
	}
	// Lexicographic chromosome order is the canonical cross-chromosome
	// output order for the whole pipeline.
	sort.Strings(chroms)
	return &Index{chroms: chroms, byChrom: byChrom}, nil
}

// Chroms returns the chromosome names in canonical order.
func (x *Index) Chroms() []string { return x.chroms }

// Motifs returns the sorted motifs of one chromosome (nil if absent).
func (x *Index) Motifs(chrom string) []Motif { return x.byChrom[chrom] }

// At returns the i-th motif of a chromosome.
func (x *Index) At(chrom string, i int) Motif { return x.byChrom[chrom][i] }

// Len reports the total number of indexed motifs.
func (x *Index) Len() int {
	n := 0
	for _, list := range x.byChrom {
		n += len(list)
	}
	return n
}
