package api

// PairV1 is the stable JSON/JSONL schema for scored candidate pairs.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type PairV1 struct {
	Chrom       string  `json:"chrom"`
	Start1      int     `json:"start1"`
	End1        int     `json:"end1"`
	Strand1     string  `json:"strand1"`
	Score1      float64 `json:"score1"`
	Start2      int     `json:"start2"`
	End2        int     `json:"end2"`
	Strand2     string  `json:"strand2"`
	Score2      float64 `json:"score2"`
	Distance    int     `json:"distance"`
	Orientation string  `json:"orientation"`
	ScoreMin    float64 `json:"score_min"`
	Cor         float64 `json:"cor"`
	CorDefined  bool    `json:"cor_defined"`
	Label       string  `json:"label,omitempty"`
	Probability float64 `json:"probability"`
	Scored      bool    `json:"scored,omitempty"`
}
