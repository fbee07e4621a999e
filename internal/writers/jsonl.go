package writers

import (
	"encoding/json"
	"io"

	"loopcall/internal/output"

	"loopcall-core/pairs"
)

func init() {
	Register("jsonl", WriteJSONL)
}

// WriteJSONL streams each pair as one JSON line in the stable v1 schema.
func WriteJSONL(w io.Writer, ps []pairs.Pair, _ bool) error {
	enc := json.NewEncoder(w)
	for _, p := range ps {
		if err := enc.Encode(output.ToAPIPair(p)); err != nil {
			return err
		}
	}
	return nil
}
