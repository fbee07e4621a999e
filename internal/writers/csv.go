package writers

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"loopcall/internal/output"

	"loopcall-core/pairs"
)

func init() {
	Register("csv", WriteCSV)
}

// WriteCSV renders the pair table through a gota dataframe, keeping the
// same columns and values as the tsv output.
func WriteCSV(w io.Writer, ps []pairs.Pair, header bool) error {
	if len(ps) == 0 {
		// gota cannot build a frame from an empty slice
		if header {
			_, err := fmt.Fprintln(w, strings.ReplaceAll(output.TSVHeader, "\t", ","))
			return err
		}
		return nil
	}
	rows := make([]output.Row, len(ps))
	for i, p := range ps {
		rows[i] = output.FromPair(p)
	}
	df := dataframe.LoadStructs(rows)
	if df.Err != nil {
		return df.Err
	}
	return df.WriteCSV(w, dataframe.WriteHeader(header))
}
