// Package cli parses and validates command-line options.
package cli

import (
	"errors"
	"fmt"

	"github.com/akamensky/argparse"
)

// CutoffDisabled is the --cutoff sentinel meaning "return all scored pairs".
const CutoffDisabled = -1

// Options holds all CLI flags after validation.
type Options struct {
	// Inputs
	MotifFile  string
	BamFile    string
	TrackFile  string
	ChromSizes string
	KnownLoops string
	ModelFile  string

	// Pair generation / features
	MaxDist   int
	Window    int
	Binsize   int
	ExtSize   int
	Tolerance int
	Cutoff    float64
	ZeroFill  bool

	// Performance
	Threads int

	// Output
	Output        string
	Header        bool
	StrictNoMatch bool
	Verbose       bool
	Version       bool
}

// CutoffPtr returns the predictor cutoff, nil when filtering is disabled.
func (o Options) CutoffPtr() *float64 {
	if o.Cutoff == CutoffDisabled {
		return nil
	}
	c := o.Cutoff
	return &c
}

// ParseArgs parses argv (without the program name) into Options.
// The returned error already carries the usage text.
func ParseArgs(argv []string) (Options, error) {
	parser := argparse.NewParser("loopcall",
		"loopcall predicts chromatin loops between oriented motif sites from a protein-binding signal track. "+
			"Candidate motif pairs within a distance bound are annotated with distance, strand orientation, "+
			"motif-score and signal-correlation features and scored with a logistic model.")

	motifs := parser.String("m", "motifs", &argparse.Options{Help: "Motif sites in BED6 (chrom start end name score strand)"})
	bam := parser.String("b", "bam", &argparse.Options{Help: "Signal reads (BAM, paired-end); coverage track is built at --binsize"})
	track := parser.String("t", "track", &argparse.Options{Help: "Precomputed per-bin signal track (bedGraph-style TSV)"})
	cs := parser.String("s", "chromsize", &argparse.Options{Help: "Chromosome sizes for the genome if not found in the bam header"})
	known := parser.String("k", "known-loops", &argparse.Options{Help: "Known loops in BEDPE; adds a training label column"})
	modelFile := parser.String("", "model", &argparse.Options{Help: "Custom scoring model JSON (intercept, features, coefficients); bundled model if omitted"})

	maxDist := parser.Int("d", "max-dist", &argparse.Options{Help: "Maximum anchor distance (bp) for candidate pairs", Default: 1000000})
	window := parser.Int("w", "window", &argparse.Options{Help: "Signal vector length in bins around each anchor", Default: 20})
	binsize := parser.Int("z", "binsize", &argparse.Options{Help: "Track bin size (bp)", Default: 50})
	extsize := parser.Int("e", "extsize", &argparse.Options{Help: "Extend reads to this fragment length when building coverage (0 = no extension)", Default: 0})
	tolerance := parser.Int("", "tolerance", &argparse.Options{Help: "Anchor-match tolerance (bp) for --known-loops labeling", Default: 1000})
	cutoff := parser.Float("c", "cutoff", &argparse.Options{Help: "Keep pairs with probability >= cutoff; -1 disables filtering", Default: float64(CutoffDisabled)})
	zeroFill := parser.Flag("", "zero-fill", &argparse.Options{Help: "Treat missing track coverage as zero signal instead of skipping the pair"})

	threads := parser.Int("p", "threads", &argparse.Options{Help: "Worker threads for signal extraction (0 = all CPUs)", Default: 0})

	output := parser.String("o", "output", &argparse.Options{Help: "Output format: tsv | bedpe | jsonl | csv", Default: "tsv"})
	noHeader := parser.Flag("", "no-header", &argparse.Options{Help: "Suppress header line in tsv output"})
	strictNoMatch := parser.Flag("", "strict-no-match", &argparse.Options{Help: "Exit with status 1 when no pairs survive scoring and filtering"})
	verbose := parser.Flag("", "verbose", &argparse.Options{Help: "Verbose progress logging"})
	// note: argparse's "Required" option clashes with --version; requirements checked below.
	version := parser.Flag("v", "version", &argparse.Options{Help: "Print the loopcall version"})

	if err := parser.Parse(append([]string{"loopcall"}, argv...)); err != nil {
		return Options{}, errors.New(parser.Usage(err))
	}

	opt := Options{
		MotifFile:     *motifs,
		BamFile:       *bam,
		TrackFile:     *track,
		ChromSizes:    *cs,
		KnownLoops:    *known,
		ModelFile:     *modelFile,
		MaxDist:       *maxDist,
		Window:        *window,
		Binsize:       *binsize,
		ExtSize:       *extsize,
		Tolerance:     *tolerance,
		Cutoff:        *cutoff,
		ZeroFill:      *zeroFill,
		Threads:       *threads,
		Output:        *output,
		Header:        !*noHeader,
		StrictNoMatch: *strictNoMatch,
		Verbose:       *verbose,
		Version:       *version,
	}
	if opt.Version {
		return opt, nil
	}

	switch {
	case opt.MotifFile == "":
		return opt, errors.New("--motifs is required")
	case opt.BamFile == "" && opt.TrackFile == "":
		return opt, errors.New("provide a signal source: --bam or --track")
	case opt.BamFile != "" && opt.TrackFile != "":
		return opt, errors.New("--bam conflicts with --track")
	case opt.MaxDist <= 0:
		return opt, errors.New("--max-dist must be > 0")
	case opt.Window <= 0:
		return opt, errors.New("--window must be > 0")
	case opt.Binsize <= 0:
		return opt, errors.New("--binsize must be > 0")
	case opt.ExtSize < 0:
		return opt, errors.New("--extsize must be >= 0")
	case opt.Tolerance < 0:
		return opt, errors.New("--tolerance must be >= 0")
	case opt.Threads < 0:
		return opt, errors.New("--threads must be >= 0")
	}
	if opt.Cutoff != CutoffDisabled && (opt.Cutoff < 0 || opt.Cutoff > 1) {
		return opt, errors.New("--cutoff must be in [0,1] or -1 to disable")
	}
	switch opt.Output {
	case "tsv", "bedpe", "jsonl", "csv":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
