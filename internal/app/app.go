// Package app wires the loaders, pipeline, labeler, predictor, and writers
// into the loopcall command.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"loopcall/internal/cli"
	"loopcall/internal/loaders"
	"loopcall/internal/pipeline"
	"loopcall/internal/tracks"
	"loopcall/internal/version"
	"loopcall/internal/writers"

	"loopcall-core/loops"
	"loopcall-core/model"
	"loopcall-core/pairs"
	"loopcall-core/signal"
)

// Exit codes: 0 ok, 1 empty result under --strict-no-match, 2 usage or
// malformed input, 3 output failure.
const (
	exitOK      = 0
	exitNoMatch = 1
	exitUsage   = 2
	exitIO      = 3
)

// RunContext parses argv and runs the full prediction pass.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)

	opts, err := cli.ParseArgs(argv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if opts.Version {
		fmt.Fprintf(stdout, "loopcall version %s\n", version.Version)
		return exitOK
	}
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	code, err := run(ctx, opts, outw, log)
	if err != nil {
		if writers.IsBrokenPipe(err) {
			return exitOK
		}
		log.Error(err)
		return code
	}
	if err := outw.Flush(); err != nil {
		if writers.IsBrokenPipe(err) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitIO
	}
	return code
}

func run(ctx context.Context, opts cli.Options, out io.Writer, log *logrus.Logger) (int, error) {
	idx, err := loaders.Motifs(opts.MotifFile)
	if err != nil {
		return exitUsage, err
	}
	log.Debugf("loaded %d motifs on %d chromosomes", idx.Len(), len(idx.Chroms()))

	track, err := openTrack(opts)
	if err != nil {
		return exitUsage, err
	}

	enriched, stats, err := pipeline.Run(ctx, pipeline.Config{
		Threads:  opts.Threads,
		Window:   opts.Window,
		ZeroFill: opts.ZeroFill,
	}, idx, opts.MaxDist, track)
	if err != nil {
		return exitUsage, err
	}
	if stats.MissingSignal > 0 {
		log.Warnf("dropped %d/%d pairs without track coverage", stats.MissingSignal, stats.Generated)
	}

	if opts.KnownLoops != "" {
		known, err := loaders.KnownLoops(opts.KnownLoops)
		if err != nil {
			return exitUsage, err
		}
		labeler, err := loops.NewLabeler(known, opts.Tolerance)
		if err != nil {
			return exitUsage, err
		}
		nLoop := 0
		for i := range enriched {
			enriched[i] = labeler.Label(enriched[i])
			if enriched[i].Label == pairs.LabelLoop {
				nLoop++
			}
		}
		log.Debugf("labeled %d/%d pairs as loops against %d known loops", nLoop, len(enriched), len(known))
	}

	m := model.Default()
	if opts.ModelFile != "" {
		if m, err = loaders.ScoringModel(opts.ModelFile); err != nil {
			return exitUsage, err
		}
	}
	scorer, err := model.New(m)
	if err != nil {
		return exitUsage, err
	}

	kept, undefined, err := scorer.Predict(enriched, opts.CutoffPtr())
	if err != nil {
		return exitUsage, err
	}
	if undefined > 0 {
		log.Warnf("dropped %d pairs with undefined signal correlation", undefined)
	}

	if err := writers.Write(opts.Output, out, kept, opts.Header); err != nil {
		return exitIO, err
	}

	log.WithFields(logrus.Fields{
		"generated":      stats.Generated,
		"missing_signal": stats.MissingSignal,
		"undefined_cor":  undefined,
		"reported":       len(kept),
	}).Info("loopcall finished")

	if opts.StrictNoMatch && len(kept) == 0 {
		return exitNoMatch, nil
	}
	return exitOK, nil
}

func openTrack(opts cli.Options) (signal.TrackReader, error) {
	if opts.BamFile != "" {
		return tracks.FromBam(opts.BamFile, opts.ChromSizes, opts.Binsize, opts.ExtSize)
	}
	return tracks.FromTSV(opts.TrackFile, opts.Binsize)
}

// Run is RunContext without external cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
