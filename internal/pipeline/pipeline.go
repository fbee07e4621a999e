package pipeline

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"loopcall-core/motif"
	"loopcall-core/pairs"
	"loopcall-core/signal"
)

// Config controls the annotation pipeline.
type Config struct {
	Threads  int // worker goroutines (0 = all CPUs)
	Window   int // signal vector length in bins
	ZeroFill bool
}

// Stats summarizes one pipeline run.
type Stats struct {
	Generated     int // candidate pairs emitted by the generator
	MissingSignal int // pairs dropped because the track had no coverage
}

type result struct {
	pair pairs.Pair
	drop bool
	err  error
}

// Run generates candidate pairs within maxDist and enriches each with
// distance/orientation/score features, aligned signal vectors, and their
// correlation. Pairs whose signal is unavailable are dropped and counted;
// any other failure aborts the run. Output keeps the canonical generation
// order regardless of worker count.
func Run(ctx context.Context, cfg Config, idx *motif.Index, maxDist int, tr signal.TrackReader) ([]pairs.Pair, Stats, error) {
	ps, err := pairs.Generate(idx, maxDist)
	if err != nil {
		return nil, Stats{}, err
	}
	stats := Stats{Generated: len(ps)}
	if len(ps) == 0 {
		return nil, stats, nil
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	aligner := signal.Aligner{Track: tr, Width: cfg.Window, ZeroFill: cfg.ZeroFill}
	results := make([]result, len(ps))
	jobs := make(chan int, threads*2)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = process(aligner, ps[i])
			}
		}()
	}

feed:
	for i := range ps {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if ctx.Err() != nil {
		return nil, stats, ctx.Err()
	}

	out := make([]pairs.Pair, 0, len(ps))
	for _, r := range results {
		if r.err != nil {
			return nil, stats, r.err
		}
		if r.drop {
			stats.MissingSignal++
			continue
		}
		out = append(out, r.pair)
	}
	return out, stats, nil
}

// process runs the pure per-pair stages: annotate, align both anchors,
// correlate.
func process(aligner signal.Aligner, p pairs.Pair) result {
	p = pairs.Annotate(p)

	var unavailable *signal.SignalUnavailableError

	v1, err := aligner.Align(p.Anchor1)
	if errors.As(err, &unavailable) {
		return result{drop: true}
	}
	if err != nil {
		return result{err: err}
	}
	v2, err := aligner.Align(p.Anchor2)
	if errors.As(err, &unavailable) {
		return result{drop: true}
	}
	if err != nil {
		return result{err: err}
	}
	p.Signal1, p.Signal2 = v1, v2

	r, ok, err := signal.Pearson(v1, v2)
	if err != nil {
		return result{err: err}
	}
	p.Correlation, p.CorrOK = r, ok
	return result{pair: p}
}
