// Package pipeline fans candidate pairs out over a bounded worker pool for
// feature annotation, signal alignment, and correlation, then reassembles
// the results in the canonical generation order.
//
// Workers own exclusive write access to the pairs they process; track reads
// are the only external call and may be slow, which is why the pool is
// bounded by Config.Threads.
package pipeline
