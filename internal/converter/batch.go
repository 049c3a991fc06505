// =============================================================================
// JSON to CSV Converter - Batch Runner
// =============================================================================
//
// This module runs the Converter over every discovered file.
//
// CONCURRENCY:
//   max_concurrency = 1 : files are converted one after the other
//   max_concurrency > 1 : up to that many files are converted at once
//
// Results are returned in input order. OnResult sees them in completion
// order.
//
// =============================================================================

package converter

import (
	"context"

	"github.com/ginjaninja78/JSON-to-CSV-conversion/internal/types"
	"golang.org/x/sync/errgroup"
)

// Batch converts a list of files, sequentially or with a bounded number of
// goroutines. Files never affect each other: each one gets its own Result.
type Batch struct {
	conv        *Converter
	concurrency int

	// OnResult, when set, is called once per file as soon as it finishes.
	// Calls are made from a single goroutine.
	OnResult func(Result)
}

// NewBatch creates a Batch. A concurrency below 1 means sequential.
func NewBatch(conv *Converter, concurrency int) *Batch {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Batch{conv: conv, concurrency: concurrency}
}

// Run converts files and returns their results in the order of files.
//
// Once ctx is cancelled no new file is started; the files not yet started
// get a StageCancelled result.
func (b *Batch) Run(ctx context.Context, files []types.SourceFile) []Result {
	results := make([]Result, len(files))
	if len(files) == 0 {
		return results
	}

	type indexed struct {
		index  int
		result Result
	}

	// The channel is buffered so workers never block on the consumer.
	done := make(chan indexed, len(files))

	var g errgroup.Group
	g.SetLimit(b.concurrency)

	go func() {
		defer close(done)
		for i, file := range files {
			if err := ctx.Err(); err != nil {
				done <- indexed{index: i, result: cancelled(b.conv, file, err)}
				continue
			}
			// Go blocks while all workers are busy.
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					done <- indexed{index: i, result: cancelled(b.conv, file, err)}
					return nil
				}
				done <- indexed{index: i, result: b.conv.Run(file)}
				return nil
			})
		}
		_ = g.Wait()
	}()

	for r := range done {
		results[r.index] = r.result
		if b.OnResult != nil {
			b.OnResult(r.result)
		}
	}

	return results
}

func cancelled(conv *Converter, file types.SourceFile, err error) Result {
	return Result{
		File:       file,
		OutputFile: conv.files.OutputPath(file),
		Stage:      StageCancelled,
		Error:      err,
	}
}
