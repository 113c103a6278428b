package benchmark

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"s3transferbench/corpus"
	"s3transferbench/report"
)

// TransferFunc runs one file's transfer and returns its per-worker
// byte counts. The driver is agnostic to direction and strategy; the
// caller closes over both.
type TransferFunc func(ctx context.Context, file corpus.FileDescriptor) (map[string]int64, error)

// Driver fans a corpus out over a TransferFunc in one of three
// execution modes. Once dispatched, a transfer is never interrupted:
// there is no cancellation or timeout below the driver.
type Driver struct {
	limiter *rate.Limiter
}

// NewDriver builds a driver. rateLimit caps dispatches per second
// across all modes; 0 disables limiting.
func NewDriver(rateLimit int) *Driver {
	d := &Driver{}
	if rateLimit > 0 {
		d.limiter = rate.NewLimiter(rate.Limit(rateLimit), 1)
	}
	return d
}

// Run executes fn over files in the given mode and returns the
// aggregate elapsed time. poolSize only applies to ModePool.
func (d *Driver) Run(ctx context.Context, mode Mode, files []corpus.FileDescriptor, fn TransferFunc, poolSize int) (time.Duration, error) {
	switch mode {
	case ModeSerial:
		return d.RunSerial(ctx, files, fn)
	case ModePerFile:
		return d.RunPerFile(ctx, files, fn)
	case ModePool:
		return d.RunPool(ctx, files, fn, poolSize)
	default:
		return 0, fmt.Errorf("unknown execution mode %s", mode)
	}
}

// RunSerial transfers the files one at a time in corpus order, timing
// each transfer individually and the loop in aggregate. Per-file
// results print inline. The first error aborts the remaining files.
func (d *Driver) RunSerial(ctx context.Context, files []corpus.FileDescriptor, fn TransferFunc) (time.Duration, error) {
	start := time.Now()
	for _, file := range files {
		if err := d.wait(ctx); err != nil {
			return time.Since(start), err
		}
		fileStart := time.Now()
		workers, err := fn(ctx, file)
		elapsed := time.Since(fileStart)
		if err != nil {
			return time.Since(start), fmt.Errorf("transfer %s: %w", file.Path, err)
		}
		report.PrintTransferResult(file.Path, workers, elapsed)
	}
	return time.Since(start), nil
}

// RunPerFile launches one goroutine per file, all before any join, and
// times the launch-to-all-joined span. A failure in one file does not
// cancel the others; all failures surface joined after the wait.
func (d *Driver) RunPerFile(ctx context.Context, files []corpus.FileDescriptor, fn TransferFunc) (time.Duration, error) {
	var wg sync.WaitGroup
	errs := make([]error, len(files))

	start := time.Now()
	for i, file := range files {
		wg.Add(1)
		go func(i int, file corpus.FileDescriptor) {
			defer wg.Done()
			if err := d.wait(ctx); err != nil {
				errs[i] = err
				return
			}
			if _, err := fn(ctx, file); err != nil {
				errs[i] = fmt.Errorf("transfer %s: %w", file.Path, err)
			}
		}(i, file)
	}
	wg.Wait()
	return time.Since(start), errors.Join(errs...)
}

// RunPool fans the files out across a fixed-size worker pool and
// blocks until every submitted file has finished. Worker failures do
// not drain the queue early; they surface joined after the wait.
func (d *Driver) RunPool(ctx context.Context, files []corpus.FileDescriptor, fn TransferFunc, poolSize int) (time.Duration, error) {
	if poolSize <= 0 {
		poolSize = DefaultThreads
	}

	work := make(chan int)
	errs := make([]error, len(files))
	var wg sync.WaitGroup

	start := time.Now()
	for w := 0; w < poolSize; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				if err := d.wait(ctx); err != nil {
					errs[i] = err
					continue
				}
				if _, err := fn(ctx, files[i]); err != nil {
					errs[i] = fmt.Errorf("transfer %s: %w", files[i].Path, err)
				}
			}
		}()
	}
	for i := range files {
		work <- i
	}
	close(work)
	wg.Wait()
	return time.Since(start), errors.Join(errs...)
}

func (d *Driver) wait(ctx context.Context) error {
	if d.limiter == nil {
		return nil
	}
	return d.limiter.Wait(ctx)
}
