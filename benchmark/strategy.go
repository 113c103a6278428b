package benchmark

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"s3transferbench/corpus"
	"s3transferbench/progress"
)

// Strategy is the closed set of transfer configurations the harness
// benchmarks against each other.
type Strategy int

const (
	// StrategyDefault uses the transfer manager's stock configuration.
	StrategyDefault Strategy = iota
	// StrategyHighThreshold raises the split threshold above the file
	// size, forcing a single-part transfer.
	StrategyHighThreshold
	// StrategyChunkSize pins a small part size and 12 part workers.
	StrategyChunkSize
	// StrategyAccelerate routes through the S3 accelerated endpoint.
	StrategyAccelerate
	// StrategySingleThread downloads on a single part worker.
	StrategySingleThread
	// StrategyMultiThread downloads with a configurable worker count.
	StrategyMultiThread
)

// UploadStrategies lists the strategies applicable to uploads, in the
// order the harness runs them.
func UploadStrategies() []Strategy {
	return []Strategy{StrategyDefault, StrategyAccelerate, StrategyHighThreshold, StrategyChunkSize}
}

// DownloadStrategies lists the strategies applicable to downloads.
func DownloadStrategies() []Strategy {
	return []Strategy{
		StrategyDefault, StrategyHighThreshold, StrategySingleThread,
		StrategyMultiThread, StrategyChunkSize, StrategyAccelerate,
	}
}

// ParseStrategy maps a CLI strategy name to its Strategy value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "default":
		return StrategyDefault, nil
	case "high-threshold":
		return StrategyHighThreshold, nil
	case "chunksize":
		return StrategyChunkSize, nil
	case "accelerate":
		return StrategyAccelerate, nil
	case "single-thread":
		return StrategySingleThread, nil
	case "multi-thread":
		return StrategyMultiThread, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

func (s Strategy) String() string {
	switch s {
	case StrategyDefault:
		return "default"
	case StrategyHighThreshold:
		return "high-threshold"
	case StrategyChunkSize:
		return "chunksize"
	case StrategyAccelerate:
		return "accelerate"
	case StrategySingleThread:
		return "single-thread"
	case StrategyMultiThread:
		return "multi-thread"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// DownloadOnly reports whether the strategy only makes sense for
// downloads.
func (s Strategy) DownloadOnly() bool {
	return s == StrategySingleThread || s == StrategyMultiThread
}

// StorageClient is the slice of the S3 API the harness depends on: the
// transfer manager's upload and download contracts. *s3.Client
// satisfies it; tests substitute fakes.
type StorageClient interface {
	manager.UploadAPIClient
	manager.DownloadAPIClient
}

// API dispatches transfer strategies over a standard and an
// accelerated-endpoint S3 client.
type API struct {
	standard     StorageClient
	accelerated  StorageClient
	threads      int
	showProgress bool
}

// APIOption configures an API at construction time.
type APIOption func(*API)

// WithThreads sets the worker count for the multi-thread strategy.
func WithThreads(threads int) APIOption {
	return func(a *API) {
		a.threads = threads
	}
}

// WithProgressBars enables per-transfer console progress bars.
func WithProgressBars(show bool) APIOption {
	return func(a *API) {
		a.showProgress = show
	}
}

// NewAPI builds the strategy dispatcher. accelerated may equal standard
// when no accelerated endpoint is configured.
func NewAPI(standard, accelerated StorageClient, opts ...APIOption) *API {
	a := &API{
		standard:    standard,
		accelerated: accelerated,
		threads:     DefaultThreads,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) clientFor(cfg TransferConfig) StorageClient {
	if cfg.Accelerate {
		return a.accelerated
	}
	return a.standard
}

func (a *API) newTracker(caption string, targetBytes int64) *progress.Tracker {
	if !a.showProgress {
		return progress.NewTracker(targetBytes)
	}
	bar := progress.NewTransferBar(targetBytes)
	bar.SetCaption(caption)
	return progress.NewTracker(targetBytes, progress.WithBar(bar))
}

// Upload transfers one corpus file to bucket/key under the given
// strategy and returns the tracker's per-worker byte counts. Client
// errors propagate unmodified; nothing is retried beyond what the SDK
// does on its own.
//
// Upload progress is observed at the request body reader, so the
// worker breakdown reflects however many goroutines the manager uses
// to drain it. Report granularity is strategy-dependent.
func (a *API) Upload(ctx context.Context, s Strategy, file corpus.FileDescriptor, bucket, key string) (map[string]int64, error) {
	cfg, err := UploadConfig(s, file.SizeBytes)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file.Path, err)
	}
	defer f.Close()

	tracker := a.newTracker(fmt.Sprintf("Upload %s [%s]", key, s), file.SizeBytes)
	defer tracker.Finish()

	uploader := manager.NewUploader(a.clientFor(cfg), func(u *manager.Uploader) {
		if cfg.PartSize > 0 {
			u.PartSize = cfg.PartSize
		}
		if cfg.Concurrency > 0 {
			u.Concurrency = cfg.Concurrency
		}
	})

	_, err = uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   &progressReader{r: f, tracker: tracker},
	})
	if err != nil {
		return nil, err
	}
	return tracker.PerWorker(), nil
}

// Download retrieves bucket/key into destPath under the given strategy
// and returns the tracker's per-worker byte counts. sizeBytes is the
// expected object size; it only scales the progress display.
//
// Download progress is observed at the part writers, so each of the
// manager's part goroutines shows up as its own worker.
func (a *API) Download(ctx context.Context, s Strategy, bucket, key, destPath string, sizeBytes int64) (map[string]int64, error) {
	cfg, err := DownloadConfig(s, sizeBytes, a.threads)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", destPath, err)
	}
	defer f.Close()

	tracker := a.newTracker(fmt.Sprintf("Download %s [%s]", key, s), sizeBytes)
	defer tracker.Finish()

	downloader := manager.NewDownloader(a.clientFor(cfg), func(d *manager.Downloader) {
		if cfg.PartSize > 0 {
			d.PartSize = cfg.PartSize
		}
		if cfg.Concurrency > 0 {
			d.Concurrency = cfg.Concurrency
		}
	})

	_, err = downloader.Download(ctx, &progressWriterAt{w: f, tracker: tracker}, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return tracker.PerWorker(), nil
}
