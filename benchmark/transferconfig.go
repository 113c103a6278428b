package benchmark

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
)

const mb = 1 << 20

// DefaultThreads is the worker count used by the multi-thread download
// strategy when none is configured.
const DefaultThreads = 8

// TransferConfig is the per-strategy tuning handed to the transfer
// manager. Zero values keep the manager's own defaults. The manager
// splits a transfer whenever the object exceeds PartSize, so a part
// size above the file size is the single-part ("high threshold") path.
type TransferConfig struct {
	PartSize    int64 // multipart chunk size in bytes
	Concurrency int   // parallel part workers per transfer
	Accelerate  bool  // route through the accelerated endpoint
}

// Validate surfaces configuration errors before any transfer starts.
// forUpload additionally enforces the S3 minimum upload part size.
func (c TransferConfig) Validate(forUpload bool) error {
	if c.PartSize < 0 {
		return fmt.Errorf("transfer config: part size must not be negative, got %d", c.PartSize)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("transfer config: concurrency must not be negative, got %d", c.Concurrency)
	}
	if forUpload && c.PartSize > 0 && c.PartSize < manager.MinUploadPartSize {
		return fmt.Errorf("transfer config: upload part size %d below S3 minimum %d",
			c.PartSize, manager.MinUploadPartSize)
	}
	return nil
}

// UploadConfig builds the TransferConfig for an upload strategy
// applied to a file of sizeBytes.
func UploadConfig(s Strategy, sizeBytes int64) (TransferConfig, error) {
	var cfg TransferConfig
	switch s {
	case StrategyDefault:
		// manager defaults
	case StrategyHighThreshold:
		cfg.PartSize = singlePartSize(sizeBytes)
	case StrategyChunkSize:
		// S3 rejects upload parts below 5MiB, so the smallest legal
		// chunk stands in for the 1MiB unit block used on downloads.
		cfg.PartSize = manager.MinUploadPartSize
		cfg.Concurrency = 12
	case StrategyAccelerate:
		cfg.Accelerate = true
	default:
		return TransferConfig{}, fmt.Errorf("strategy %s does not apply to uploads", s)
	}
	if err := cfg.Validate(true); err != nil {
		return TransferConfig{}, err
	}
	return cfg, nil
}

// DownloadConfig builds the TransferConfig for a download strategy
// applied to an object of sizeBytes. threads sets the worker count for
// StrategyMultiThread; zero falls back to DefaultThreads.
func DownloadConfig(s Strategy, sizeBytes int64, threads int) (TransferConfig, error) {
	var cfg TransferConfig
	switch s {
	case StrategyDefault:
		// manager defaults
	case StrategyHighThreshold:
		cfg.PartSize = singlePartSize(sizeBytes)
	case StrategyChunkSize:
		cfg.PartSize = 1 * mb
		cfg.Concurrency = 12
	case StrategyAccelerate:
		cfg.Accelerate = true
	case StrategySingleThread:
		cfg.Concurrency = 1
	case StrategyMultiThread:
		if threads <= 0 {
			threads = DefaultThreads
		}
		cfg.Concurrency = threads
	default:
		return TransferConfig{}, fmt.Errorf("unknown download strategy %s", s)
	}
	if err := cfg.Validate(false); err != nil {
		return TransferConfig{}, err
	}
	return cfg, nil
}

// singlePartSize returns a part size safely above the object size, so
// the manager never splits the transfer. Doubling mirrors setting a
// multipart threshold at twice the file size.
func singlePartSize(sizeBytes int64) int64 {
	partSize := 2 * sizeBytes
	if partSize < manager.MinUploadPartSize {
		partSize = manager.MinUploadPartSize
	}
	return partSize
}
