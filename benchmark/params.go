package benchmark

import "fmt"

// Mode selects how the driver fans the corpus out over a strategy.
type Mode int

const (
	// ModeSerial transfers files one at a time, in corpus order.
	ModeSerial Mode = iota
	// ModePerFile launches one goroutine per file and joins them all.
	ModePerFile
	// ModePool fans out across a fixed-size worker pool.
	ModePool
)

// ParseMode maps a CLI mode name to its Mode value.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "serial":
		return ModeSerial, nil
	case "threads":
		return ModePerFile, nil
	case "pool":
		return ModePool, nil
	default:
		return 0, fmt.Errorf("unknown execution mode %q (want serial, threads or pool)", name)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeSerial:
		return "serial"
	case ModePerFile:
		return "threads"
	case ModePool:
		return "pool"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// BenchmarkParams holds the parameters for a benchmark run
type BenchmarkParams struct {
	BucketName   string // Target S3 bucket
	Mode         Mode   // Execution mode for the corpus
	PoolSize     int    // Worker count for ModePool
	Threads      int    // Worker count for the multi-thread download strategy
	RateLimit    int    // Max dispatches per second (0 means no limit)
	ShowProgress bool   // Render per-transfer progress bars
}
