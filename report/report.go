package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
)

// PrintTransferResult shows one transfer's per-worker breakdown: how
// many workers moved data and how many bytes each copied.
func PrintTransferResult(label string, workers map[string]int64, elapsed time.Duration) {
	fmt.Printf("%s: used %d workers\n", label, len(workers))

	ids := make([]string, 0, len(workers))
	for id := range workers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Printf("    %s copied %d bytes\n", id, workers[id])
	}
	fmt.Printf("    transfer took %.2f seconds\n", elapsed.Seconds())
}

// DisplayRunResults shows the summary of one benchmark batch
func DisplayRunResults(label string, fileCount int, duration time.Duration, totalData int64) {
	throughput := float64(totalData) / duration.Seconds() / (1024 * 1024) // MiB/s
	fileThroughput := float64(fileCount) / duration.Seconds()

	color.New(color.FgCyan, color.Bold).Printf("\n[%s] Results:\n", label)
	fmt.Printf("Duration: %s\n", duration)
	fmt.Printf("Files Transferred: %d\n", fileCount)
	fmt.Printf("Data Throughput: %.2f MiB/s\n", throughput)
	fmt.Printf("File Throughput: %.2f files/s\n", fileThroughput)
}
