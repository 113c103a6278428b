package corpus

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const MB = 1 << 20

// chunkSize is the unit in which random file content is written.
const chunkSize = 1 * MB

// FileDescriptor describes one file in the benchmark working set.
// Descriptors are immutable once created.
type FileDescriptor struct {
	Path      string
	SizeBytes int64
}

// DefaultSizes returns the geometric size progression used for a fresh
// corpus: 1, 2, 4, ... 128 MB.
func DefaultSizes() []int {
	sizes := make([]int, 0, 8)
	for mb := 1; mb <= 128; mb *= 2 {
		sizes = append(sizes, mb)
	}
	return sizes
}

// Generate writes exactly sizeMB megabytes of random binary content to a
// deterministic path under dir, overwriting any existing file, and
// returns its descriptor. I/O errors propagate and are not retried.
func Generate(dir string, sizeMB int) (FileDescriptor, error) {
	if sizeMB <= 0 {
		return FileDescriptor{}, fmt.Errorf("corpus: file size must be positive, got %dMB", sizeMB)
	}
	path := filepath.Join(dir, fmt.Sprintf("file_%dMB.bin", sizeMB))

	f, err := os.Create(path)
	if err != nil {
		return FileDescriptor{}, fmt.Errorf("corpus: create %s: %w", path, err)
	}

	buf := getBuffer(chunkSize)
	defer putBuffer(buf)

	remaining := int64(sizeMB) * MB
	for remaining > 0 {
		n := int64(len(buf))
		if remaining < n {
			n = remaining
		}
		if _, err := rand.Read(buf[:n]); err != nil {
			f.Close()
			return FileDescriptor{}, fmt.Errorf("corpus: random content: %w", err)
		}
		if _, err := f.Write(buf[:n]); err != nil {
			f.Close()
			return FileDescriptor{}, fmt.Errorf("corpus: write %s: %w", path, err)
		}
		remaining -= n
	}
	if err := f.Close(); err != nil {
		return FileDescriptor{}, fmt.Errorf("corpus: close %s: %w", path, err)
	}

	return FileDescriptor{Path: path, SizeBytes: int64(sizeMB) * MB}, nil
}

// GenerateSet generates one file per entry of sizes (in MB), in order,
// creating dir if needed. The first failing file aborts the set.
func GenerateSet(dir string, sizes []int) ([]FileDescriptor, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("corpus: create directory %s: %w", dir, err)
	}
	files := make([]FileDescriptor, 0, len(sizes))
	for _, mb := range sizes {
		fd, err := Generate(dir, mb)
		if err != nil {
			return nil, err
		}
		files = append(files, fd)
	}
	return files, nil
}

// Scan lists the regular files directly under dir with their existing
// sizes, sorted by path for a stable iteration order. It is the
// alternative to GenerateSet when reusing a corpus across runs.
func Scan(dir string) ([]FileDescriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("corpus: scan %s: %w", dir, err)
	}
	var files []FileDescriptor
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("corpus: stat %s: %w", e.Name(), err)
		}
		files = append(files, FileDescriptor{
			Path:      filepath.Join(dir, e.Name()),
			SizeBytes: info.Size(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// EnsureDownloadDir creates (if needed) and returns the downloads
// subdirectory used as the destination for retrieved objects.
func EnsureDownloadDir(dir string) (string, error) {
	downloads := filepath.Join(dir, "downloads")
	if err := os.MkdirAll(downloads, 0o755); err != nil {
		return "", fmt.Errorf("corpus: create downloads directory: %w", err)
	}
	return downloads, nil
}
