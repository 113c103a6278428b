package benchmark

import (
	"io"

	"s3transferbench/progress"
)

// progressReader forwards every successful Read to the tracker. It
// deliberately implements only io.Reader: without ReadSeeker the
// uploader drains the body into part buffers instead of slicing it,
// which keeps all observed reads flowing through here.
type progressReader struct {
	r       io.Reader
	tracker *progress.Tracker
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	if n > 0 {
		pr.tracker.Record(int64(n))
	}
	return n, err
}

// progressWriterAt forwards every part write to the tracker. The
// downloader calls WriteAt from its part goroutines, so byte counts
// land under each worker's own identity.
type progressWriterAt struct {
	w       io.WriterAt
	tracker *progress.Tracker
}

func (pw *progressWriterAt) WriteAt(p []byte, off int64) (int, error) {
	n, err := pw.w.WriteAt(p, off)
	if n > 0 {
		pw.tracker.Record(int64(n))
	}
	return n, err
}
