package benchmark

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"
)

// GenerateRandomName creates a random hex string for object names
func GenerateRandomName(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// RunPrefix builds a per-run key prefix so repeated runs against the
// same bucket never collide.
func RunPrefix() string {
	name, err := GenerateRandomName(4)
	if err != nil {
		// crypto/rand failing is not worth aborting a benchmark run over
		name = "run"
	}
	return fmt.Sprintf("bench-%d-%s/", time.Now().Unix(), name)
}

// ObjectKey derives the object key for a corpus file under a run
// prefix.
func ObjectKey(prefix, path string) string {
	return prefix + filepath.Base(path)
}
