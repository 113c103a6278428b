//go:build windows
// +build windows

package benchmark

import (
	"runtime/debug"
)

// SetMaxResources adjusts runtime limits on Windows systems. There is
// no open-file rlimit equivalent, so only the thread ceiling is set.
func SetMaxResources() error {
	debug.SetMaxThreads(8000)
	return nil
}
