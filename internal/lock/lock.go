// Package lock serialises mutating runs against one project directory.
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// FileName is the lock file kept inside the agent directory.
const FileName = ".architect.lock"

// Path returns the lock file for a project.
func Path(projectDir, agentDir string) string {
	return filepath.Join(projectDir, agentDir, FileName)
}

// Acquire takes the advisory lock at path, retrying until timeout elapses.
// The returned func releases it and is safe to call on error.
func Acquire(path string, timeout time.Duration) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return func() {}, fmt.Errorf("cannot create lock directory: %w", err)
	}
	l := flock.New(path)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot acquire project lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("another architect run holds the project (lock: %s)", path)
		}
		time.Sleep(200 * time.Millisecond)
	}
}
