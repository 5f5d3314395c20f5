// Package spool watches a directory for scan files dropped by barcode
// scanner hardware. Each file is a plain-text list of scanned codes, one per
// line; appended lines are captured into the queue as they arrive and a sync
// pass runs after every batch.
package spool

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/packlane-labs/packtrak-cli/internal/core/domain"
	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driving"
	"github.com/packlane-labs/packtrak-cli/internal/logger"
)

// Watcher tails scan files in a spool directory.
type Watcher struct {
	dir     string
	scanner driving.Scanner
	syncer  driving.Syncer

	mu      sync.Mutex
	offsets map[string]int64
}

// NewWatcher creates a watcher over the given spool directory.
func NewWatcher(dir string, scanner driving.Scanner, syncer driving.Syncer) *Watcher {
	return &Watcher{
		dir:     dir,
		scanner: scanner,
		syncer:  syncer,
		offsets: make(map[string]int64),
	}
}

// Run watches the spool directory until ctx is cancelled. Files already
// present when Run starts are drained first, so scans captured while the
// watcher was down are not lost.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	w.drainExisting(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("spool: watch error: %v", err)
		}
	}
}

// drainExisting processes files that were in the spool before Run started.
func (w *Watcher) drainExisting(ctx context.Context) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		logger.Warn("spool: reading directory: %v", err)
		return
	}

	captured := 0
	for _, entry := range entries {
		if entry.IsDir() || isHidden(entry.Name()) {
			continue
		}
		captured += w.captureNewLines(ctx, filepath.Join(w.dir, entry.Name()))
	}

	if captured > 0 {
		w.syncer.SyncPending(ctx)
	}
}

// handleEvent processes one filesystem event.
func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
			w.mu.Lock()
			delete(w.offsets, event.Name)
			w.mu.Unlock()
		}
		return
	}

	if isHidden(filepath.Base(event.Name)) {
		return
	}
	if info, err := os.Stat(event.Name); err != nil || info.IsDir() {
		return
	}

	if w.captureNewLines(ctx, event.Name) > 0 {
		w.syncer.SyncPending(ctx)
	}
}

// captureNewLines reads lines appended since the last visit and captures
// each one. It returns the number of lines captured.
func (w *Watcher) captureNewLines(ctx context.Context, path string) int {
	w.mu.Lock()
	offset := w.offsets[path]
	w.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		logger.Warn("spool: opening %s: %v", path, err)
		return 0
	}
	defer f.Close()

	if offset > 0 {
		if _, err := f.Seek(offset, io.SeekStart); err != nil {
			logger.Warn("spool: seeking %s: %v", path, err)
			return 0
		}
	}

	captured := 0
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			// A trailing line without a newline may still be mid-write, so
			// leave it for the next event.
			break
		}
		offset += int64(len(line))

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if _, err := w.scanner.Capture(ctx, line); err != nil {
			if !errors.Is(err, domain.ErrInvalidInput) {
				logger.Warn("spool: capturing %q: %v", line, err)
			}
			continue
		}
		captured++
	}

	w.mu.Lock()
	w.offsets[path] = offset
	w.mu.Unlock()

	if captured > 0 {
		logger.Debug("spool: captured %d scan(s) from %s", captured, filepath.Base(path))
	}
	return captured
}

// isHidden reports whether a file name is dot-prefixed. Editors and scanner
// firmware drop temp files like .swp and .tmp in the spool.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
