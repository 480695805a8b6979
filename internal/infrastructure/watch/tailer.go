// Package watch follows the append-only outcome log and emits newly
// appended lines as they land.
package watch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// LogTailer watches an append-only JSONL file and calls onLine for every
// complete line appended after the tailer starts. Appends are whole lines
// written in one call, so a read never observes a partial record.
type LogTailer struct {
	watcher *fsnotify.Watcher
	path    string
	offset  int64
	onLine  func(string)
}

// NewLogTailer creates a tailer for path. The file does not need to exist
// yet; the containing directory does.
func NewLogTailer(path string, onLine func(string)) (*LogTailer, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	return &LogTailer{watcher: w, path: path, onLine: onLine}, nil
}

// Run blocks until the context is cancelled. Lines already in the file when
// Run starts are skipped.
func (t *LogTailer) Run(ctx context.Context) error {
	defer t.watcher.Close()

	// Watch the containing directory so creation of the file is seen too.
	dir := filepath.Dir(t.path)
	if err := t.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	if info, err := os.Stat(t.path); err == nil {
		t.offset = info.Size()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-t.watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != t.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := t.drain(); err != nil {
				return err
			}
		case err, ok := <-t.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

// drain reads from the last seen offset to the current end of file.
func (t *LogTailer) drain() error {
	f, err := os.Open(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open %s: %w", t.path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek %s: %w", t.path, err)
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		t.offset += int64(len(line)) + 1
		if line == "" {
			continue
		}
		t.onLine(line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", t.path, err)
	}
	return nil
}
