// ABOUTME: Watch mode feeding newly created audio files into the live catalog
// ABOUTME: Events are settled and processed on the caller's goroutine, the catalog's only writer

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Files must be quiet this long before they are added, so copies can finish
const settleDelay = 500 * time.Millisecond

// watcher holds the pending files of a watch session
type watcher struct {
	dir     string
	isAudio func(name string) bool
	add     func(name string) error
	settle  time.Duration
	now     func() time.Time
	pending map[string]time.Time // name -> last event
}

// Watch adds audio files created in dir until ctx is cancelled.
// add is called on the calling goroutine only.
func Watch(ctx context.Context, dir string, isAudio func(string) bool, add func(string) error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if err := fw.Close(); err != nil {
			log.Printf("Warning: failed to close file watcher: %v", err)
		}
	}()

	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &watcher{
		dir:     dir,
		isAudio: isAudio,
		add:     add,
		settle:  settleDelay,
		now:     time.Now,
		pending: make(map[string]time.Time),
	}

	return w.loop(ctx, fw.Events, fw.Errors)
}

// loop collects events and flushes settled files until ctx ends or a file fails fatally
func (w *watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	ticker := time.NewTicker(w.settle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}

			w.record(event)

		case err, ok := <-errs:
			if !ok {
				return nil
			}

			log.Printf("Warning: file watcher error: %v", err)

		case <-ticker.C:
			if err := w.flush(false); err != nil {
				return err
			}
		}
	}
}

// record marks a created or written audio file as pending
func (w *watcher) record(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	name := filepath.Base(event.Name)
	if !w.isAudio(name) {
		return
	}

	debugf("[WATCH] %s %s", event.Op, name)
	w.pending[name] = w.now()
}

// flush adds pending files quiet for the settle delay, or all of them with force
func (w *watcher) flush(force bool) error {
	var ready []string

	for name, last := range w.pending {
		if force || w.now().Sub(last) >= w.settle {
			ready = append(ready, name)
		}
	}

	sort.Strings(ready)

	for _, name := range ready {
		delete(w.pending, name)

		// Our own renames leave events behind for names that are gone again
		if _, err := os.Stat(filepath.Join(w.dir, name)); err != nil {
			debugf("[WATCH] %s vanished before it could be added", name)
			continue
		}

		if err := w.add(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Printf("Warning: %s disappeared while being added: %v", name, err)
				continue
			}

			return fmt.Errorf("failed to add %q: %w", name, err)
		}
	}

	return nil
}
