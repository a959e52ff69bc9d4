package store

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/benkyoapp/benkyo-controls/internal/platform"
)

// Events arriving this soon after our own save are echoes, not external edits
const WatcherIgnoreWindow = 750 * time.Millisecond

// dirWatcher observes the data directory for day file changes made outside
// the app (editors, sync clients) and pushes reloads into the service
type dirWatcher struct {
	fsWatcher *fsnotify.Watcher
	done      chan struct{}
}

// StartWatching begins observing the data directory for external edits
func (s *Service) StartWatching() error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsWatcher.Add(s.dataDir); err != nil {
		fsWatcher.Close()
		return err
	}

	w := &dirWatcher{
		fsWatcher: fsWatcher,
		done:      make(chan struct{}),
	}
	s.watcher = w

	go s.watchLoop(w)

	if dates, err := platform.ListDayFiles(s.dataDir); err == nil {
		log.Printf("Watching data directory: %s (%d day files)", s.dataDir, len(dates))
	} else {
		log.Printf("Watching data directory: %s", s.dataDir)
	}
	return nil
}

// watchLoop consumes watcher events until the service closes
func (s *Service) watchLoop(w *dirWatcher) {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			s.handleFileEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// handleFileEvent reloads the current day or refreshes history for day file changes
func (s *Service) handleFileEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	date, err := platform.ParseDayFileName(filepath.Base(event.Name))
	if err != nil {
		return // temp files and unrelated content
	}

	s.mu.Lock()
	if time.Since(s.lastSave) < WatcherIgnoreWindow {
		s.mu.Unlock()
		return // our own save echoing back
	}

	isCurrent := date.Equal(s.day.Date)
	if isCurrent && s.dirty {
		// Unsaved local edits win over external changes to the same file
		log.Printf("Ignoring external change to %s: unsaved local edits", filepath.Base(event.Name))
		isCurrent = false
	}

	if isCurrent {
		s.loadDayLocked(date)
		snapshot := s.day.Clone()
		s.mu.Unlock()

		log.Printf("Reloaded %s after external change", platform.DayFileName(date))
		s.notifyUpdate(snapshot)
		s.notifyHistoryChange()
		return
	}
	s.mu.Unlock()

	s.notifyHistoryChange()
}

// stop terminates the watch loop and releases the fsnotify watcher
func (w *dirWatcher) stop() {
	close(w.done)
	w.fsWatcher.Close()
}
