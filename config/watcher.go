package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/lixenwraith/showcase/core"
)

// Watcher reports changes to a single file
// The parent directory is watched so editors that replace the file by rename are seen
type Watcher struct {
	fs     *fsnotify.Watcher
	path   string
	log    *zap.Logger
	notify func(path string)

	closeOnce sync.Once
	done      chan struct{}
}

// NewWatcher starts watching path, notify runs on the watcher goroutine
// Callers hand the notification to their own loop
func NewWatcher(path string, log *zap.Logger, notify func(path string)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fs:     fw,
		path:   abs,
		log:    log,
		notify: notify,
		done:   make(chan struct{}),
	}
	core.Go(w.run)
	return w, nil
}

// Path returns the watched file
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("page file changed", zap.String("path", ev.Name), zap.Stringer("op", ev.Op))
			w.notify(w.path)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// Close stops the watcher and waits for its goroutine
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fs.Close()
		<-w.done
	})
	return err
}
