package main

import (
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// fileChangedMsg reports that the watched file was written or replaced.
type fileChangedMsg struct{ path string }

// watchErrMsg carries a watcher failure to the UI.
type watchErrMsg struct{ err error }

// fileWatcher watches the directory holding a file so that editors which
// save by rename are still noticed.
type fileWatcher struct {
	w    *fsnotify.Watcher
	path string
}

func newFileWatcher(path string) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolve path")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}
	return &fileWatcher{w: w, path: abs}, nil
}

// run forwards relevant events to send until the watcher is closed.
func (fw *fileWatcher) run(send func(tea.Msg)) {
	for {
		select {
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
			send(watchErrMsg{err: err})

		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != fw.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				log.Printf("watch: %s %s", ev.Op, ev.Name)
				send(fileChangedMsg{path: fw.path})
			}
		}
	}
}

func (fw *fileWatcher) Close() error {
	return fw.w.Close()
}
