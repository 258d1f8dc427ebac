package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes on disk and hands the
// new config to a callback. Editors save in bursts, so events are
// debounced before reloading.
type Watcher struct {
	path     string
	onChange func(*Config)

	fw   *fsnotify.Watcher
	done chan struct{}
	once sync.Once
}

const debounceWindow = 200 * time.Millisecond

// Watch starts watching path. onChange runs on the watcher goroutine with
// each successfully loaded config; load failures are logged and skipped so
// a half-saved file cannot take the session down.
func Watch(path string, onChange func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors often replace the file, which drops a
	// watch held on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		onChange: onChange,
		fw:       fw,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			cfg, err := Load(w.path)
			if err != nil {
				log.Printf("[config] reload failed: %v", err)
				continue
			}
			log.Printf("[config] reloaded %s", w.path)
			w.onChange(cfg)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Printf("[config] watch error: %v", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.once.Do(func() { close(w.done) })
	return w.fw.Close()
}
