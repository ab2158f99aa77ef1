package slideview

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher watches a viewer config file and delivers the reparsed Config whenever the file changes.
// Configs that fail to load or validate are reported on Errors instead, and the previous config stays in effect.
type ConfigWatcher struct {
	Path    string
	Configs chan *Config
	Errors  chan error

	watcher  *fsnotify.Watcher
	debounce time.Duration
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// NewConfigWatcher starts watching the config file at the path given. The file's directory is watched rather than the file itself,
// so that editors which save by replacing the file are still picked up.
func NewConfigWatcher(path string) (*ConfigWatcher, error) {

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &ConfigWatcher{
		Path:     abs,
		Configs:  make(chan *Config, 4),
		Errors:   make(chan error, 4),
		watcher:  w,
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}

	go watcher.run()

	return watcher, nil

}

// Close stops the watcher and closes the Configs and Errors channels.
func (w *ConfigWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Configs)
		close(w.Errors)
	})
	return err
}

func (w *ConfigWatcher) run() {

	defer close(w.done)

	var last time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isConfigFile(event.Name) || filepath.Clean(event.Name) != w.Path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < w.debounce {
				continue
			}
			last = now

			// Let the writer finish before reading.
			select {
			case <-time.After(w.debounce):
			case <-w.closeCh:
				return
			}

			cfg, err := LoadConfig(w.Path)
			if err != nil {
				w.sendError(err)
				continue
			}

			select {
			case w.Configs <- cfg:
			case <-w.closeCh:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}

}

func (w *ConfigWatcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
		// Nobody's reading errors; drop it rather than stall the watcher.
	}
}

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
