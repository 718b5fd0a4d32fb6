package bridge

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// FileChangedMsg reports an external change to the bound note file.
type FileChangedMsg struct {
	Name string
}

// WatcherErrMsg reports a watcher failure. The editor keeps running without
// external-change detection after one of these.
type WatcherErrMsg struct {
	Err error
}

const selfWriteWindow = 500 * time.Millisecond

// Watcher watches the notes directory and surfaces changes to the currently
// bound file as Bubble Tea messages. The shell re-issues Wait after every
// delivered message.
type Watcher struct {
	fsw  *fsnotify.Watcher
	dir  string
	msgs chan tea.Msg
	done chan struct{}
	once sync.Once

	mu        sync.Mutex
	bound     string
	selfWrite time.Time
}

func NewWatcher(dir string) (*Watcher, error) {
	if dir == "" {
		return nil, errors.New("notes directory cannot be empty")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:  fsw,
		dir:  dir,
		msgs: make(chan tea.Msg, 8),
		done: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Bind sets the file the watcher reports on; an empty name unbinds.
func (w *Watcher) Bind(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bound = name
	if name != "" {
		// Subdirectories are not watched recursively; follow the bound file.
		dir := filepath.Dir(filepath.Join(w.dir, filepath.FromSlash(name)))
		_ = w.fsw.Add(dir)
	}
}

// MarkSelfWrite suppresses the change notifications our own save is about to
// trigger.
func (w *Watcher) MarkSelfWrite() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.selfWrite = time.Now()
}

func (w *Watcher) interested(path string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.bound == "" {
		return "", false
	}
	if time.Since(w.selfWrite) < selfWriteWindow {
		return "", false
	}
	boundPath := filepath.Join(w.dir, filepath.FromSlash(w.bound))
	if filepath.Clean(path) != boundPath {
		return "", false
	}
	return w.bound, true
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if name, ok := w.interested(ev.Name); ok {
				select {
				case w.msgs <- FileChangedMsg{Name: name}:
				default:
				}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.msgs <- WatcherErrMsg{Err: err}:
			default:
			}
		}
	}
}

// Wait blocks until the next watcher message or shutdown.
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.done:
			return nil
		case msg := <-w.msgs:
			return msg
		}
	}
}

func (w *Watcher) Close() error {
	w.once.Do(func() { close(w.done) })
	return w.fsw.Close()
}
