package screen

import (
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/coinwise/internal/viewer"
)

// ProfileMsg carries a viewer profile change into the event loop.
type ProfileMsg struct {
	Profile viewer.Profile
}

// ViewerWatch forwards profile changes from a viewer.Source to a screen.
// Only the latest unseen change is kept.
type ViewerWatch struct {
	mu      sync.Mutex
	pending chan viewer.Profile
	done    chan struct{}
	unsub   func()
	stop    sync.Once
}

// WatchViewer subscribes to src. A nil source never produces a message.
func WatchViewer(src viewer.Source) *ViewerWatch {
	w := &ViewerWatch{
		pending: make(chan viewer.Profile, 1),
		done:    make(chan struct{}),
	}
	if src != nil {
		w.unsub = src.Subscribe(w.push)
	}
	return w
}

func (w *ViewerWatch) push(p viewer.Profile) {
	w.mu.Lock()
	defer w.mu.Unlock()
	select {
	case <-w.pending:
	default:
	}
	w.pending <- p
}

// Next returns a command that waits for the next change. It yields nil
// once the watch is stopped.
func (w *ViewerWatch) Next() tea.Cmd {
	return func() tea.Msg {
		select {
		case p := <-w.pending:
			return ProfileMsg{Profile: p}
		case <-w.done:
			return nil
		}
	}
}

// Stop unsubscribes and releases any waiting command. Safe to call more
// than once.
func (w *ViewerWatch) Stop() {
	w.stop.Do(func() {
		if w.unsub != nil {
			w.unsub()
		}
		close(w.done)
	})
}
