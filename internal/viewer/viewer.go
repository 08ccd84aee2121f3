// Package viewer exposes the signed-in viewer's profile as a read-only,
// subscribable value. The owner updates it through a Hub; consumers only
// read.
package viewer

import "sync"

// Profile is the viewer's display information.
type Profile struct {
	DisplayName string
	Plan        string
}

// Source is a read-only view of the current profile.
type Source interface {
	Current() Profile
	// Subscribe registers fn for future changes. The returned function
	// unsubscribes and is safe to call more than once.
	Subscribe(fn func(Profile)) (unsubscribe func())
}

// Hub owns the profile and notifies subscribers when it changes.
type Hub struct {
	mu      sync.Mutex
	current Profile
	nextID  int
	subs    map[int]func(Profile)
}

// NewHub creates a hub holding p.
func NewHub(p Profile) *Hub {
	return &Hub{current: p, subs: make(map[int]func(Profile))}
}

// Current returns the current profile.
func (h *Hub) Current() Profile {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Subscribe implements Source.
func (h *Hub) Subscribe(fn func(Profile)) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Set replaces the profile and notifies subscribers outside the lock.
func (h *Hub) Set(p Profile) {
	h.mu.Lock()
	if p == h.current {
		h.mu.Unlock()
		return
	}
	h.current = p
	fns := make([]func(Profile), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}

// Subscribers returns the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
