// Package observer implements the synchronous publish/subscribe contract
// shared by the theme, locale and scroll components.
//
// All callbacks run on the goroutine that calls Notify, in registration
// order. The Bubble Tea event loop dispatches messages serially, so no
// component needs its own locking beyond what Registry does here.
package observer

import "sync"

// Registry holds the callbacks subscribed to a single value stream.
type Registry[T any] struct {
	mu     sync.Mutex
	nextID uint64
	subs   []entry[T]
}

type entry[T any] struct {
	id uint64
	fn func(T)
}

// Subscription is the handle returned by Subscribe. Release detaches the
// callback; it is safe to call more than once and on a nil handle.
type Subscription struct {
	once    sync.Once
	release func()
}

// Release detaches the callback.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
}

// NewSubscription wraps an arbitrary release func in a Subscription.
func NewSubscription(release func()) *Subscription {
	return &Subscription{release: release}
}

// Subscribe registers fn. A nil fn yields a no-op subscription.
func (r *Registry[T]) Subscribe(fn func(T)) *Subscription {
	if fn == nil {
		return NewSubscription(nil)
	}
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.subs = append(r.subs, entry[T]{id: id, fn: fn})
	r.mu.Unlock()

	return NewSubscription(func() { r.remove(id) })
}

func (r *Registry[T]) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.subs {
		if e.id == id {
			r.subs = append(r.subs[:i:i], r.subs[i+1:]...)
			return
		}
	}
}

// Notify invokes every registered callback with v. Callbacks may release
// their own (or other) subscriptions while being notified; the snapshot
// taken here is what gets called.
func (r *Registry[T]) Notify(v T) {
	r.mu.Lock()
	snapshot := make([]entry[T], len(r.subs))
	copy(snapshot, r.subs)
	r.mu.Unlock()

	for _, e := range snapshot {
		e.fn(v)
	}
}

// Len returns the number of live subscriptions.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}
