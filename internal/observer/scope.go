package observer

import "sync"

// Scope collects the subscriptions acquired while a view is mounted and
// releases all of them, newest first, when closed. Close is idempotent, so
// `defer scope.Close()` covers every unmount path.
type Scope struct {
	mu     sync.Mutex
	subs   []*Subscription
	closed bool
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Add adopts sub. Adding to a closed scope releases sub immediately.
func (s *Scope) Add(sub *Subscription) *Subscription {
	if sub == nil {
		return nil
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		sub.Release()
		return sub
	}
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
	return sub
}

// AddFunc adopts a plain release func.
func (s *Scope) AddFunc(release func()) *Subscription {
	return s.Add(NewSubscription(release))
}

// Close releases every adopted subscription in reverse order.
func (s *Scope) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for i := len(subs) - 1; i >= 0; i-- {
		subs[i].Release()
	}
}

// Closed reports whether Close has run.
func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
