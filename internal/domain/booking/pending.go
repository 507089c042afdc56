package booking

import (
	"errors"
	"strings"
	"sync"
	"time"
)

var ErrInvalidTicketQuantity = errors.New("ticket quantity must be a positive integer")

// PendingBooking is an unconfirmed, session-scoped booking proposal awaiting
// user confirmation. The event name is still free text; it is only bound to a
// real event when the session confirms.
type PendingBooking struct {
	EventName string
	Quantity  int
	CreatedAt time.Time
}

func NewPendingBooking(eventName string, quantity int, now time.Time) (PendingBooking, error) {
	if quantity <= 0 {
		return PendingBooking{}, ErrInvalidTicketQuantity
	}
	return PendingBooking{
		EventName: strings.TrimSpace(eventName),
		Quantity:  quantity,
		CreatedAt: now,
	}, nil
}

func (p PendingBooking) ExpiredAt(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(p.CreatedAt) > ttl
}

// SessionStore maps a conversation session to its single outstanding
// PendingBooking. A session holds at most one proposal at a time; storing a
// new one replaces the previous (last-proposal-wins). The map is shared by
// concurrent HTTP handlers, so access is guarded, but an individual session
// is only ever driven by one caller.
type SessionStore struct {
	mu      sync.Mutex
	pending map[string]PendingBooking
	ttl     time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		pending: make(map[string]PendingBooking),
		ttl:     ttl,
	}
}

// Get returns the session's pending booking, evicting it first if it has
// outlived the store TTL (an abandoned conversation).
func (s *SessionStore) Get(sessionID string, now time.Time) (PendingBooking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[sessionID]
	if !ok {
		return PendingBooking{}, false
	}
	if p.ExpiredAt(now, s.ttl) {
		delete(s.pending, sessionID)
		return PendingBooking{}, false
	}
	return p, true
}

// Put stores the proposal and reports whether it replaced an earlier one.
func (s *SessionStore) Put(sessionID string, p PendingBooking) (replaced bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, replaced = s.pending[sessionID]
	s.pending[sessionID] = p
	return replaced
}

func (s *SessionStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, sessionID)
}
